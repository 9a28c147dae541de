package builder

import (
	"fmt"
	"image"
	_ "image/gif" // Register decoders
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// imageType reports the fpdf image type of the file at path.
func imageType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("decode image %s: %w", path, err)
	}
	switch format {
	case "jpeg":
		return "JPG", nil
	case "png":
		return "PNG", nil
	case "gif":
		return "GIF", nil
	}
	return "", fmt.Errorf("image %s: unsupported format %q", path, format)
}
