package layout

import "testing"

func TestLegalText(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		strong bool
	}{
		{"plain", "Thank you for your business.", "Thank you for your business.", false},
		{"plain keeps newlines", "line one\nline two", "line one\nline two", false},
		{"heading syntax is literal", "# of *items*", "# of items", false},
		{"list syntax is literal", "- *net* 30", "- net 30", false},
		{"strong line", "**Payment due within 30 days**", "Payment due within 30 days", true},
		{"partial strong", "Pay **now** please", "Pay now please", false},
		{"emphasis", "An *important* note", "An important note", false},
		{"code span", "Use reference `INV-42`", "Use reference INV-42", false},
		{"link", "See [our terms](https://example.com/terms)", "See our terms", false},
		{"entity", "Smith &amp; Sons", "Smith & Sons", false},
		{"bare ampersand", "Smith & Sons", "Smith & Sons", false},
		{"line break tag", "IBAN DE00 1234<br>BIC ABCDEFXX", "IBAN DE00 1234\nBIC ABCDEFXX", false},
		{"other tags dropped", "Paid <span>in full</span>", "Paid in full", false},
		{"escaped asterisk", "Price \\* 2", "Price * 2", false},
		{"escaped strong markers", "\\*\\*not bold\\*\\*", "**not bold**", false},
		{"intraword underscore", "ref ACME_CORP_01", "ref ACME_CORP_01", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, strong := legalText(tc.in)
			if got != tc.want || strong != tc.strong {
				t.Fatalf("legalText(%q) = %q, %v; want %q, %v", tc.in, got, strong, tc.want, tc.strong)
			}
		})
	}
}
