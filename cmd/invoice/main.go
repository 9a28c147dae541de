package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/invoice"
	"github.com/wudi/invoicekit/observability"
)

const traceKey = "invoice"

type options struct {
	configPath    string
	outPath       string
	verbose       bool
	printDefaults bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invoice: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "invoice: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: invoice [flags] [options.yaml]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.configPath, "config", "", "YAML or JSON options merged onto the defaults")
	flag.StringVar(&opts.outPath, "out", "invoice.pdf", "Output PDF path")
	flag.BoolVar(&opts.verbose, "v", false, "Trace rendering at debug level")
	flag.BoolVar(&opts.printDefaults, "print-defaults", false, "Print the default options and exit")
	flag.Parse()

	switch {
	case flag.NArg() > 1:
		flag.Usage()
		return options{}, fmt.Errorf("too many arguments")
	case flag.NArg() == 1 && opts.configPath != "":
		return options{}, fmt.Errorf("options given both as -config and as argument")
	case flag.NArg() == 1:
		opts.configPath = flag.Arg(0)
	}
	if opts.outPath == "" {
		return options{}, fmt.Errorf("empty output path")
	}
	return opts, nil
}

func run(opts options) error {
	if opts.printDefaults {
		return config.Encode(os.Stdout, config.Default())
	}
	if err := setupTracing(opts.verbose); err != nil {
		return err
	}

	doc := config.Default()
	if opts.configPath != "" {
		var err error
		if doc, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	inv, err := invoice.New(doc, invoice.WithLogger(observability.Traced(traceKey)))
	if err != nil {
		return err
	}
	if err := inv.WriteFile(context.Background(), opts.outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", opts.outPath)
	return nil
}

func setupTracing(verbose bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.invoice":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if verbose {
		tracing.Select(traceKey).SetTraceLevel(tracing.LevelDebug)
	}
	return nil
}
