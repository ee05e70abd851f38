package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/inktag/inktag"
	"github.com/inktag/inktag/pkg/log"
	"github.com/inktag/inktag/pkg/version"
)

type options struct {
	ConfigPath *flags.Filename `short:"c" long:"config" description:"config file path (json, yaml, toml, properties)"`
	StorePath  *flags.Filename `short:"p" long:"store" description:"record file path (overrides config)"`

	Verbose bool `short:"v" long:"verbose" description:"enable verbose logging"`
	Version bool `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		DocKey   string         `positional-arg-name:"docKey" description:"document key in the persisted record"`
		LivePath flags.Filename `positional-arg-name:"livePath" description:"path of the live document text"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
inktagd prints drift between a document's persisted tag ledger and its live text.

Exits 0 when the ledger matches, 1 when it has drifted.

Related tools:
* inktag`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	if opts.Positional.DocKey == "" || opts.Positional.LivePath == "" {
		fp.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	cfg := inktag.DefaultConfig()

	if opts.ConfigPath != nil {
		cfg, err = inktag.LoadConfig(string(*opts.ConfigPath))
		if err != nil {
			fatal(err)
		}
	}

	if opts.StorePath != nil {
		cfg.StorePath = string(*opts.StorePath)
	}

	session, err := inktag.New(cfg)
	if err != nil {
		fatal(err)
	}

	live, err := os.ReadFile(string(opts.Positional.LivePath))
	if err != nil {
		fatal(err)
	}

	result := session.Compare(opts.Positional.DocKey, string(live))
	if result.Diff == "" {
		return
	}

	fmt.Print(result.Diff)
	os.Exit(1)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
