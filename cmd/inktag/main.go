package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/inktag/inktag"
	"github.com/inktag/inktag/pkg/log"
	"github.com/inktag/inktag/pkg/version"
)

type options struct {
	ConfigPath *flags.Filename `short:"c" long:"config" description:"config file path (json, yaml, toml, properties)"`
	StorePath  *flags.Filename `short:"p" long:"store" description:"record file path (overrides config)"`

	List   bool            `short:"l" long:"list" description:"list persisted document keys"`
	Show   *string         `short:"s" long:"show" description:"dump a document's tagged characters"`
	Tokens *string         `short:"t" long:"tokens" description:"print highlight tokens for a document, reading its live text from the key path"`
	Replay *flags.Filename `short:"r" long:"replay" description:"replay change events from a JSON-lines script ('-' for stdin)"`
	Forget *string         `long:"forget" description:"drop a document from the persisted record"`

	Verbose bool `short:"v" long:"verbose" description:"enable verbose logging"`
	Version bool `short:"V" long:"version" description:"print version and exit"`
}

// event is one line of a replay script.
type event struct {
	Key   string `json:"key"`
	Text  string `json:"text"`
	Edits []struct {
		Start int    `json:"start"`
		End   int    `json:"end"`
		Text  string `json:"text"`
	} `json:"edits"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
inktag maintains a per-character tag ledger for text documents.

Related tools:
* inktagd`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	session, err := newSession(opts)
	if err != nil {
		fatal(err)
	}

	switch {
	case opts.List:
		keys, err := session.Keys()
		if err != nil {
			fatal(err)
		}

		for _, key := range keys {
			fmt.Println(key)
		}

	case opts.Show != nil:
		legend := session.Legend()

		for i, c := range session.Chars(*opts.Show) {
			fmt.Printf("%d\t%q\t%s\t%s\n", i, c.R, legend[c.Cat], c.Tag)
		}

	case opts.Tokens != nil:
		text, err := os.ReadFile(*opts.Tokens)
		if err != nil {
			fatal(err)
		}

		lines := strings.Split(string(text), "\n")

		for _, tok := range session.Tokens(*opts.Tokens, lines) {
			fmt.Printf("%d:%d\t%d\t%s\n", tok.Line, tok.Col, tok.Length, session.Legend()[tok.Category])
		}

	case opts.Replay != nil:
		err := replay(session, string(*opts.Replay))
		if err != nil {
			fatal(err)
		}

	case opts.Forget != nil:
		err := session.Forget(*opts.Forget)
		if err != nil {
			fatal(err)
		}

	default:
		fp.WriteHelp(os.Stderr)
		os.Exit(1)
	}
}

func newSession(opts *options) (*inktag.Session, error) {
	cfg := inktag.DefaultConfig()

	if opts.ConfigPath != nil {
		var err error

		cfg, err = inktag.LoadConfig(string(*opts.ConfigPath))
		if err != nil {
			return nil, err
		}
	}

	if opts.StorePath != nil {
		cfg.StorePath = string(*opts.StorePath)
	}

	return inktag.New(cfg)
}

func replay(session *inktag.Session, path string) error {
	fh := os.Stdin

	if path != "-" {
		var err error

		fh, err = os.Open(path)
		if err != nil {
			return err
		}
		defer fh.Close()
	}

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev := event{}

		err := json.Unmarshal([]byte(line), &ev)
		if err != nil {
			return err
		}

		edits := make([]inktag.Edit, len(ev.Edits))
		for i, e := range ev.Edits {
			edits[i] = inktag.Edit{Start: e.Start, End: e.End, Text: e.Text}
		}

		err = session.HandleChange(ev.Key, ev.Text, edits)
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
