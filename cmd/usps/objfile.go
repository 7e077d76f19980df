package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-usps/decode"
	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/ir"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// loadDoc reads path as xml, json or yaml according to the -I option or the
// file name, defaulting to def.
func loadDoc(cfg *MainConfig, cc *cli.Context, path string, def format.Format, opts ...decode.DecodeOption) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	switch cfg.inFormat(path, def) {
	case format.XMLFormat:
		return decode.Decode(d, opts...)
	case format.YAMLFormat:
		return ir.FromYAML(d)
	default:
		return ir.FromJSON(d)
	}
}

// inputs returns the files named by args, or stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func separate(w io.Writer, i int, f format.Format) error {
	if i == 0 {
		return nil
	}
	sep := "\n"
	if f.IsYAML() {
		sep = "---\n"
	}
	_, err := io.WriteString(w, sep)
	return err
}
