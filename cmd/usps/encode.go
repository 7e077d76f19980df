package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-usps/encode"
	"github.com/signadot/go-usps/ir"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		y, err := loadDoc(cfg.MainConfig, cc, file, cfg.structFormat())
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		root, body, err := rootOf(cfg.Root, y)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if i > 0 {
			io.WriteString(cc.Out, "\n")
		}
		if err := encode.Encode(root, body, cc.Out, cfg.encOpts()...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		io.WriteString(cc.Out, "\n")
	}
	return nil
}

// rootOf splits y into a root name and its content. With root empty, y must
// be an object with one key.
func rootOf(root string, y *ir.Node) (string, *ir.Node, error) {
	if root != "" {
		return root, y, nil
	}
	if y.Type != ir.ObjectType || len(y.Fields) != 1 || len(y.Attrs) != 0 {
		return "", nil, fmt.Errorf("%w: expected an object with a single root key, or -root", cli.ErrUsage)
	}
	return y.Fields[0], y.Values[0], nil
}

func (cfg *EncodeConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.Transcode(cfg.Transcode),
	}
	if cfg.Encoding != "" {
		res = append(res, encode.Encoding(cfg.Encoding))
	}
	if cfg.NoDecl {
		res = append(res, encode.NoDecl())
	}
	return res
}

