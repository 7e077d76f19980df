package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-usps/eval"
	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/render"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	out := cfg.outFormat(cfg.structFormat())
	for i, file := range inputs(args[1:]) {
		y, err := loadDoc(cfg.MainConfig, cc, file, format.XMLFormat, decodeOpts(cfg.KeepGroups)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		v, err := eval.Query(y, src)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, file, err)
		}
		if err := separate(cc.Out, i, out); err != nil {
			return err
		}
		if s, ok := v.(string); ok && cfg.Raw {
			io.WriteString(cc.Out, s+"\n")
			continue
		}
		res, err := eval.ToNode(v)
		if err != nil {
			return err
		}
		if err := render.Render(cc.Out, res, cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
