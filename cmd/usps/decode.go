package main

import (
	"fmt"

	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/render"

	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	out := cfg.outFormat(cfg.structFormat())
	if out.IsXML() {
		return fmt.Errorf("%w: decode output must be json or yaml", cli.ErrUsage)
	}
	for i, file := range inputs(args) {
		y, err := loadDoc(cfg.MainConfig, cc, file, format.XMLFormat, decodeOpts(cfg.KeepGroups)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := separate(cc.Out, i, out); err != nil {
			return err
		}
		if err := render.Render(cc.Out, y, cfg.renderOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
	}
	return nil
}
