package main

import (
	"fmt"
	"strings"

	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/ir"
	"github.com/signadot/go-usps/render"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	many := strings.Contains(path, "[*]") || strings.Contains(path, "..")
	out := cfg.outFormat(cfg.structFormat())
	for i, file := range inputs(args[1:]) {
		y, err := loadDoc(cfg.MainConfig, cc, file, format.XMLFormat, decodeOpts(cfg.KeepGroups)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var res *ir.Node
		if many {
			found, err := y.ListPath(nil, path)
			if err != nil {
				return fmt.Errorf("error getting %s from %s: %w", path, file, err)
			}
			res = ir.FromSlice(clones(found))
		} else {
			res, err = y.GetPath(path)
			if err != nil {
				return fmt.Errorf("error getting %s from %s: %w", path, file, err)
			}
			if res == nil {
				theLog.Warn("path not found", "path", path, "file", file)
				continue
			}
		}
		if err := separate(cc.Out, i, out); err != nil {
			return err
		}
		if err := render.Render(cc.Out, res, cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func clones(ys []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, len(ys))
	for i, y := range ys {
		res[i] = y.Clone()
	}
	return res
}
