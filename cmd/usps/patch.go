package main

import (
	"fmt"

	"github.com/signadot/go-usps/encode"
	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/patch"
	"github.com/signadot/go-usps/render"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := loadPatch(cc, args[0])
	if err != nil {
		return fmt.Errorf("error loading patch %s: %w", args[0], err)
	}
	out := cfg.outFormat(format.XMLFormat)
	for i, file := range inputs(args[1:]) {
		y, err := loadDoc(cfg.MainConfig, cc, file, format.XMLFormat, decodeOpts(cfg.KeepGroups)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Merge {
			y, err = patch.MergePatch(y, p)
		} else {
			y, err = patch.JSONPatch(y, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := separate(cc.Out, i, out); err != nil {
			return err
		}
		if !out.IsXML() {
			if err := render.Render(cc.Out, y, cfg.renderOpts(cc.Out)...); err != nil {
				return err
			}
			continue
		}
		root, body, err := rootOf("", y)
		if err != nil {
			return fmt.Errorf("patched %s: %w", file, err)
		}
		if err := encode.Encode(root, body, cc.Out, encode.Indent(cfg.Indent)); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

// loadPatch reads a json or yaml patch document and returns it as json.
func loadPatch(cc *cli.Context, path string) ([]byte, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	if f, ok := format.ForPath(path); ok && f.IsJSON() {
		return d, nil
	}
	return yaml.YAMLToJSON(d)
}

