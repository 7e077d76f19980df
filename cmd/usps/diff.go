package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	opts := decodeOpts(cfg.KeepGroups)
	y1, err := loadDoc(cfg.MainConfig, cc, args[0], format.XMLFormat, opts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := loadDoc(cfg.MainConfig, cc, args[1], format.XMLFormat, opts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(y1, y2)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if !cfg.Quiet {
		if err := writeChanges(cc.Out, changes, cfg.isTerminal(cc.Out)); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, changes []libdiff.Change, colored bool) error {
	del, ins := plain, plain
	if colored {
		del, ins = colorFunc(color.FgRed), colorFunc(color.FgGreen)
	}
	for i := range changes {
		c := &changes[i]
		line := c.String()
		if c.Inline != nil {
			line = fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, libdiff.InlineText(c.Inline, del, ins))
		}
		if colored {
			switch c.Op {
			case libdiff.Add:
				line = ins(line)
			case libdiff.Remove:
				line = del(line)
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func plain(s string, _ ...any) string { return s }

func colorFunc(a color.Attribute) func(string, ...any) string {
	c := color.New(a)
	c.EnableColor()
	return func(s string, _ ...any) string { return c.Sprint(s) }
}
