package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/go-usps/format"

	"github.com/scott-cotton/cli"
)

func uspsMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: -j[son] and -y[aml] are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		cfg.closeOut()
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// outOpt directs output to the file a. Unless -O is given, a file name
// ending in .json, .yaml or .xml also selects the output format.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	if fm, ok := format.ForPath(a); ok && cfg.OutFormat == nil {
		cfg.OutFormat = &fm
	}
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		theLog.Error("closing output", "file", cfg.Out, "error", err)
	}
	cfg.CloseOut = nil
}
