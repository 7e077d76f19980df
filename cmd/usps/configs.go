package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/go-usps/decode"
	"github.com/signadot/go-usps/format"
	"github.com/signadot/go-usps/render"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	Compact bool `cli:"name=c desc='render json on one line'"`

	J bool `cli:"name=j aliases=json desc='structures in json'"`
	Y bool `cli:"name=y aliases=yaml desc='structures in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// structFormat is the format used for structures when neither the command
// line nor a file name says otherwise.
func (cfg *MainConfig) structFormat() format.Format {
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// inFormat returns the format of the input file path, defaulting to def.
func (cfg *MainConfig) inFormat(path string, def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.ForPath(path); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.RenderOption {
	res := []render.RenderOption{
		render.Format(cfg.outFormat(cfg.structFormat())),
	}
	if cfg.Compact {
		res = append(res, render.Compact())
	}
	if cfg.Color {
		return append(res, render.WithColors(render.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if c := render.AutoColor(w); c != nil {
		res = append(res, render.WithColors(c))
	}
	return res
}

// isTerminal reports whether w is a terminal, for colouring non-structure
// output such as diffs.
func (cfg *MainConfig) isTerminal(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func decodeOpts(keepGroups bool) []decode.DecodeOption {
	if keepGroups {
		return []decode.DecodeOption{decode.KeepGroups()}
	}
	return nil
}

type EncodeConfig struct {
	*MainConfig
	Root      string `cli:"name=root desc='root element name'"`
	Indent    bool   `cli:"name=indent desc='indent elements'"`
	Encoding  string `cli:"name=encoding desc='declared encoding'"`
	NoDecl    bool   `cli:"name=nodecl desc='omit the xml declaration'"`
	Transcode bool   `cli:"name=transcode desc='transcode output to the declared encoding'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	KeepGroups bool `cli:"name=groups desc='keep every child in a group'"`

	Decode *cli.Command
}

type GetConfig struct {
	*MainConfig
	KeepGroups bool `cli:"name=groups desc='keep every child in a group'"`

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	KeepGroups bool `cli:"name=groups desc='keep every child in a group'"`
	Raw        bool `cli:"name=r desc='print string results without quotes'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	KeepGroups bool `cli:"name=groups desc='keep every child in a group'"`
	Reverse    bool `cli:"name=r desc='reverse the diff'"`
	Quiet      bool `cli:"name=q desc='only set the exit status'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	KeepGroups bool `cli:"name=groups desc='keep every child in a group'"`
	Merge      bool `cli:"name=merge desc='patch is a json merge patch'"`
	Indent     bool `cli:"name=indent desc='indent elements'"`

	Patch *cli.Command
}

type APIConfig struct {
	*MainConfig
	User     string `cli:"name=user desc='USPS user id (default $USPS_USERNAME)'"`
	Test     bool   `cli:"name=test desc='use the test endpoint (default $USPS_TEST_MODE)'"`
	Dry      bool   `cli:"name=dry desc='print the request instead of sending it'"`
	Endpoint string `cli:"name=endpoint desc='override the endpoint url'"`
	Revision string `cli:"name=rev desc='verify request revision'"`
	Timeout  time.Duration

	API *cli.Command
}

func (cfg *APIConfig) mkTimeout() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Timeout = d
		return d, nil
	}
}
