package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "usps").
		WithSynopsis("usps [opts] command [opts]").
		WithDescription("usps converts between xml and structures and talks to the USPS Web Tools APIs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uspsMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			GetCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			APICommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-root name] [-indent] [-encoding e] [-nodecl] [files]").
		WithDescription(encodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}

const encodeDescription = `encode converts json or yaml structures to xml.

Without -root, each structure must have a single key naming the root
element. Attributes are given under "@attributes", text beside attributes
under "@value" and CDATA under "@cdata". Lists become repeated elements.`

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [-groups] [files]").
		WithDescription("decode xml documents to json or yaml structures").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeCmd(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get elements of decoded documents by path, such as Response.Address[0].Zip5 or $..Zip5").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expression over decoded documents.

The root element is available by name and the whole document as doc.
Besides the expr language builtins, the functions text(v), attr(v, name),
group(v), has(v, key), getpath(path) and listpath(path) are available.

  usps query 'text(TrackResponse.TrackInfo.TrackSummary)' resp.xml
  usps query 'map(group(AddressValidateResponse.Address), .Zip5)' resp.xml`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff [-r] [-q] a b").
		WithDescription("diff the structures of two documents, exiting 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] <patchfile> [files]").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

const patchDescription = `patch applies a json patch (RFC 6902) or, with -merge, a json merge
patch (RFC 7386) to decoded documents and encodes the result as xml.

Patches address the decoded structure, for example

  [{"op": "replace", "path": "/ZipCodeLookupRequest/Address/City", "value": "Greenbelt"}]

The patch file may be json or yaml.`

func APICommand(mainCfg *MainConfig) *cli.Command {
	cfg := &APIConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "timeout",
		Description: "http timeout",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkTimeout()), "(duration)"),
	})
	return cli.NewCommandAt(&cfg.API, "api").
		WithAliases("a").
		WithSynopsis("api [opts] zip|city|track|verify|raw [args]").
		WithDescription(apiDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return api(cfg, cc, args)
		})
}

const apiDescription = `api sends a request to the USPS Web Tools APIs and prints the decoded
response.

  api zip key=value...       ZipCodeLookup for one address
  api verify key=value...    Verify one address
  api city zip5[-zip4]...    CityStateLookup
  api track id...            TrackV2
  api raw <API> [file]       send a json or yaml structure as the request body

Address keys are address, apt, city, state, zip5, zip4 and firm; other keys
are sent as fields named after the key.`
