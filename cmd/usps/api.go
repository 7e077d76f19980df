package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/signadot/go-usps/ir"
	"github.com/signadot/go-usps/render"
	"github.com/signadot/go-usps/usps"

	"github.com/scott-cotton/cli"
)

func api(cfg *APIConfig, cc *cli.Context, args []string) error {
	args, err := cfg.API.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: api requires a request kind", cli.ErrUsage)
	}
	req, err := buildRequest(cfg, cc, args[0], args[1:])
	if err != nil {
		return err
	}
	client := cfg.client()
	if cfg.Dry {
		x, err := client.XML(req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "POST %s API=%s\n%s\n", client.Endpoint(req.API()), req.API(), x)
		return nil
	}
	if client.Username() == "" {
		return fmt.Errorf("%w: no user id, use -user or $USPS_USERNAME", cli.ErrUsage)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	resp, err := client.Do(ctx, req)
	if err != nil {
		return err
	}
	if resp.Data != nil {
		if err := render.Render(cc.Out, resp.Data, cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return resp.Err()
}

func (cfg *APIConfig) client() *usps.Client {
	user := cfg.User
	if user == "" {
		user = os.Getenv("USPS_USERNAME")
	}
	test := cfg.Test
	if !test {
		test, _ = strconv.ParseBool(os.Getenv("USPS_TEST_MODE"))
	}
	opts := []usps.ClientOption{
		usps.WithTestMode(test),
		usps.WithLogger(theLog),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, usps.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Timeout != 0 {
		opts = append(opts, usps.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	return usps.NewClient(user, opts...)
}

func buildRequest(cfg *APIConfig, cc *cli.Context, kind string, args []string) (usps.Request, error) {
	switch kind {
	case "zip":
		a, err := parseAddress(args)
		if err != nil {
			return nil, err
		}
		req := &usps.ZipCodeLookup{}
		req.AddAddress(a, "")
		return req, nil
	case "verify":
		a, err := parseAddress(args)
		if err != nil {
			return nil, err
		}
		req := &usps.AddressVerify{Revision: cfg.Revision}
		req.AddAddress(a, "0")
		return req, nil
	case "city":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: city requires zip codes", cli.ErrUsage)
		}
		req := &usps.CityStateLookup{}
		for _, arg := range args {
			zip5, zip4, _ := strings.Cut(arg, "-")
			req.AddZipCode(zip5, zip4, "")
		}
		return req, nil
	case "track":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: track requires tracking ids", cli.ErrUsage)
		}
		req := &usps.TrackConfirm{}
		for _, arg := range args {
			req.AddPackage(arg)
		}
		return req, nil
	case "raw":
		if len(args) == 0 || len(args) > 2 {
			return nil, fmt.Errorf("%w: raw requires an api name and at most one file", cli.ErrUsage)
		}
		name, err := usps.ParseAPI(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		body, err := loadDoc(cfg.MainConfig, cc, inputs(args[1:])[0], cfg.structFormat())
		if err != nil {
			return nil, err
		}
		return &usps.Raw{Name: name, Body: body}, nil
	}
	return nil, fmt.Errorf("%w: unknown request kind %q", cli.ErrUsage, kind)
}

var addressKeys = map[string]func(*usps.Address, string) *usps.Address{
	"address": (*usps.Address).SetAddress,
	"apt":     (*usps.Address).SetApt,
	"city":    (*usps.Address).SetCity,
	"state":   (*usps.Address).SetState,
	"zip5":    (*usps.Address).SetZip5,
	"zip4":    (*usps.Address).SetZip4,
	"firm":    (*usps.Address).SetFirmName,
}

// parseAddress builds an address from key=value arguments, in order.
func parseAddress(args []string) (*usps.Address, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: address requires key=value arguments", cli.ErrUsage)
	}
	a := usps.NewAddress()
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: argument %q expected key=value", cli.ErrUsage, arg)
		}
		if set, ok := addressKeys[strings.ToLower(k)]; ok {
			set(a, v)
			continue
		}
		if !ir.IsValidName(k) {
			return nil, fmt.Errorf("%w: %q is not a valid field name", cli.ErrUsage, k)
		}
		a.SetField(k, v)
	}
	return a, nil
}

