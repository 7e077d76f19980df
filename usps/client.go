package usps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/signadot/go-usps/debug"
	"github.com/signadot/go-usps/decode"
	"github.com/signadot/go-usps/encode"
	"github.com/signadot/go-usps/ir"
)

const (
	LiveEndpoint     = "https://secure.shippingapis.com/ShippingAPI.dll"
	TestEndpoint     = "https://production.shippingapis.com/ShippingAPITest.dll"
	TrackingEndpoint = "https://production.shippingapis.com/ShippingAPI.dll"

	DefaultUserAgent = "go-usps"
	DefaultTimeout   = 60 * time.Second
)

// Client sends requests to the USPS Web Tools APIs. A Client is safe for
// concurrent use.
type Client struct {
	username  string
	testMode  bool
	endpoint  string
	userAgent string
	http      *http.Client
	log       *slog.Logger
	encOpts   []encode.EncodeOption
}

type ClientOption func(*Client)

// WithTestMode sends requests to the test endpoint.
func WithTestMode(v bool) ClientOption {
	return func(c *Client) { c.testMode = v }
}

// WithEndpoint sends every request to u, regardless of API or test mode.
func WithEndpoint(u string) ClientOption {
	return func(c *Client) { c.endpoint = u }
}

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// WithEncodeOptions adds options used when encoding request XML.
func WithEncodeOptions(opts ...EncodeOption) ClientOption {
	return func(c *Client) { c.encOpts = append(c.encOpts, opts...) }
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// EncodeOption is re-exported so callers configuring a client need not
// import the encode package.
type EncodeOption = encode.EncodeOption

func NewClient(username string, opts ...ClientOption) *Client {
	c := &Client{
		username:  username,
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Username() string { return c.username }
func (c *Client) TestMode() bool   { return c.testMode }

// Endpoint returns the URL requests to api are posted to.
func (c *Client) Endpoint(api API) string {
	switch {
	case c.endpoint != "":
		return c.endpoint
	case c.testMode:
		return TestEndpoint
	case api == APITrackV2:
		return TrackingEndpoint
	default:
		return LiveEndpoint
	}
}

// XML returns the request document for req. The root element carries the
// USERID attribute followed by the request's own attributes; a USERID
// attribute set on the request replaces the client's.
func (c *Client) XML(req Request) (string, error) {
	root, err := req.API().RequestRoot()
	if err != nil {
		return "", err
	}
	body := req.Fields()
	if body.Type != ir.ObjectType {
		return "", fmt.Errorf("%s request: expected fields, got %s", req.API(), body.Type)
	}
	attrs := []ir.Attr{ir.StringAttr("USERID", c.username)}
	for _, a := range body.Attrs {
		if a.Name == "USERID" {
			attrs[0] = a
			continue
		}
		attrs = append(attrs, a)
	}
	body.Attrs = attrs
	return encode.EncodeString(root, body, c.encOpts...)
}

// PostData returns the form sent for req.
func (c *Client) PostData(req Request) (url.Values, error) {
	x, err := c.XML(req)
	if err != nil {
		return nil, err
	}
	return url.Values{
		"API": {req.API().String()},
		"XML": {x},
	}, nil
}

// Do posts req and decodes the response. The returned error covers request
// construction, transport and, for HTTP 200 responses, decoding; errors
// reported by the service are available from Response.Err.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	form, err := c.PostData(req)
	if err != nil {
		return nil, err
	}
	api := req.API()
	endpoint := c.Endpoint(api)
	if debug.HTTP() {
		debug.Logf("usps: POST %s API=%s\n%s\n", endpoint, api, form.Get("XML"))
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	hreq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	hreq.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	hresp, err := c.http.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer hresp.Body.Close()
	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}
	c.log.Debug("usps request",
		"api", api,
		"endpoint", endpoint,
		"status", hresp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start))
	if debug.HTTP() {
		debug.Logf("usps: %d\n%s\n", hresp.StatusCode, body)
	}
	resp := &Response{
		API:        api,
		StatusCode: hresp.StatusCode,
		Header:     hresp.Header,
		Body:       body,
	}
	data, err := decode.Decode(body)
	if err != nil {
		if hresp.StatusCode == http.StatusOK {
			return resp, err
		}
		c.log.Debug("usps response not decoded", "api", api, "error", err)
		return resp, nil
	}
	resp.Data = data
	return resp, nil
}

// Call posts req and returns the content of the response root element, or
// the first error from Do or Response.Err.
func (c *Client) Call(ctx context.Context, req Request) (*ir.Node, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Result(), nil
}
