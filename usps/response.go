package usps

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/signadot/go-usps/ir"
)

// Response is a USPS response. Data holds the decoded body, a one-field
// object keyed by the root element name; it is nil when the body is not
// XML.
type Response struct {
	API        API
	StatusCode int
	Header     http.Header
	Body       []byte
	Data       *ir.Node
}

// Err returns an *APIError when the response reports failure: a status
// other than 200, an Error element anywhere in the decoded body, or an
// <Error> tag in the raw body.
func (r *Response) Err() error {
	if r.StatusCode != http.StatusOK {
		e := &APIError{StatusCode: r.StatusCode, Description: http.StatusText(r.StatusCode)}
		r.fill(e)
		return e
	}
	if e := r.fill(&APIError{StatusCode: r.StatusCode}); e != nil {
		return e
	}
	if bytes.Contains(r.Body, []byte("<Error>")) {
		return &APIError{StatusCode: r.StatusCode, Description: "error in response"}
	}
	return nil
}

// fill sets the fields of e from the first Error element in the decoded
// body, returning nil when there is none.
func (r *Response) fill(e *APIError) *APIError {
	found := ir.Find(r.Data, "Error")
	if found == nil {
		return nil
	}
	x := ir.Group(found)[0]
	if v := ir.Get(x, "Number"); v != nil {
		e.Number = v.Text()
	}
	if v := ir.Get(x, "Description"); v != nil {
		e.Description = v.Text()
	}
	if v := ir.Get(x, "Source"); v != nil {
		e.Source = v.Text()
	}
	if x.Type.IsScalar() && e.Description == "" {
		e.Description = x.Text()
	}
	return e
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// Result returns the content of the response root element, or nil if the
// body was not decoded. Some APIs answer with a root other than
// API.ResponseRoot (TrackV2 responds with TrackResponse); the content of
// whatever root was decoded is returned then.
func (r *Response) Result() *ir.Node {
	if root, err := r.API.ResponseRoot(); err == nil {
		if res := ir.Get(r.Data, root); res != nil {
			return res
		}
	}
	if r.Root() == "" {
		return nil
	}
	return r.Data.Values[0]
}

// Root returns the name of the decoded root element, or "" if none.
func (r *Response) Root() string {
	if r.Data == nil || len(r.Data.Fields) == 0 {
		return ""
	}
	return r.Data.Fields[0]
}
