package ir

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName = errors.New("invalid name")
	ErrParse       = errors.New("parse error")
)

// NameError reports an element or attribute name which fails the XML name
// grammar. Parent is the enclosing element, empty for the document root.
type NameError struct {
	Name   string
	Parent string
	Attr   bool
}

func (e *NameError) Error() string {
	kind := "tag"
	if e.Attr {
		kind = "attribute"
	}
	if e.Parent == "" {
		return fmt.Sprintf("%s: illegal character in %s name %q", ErrInvalidName, kind, e.Name)
	}
	return fmt.Sprintf("%s: illegal character in %s name %q in node %q", ErrInvalidName, kind, e.Name, e.Parent)
}

func (e *NameError) Unwrap() error { return ErrInvalidName }

// ParseError wraps the diagnostic of the underlying XML tokenizer.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", ErrParse, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
