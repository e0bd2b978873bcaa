package transform

import (
	"errors"
	"fmt"

	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/util"
)

var (
	ErrUnsupportedTopLevelConstruct = errors.New("unsupported top-level construct")
	ErrUnexpectedStatementKind      = errors.New("unexpected statement kind")
	ErrUnexpectedExpressionKind     = errors.New("unexpected expression kind")
	ErrEmptyPathSegments            = errors.New("path has no segments")
	ErrNotAPath                     = errors.New("expression is not a member path")
	ErrMaxDepthExceeded             = errors.New("maximum nesting depth exceeded")
	ErrUnsupportedModifier          = errors.New("unsupported element modifier")
	ErrMalformedBlock               = errors.New("malformed block")
)

// Error is a transform failure tied to the input node that caused it.
// It unwraps to one of the Err* sentinels above.
type Error struct {
	Err error
	// Kind is the type tag of the offending node, or "<nil>".
	Kind string
	// Snapshot is the offending node printed back to template syntax, when recorded.
	Snapshot string
	Span     *util.ParseSourceSpan
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Kind != "" {
		msg += ": " + e.Kind
	}
	if e.Snapshot != "" {
		msg += fmt.Sprintf(" %q", e.Snapshot)
	}
	if e.Span != nil && e.Span.Start != nil {
		msg += " at " + e.Span.String()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, node glimmer.Node) *Error {
	if node == nil {
		return &Error{Err: err, Kind: "<nil>"}
	}
	return &Error{Err: err, Kind: node.Kind(), Span: node.SourceSpan()}
}

func newErrorWithSnapshot(err error, node glimmer.Node) *Error {
	e := newError(err, node)
	if node != nil {
		e.Snapshot = glimmer.Serialize(node)
	}
	return e
}
