package util

import "fmt"

// ParseLocation represents a position in a template source.
// Lines are 1-based and columns 0-based, matching the template parser.
type ParseLocation struct {
	File string
	Line int
	Col  int
}

// NewParseLocation creates a new ParseLocation
func NewParseLocation(file string, line, col int) *ParseLocation {
	return &ParseLocation{
		File: file,
		Line: line,
		Col:  col,
	}
}

// String returns a string representation of the location
func (p *ParseLocation) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s@%d:%d", p.File, p.Line, p.Col)
}

// ParseSourceSpan represents a span of template source
type ParseSourceSpan struct {
	Start *ParseLocation
	End   *ParseLocation
}

// NewParseSourceSpan creates a new ParseSourceSpan
func NewParseSourceSpan(start, end *ParseLocation) *ParseSourceSpan {
	return &ParseSourceSpan{
		Start: start,
		End:   end,
	}
}

// String returns the start location of the span, or "unknown" for a nil span.
func (p *ParseSourceSpan) String() string {
	if p == nil || p.Start == nil {
		return "unknown"
	}
	return p.Start.String()
}
