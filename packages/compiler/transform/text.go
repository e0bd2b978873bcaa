package transform

import (
	"strings"

	"hbs-jsx/packages/compiler/output"
)

const markupDelimiters = "{}"

// SplitMarkupText escapes the braces in a raw text run. Text without braces
// comes back as a single JSX text node. Otherwise every brace becomes an
// expression container holding a one-character string literal, and the runs
// between them become text nodes. Runs are kept even when empty, so "{}"
// yields five children.
func SplitMarkupText(raw string) []output.JSXChild {
	if !strings.ContainsAny(raw, markupDelimiters) {
		return []output.JSXChild{output.NewJSXText(raw)}
	}

	children := make([]output.JSXChild, 0, 2*strings.Count(raw, "{")+2*strings.Count(raw, "}")+1)
	rest := raw
	for {
		i := strings.IndexAny(rest, markupDelimiters)
		if i < 0 {
			break
		}
		children = append(children,
			output.NewJSXText(rest[:i]),
			output.NewJSXExpressionContainer(output.NewStringLiteral(rest[i:i+1])),
		)
		rest = rest[i+1:]
	}
	return append(children, output.NewJSXText(rest))
}
