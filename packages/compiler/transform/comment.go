package transform

import (
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
)

// DefaultComments keeps comments as empty JSX expressions: {/* text */}.
var DefaultComments CommentConverter = CommentConverterFunc(convertComment)

func convertComment(_ Resolver, comment glimmer.Statement) (output.JSXChild, error) {
	var value string
	switch c := comment.(type) {
	case *glimmer.CommentStatement:
		value = c.Value
	case *glimmer.MustacheCommentStatement:
		value = c.Value
	default:
		return nil, newError(ErrUnexpectedStatementKind, comment)
	}
	return output.NewJSXExpressionContainer(output.NewJSXEmptyExpression(value)), nil
}
