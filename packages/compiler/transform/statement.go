package transform

import (
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
)

// ResolveStatement converts a statement into a value expression, as used at
// the template root and in attribute values.
func (r *resolver) ResolveStatement(node glimmer.Statement) (output.Expression, error) {
	leave, err := r.descend(node)
	if err != nil {
		return nil, err
	}
	defer leave()

	switch n := node.(type) {
	case *glimmer.ElementNode:
		return r.t.elements.ConvertElement(r, n)
	case *glimmer.TextNode:
		return output.NewStringLiteral(n.Chars), nil
	case *glimmer.MustacheStatement:
		if len(n.Params) == 0 {
			return r.ResolveExpression(n.Path)
		}
		return r.ResolveHelperCall(n)
	case *glimmer.BlockStatement:
		return r.t.blocks.ResolveBlock(r, n)
	case *glimmer.CommentStatement, *glimmer.MustacheCommentStatement:
		// Comments have no value form; they are only accepted as markup children.
		return nil, newError(ErrUnsupportedTopLevelConstruct, n)
	default:
		return nil, newError(ErrUnexpectedStatementKind, node)
	}
}

// ResolveChild converts a statement into markup children. Text may expand
// into several children; every other statement yields exactly one.
// Statements wrapped in a container are counted once, by ResolveStatement.
func (r *resolver) ResolveChild(node glimmer.Statement) ([]output.JSXChild, error) {
	switch n := node.(type) {
	case *glimmer.ElementNode:
		leave, err := r.descend(n)
		if err != nil {
			return nil, err
		}
		defer leave()
		el, err := r.t.elements.ConvertElement(r, n)
		if err != nil {
			return nil, err
		}
		return []output.JSXChild{el}, nil
	case *glimmer.TextNode:
		leave, err := r.descend(n)
		if err != nil {
			return nil, err
		}
		defer leave()
		return SplitMarkupText(n.Chars), nil
	case *glimmer.CommentStatement, *glimmer.MustacheCommentStatement:
		leave, err := r.descend(n)
		if err != nil {
			return nil, err
		}
		defer leave()
		child, err := r.t.comments.ConvertComment(r, n)
		if err != nil {
			return nil, err
		}
		return []output.JSXChild{child}, nil
	default:
		expr, err := r.ResolveStatement(node)
		if err != nil {
			return nil, err
		}
		return []output.JSXChild{output.NewJSXExpressionContainer(expr)}, nil
	}
}

// ResolveChildren resolves each node and flattens the results in order.
func (r *resolver) ResolveChildren(nodes []glimmer.Statement) ([]output.JSXChild, error) {
	children := make([]output.JSXChild, 0, len(nodes))
	for _, node := range nodes {
		resolved, err := r.ResolveChild(node)
		if err != nil {
			return nil, err
		}
		children = append(children, resolved...)
	}
	return children, nil
}

// ResolveRoot resolves a single statement directly, and anything else into
// a fragment of the flattened children.
func (r *resolver) ResolveRoot(nodes []glimmer.Statement) (output.Expression, error) {
	if len(nodes) == 1 {
		return r.ResolveStatement(nodes[0])
	}
	children, err := r.ResolveChildren(nodes)
	if err != nil {
		return nil, err
	}
	return r.t.fragments.ConstructFragment(r, children)
}

// ResolveConcat folds parts left to right into ((a + b) + c). An empty list
// yields the empty string.
func (r *resolver) ResolveConcat(parts []glimmer.ConcatPart) (output.Expression, error) {
	if len(parts) == 0 {
		return output.NewStringLiteral(""), nil
	}
	acc, err := r.ResolveStatement(parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		next, err := r.ResolveStatement(part)
		if err != nil {
			return nil, err
		}
		acc = output.NewBinaryExpression(output.BinaryOperatorPlus, acc, next)
	}
	return acc, nil
}
