package transform

import (
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
)

const (
	// hashKey is the property under which named arguments are passed to helpers.
	hashKey = "hash"
	// argsRoot holds the @arguments of a component.
	argsRoot = "args"
)

// ResolveExpression converts a literal, path reference or sub-expression.
func (r *resolver) ResolveExpression(expr glimmer.Expression) (output.Expression, error) {
	leave, err := r.descend(expr)
	if err != nil {
		return nil, err
	}
	defer leave()

	switch e := expr.(type) {
	case *glimmer.SubExpression:
		return r.ResolveHelperCall(e)
	case *glimmer.PathExpression:
		path, err := resolvePath(e)
		if err != nil {
			return nil, newErrorWithSnapshot(err, e)
		}
		return path, nil
	case *glimmer.BooleanLiteral:
		return output.NewBooleanLiteral(e.Value), nil
	case *glimmer.NullLiteral:
		return output.NewNullLiteral(), nil
	case *glimmer.NumberLiteral:
		return output.NewNumericLiteral(e.Value), nil
	case *glimmer.StringLiteral:
		return output.NewStringLiteral(e.Value), nil
	case *glimmer.UndefinedLiteral:
		// JS has no undefined literal; the global binding stands in for it.
		return output.NewIdentifier("undefined"), nil
	default:
		return nil, newErrorWithSnapshot(ErrUnexpectedExpressionKind, expr)
	}
}

// ResolveHelperCall converts an invocation into
//
//	callee(params..., { hash: { key: value, ... } })
//
// The named-arguments object is always passed, even when empty.
func (r *resolver) ResolveHelperCall(node glimmer.Node) (*output.CallExpression, error) {
	path, params, hash, ok := invocationParts(node)
	if !ok {
		return nil, newErrorWithSnapshot(ErrUnexpectedExpressionKind, node)
	}

	args := make([]output.Expression, 0, len(params)+1)
	for _, param := range params {
		arg, err := r.ResolveExpression(param)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	var pairs []*glimmer.HashPair
	if hash != nil {
		pairs = hash.Pairs
	}
	named := make([]*output.ObjectProperty, 0, len(pairs))
	for _, pair := range pairs {
		value, err := r.ResolveExpression(pair.Value)
		if err != nil {
			return nil, err
		}
		named = append(named, output.NewObjectProperty(pair.Key, value))
	}
	args = append(args, output.NewObjectExpression([]*output.ObjectProperty{
		output.NewObjectProperty(hashKey, output.NewObjectExpression(named)),
	}))

	return output.NewCallExpression(calleeOf(path), args), nil
}

// resolvePath builds the member chain for a path. Argument references
// (@name.x) are read from the args object: args.name.x.
func resolvePath(p *glimmer.PathExpression) (output.Expression, error) {
	path, err := BuildPath(p.Segments())
	if err != nil {
		return nil, err
	}
	if p.IsData() {
		return PrependPath(argsRoot, path)
	}
	return path, nil
}

// calleeOf returns the helper reference for a call. A missing or non-path
// callee becomes the identifier undefined rather than an error.
func calleeOf(path glimmer.Expression) output.Expression {
	if p, ok := path.(*glimmer.PathExpression); ok && p != nil {
		if callee, err := resolvePath(p); err == nil {
			return callee
		}
	}
	return output.NewIdentifier("undefined")
}

func invocationParts(node glimmer.Node) (glimmer.Expression, []glimmer.Expression, *glimmer.Hash, bool) {
	switch n := node.(type) {
	case *glimmer.MustacheStatement:
		return n.Path, n.Params, n.Hash, true
	case *glimmer.SubExpression:
		return n.Path, n.Params, n.Hash, true
	case *glimmer.BlockStatement:
		return n.Path, n.Params, n.Hash, true
	case *glimmer.ElementModifierStatement:
		return n.Path, n.Params, n.Hash, true
	default:
		return nil, nil, nil, false
	}
}
