package transform

import (
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
)

// DefaultBlocks lowers the built-in control flow helpers:
//
//	{{#if c}}a{{else}}b{{/if}}          c ? a : b
//	{{#unless c}}a{{/unless}}           c ? null : a
//	{{#each xs as |x i|}}a{{/each}}     xs.map((x, i) => a)
//	{{#let v as |x|}}a{{/let}}          ((x) => a)(v)
//
// Any other block becomes a helper call whose trailing arguments are the
// program and inverse as arrow functions.
var DefaultBlocks BlockResolver = BlockResolverFunc(resolveBlock)

func resolveBlock(r Resolver, block *glimmer.BlockStatement) (output.Expression, error) {
	name := ""
	if p, ok := block.Path.(*glimmer.PathExpression); ok && p != nil && len(p.Tail) == 0 && !p.IsData() && !p.IsThis() {
		name = p.Head
	}

	switch name {
	case "if":
		return resolveConditional(r, block, false)
	case "unless":
		return resolveConditional(r, block, true)
	case "each":
		return resolveEach(r, block)
	case "let", "with":
		return resolveLet(r, block)
	default:
		return resolveCustomBlock(r, block)
	}
}

func resolveConditional(r Resolver, block *glimmer.BlockStatement, negate bool) (output.Expression, error) {
	if len(block.Params) != 1 {
		return nil, newErrorWithSnapshot(ErrMalformedBlock, block)
	}
	test, err := r.ResolveExpression(block.Params[0])
	if err != nil {
		return nil, err
	}
	consequent, err := resolveBranch(r, block.Program)
	if err != nil {
		return nil, err
	}
	var alternate output.Expression = output.NewNullLiteral()
	if block.Inverse != nil {
		if alternate, err = resolveBranch(r, block.Inverse); err != nil {
			return nil, err
		}
	}
	if negate {
		consequent, alternate = alternate, consequent
	}
	return output.NewConditionalExpression(test, consequent, alternate), nil
}

func resolveEach(r Resolver, block *glimmer.BlockStatement) (output.Expression, error) {
	if len(block.Params) != 1 {
		return nil, newErrorWithSnapshot(ErrMalformedBlock, block)
	}
	list, err := r.ResolveExpression(block.Params[0])
	if err != nil {
		return nil, err
	}
	body, err := resolveBranch(r, block.Program)
	if err != nil {
		return nil, err
	}
	mapped := output.NewCallExpression(
		AppendPath(list, "map"),
		[]output.Expression{output.NewArrowFunctionExpression(blockParams(block.Program), body)},
	)
	if block.Inverse == nil {
		return mapped, nil
	}
	empty, err := resolveBranch(r, block.Inverse)
	if err != nil {
		return nil, err
	}
	return output.NewConditionalExpression(AppendPath(list, "length"), mapped, empty), nil
}

func resolveLet(r Resolver, block *glimmer.BlockStatement) (output.Expression, error) {
	if len(block.Params) == 0 || block.Inverse != nil {
		return nil, newErrorWithSnapshot(ErrMalformedBlock, block)
	}
	args := make([]output.Expression, 0, len(block.Params))
	for _, param := range block.Params {
		arg, err := r.ResolveExpression(param)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	body, err := resolveBranch(r, block.Program)
	if err != nil {
		return nil, err
	}
	return output.NewCallExpression(output.NewArrowFunctionExpression(blockParams(block.Program), body), args), nil
}

func resolveCustomBlock(r Resolver, block *glimmer.BlockStatement) (output.Expression, error) {
	call, err := r.ResolveHelperCall(block)
	if err != nil {
		return nil, err
	}
	for _, branch := range []*glimmer.Block{block.Program, block.Inverse} {
		if branch == nil {
			continue
		}
		body, err := resolveBranch(r, branch)
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, output.NewArrowFunctionExpression(branch.BlockParams, body))
	}
	return call, nil
}

// resolveBranch resolves a block body. A missing body is an empty fragment.
func resolveBranch(r Resolver, b *glimmer.Block) (output.Expression, error) {
	if b == nil {
		return r.ResolveRoot(nil)
	}
	return r.ResolveRoot(b.Body)
}

func blockParams(b *glimmer.Block) []string {
	if b == nil {
		return nil
	}
	return b.BlockParams
}
