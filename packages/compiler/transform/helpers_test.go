package transform_test

import (
	"testing"

	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
	"hbs-jsx/packages/compiler/transform"
)

func path(original string) *glimmer.PathExpression {
	return glimmer.NewPathExpressionFromOriginal(original, nil)
}

func text(chars string) *glimmer.TextNode {
	return glimmer.NewTextNode(chars, nil)
}

func str(value string) *glimmer.StringLiteral {
	return glimmer.NewStringLiteral(value, nil)
}

func num(value float64) *glimmer.NumberLiteral {
	return glimmer.NewNumberLiteral(value, nil)
}

func mustache(p glimmer.Expression, params ...glimmer.Expression) *glimmer.MustacheStatement {
	return glimmer.NewMustacheStatement(p, params, nil, false, nil)
}

func hash(kv ...interface{}) *glimmer.Hash {
	pairs := make([]*glimmer.HashPair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, glimmer.NewHashPair(kv[i].(string), kv[i+1].(glimmer.Expression), nil))
	}
	return glimmer.NewHash(pairs, nil)
}

func element(tag string, children ...glimmer.Statement) *glimmer.ElementNode {
	return glimmer.NewElementNode(tag, nil, nil, children, nil)
}

func block(p string, params []glimmer.Expression, program, inverse *glimmer.Block) *glimmer.BlockStatement {
	return glimmer.NewBlockStatement(path(p), params, nil, program, inverse, nil)
}

func body(blockParams []string, stmts ...glimmer.Statement) *glimmer.Block {
	return glimmer.NewBlock(stmts, blockParams, false, nil)
}

func stmts(nodes ...glimmer.Statement) []glimmer.Statement {
	return nodes
}

func newResolver() transform.Resolver {
	return transform.New(nil).Resolver()
}

// emitAll renders each child and joins them the way JSX would print them.
func emitAll(children []output.JSXChild) string {
	out := ""
	for _, c := range children {
		out += output.Emit(c)
	}
	return out
}

func mustEmit(t *testing.T, expr output.Expression, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return output.Emit(expr)
}
