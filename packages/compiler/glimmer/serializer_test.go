package glimmer_test

import (
	"testing"

	"hbs-jsx/packages/compiler/glimmer"

	"github.com/google/go-cmp/cmp"
)

func p(original string) *glimmer.PathExpression {
	return glimmer.NewPathExpressionFromOriginal(original, nil)
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name     string
		input    glimmer.Node
		expected string
	}{
		{"should print nil as nothing", nil, ""},
		{"should print text verbatim", glimmer.NewTextNode("a < b", nil), "a < b"},
		{"should print a bare mustache", glimmer.NewMustacheStatement(p("this.x"), nil, nil, false, nil), "{{this.x}}"},
		{"should print a trusting mustache", glimmer.NewMustacheStatement(p("html"), nil, nil, true, nil), "{{{html}}}"},
		{
			"should print params and hash pairs",
			glimmer.NewMustacheStatement(p("t"),
				[]glimmer.Expression{glimmer.NewStringLiteral(`say "hi"`, nil), glimmer.NewNumberLiteral(1.5, nil)},
				glimmer.NewHash([]*glimmer.HashPair{
					glimmer.NewHashPair("on", glimmer.NewBooleanLiteral(true, nil), nil),
					glimmer.NewHashPair("x", glimmer.NewUndefinedLiteral(nil), nil),
				}, nil),
				false, nil),
			`{{t "say \"hi\"" 1.5 on=true x=undefined}}`,
		},
		{
			"should print sub-expressions",
			glimmer.NewSubExpression(p("or"), []glimmer.Expression{p("a"), glimmer.NewNullLiteral(nil)}, nil, nil),
			"(or a null)",
		},
		{
			"should print a self-closing element",
			func() glimmer.Node {
				el := glimmer.NewElementNode("Input", []*glimmer.AttrNode{
					glimmer.NewAttrNode("@value", glimmer.NewMustacheStatement(p("this.v"), nil, nil, false, nil), nil),
				}, nil, nil, nil)
				el.SelfClosing = true
				return el
			}(),
			"<Input @value={{this.v}} />",
		},
		{
			"should print element block params",
			func() glimmer.Node {
				el := glimmer.NewElementNode("List", nil, nil, []glimmer.Statement{glimmer.NewTextNode("x", nil)}, nil)
				el.BlockParams = []string{"a", "b"}
				return el
			}(),
			"<List as |a b|>x</List>",
		},
		{
			"should print a block without inverse",
			glimmer.NewBlockStatement(p("if"), []glimmer.Expression{p("ok")}, nil,
				glimmer.NewBlock([]glimmer.Statement{glimmer.NewTextNode("y", nil)}, nil, false, nil), nil, nil),
			"{{#if ok}}y{{/if}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glimmer.Serialize(tt.input); got != tt.expected {
				t.Errorf("Serialize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPathExpression(t *testing.T) {
	tests := []struct {
		original string
		isThis   bool
		isData   bool
		segments []string
	}{
		{"foo", false, false, []string{"foo"}},
		{"this", true, false, []string{"this"}},
		{"this.a.b", true, false, []string{"this", "a", "b"}},
		{"@arg", false, true, []string{"arg"}},
		{"@arg.x", false, true, []string{"arg", "x"}},
		{"", false, false, nil},
	}

	for _, tt := range tests {
		t.Run("should split "+tt.original, func(t *testing.T) {
			path := p(tt.original)
			if path.IsThis() != tt.isThis {
				t.Errorf("IsThis() = %v, want %v", path.IsThis(), tt.isThis)
			}
			if path.IsData() != tt.isData {
				t.Errorf("IsData() = %v, want %v", path.IsData(), tt.isData)
			}
			if diff := cmp.Diff(tt.segments, path.Segments()); diff != "" {
				t.Errorf("Segments() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("should not alias the tail", func(t *testing.T) {
		path := glimmer.NewPathExpression("a.b", "a", []string{"b"}, nil)
		segments := path.Segments()
		segments[1] = "z"
		if path.Tail[0] != "b" {
			t.Errorf("Segments() aliased the tail: %v", path.Tail)
		}
	})
}
