package transform_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"hbs-jsx/packages/compiler/config"
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/transform"
)

func attr(name string, value glimmer.AttrValue) *glimmer.AttrNode {
	return glimmer.NewAttrNode(name, value, nil)
}

func on(event string, handler glimmer.Expression) *glimmer.ElementModifierStatement {
	return glimmer.NewElementModifierStatement(path("on"), []glimmer.Expression{str(event), handler}, nil, nil)
}

func TestDefaultElements(t *testing.T) {
	tests := []struct {
		name     string
		input    *glimmer.ElementNode
		expected string
	}{
		{
			name:     "should self-close an empty element",
			input:    element("input"),
			expected: "<input />",
		},
		{
			name: "should rename class and for",
			input: glimmer.NewElementNode("label", []*glimmer.AttrNode{
				attr("class", text("field")),
				attr("for", text("name")),
			}, nil, nil, nil),
			expected: `<label className="field" htmlFor="name" />`,
		},
		{
			name: "should print valueless attributes bare",
			input: glimmer.NewElementNode("input", []*glimmer.AttrNode{
				attr("disabled", text("")),
			}, nil, nil, nil),
			expected: "<input disabled />",
		},
		{
			name: "should bind mustache attributes",
			input: glimmer.NewElementNode("img", []*glimmer.AttrNode{
				attr("src", mustache(path("@url"))),
			}, nil, nil, nil),
			expected: "<img src={args.url} />",
		},
		{
			name: "should concatenate interpolated attributes",
			input: glimmer.NewElementNode("div", []*glimmer.AttrNode{
				attr("class", glimmer.NewConcatStatement([]glimmer.ConcatPart{text("btn "), mustache(path("this.kind"))}, nil)),
			}, nil, nil, nil),
			expected: "<div className={'btn ' + this.kind} />",
		},
		{
			name: "should spread splattributes",
			input: glimmer.NewElementNode("div", []*glimmer.AttrNode{
				attr("...attributes", text("")),
			}, nil, nil, nil),
			expected: "<div {...attributes} />",
		},
		{
			name: "should turn on modifiers into event props",
			input: glimmer.NewElementNode("button", nil, []*glimmer.ElementModifierStatement{
				on("click", path("this.save")),
				on("mouse-enter", path("@hover")),
			}, []glimmer.Statement{text("Save")}, nil),
			expected: "<button onClick={this.save} onMouseEnter={args.hover}>Save</button>",
		},
		{
			name: "should capitalize a non-ASCII event name by rune",
			input: glimmer.NewElementNode("div", nil, []*glimmer.ElementModifierStatement{
				on("éclat", path("h")),
			}, nil, nil),
			expected: "<div onÉclat={h} />",
		},
		{
			name:     "should use member names for dotted and named-block tags",
			input:    element("ui.Card", element("Card::Header", text("t"))),
			expected: "<ui.Card><Card.Header>t</Card.Header></ui.Card>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newResolver().ResolveStatement(tt.input)
			got := mustEmit(t, result, err)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("emitted invalid UTF-8: %q", got)
			}
		})
	}

	t.Run("should render block params as a render function", func(t *testing.T) {
		el := element("List", mustache(path("item.name")))
		el.BlockParams = []string{"item"}
		result, err := newResolver().ResolveStatement(el)
		if got := mustEmit(t, result, err); got != "<List>{(item) => item.name}</List>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("should keep empty elements open when self-closing is disabled", func(t *testing.T) {
		r := transform.New(config.NewTransformConfig(config.WithSelfCloseEmptyElements(false))).Resolver()
		result, err := r.ResolveStatement(element("div"))
		if got := mustEmit(t, result, err); got != "<div></div>" {
			t.Errorf("got %q", got)
		}

		written := element("div")
		written.SelfClosing = true
		result, err = r.ResolveStatement(written)
		if got := mustEmit(t, result, err); got != "<div />" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("should apply configured renames", func(t *testing.T) {
		cfg := config.NewTransformConfig(config.WithAttributeRenames(map[string]string{"tabindex": "tabIndex"}))
		el := glimmer.NewElementNode("a", []*glimmer.AttrNode{attr("tabindex", text("0")), attr("class", text("x"))}, nil, nil, nil)
		result, err := transform.New(cfg).Resolver().ResolveStatement(el)
		if got := mustEmit(t, result, err); got != `<a tabIndex="0" class="x" />` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("should reject unknown modifiers", func(t *testing.T) {
		el := glimmer.NewElementNode("div", nil, []*glimmer.ElementModifierStatement{
			glimmer.NewElementModifierStatement(path("did-insert"), []glimmer.Expression{path("this.setup")}, nil, nil),
		}, nil, nil)
		_, err := newResolver().ResolveStatement(el)
		if !errors.Is(err, transform.ErrUnsupportedModifier) {
			t.Fatalf("expected ErrUnsupportedModifier, got %v", err)
		}
		var terr *transform.Error
		if errors.As(err, &terr) && terr.Snapshot != "{{did-insert this.setup}}" {
			t.Errorf("Snapshot = %q", terr.Snapshot)
		}
	})

	t.Run("should reject on modifiers without a literal event name", func(t *testing.T) {
		el := glimmer.NewElementNode("div", nil, []*glimmer.ElementModifierStatement{
			glimmer.NewElementModifierStatement(path("on"), []glimmer.Expression{path("evt"), path("h")}, nil, nil),
		}, nil, nil)
		_, err := newResolver().ResolveStatement(el)
		if !errors.Is(err, transform.ErrUnsupportedModifier) {
			t.Errorf("expected ErrUnsupportedModifier, got %v", err)
		}
	})
}

func TestDefaultBlocks(t *testing.T) {
	cond := []glimmer.Expression{path("this.ready")}

	tests := []struct {
		name     string
		input    *glimmer.BlockStatement
		expected string
	}{
		{
			name:     "should lower if with an else branch",
			input:    block("if", cond, body(nil, element("p")), body(nil, text("wait"))),
			expected: "this.ready ? <p /> : 'wait'",
		},
		{
			name:     "should lower unless by swapping branches",
			input:    block("unless", cond, body(nil, text("wait")), nil),
			expected: "this.ready ? null : 'wait'",
		},
		{
			name: "should lower else-if chains into nested conditionals",
			input: block("if", cond, body(nil, text("a")), glimmer.NewBlock([]glimmer.Statement{
				block("if", []glimmer.Expression{path("b")}, body(nil, text("b")), body(nil, text("c"))),
			}, nil, true, nil)),
			expected: "this.ready ? 'a' : b ? 'b' : 'c'",
		},
		{
			name:     "should map each over its list",
			input:    block("each", []glimmer.Expression{path("@items")}, body([]string{"item", "i"}, element("li", mustache(path("item")))), nil),
			expected: "args.items.map((item, i) => <li>{item}</li>)",
		},
		{
			name:     "should fall back to the else branch of an empty each",
			input:    block("each", []glimmer.Expression{path("xs")}, body([]string{"x"}, mustache(path("x"))), body(nil, text("none"))),
			expected: "xs.length ? xs.map((x) => x) : 'none'",
		},
		{
			name:     "should bind let params through an immediate call",
			input:    block("let", []glimmer.Expression{mustacheArg(), num(1)}, body([]string{"full", "n"}, mustache(path("full"))), nil),
			expected: "((full, n) => full)(concat(a, b, { hash: {} }), 1)",
		},
		{
			name:     "should call custom block helpers with branch callbacks",
			input:    block("my-list", []glimmer.Expression{path("xs")}, body([]string{"x"}, text("y")), body(nil, text("n"))),
			expected: "my-list(xs, { hash: {} }, (x) => 'y', () => 'n')",
		},
		{
			name:     "should resolve a missing program to an empty fragment",
			input:    block("if", cond, nil, nil),
			expected: "this.ready ? <></> : null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newResolver().ResolveStatement(tt.input)
			if got := mustEmit(t, result, err); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}

	t.Run("should reject conditionals without exactly one param", func(t *testing.T) {
		for _, name := range []string{"if", "unless", "each"} {
			_, err := newResolver().ResolveStatement(block(name, nil, body(nil), nil))
			if !errors.Is(err, transform.ErrMalformedBlock) {
				t.Errorf("%s: expected ErrMalformedBlock, got %v", name, err)
			}
		}
	})

	t.Run("should reject let with an else branch", func(t *testing.T) {
		_, err := newResolver().ResolveStatement(block("let", []glimmer.Expression{num(1)}, body(nil), body(nil)))
		if !errors.Is(err, transform.ErrMalformedBlock) {
			t.Errorf("expected ErrMalformedBlock, got %v", err)
		}
	})
}

func mustacheArg() glimmer.Expression {
	return glimmer.NewSubExpression(path("concat"), []glimmer.Expression{path("a"), path("b")}, nil, nil)
}
