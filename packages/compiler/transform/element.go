package transform

import (
	"strings"

	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
	"hbs-jsx/packages/compiler/util"
)

const (
	// splattributes forwards the caller's attributes onto an element.
	splattributes    = "...attributes"
	attributesTarget = "attributes"
	eventPrefix      = "on"
)

// DefaultElements is the element converter used when none is configured.
var DefaultElements ElementConverter = ElementConverterFunc(convertElement)

func convertElement(r Resolver, el *glimmer.ElementNode) (*output.JSXElement, error) {
	cfg := r.Config()

	attrs := make([]output.JSXAttributeItem, 0, len(el.Attributes)+len(el.Modifiers))
	for _, attr := range el.Attributes {
		item, err := convertAttribute(r, attr)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, item)
	}
	for _, mod := range el.Modifiers {
		item, err := convertModifier(r, mod)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, item)
	}

	var children []output.JSXChild
	if len(el.BlockParams) > 0 {
		// <Foo as |x|>...</Foo> yields a render function child: {(x) => ...}
		body, err := r.ResolveRoot(el.Children)
		if err != nil {
			return nil, err
		}
		children = []output.JSXChild{
			output.NewJSXExpressionContainer(output.NewArrowFunctionExpression(el.BlockParams, body)),
		}
	} else {
		var err error
		children, err = r.ResolveChildren(el.Children)
		if err != nil {
			return nil, err
		}
	}

	selfClosing := len(children) == 0 && (el.SelfClosing || cfg.SelfCloseEmptyElements)
	return output.NewJSXElement(elementName(el.Tag), attrs, children, selfClosing), nil
}

// elementName maps a tag to a JSX name. Named blocks written as
// <Foo::Bar> and dotted tags both become member names: Foo.Bar.
func elementName(tag string) output.JSXElementName {
	parts := strings.Split(strings.ReplaceAll(tag, "::", "."), ".")
	var name output.JSXElementName = output.NewJSXIdentifier(parts[0])
	for _, part := range parts[1:] {
		name = output.NewJSXMemberExpression(name, part)
	}
	return name
}

func convertAttribute(r Resolver, attr *glimmer.AttrNode) (output.JSXAttributeItem, error) {
	if attr.Name == splattributes {
		return output.NewJSXSpreadAttribute(output.NewIdentifier(attributesTarget)), nil
	}
	name := r.Config().RenameAttribute(attr.Name)

	switch v := attr.Value.(type) {
	case nil:
		return output.NewJSXAttribute(name, nil), nil
	case *glimmer.TextNode:
		if v.Chars == "" {
			return output.NewJSXAttribute(name, nil), nil
		}
		return output.NewJSXAttribute(name, output.NewStringLiteral(v.Chars)), nil
	case *glimmer.MustacheStatement:
		expr, err := r.ResolveStatement(v)
		if err != nil {
			return nil, err
		}
		return output.NewJSXAttribute(name, output.NewJSXExpressionContainer(expr)), nil
	case *glimmer.ConcatStatement:
		expr, err := r.ResolveConcat(v.Parts)
		if err != nil {
			return nil, err
		}
		return output.NewJSXAttribute(name, output.NewJSXExpressionContainer(expr)), nil
	default:
		return nil, newErrorWithSnapshot(ErrUnexpectedStatementKind, attr)
	}
}

// convertModifier turns {{on "click" this.save}} into onClick={this.save}.
// No other modifier has an attribute form.
func convertModifier(r Resolver, mod *glimmer.ElementModifierStatement) (output.JSXAttributeItem, error) {
	path, ok := mod.Path.(*glimmer.PathExpression)
	if !ok || path.Original != r.Config().EventModifier || len(mod.Params) != 2 {
		return nil, newErrorWithSnapshot(ErrUnsupportedModifier, mod)
	}
	event, ok := mod.Params[0].(*glimmer.StringLiteral)
	if !ok || event.Value == "" {
		return nil, newErrorWithSnapshot(ErrUnsupportedModifier, mod)
	}
	handler, err := r.ResolveExpression(mod.Params[1])
	if err != nil {
		return nil, err
	}
	return output.NewJSXAttribute(eventAttributeName(event.Value), output.NewJSXExpressionContainer(handler)), nil
}

// eventAttributeName maps a DOM event name to its JSX prop: "mouse-enter" is onMouseEnter.
func eventAttributeName(event string) string {
	return eventPrefix + util.Capitalize(util.DashCaseToCamelCase(event))
}
