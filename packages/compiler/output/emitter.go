package output

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	singleQuoteEscapeStringRe = regexp.MustCompile(`'|\\|\n|\r|\$`)
	legalIdentifierRe         = regexp.MustCompile(`(?i)^[$A-Z_][0-9A-Z_$]*$`)
)

// jsxTextEscaper rewrites the tag delimiters JSX does not accept in raw text.
var jsxTextEscaper = strings.NewReplacer("<", "{'<'}", ">", "{'>'}")

var binaryOperators = map[BinaryOperator]string{
	BinaryOperatorPlus: "+",
	BinaryOperatorAnd:  "&&",
	BinaryOperatorOr:   "||",
}

// Operator precedence, higher binds tighter.
const (
	precLowest      = 0
	precArrow       = 2
	precConditional = 3
	precOr          = 4
	precAnd         = 5
	precAdditive    = 12
	precMember      = 18
)

var binaryPrecedence = map[BinaryOperator]int{
	BinaryOperatorPlus: precAdditive,
	BinaryOperatorAnd:  precAnd,
	BinaryOperatorOr:   precOr,
}

// Emit renders an output node as single-line JS/JSX source.
// Layout is not a concern of the transform; this exists for tools and tests.
// JSX text is printed with < and > wrapped as {'<'} and {'>'}.
func Emit(node Node) string {
	if node == nil {
		return ""
	}
	return node.Visit(emitter{}, nil).(emitted).text
}

// EscapeIdentifier quotes and escapes input as a single-quoted JS string when
// alwaysQuote is set or when input is not a legal identifier.
func EscapeIdentifier(input string, escapeDollar bool, alwaysQuote bool) string {
	if input == "" {
		if alwaysQuote {
			return "''"
		}
		return ""
	}

	body := singleQuoteEscapeStringRe.ReplaceAllStringFunc(input, func(match string) string {
		switch match {
		case "$":
			if escapeDollar {
				return "\\$"
			}
			return "$"
		case "\n":
			return "\\n"
		case "\r":
			return "\\r"
		default:
			return "\\" + match
		}
	})

	if alwaysQuote || !legalIdentifierRe.MatchString(body) {
		return "'" + body + "'"
	}
	return body
}

type emitted struct {
	text string
	prec int
}

type emitter struct{}

func (e emitter) emit(node Node, minPrec int) string {
	out := node.Visit(e, nil).(emitted)
	if out.prec < minPrec {
		return "(" + out.text + ")"
	}
	return out.text
}

func primary(text string) emitted {
	return emitted{text: text, prec: precMember}
}

func (e emitter) VisitIdentifier(ast *Identifier, context interface{}) interface{} {
	return primary(ast.Name)
}

func (e emitter) VisitStringLiteral(ast *StringLiteral, context interface{}) interface{} {
	return primary(EscapeIdentifier(ast.Value, false, true))
}

func (e emitter) VisitNumericLiteral(ast *NumericLiteral, context interface{}) interface{} {
	return primary(strconv.FormatFloat(ast.Value, 'f', -1, 64))
}

func (e emitter) VisitBooleanLiteral(ast *BooleanLiteral, context interface{}) interface{} {
	return primary(strconv.FormatBool(ast.Value))
}

func (e emitter) VisitNullLiteral(ast *NullLiteral, context interface{}) interface{} {
	return primary("null")
}

func (e emitter) VisitMemberExpression(ast *MemberExpression, context interface{}) interface{} {
	object := e.emit(ast.Object, precMember)
	if legalIdentifierRe.MatchString(ast.Property) {
		return primary(object + "." + ast.Property)
	}
	return primary(object + "[" + EscapeIdentifier(ast.Property, false, true) + "]")
}

func (e emitter) VisitCallExpression(ast *CallExpression, context interface{}) interface{} {
	args := make([]string, len(ast.Arguments))
	for i, arg := range ast.Arguments {
		args[i] = e.emit(arg, precArrow)
	}
	return primary(e.emit(ast.Callee, precMember) + "(" + strings.Join(args, ", ") + ")")
}

func (e emitter) VisitObjectExpression(ast *ObjectExpression, context interface{}) interface{} {
	if len(ast.Properties) == 0 {
		return primary("{}")
	}
	props := make([]string, len(ast.Properties))
	for i, prop := range ast.Properties {
		props[i] = prop.Visit(e, context).(emitted).text
	}
	return primary("{ " + strings.Join(props, ", ") + " }")
}

func (e emitter) VisitObjectProperty(ast *ObjectProperty, context interface{}) interface{} {
	return emitted{text: EscapeIdentifier(ast.Key, false, false) + ": " + e.emit(ast.Value, precArrow)}
}

func (e emitter) VisitBinaryExpression(ast *BinaryExpression, context interface{}) interface{} {
	prec := binaryPrecedence[ast.Operator]
	text := e.emit(ast.Left, prec) + " " + binaryOperators[ast.Operator] + " " + e.emit(ast.Right, prec+1)
	return emitted{text: text, prec: prec}
}

func (e emitter) VisitConditionalExpression(ast *ConditionalExpression, context interface{}) interface{} {
	text := e.emit(ast.Test, precOr) + " ? " + e.emit(ast.Consequent, precArrow) + " : " + e.emit(ast.Alternate, precArrow)
	return emitted{text: text, prec: precConditional}
}

func (e emitter) VisitArrowFunctionExpression(ast *ArrowFunctionExpression, context interface{}) interface{} {
	body := e.emit(ast.Body, precArrow)
	if _, ok := ast.Body.(*ObjectExpression); ok {
		body = "(" + body + ")"
	}
	return emitted{text: "(" + strings.Join(ast.Params, ", ") + ") => " + body, prec: precArrow}
}

func (e emitter) VisitJSXElement(ast *JSXElement, context interface{}) interface{} {
	var sb strings.Builder
	name := e.emit(ast.Name, precLowest)
	sb.WriteString("<" + name)
	for _, attr := range ast.Attributes {
		sb.WriteString(" " + e.emit(attr, precLowest))
	}
	if ast.SelfClosing && len(ast.Children) == 0 {
		sb.WriteString(" />")
		return primary(sb.String())
	}
	sb.WriteString(">")
	sb.WriteString(e.children(ast.Children))
	sb.WriteString("</" + name + ">")
	return primary(sb.String())
}

func (e emitter) VisitJSXFragment(ast *JSXFragment, context interface{}) interface{} {
	return primary("<>" + e.children(ast.Children) + "</>")
}

func (e emitter) VisitJSXText(ast *JSXText, context interface{}) interface{} {
	return primary(jsxTextEscaper.Replace(ast.Value))
}

func (e emitter) VisitJSXExpressionContainer(ast *JSXExpressionContainer, context interface{}) interface{} {
	return primary("{" + e.emit(ast.Expression, precLowest) + "}")
}

func (e emitter) VisitJSXEmptyExpression(ast *JSXEmptyExpression, context interface{}) interface{} {
	if ast.Comment == "" {
		return primary("")
	}
	return primary("/*" + strings.ReplaceAll(ast.Comment, "*/", "* /") + "*/")
}

func (e emitter) VisitJSXAttribute(ast *JSXAttribute, context interface{}) interface{} {
	switch v := ast.Value.(type) {
	case nil:
		return primary(ast.Name)
	case *StringLiteral:
		switch {
		case !strings.Contains(v.Value, `"`):
			return primary(ast.Name + `="` + v.Value + `"`)
		case !strings.Contains(v.Value, `'`):
			return primary(ast.Name + `='` + v.Value + `'`)
		default:
			return primary(ast.Name + "={" + e.emit(v, precLowest) + "}")
		}
	default:
		return primary(ast.Name + "=" + e.emit(ast.Value, precLowest))
	}
}

func (e emitter) VisitJSXSpreadAttribute(ast *JSXSpreadAttribute, context interface{}) interface{} {
	return primary("{..." + e.emit(ast.Argument, precArrow) + "}")
}

func (e emitter) VisitJSXIdentifier(ast *JSXIdentifier, context interface{}) interface{} {
	return primary(ast.Name)
}

func (e emitter) VisitJSXMemberExpression(ast *JSXMemberExpression, context interface{}) interface{} {
	return primary(e.emit(ast.Object, precLowest) + "." + ast.Property)
}

func (e emitter) children(children []JSXChild) string {
	var sb strings.Builder
	for _, child := range children {
		sb.WriteString(e.emit(child, precLowest))
	}
	return sb.String()
}
