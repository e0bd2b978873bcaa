package glimmer

import (
	"strconv"
	"strings"
)

// Serialize prints a node back to template syntax. It is used for diagnostics,
// so whitespace and stripping flags are not reproduced.
func Serialize(node Node) string {
	if node == nil {
		return ""
	}
	return node.Visit(serializer{}, nil).(string)
}

// SerializeNodes prints each statement of a body and concatenates the results.
func SerializeNodes(nodes []Statement) string {
	s := serializer{}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(s.visit(n))
	}
	return sb.String()
}

type serializer struct{}

func (s serializer) visit(node Node) string {
	if node == nil {
		return ""
	}
	return node.Visit(s, nil).(string)
}

func (s serializer) VisitTemplate(template *Template, context interface{}) interface{} {
	return SerializeNodes(template.Body)
}

func (s serializer) VisitBlock(block *Block, context interface{}) interface{} {
	return SerializeNodes(block.Body)
}

func (s serializer) VisitElementNode(element *ElementNode, context interface{}) interface{} {
	var sb strings.Builder
	sb.WriteString("<" + element.Tag)
	for _, attr := range element.Attributes {
		sb.WriteString(" " + s.visit(attr))
	}
	for _, mod := range element.Modifiers {
		sb.WriteString(" " + s.visit(mod))
	}
	if len(element.BlockParams) > 0 {
		sb.WriteString(" as |" + strings.Join(element.BlockParams, " ") + "|")
	}
	if element.SelfClosing {
		sb.WriteString(" />")
		return sb.String()
	}
	sb.WriteString(">")
	sb.WriteString(SerializeNodes(element.Children))
	sb.WriteString("</" + element.Tag + ">")
	return sb.String()
}

func (s serializer) VisitAttrNode(attr *AttrNode, context interface{}) interface{} {
	switch v := attr.Value.(type) {
	case *TextNode:
		if v.Chars == "" {
			return attr.Name
		}
		return attr.Name + "=\"" + v.Chars + "\""
	case *ConcatStatement:
		return attr.Name + "=\"" + s.visit(v) + "\""
	default:
		return attr.Name + "=" + s.visit(attr.Value)
	}
}

func (s serializer) VisitTextNode(text *TextNode, context interface{}) interface{} {
	return text.Chars
}

func (s serializer) VisitMustacheStatement(mustache *MustacheStatement, context interface{}) interface{} {
	inner := s.invocation(mustache.Path, mustache.Params, mustache.Hash)
	if mustache.Trusting {
		return "{{{" + inner + "}}}"
	}
	return "{{" + inner + "}}"
}

func (s serializer) VisitBlockStatement(block *BlockStatement, context interface{}) interface{} {
	var sb strings.Builder
	sb.WriteString("{{#" + s.invocation(block.Path, block.Params, block.Hash))
	if block.Program != nil && len(block.Program.BlockParams) > 0 {
		sb.WriteString(" as |" + strings.Join(block.Program.BlockParams, " ") + "|")
	}
	sb.WriteString("}}")
	if block.Program != nil {
		sb.WriteString(s.visit(block.Program))
	}
	if block.Inverse != nil {
		sb.WriteString("{{else}}")
		sb.WriteString(s.visit(block.Inverse))
	}
	sb.WriteString("{{/" + s.visit(block.Path) + "}}")
	return sb.String()
}

func (s serializer) VisitElementModifierStatement(modifier *ElementModifierStatement, context interface{}) interface{} {
	return "{{" + s.invocation(modifier.Path, modifier.Params, modifier.Hash) + "}}"
}

func (s serializer) VisitCommentStatement(comment *CommentStatement, context interface{}) interface{} {
	return "<!--" + comment.Value + "-->"
}

func (s serializer) VisitMustacheCommentStatement(comment *MustacheCommentStatement, context interface{}) interface{} {
	return "{{!--" + comment.Value + "--}}"
}

func (s serializer) VisitConcatStatement(concat *ConcatStatement, context interface{}) interface{} {
	var sb strings.Builder
	for _, part := range concat.Parts {
		sb.WriteString(s.visit(part))
	}
	return sb.String()
}

func (s serializer) VisitSubExpression(sexpr *SubExpression, context interface{}) interface{} {
	return "(" + s.invocation(sexpr.Path, sexpr.Params, sexpr.Hash) + ")"
}

func (s serializer) VisitPathExpression(path *PathExpression, context interface{}) interface{} {
	if path.Original != "" {
		return path.Original
	}
	return strings.Join(append([]string{path.Head}, path.Tail...), ".")
}

func (s serializer) VisitHash(hash *Hash, context interface{}) interface{} {
	pairs := make([]string, 0, len(hash.Pairs))
	for _, pair := range hash.Pairs {
		pairs = append(pairs, s.visit(pair))
	}
	return strings.Join(pairs, " ")
}

func (s serializer) VisitHashPair(pair *HashPair, context interface{}) interface{} {
	return pair.Key + "=" + s.visit(pair.Value)
}

func (s serializer) VisitBooleanLiteral(lit *BooleanLiteral, context interface{}) interface{} {
	return strconv.FormatBool(lit.Value)
}

func (s serializer) VisitNullLiteral(lit *NullLiteral, context interface{}) interface{} {
	return "null"
}

func (s serializer) VisitUndefinedLiteral(lit *UndefinedLiteral, context interface{}) interface{} {
	return "undefined"
}

func (s serializer) VisitNumberLiteral(lit *NumberLiteral, context interface{}) interface{} {
	return strconv.FormatFloat(lit.Value, 'f', -1, 64)
}

func (s serializer) VisitStringLiteral(lit *StringLiteral, context interface{}) interface{} {
	return "\"" + strings.ReplaceAll(lit.Value, "\"", "\\\"") + "\""
}

func (s serializer) invocation(path Expression, params []Expression, hash *Hash) string {
	parts := []string{s.visit(path)}
	for _, param := range params {
		parts = append(parts, s.visit(param))
	}
	if hash != nil && len(hash.Pairs) > 0 {
		parts = append(parts, s.visit(hash))
	}
	return strings.Join(parts, " ")
}
