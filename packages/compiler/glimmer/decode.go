package glimmer

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"hbs-jsx/packages/compiler/util"
)

var (
	ErrMalformedTree   = errors.New("malformed template tree")
	ErrUnknownNodeType = errors.New("unknown node type")
)

// Decode reads a template tree in the template parser's serialized form
// (JSON, or the equivalent YAML) and returns its root.
//
// Two document shapes are accepted:
//   - A mapping with "type": "Template" (or any single statement, which becomes the only body entry).
//   - A bare sequence of statements, interpreted as the template body.
func Decode(data []byte) (*Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode template tree: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedTree)
	}
	root := doc.Content[0]

	if root.Kind == yaml.SequenceNode {
		body, err := decodeStatements(root)
		if err != nil {
			return nil, err
		}
		return NewTemplate(body, nil, nil), nil
	}

	node, err := decodeNode(root)
	if err != nil {
		return nil, err
	}
	switch n := node.(type) {
	case *Template:
		return n, nil
	case Statement:
		return NewTemplate([]Statement{n}, nil, n.SourceSpan()), nil
	default:
		return nil, fmt.Errorf("%w: root must be a Template or a statement, got %s", ErrMalformedTree, node.Kind())
	}
}

type fields map[string]*yaml.Node

func mappingFields(n *yaml.Node) (fields, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at line %d", ErrMalformedTree, n.Line)
	}
	f := make(fields, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		f[n.Content[i].Value] = n.Content[i+1]
	}
	return f, nil
}

func (f fields) present(key string) bool {
	v, ok := f[key]
	return ok && !isNull(v)
}

func (f fields) str(key string) string {
	if !f.present(key) {
		return ""
	}
	return f[key].Value
}

func (f fields) boolean(key string) (bool, error) {
	if !f.present(key) {
		return false, nil
	}
	var b bool
	if err := f[key].Decode(&b); err != nil {
		return false, fmt.Errorf("%w: field %q: %v", ErrMalformedTree, key, err)
	}
	return b, nil
}

func (f fields) strs(key string) ([]string, error) {
	if !f.present(key) {
		return nil, nil
	}
	var out []string
	if err := f[key].Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedTree, key, err)
	}
	return out, nil
}

func (f fields) span() *util.ParseSourceSpan {
	if !f.present("loc") {
		return nil
	}
	loc, err := mappingFields(f["loc"])
	if err != nil {
		return nil
	}
	file := loc.str("source")
	if file == "" {
		file = loc.str("module")
	}
	return util.NewParseSourceSpan(position(loc, "start", file), position(loc, "end", file))
}

func position(loc fields, key, file string) *util.ParseLocation {
	if !loc.present(key) {
		return nil
	}
	pos, err := mappingFields(loc[key])
	if err != nil {
		return nil
	}
	line, _ := strconv.Atoi(pos.str("line"))
	col, _ := strconv.Atoi(pos.str("column"))
	return util.NewParseLocation(file, line, col)
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func decodeNode(n *yaml.Node) (Node, error) {
	f, err := mappingFields(n)
	if err != nil {
		return nil, err
	}
	typ := f.str("type")
	span := f.span()

	switch typ {
	case "Template":
		body, err := decodeStatements(f["body"])
		if err != nil {
			return nil, err
		}
		params, err := f.strs("blockParams")
		if err != nil {
			return nil, err
		}
		return NewTemplate(body, params, span), nil

	case "Block":
		return decodeBlockFields(f, span)

	case "ElementNode":
		return decodeElement(f, span)

	case "AttrNode":
		value, err := decodeAttrValue(f["value"])
		if err != nil {
			return nil, err
		}
		return NewAttrNode(f.str("name"), value, span), nil

	case "TextNode":
		return NewTextNode(f.str("chars"), span), nil

	case "MustacheStatement":
		path, params, hash, err := decodeInvocation(f)
		if err != nil {
			return nil, err
		}
		trusting, err := f.boolean("trusting")
		if err != nil {
			return nil, err
		}
		if f.present("escaped") && !trusting {
			escaped, err := f.boolean("escaped")
			if err != nil {
				return nil, err
			}
			trusting = !escaped
		}
		return NewMustacheStatement(path, params, hash, trusting, span), nil

	case "BlockStatement":
		path, params, hash, err := decodeInvocation(f)
		if err != nil {
			return nil, err
		}
		program, err := decodeOptionalBlock(f["program"])
		if err != nil {
			return nil, err
		}
		inverse, err := decodeOptionalBlock(f["inverse"])
		if err != nil {
			return nil, err
		}
		return NewBlockStatement(path, params, hash, program, inverse, span), nil

	case "ElementModifierStatement":
		path, params, hash, err := decodeInvocation(f)
		if err != nil {
			return nil, err
		}
		return NewElementModifierStatement(path, params, hash, span), nil

	case "CommentStatement":
		return NewCommentStatement(f.str("value"), span), nil

	case "MustacheCommentStatement":
		return NewMustacheCommentStatement(f.str("value"), span), nil

	case "ConcatStatement":
		return decodeConcat(f, span)

	case "SubExpression":
		path, params, hash, err := decodeInvocation(f)
		if err != nil {
			return nil, err
		}
		return NewSubExpression(path, params, hash, span), nil

	case "PathExpression":
		return decodePath(f, span)

	case "Hash":
		return decodeHash(f, span)

	case "HashPair":
		value, err := decodeExpression(f["value"])
		if err != nil {
			return nil, err
		}
		return NewHashPair(f.str("key"), value, span), nil

	case "BooleanLiteral":
		b, err := f.boolean("value")
		if err != nil {
			return nil, err
		}
		return NewBooleanLiteral(b, span), nil

	case "NullLiteral":
		return NewNullLiteral(span), nil

	case "UndefinedLiteral":
		return NewUndefinedLiteral(span), nil

	case "NumberLiteral":
		v, err := strconv.ParseFloat(f.str("value"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: NumberLiteral value %q", ErrMalformedTree, f.str("value"))
		}
		return NewNumberLiteral(v, span), nil

	case "StringLiteral":
		return NewStringLiteral(f.str("value"), span), nil

	case "":
		return nil, fmt.Errorf("%w: node at line %d has no type", ErrMalformedTree, n.Line)
	default:
		return nil, fmt.Errorf("%w: %q at line %d", ErrUnknownNodeType, typ, n.Line)
	}
}

func decodeStatement(n *yaml.Node) (Statement, error) {
	node, err := decodeNode(n)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(Statement)
	if !ok {
		return nil, fmt.Errorf("%w: expected a statement, got %s", ErrMalformedTree, node.Kind())
	}
	return stmt, nil
}

func decodeStatements(n *yaml.Node) ([]Statement, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a sequence of statements at line %d", ErrMalformedTree, n.Line)
	}
	out := make([]Statement, 0, len(n.Content))
	for _, item := range n.Content {
		stmt, err := decodeStatement(item)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func decodeExpression(n *yaml.Node) (Expression, error) {
	if isNull(n) {
		return nil, nil
	}
	node, err := decodeNode(n)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(Expression)
	if !ok {
		return nil, fmt.Errorf("%w: expected an expression, got %s", ErrMalformedTree, node.Kind())
	}
	return expr, nil
}

func decodeInvocation(f fields) (Expression, []Expression, *Hash, error) {
	path, err := decodeExpression(f["path"])
	if err != nil {
		return nil, nil, nil, err
	}
	var params []Expression
	if f.present("params") {
		for _, item := range f["params"].Content {
			param, err := decodeExpression(item)
			if err != nil {
				return nil, nil, nil, err
			}
			params = append(params, param)
		}
	}
	var hash *Hash
	if f.present("hash") {
		hf, err := mappingFields(f["hash"])
		if err != nil {
			return nil, nil, nil, err
		}
		hash, err = decodeHash(hf, hf.span())
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return path, params, hash, nil
}

func decodeHash(f fields, span *util.ParseSourceSpan) (*Hash, error) {
	var pairs []*HashPair
	if f.present("pairs") {
		for _, item := range f["pairs"].Content {
			pf, err := mappingFields(item)
			if err != nil {
				return nil, err
			}
			value, err := decodeExpression(pf["value"])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, NewHashPair(pf.str("key"), value, pf.span()))
		}
	}
	return NewHash(pairs, span), nil
}

func decodeOptionalBlock(n *yaml.Node) (*Block, error) {
	if isNull(n) {
		return nil, nil
	}
	f, err := mappingFields(n)
	if err != nil {
		return nil, err
	}
	return decodeBlockFields(f, f.span())
}

func decodeBlockFields(f fields, span *util.ParseSourceSpan) (*Block, error) {
	body, err := decodeStatements(f["body"])
	if err != nil {
		return nil, err
	}
	params, err := f.strs("blockParams")
	if err != nil {
		return nil, err
	}
	chained, err := f.boolean("chained")
	if err != nil {
		return nil, err
	}
	return NewBlock(body, params, chained, span), nil
}

func decodeElement(f fields, span *util.ParseSourceSpan) (*ElementNode, error) {
	var attrs []*AttrNode
	if f.present("attributes") {
		for _, item := range f["attributes"].Content {
			node, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			attr, ok := node.(*AttrNode)
			if !ok {
				return nil, fmt.Errorf("%w: expected AttrNode, got %s", ErrMalformedTree, node.Kind())
			}
			attrs = append(attrs, attr)
		}
	}
	var modifiers []*ElementModifierStatement
	if f.present("modifiers") {
		for _, item := range f["modifiers"].Content {
			node, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			mod, ok := node.(*ElementModifierStatement)
			if !ok {
				return nil, fmt.Errorf("%w: expected ElementModifierStatement, got %s", ErrMalformedTree, node.Kind())
			}
			modifiers = append(modifiers, mod)
		}
	}
	children, err := decodeStatements(f["children"])
	if err != nil {
		return nil, err
	}

	el := NewElementNode(f.str("tag"), attrs, modifiers, children, span)
	if el.SelfClosing, err = f.boolean("selfClosing"); err != nil {
		return nil, err
	}
	if el.BlockParams, err = f.strs("blockParams"); err != nil {
		return nil, err
	}
	if f.present("comments") {
		for _, item := range f["comments"].Content {
			cf, err := mappingFields(item)
			if err != nil {
				return nil, err
			}
			el.Comments = append(el.Comments, NewMustacheCommentStatement(cf.str("value"), cf.span()))
		}
	}
	return el, nil
}

func decodeAttrValue(n *yaml.Node) (AttrValue, error) {
	if isNull(n) {
		return NewTextNode("", nil), nil
	}
	node, err := decodeNode(n)
	if err != nil {
		return nil, err
	}
	value, ok := node.(AttrValue)
	if !ok {
		return nil, fmt.Errorf("%w: attribute value cannot be %s", ErrMalformedTree, node.Kind())
	}
	return value, nil
}

func decodeConcat(f fields, span *util.ParseSourceSpan) (*ConcatStatement, error) {
	var parts []ConcatPart
	if f.present("parts") {
		for _, item := range f["parts"].Content {
			node, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			part, ok := node.(ConcatPart)
			if !ok {
				return nil, fmt.Errorf("%w: concat part cannot be %s", ErrMalformedTree, node.Kind())
			}
			parts = append(parts, part)
		}
	}
	return NewConcatStatement(parts, span), nil
}

// decodePath accepts both the head/tail form and the legacy parts/this/data form.
func decodePath(f fields, span *util.ParseSourceSpan) (*PathExpression, error) {
	original := f.str("original")

	if f.present("head") {
		hf, err := mappingFields(f["head"])
		if err != nil {
			return nil, err
		}
		head := hf.str("name")
		switch hf.str("type") {
		case "ThisHead":
			head = "this"
		case "AtHead":
			if len(head) == 0 || head[0] != '@' {
				head = "@" + head
			}
		}
		tail, err := f.strs("tail")
		if err != nil {
			return nil, err
		}
		return NewPathExpression(original, head, tail, span), nil
	}

	if f.present("parts") {
		parts, err := f.strs("parts")
		if err != nil {
			return nil, err
		}
		isThis, err := f.boolean("this")
		if err != nil {
			return nil, err
		}
		isData, err := f.boolean("data")
		if err != nil {
			return nil, err
		}
		switch {
		case isThis:
			return NewPathExpression(original, "this", parts, span), nil
		case isData && len(parts) > 0:
			return NewPathExpression(original, "@"+parts[0], parts[1:], span), nil
		case len(parts) > 0:
			return NewPathExpression(original, parts[0], parts[1:], span), nil
		default:
			return NewPathExpression(original, "", nil, span), nil
		}
	}

	return NewPathExpressionFromOriginal(original, span), nil
}
