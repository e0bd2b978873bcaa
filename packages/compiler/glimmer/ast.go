package glimmer

import (
	"strings"

	"hbs-jsx/packages/compiler/util"
)

// Node represents a node in the template AST
type Node interface {
	// Kind returns the parser's type tag for the node, e.g. "ElementNode".
	Kind() string
	SourceSpan() *util.ParseSourceSpan
	Visit(visitor Visitor, context interface{}) interface{}
}

// Statement is a node that may appear in a template body or element children.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that may appear as a mustache path, param or hash value.
type Expression interface {
	Node
	expressionNode()
}

// ConcatPart is a statement allowed inside a ConcatStatement.
type ConcatPart interface {
	Statement
	concatPart()
}

// AttrValue is the value of an AttrNode: text, mustache or concat.
type AttrValue interface {
	Node
	attrValue()
}

type nodeBase struct {
	sourceSpan *util.ParseSourceSpan
}

// SourceSpan returns the source span, which may be nil
func (n *nodeBase) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}

// Template is the root of a parsed template
type Template struct {
	nodeBase
	Body        []Statement
	BlockParams []string
}

// NewTemplate creates a new Template
func NewTemplate(body []Statement, blockParams []string, sourceSpan *util.ParseSourceSpan) *Template {
	return &Template{nodeBase: nodeBase{sourceSpan}, Body: body, BlockParams: blockParams}
}

func (*Template) Kind() string { return "Template" }

// Visit implements the Node interface
func (t *Template) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitTemplate(t, context)
}

// Block is the body of a block statement: the program or the inverse.
type Block struct {
	nodeBase
	Body        []Statement
	BlockParams []string
	// Chained is set on an inverse produced by `{{else if ...}}`.
	Chained bool
}

// NewBlock creates a new Block
func NewBlock(body []Statement, blockParams []string, chained bool, sourceSpan *util.ParseSourceSpan) *Block {
	return &Block{nodeBase: nodeBase{sourceSpan}, Body: body, BlockParams: blockParams, Chained: chained}
}

func (*Block) Kind() string { return "Block" }

// Visit implements the Node interface
func (b *Block) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitBlock(b, context)
}

// ElementNode represents an element such as <div> or <MyComponent>
type ElementNode struct {
	nodeBase
	Tag         string
	SelfClosing bool
	Attributes  []*AttrNode
	BlockParams []string
	Modifiers   []*ElementModifierStatement
	Comments    []*MustacheCommentStatement
	Children    []Statement
}

// NewElementNode creates a new ElementNode
func NewElementNode(tag string, attributes []*AttrNode, modifiers []*ElementModifierStatement, children []Statement, sourceSpan *util.ParseSourceSpan) *ElementNode {
	return &ElementNode{
		nodeBase:   nodeBase{sourceSpan},
		Tag:        tag,
		Attributes: attributes,
		Modifiers:  modifiers,
		Children:   children,
	}
}

func (*ElementNode) Kind() string   { return "ElementNode" }
func (*ElementNode) statementNode() {}

// Visit implements the Node interface
func (e *ElementNode) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitElementNode(e, context)
}

// AttrNode represents an element attribute
type AttrNode struct {
	nodeBase
	Name  string
	Value AttrValue
}

// NewAttrNode creates a new AttrNode
func NewAttrNode(name string, value AttrValue, sourceSpan *util.ParseSourceSpan) *AttrNode {
	return &AttrNode{nodeBase: nodeBase{sourceSpan}, Name: name, Value: value}
}

func (*AttrNode) Kind() string { return "AttrNode" }

// Visit implements the Node interface
func (a *AttrNode) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitAttrNode(a, context)
}

// TextNode represents raw template text
type TextNode struct {
	nodeBase
	Chars string
}

// NewTextNode creates a new TextNode
func NewTextNode(chars string, sourceSpan *util.ParseSourceSpan) *TextNode {
	return &TextNode{nodeBase: nodeBase{sourceSpan}, Chars: chars}
}

func (*TextNode) Kind() string   { return "TextNode" }
func (*TextNode) statementNode() {}
func (*TextNode) concatPart()    {}
func (*TextNode) attrValue()     {}

// Visit implements the Node interface
func (t *TextNode) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitTextNode(t, context)
}

// MustacheStatement represents {{path params... key=value}}
type MustacheStatement struct {
	nodeBase
	Path   Expression
	Params []Expression
	Hash   *Hash
	// Trusting is set for triple-stash {{{...}}}.
	Trusting bool
}

// NewMustacheStatement creates a new MustacheStatement
func NewMustacheStatement(path Expression, params []Expression, hash *Hash, trusting bool, sourceSpan *util.ParseSourceSpan) *MustacheStatement {
	return &MustacheStatement{
		nodeBase: nodeBase{sourceSpan},
		Path:     path,
		Params:   params,
		Hash:     orEmptyHash(hash),
		Trusting: trusting,
	}
}

func (*MustacheStatement) Kind() string   { return "MustacheStatement" }
func (*MustacheStatement) statementNode() {}
func (*MustacheStatement) concatPart()    {}
func (*MustacheStatement) attrValue()     {}

// Visit implements the Node interface
func (m *MustacheStatement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitMustacheStatement(m, context)
}

// BlockStatement represents {{#path params...}}program{{else}}inverse{{/path}}
type BlockStatement struct {
	nodeBase
	Path    Expression
	Params  []Expression
	Hash    *Hash
	Program *Block
	Inverse *Block
}

// NewBlockStatement creates a new BlockStatement
func NewBlockStatement(path Expression, params []Expression, hash *Hash, program, inverse *Block, sourceSpan *util.ParseSourceSpan) *BlockStatement {
	return &BlockStatement{
		nodeBase: nodeBase{sourceSpan},
		Path:     path,
		Params:   params,
		Hash:     orEmptyHash(hash),
		Program:  program,
		Inverse:  inverse,
	}
}

func (*BlockStatement) Kind() string   { return "BlockStatement" }
func (*BlockStatement) statementNode() {}

// Visit implements the Node interface
func (b *BlockStatement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitBlockStatement(b, context)
}

// ElementModifierStatement represents {{modifier ...}} inside an element's start tag
type ElementModifierStatement struct {
	nodeBase
	Path   Expression
	Params []Expression
	Hash   *Hash
}

// NewElementModifierStatement creates a new ElementModifierStatement
func NewElementModifierStatement(path Expression, params []Expression, hash *Hash, sourceSpan *util.ParseSourceSpan) *ElementModifierStatement {
	return &ElementModifierStatement{
		nodeBase: nodeBase{sourceSpan},
		Path:     path,
		Params:   params,
		Hash:     orEmptyHash(hash),
	}
}

func (*ElementModifierStatement) Kind() string   { return "ElementModifierStatement" }
func (*ElementModifierStatement) statementNode() {}

// Visit implements the Node interface
func (e *ElementModifierStatement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitElementModifierStatement(e, context)
}

// CommentStatement represents an HTML comment <!-- ... -->
type CommentStatement struct {
	nodeBase
	Value string
}

// NewCommentStatement creates a new CommentStatement
func NewCommentStatement(value string, sourceSpan *util.ParseSourceSpan) *CommentStatement {
	return &CommentStatement{nodeBase: nodeBase{sourceSpan}, Value: value}
}

func (*CommentStatement) Kind() string   { return "CommentStatement" }
func (*CommentStatement) statementNode() {}

// Visit implements the Node interface
func (c *CommentStatement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitCommentStatement(c, context)
}

// MustacheCommentStatement represents {{! ... }} or {{!-- ... --}}
type MustacheCommentStatement struct {
	nodeBase
	Value string
}

// NewMustacheCommentStatement creates a new MustacheCommentStatement
func NewMustacheCommentStatement(value string, sourceSpan *util.ParseSourceSpan) *MustacheCommentStatement {
	return &MustacheCommentStatement{nodeBase: nodeBase{sourceSpan}, Value: value}
}

func (*MustacheCommentStatement) Kind() string   { return "MustacheCommentStatement" }
func (*MustacheCommentStatement) statementNode() {}

// Visit implements the Node interface
func (m *MustacheCommentStatement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitMustacheCommentStatement(m, context)
}

// ConcatStatement represents an interpolated attribute value such as class="a {{b}}"
type ConcatStatement struct {
	nodeBase
	Parts []ConcatPart
}

// NewConcatStatement creates a new ConcatStatement
func NewConcatStatement(parts []ConcatPart, sourceSpan *util.ParseSourceSpan) *ConcatStatement {
	return &ConcatStatement{nodeBase: nodeBase{sourceSpan}, Parts: parts}
}

func (*ConcatStatement) Kind() string   { return "ConcatStatement" }
func (*ConcatStatement) statementNode() {}
func (*ConcatStatement) attrValue()     {}

// Visit implements the Node interface
func (c *ConcatStatement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitConcatStatement(c, context)
}

// SubExpression represents a nested helper invocation (helper params... key=value)
type SubExpression struct {
	nodeBase
	Path   Expression
	Params []Expression
	Hash   *Hash
}

// NewSubExpression creates a new SubExpression
func NewSubExpression(path Expression, params []Expression, hash *Hash, sourceSpan *util.ParseSourceSpan) *SubExpression {
	return &SubExpression{
		nodeBase: nodeBase{sourceSpan},
		Path:     path,
		Params:   params,
		Hash:     orEmptyHash(hash),
	}
}

func (*SubExpression) Kind() string    { return "SubExpression" }
func (*SubExpression) expressionNode() {}

// Visit implements the Node interface
func (s *SubExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitSubExpression(s, context)
}

// PathExpression represents a dotted reference such as this.user.name or @model.title
type PathExpression struct {
	nodeBase
	Original string
	// Head is the first segment as written: "this", "@name" or a plain name.
	Head string
	Tail []string
}

// NewPathExpression creates a new PathExpression
func NewPathExpression(original, head string, tail []string, sourceSpan *util.ParseSourceSpan) *PathExpression {
	return &PathExpression{nodeBase: nodeBase{sourceSpan}, Original: original, Head: head, Tail: tail}
}

// NewPathExpressionFromOriginal splits original on "." into head and tail.
// An empty original yields a path with no segments.
func NewPathExpressionFromOriginal(original string, sourceSpan *util.ParseSourceSpan) *PathExpression {
	p := &PathExpression{nodeBase: nodeBase{sourceSpan}, Original: original}
	if original == "" {
		return p
	}
	parts := strings.Split(original, ".")
	p.Head = parts[0]
	p.Tail = parts[1:]
	return p
}

func (*PathExpression) Kind() string    { return "PathExpression" }
func (*PathExpression) expressionNode() {}

// Visit implements the Node interface
func (p *PathExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitPathExpression(p, context)
}

// IsThis reports whether the path is rooted at `this`.
func (p *PathExpression) IsThis() bool {
	return p.Head == "this"
}

// IsData reports whether the path is an @argument reference.
func (p *PathExpression) IsData() bool {
	return len(p.Head) > 0 && p.Head[0] == '@'
}

// Segments returns the ordered name segments of the path. The "@" of an
// argument head is dropped; IsData still reports it.
func (p *PathExpression) Segments() []string {
	if p.Head == "" {
		return nil
	}
	head := p.Head
	if p.IsData() {
		head = head[1:]
	}
	return append([]string{head}, p.Tail...)
}

// Hash holds the named arguments of an invocation
type Hash struct {
	nodeBase
	Pairs []*HashPair
}

// NewHash creates a new Hash
func NewHash(pairs []*HashPair, sourceSpan *util.ParseSourceSpan) *Hash {
	return &Hash{nodeBase: nodeBase{sourceSpan}, Pairs: pairs}
}

func (*Hash) Kind() string { return "Hash" }

// Visit implements the Node interface
func (h *Hash) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitHash(h, context)
}

// HashPair is a single key=value named argument
type HashPair struct {
	nodeBase
	Key   string
	Value Expression
}

// NewHashPair creates a new HashPair
func NewHashPair(key string, value Expression, sourceSpan *util.ParseSourceSpan) *HashPair {
	return &HashPair{nodeBase: nodeBase{sourceSpan}, Key: key, Value: value}
}

func (*HashPair) Kind() string { return "HashPair" }

// Visit implements the Node interface
func (h *HashPair) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitHashPair(h, context)
}

// BooleanLiteral represents true or false
type BooleanLiteral struct {
	nodeBase
	Value bool
}

// NewBooleanLiteral creates a new BooleanLiteral
func NewBooleanLiteral(value bool, sourceSpan *util.ParseSourceSpan) *BooleanLiteral {
	return &BooleanLiteral{nodeBase: nodeBase{sourceSpan}, Value: value}
}

func (*BooleanLiteral) Kind() string    { return "BooleanLiteral" }
func (*BooleanLiteral) expressionNode() {}

// Visit implements the Node interface
func (b *BooleanLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitBooleanLiteral(b, context)
}

// NullLiteral represents null
type NullLiteral struct {
	nodeBase
}

// NewNullLiteral creates a new NullLiteral
func NewNullLiteral(sourceSpan *util.ParseSourceSpan) *NullLiteral {
	return &NullLiteral{nodeBase: nodeBase{sourceSpan}}
}

func (*NullLiteral) Kind() string    { return "NullLiteral" }
func (*NullLiteral) expressionNode() {}

// Visit implements the Node interface
func (n *NullLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitNullLiteral(n, context)
}

// UndefinedLiteral represents undefined
type UndefinedLiteral struct {
	nodeBase
}

// NewUndefinedLiteral creates a new UndefinedLiteral
func NewUndefinedLiteral(sourceSpan *util.ParseSourceSpan) *UndefinedLiteral {
	return &UndefinedLiteral{nodeBase: nodeBase{sourceSpan}}
}

func (*UndefinedLiteral) Kind() string    { return "UndefinedLiteral" }
func (*UndefinedLiteral) expressionNode() {}

// Visit implements the Node interface
func (u *UndefinedLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitUndefinedLiteral(u, context)
}

// NumberLiteral represents a numeric literal
type NumberLiteral struct {
	nodeBase
	Value float64
}

// NewNumberLiteral creates a new NumberLiteral
func NewNumberLiteral(value float64, sourceSpan *util.ParseSourceSpan) *NumberLiteral {
	return &NumberLiteral{nodeBase: nodeBase{sourceSpan}, Value: value}
}

func (*NumberLiteral) Kind() string    { return "NumberLiteral" }
func (*NumberLiteral) expressionNode() {}

// Visit implements the Node interface
func (n *NumberLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitNumberLiteral(n, context)
}

// StringLiteral represents a quoted string literal
type StringLiteral struct {
	nodeBase
	Value string
}

// NewStringLiteral creates a new StringLiteral
func NewStringLiteral(value string, sourceSpan *util.ParseSourceSpan) *StringLiteral {
	return &StringLiteral{nodeBase: nodeBase{sourceSpan}, Value: value}
}

func (*StringLiteral) Kind() string    { return "StringLiteral" }
func (*StringLiteral) expressionNode() {}

// Visit implements the Node interface
func (s *StringLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitStringLiteral(s, context)
}

// Visitor is the interface for visiting template nodes
type Visitor interface {
	VisitTemplate(template *Template, context interface{}) interface{}
	VisitBlock(block *Block, context interface{}) interface{}
	VisitElementNode(element *ElementNode, context interface{}) interface{}
	VisitAttrNode(attr *AttrNode, context interface{}) interface{}
	VisitTextNode(text *TextNode, context interface{}) interface{}
	VisitMustacheStatement(mustache *MustacheStatement, context interface{}) interface{}
	VisitBlockStatement(block *BlockStatement, context interface{}) interface{}
	VisitElementModifierStatement(modifier *ElementModifierStatement, context interface{}) interface{}
	VisitCommentStatement(comment *CommentStatement, context interface{}) interface{}
	VisitMustacheCommentStatement(comment *MustacheCommentStatement, context interface{}) interface{}
	VisitConcatStatement(concat *ConcatStatement, context interface{}) interface{}
	VisitSubExpression(sexpr *SubExpression, context interface{}) interface{}
	VisitPathExpression(path *PathExpression, context interface{}) interface{}
	VisitHash(hash *Hash, context interface{}) interface{}
	VisitHashPair(pair *HashPair, context interface{}) interface{}
	VisitBooleanLiteral(lit *BooleanLiteral, context interface{}) interface{}
	VisitNullLiteral(lit *NullLiteral, context interface{}) interface{}
	VisitUndefinedLiteral(lit *UndefinedLiteral, context interface{}) interface{}
	VisitNumberLiteral(lit *NumberLiteral, context interface{}) interface{}
	VisitStringLiteral(lit *StringLiteral, context interface{}) interface{}
}

func orEmptyHash(hash *Hash) *Hash {
	if hash == nil {
		return NewHash(nil, nil)
	}
	return hash
}
