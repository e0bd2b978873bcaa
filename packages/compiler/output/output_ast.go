package output

// Node is the base interface for all output nodes
type Node interface {
	Visit(visitor Visitor, context interface{}) interface{}
}

// Expression represents a JS expression in the output AST
type Expression interface {
	Node
	expressionNode()
}

// JSXChild represents a node that may appear among the children of a JSX element or fragment
type JSXChild interface {
	Node
	jsxChild()
}

// JSXAttributeItem is a JSXAttribute or a JSXSpreadAttribute
type JSXAttributeItem interface {
	Node
	jsxAttributeItem()
}

// JSXAttributeValue is the value of a JSXAttribute: a string literal or an expression container
type JSXAttributeValue interface {
	Node
	jsxAttributeValue()
}

// JSXElementName is a JSXIdentifier or a JSXMemberExpression
type JSXElementName interface {
	Node
	jsxElementName()
}

// Identifier represents a variable reference
type Identifier struct {
	Name string
}

// NewIdentifier creates a new Identifier
func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

func (*Identifier) expressionNode() {}

// Visit implements the Node interface
func (i *Identifier) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitIdentifier(i, context)
}

// StringLiteral represents a string literal
type StringLiteral struct {
	Value string
}

// NewStringLiteral creates a new StringLiteral
func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

func (*StringLiteral) expressionNode()    {}
func (*StringLiteral) jsxAttributeValue() {}

// Visit implements the Node interface
func (s *StringLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitStringLiteral(s, context)
}

// NumericLiteral represents a number literal
type NumericLiteral struct {
	Value float64
}

// NewNumericLiteral creates a new NumericLiteral
func NewNumericLiteral(value float64) *NumericLiteral {
	return &NumericLiteral{Value: value}
}

func (*NumericLiteral) expressionNode() {}

// Visit implements the Node interface
func (n *NumericLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitNumericLiteral(n, context)
}

// BooleanLiteral represents true or false
type BooleanLiteral struct {
	Value bool
}

// NewBooleanLiteral creates a new BooleanLiteral
func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{Value: value}
}

func (*BooleanLiteral) expressionNode() {}

// Visit implements the Node interface
func (b *BooleanLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitBooleanLiteral(b, context)
}

// NullLiteral represents null
type NullLiteral struct{}

// NewNullLiteral creates a new NullLiteral
func NewNullLiteral() *NullLiteral {
	return &NullLiteral{}
}

func (*NullLiteral) expressionNode() {}

// Visit implements the Node interface
func (n *NullLiteral) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitNullLiteral(n, context)
}

// MemberExpression represents a property read: Object.Property
type MemberExpression struct {
	Object   Expression
	Property string
}

// NewMemberExpression creates a new MemberExpression
func NewMemberExpression(object Expression, property string) *MemberExpression {
	return &MemberExpression{Object: object, Property: property}
}

func (*MemberExpression) expressionNode() {}

// Visit implements the Node interface
func (m *MemberExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitMemberExpression(m, context)
}

// CallExpression represents a function call
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

// NewCallExpression creates a new CallExpression
func NewCallExpression(callee Expression, args []Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

func (*CallExpression) expressionNode() {}

// Visit implements the Node interface
func (c *CallExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitCallExpression(c, context)
}

// ObjectProperty is a single key/value entry of an object literal.
// Key is a literal string, never a computed expression.
type ObjectProperty struct {
	Key   string
	Value Expression
}

// NewObjectProperty creates a new ObjectProperty
func NewObjectProperty(key string, value Expression) *ObjectProperty {
	return &ObjectProperty{Key: key, Value: value}
}

// Visit implements the Node interface
func (o *ObjectProperty) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitObjectProperty(o, context)
}

// ObjectExpression represents an object literal
type ObjectExpression struct {
	Properties []*ObjectProperty
}

// NewObjectExpression creates a new ObjectExpression
func NewObjectExpression(properties []*ObjectProperty) *ObjectExpression {
	return &ObjectExpression{Properties: properties}
}

func (*ObjectExpression) expressionNode() {}

// Visit implements the Node interface
func (o *ObjectExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitObjectExpression(o, context)
}

// BinaryOperator represents binary operators
type BinaryOperator int

const (
	BinaryOperatorPlus BinaryOperator = iota
	BinaryOperatorAnd
	BinaryOperatorOr
)

// BinaryExpression represents Left Operator Right
type BinaryExpression struct {
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

// NewBinaryExpression creates a new BinaryExpression
func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Operator: operator, Left: left, Right: right}
}

func (*BinaryExpression) expressionNode() {}

// Visit implements the Node interface
func (b *BinaryExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitBinaryExpression(b, context)
}

// ConditionalExpression represents Test ? Consequent : Alternate
type ConditionalExpression struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

// NewConditionalExpression creates a new ConditionalExpression
func NewConditionalExpression(test, consequent, alternate Expression) *ConditionalExpression {
	return &ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

func (*ConditionalExpression) expressionNode() {}

// Visit implements the Node interface
func (c *ConditionalExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitConditionalExpression(c, context)
}

// ArrowFunctionExpression represents (params...) => Body
type ArrowFunctionExpression struct {
	Params []string
	Body   Expression
}

// NewArrowFunctionExpression creates a new ArrowFunctionExpression
func NewArrowFunctionExpression(params []string, body Expression) *ArrowFunctionExpression {
	return &ArrowFunctionExpression{Params: params, Body: body}
}

func (*ArrowFunctionExpression) expressionNode() {}

// Visit implements the Node interface
func (a *ArrowFunctionExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitArrowFunctionExpression(a, context)
}

// JSXElement represents <Name attrs...>children</Name>
type JSXElement struct {
	Name        JSXElementName
	Attributes  []JSXAttributeItem
	Children    []JSXChild
	SelfClosing bool
}

// NewJSXElement creates a new JSXElement
func NewJSXElement(name JSXElementName, attributes []JSXAttributeItem, children []JSXChild, selfClosing bool) *JSXElement {
	return &JSXElement{Name: name, Attributes: attributes, Children: children, SelfClosing: selfClosing}
}

func (*JSXElement) expressionNode() {}
func (*JSXElement) jsxChild()       {}

// Visit implements the Node interface
func (j *JSXElement) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXElement(j, context)
}

// JSXFragment represents <>children</>
type JSXFragment struct {
	Children []JSXChild
}

// NewJSXFragment creates a new JSXFragment
func NewJSXFragment(children []JSXChild) *JSXFragment {
	return &JSXFragment{Children: children}
}

func (*JSXFragment) expressionNode() {}
func (*JSXFragment) jsxChild()       {}

// Visit implements the Node interface
func (j *JSXFragment) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXFragment(j, context)
}

// JSXText represents literal markup text
type JSXText struct {
	Value string
}

// NewJSXText creates a new JSXText
func NewJSXText(value string) *JSXText {
	return &JSXText{Value: value}
}

func (*JSXText) jsxChild() {}

// Visit implements the Node interface
func (j *JSXText) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXText(j, context)
}

// JSXExpressionContainer embeds an expression in markup: {Expression}
type JSXExpressionContainer struct {
	Expression Expression
}

// NewJSXExpressionContainer creates a new JSXExpressionContainer
func NewJSXExpressionContainer(expr Expression) *JSXExpressionContainer {
	return &JSXExpressionContainer{Expression: expr}
}

func (*JSXExpressionContainer) jsxChild()          {}
func (*JSXExpressionContainer) jsxAttributeValue() {}

// Visit implements the Node interface
func (j *JSXExpressionContainer) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXExpressionContainer(j, context)
}

// JSXEmptyExpression is the empty content of {} or {/* comment */}.
// It is only valid directly inside a JSXExpressionContainer.
type JSXEmptyExpression struct {
	Comment string
}

// NewJSXEmptyExpression creates a new JSXEmptyExpression
func NewJSXEmptyExpression(comment string) *JSXEmptyExpression {
	return &JSXEmptyExpression{Comment: comment}
}

func (*JSXEmptyExpression) expressionNode() {}

// Visit implements the Node interface
func (j *JSXEmptyExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXEmptyExpression(j, context)
}

// JSXAttribute represents name="value", name={expr} or a bare name
type JSXAttribute struct {
	Name string
	// Value is nil for a bare attribute.
	Value JSXAttributeValue
}

// NewJSXAttribute creates a new JSXAttribute
func NewJSXAttribute(name string, value JSXAttributeValue) *JSXAttribute {
	return &JSXAttribute{Name: name, Value: value}
}

func (*JSXAttribute) jsxAttributeItem() {}

// Visit implements the Node interface
func (j *JSXAttribute) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXAttribute(j, context)
}

// JSXSpreadAttribute represents {...Argument}
type JSXSpreadAttribute struct {
	Argument Expression
}

// NewJSXSpreadAttribute creates a new JSXSpreadAttribute
func NewJSXSpreadAttribute(argument Expression) *JSXSpreadAttribute {
	return &JSXSpreadAttribute{Argument: argument}
}

func (*JSXSpreadAttribute) jsxAttributeItem() {}

// Visit implements the Node interface
func (j *JSXSpreadAttribute) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXSpreadAttribute(j, context)
}

// JSXIdentifier is a plain tag name
type JSXIdentifier struct {
	Name string
}

// NewJSXIdentifier creates a new JSXIdentifier
func NewJSXIdentifier(name string) *JSXIdentifier {
	return &JSXIdentifier{Name: name}
}

func (*JSXIdentifier) jsxElementName() {}

// Visit implements the Node interface
func (j *JSXIdentifier) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXIdentifier(j, context)
}

// JSXMemberExpression is a dotted tag name such as Foo.Bar
type JSXMemberExpression struct {
	Object   JSXElementName
	Property string
}

// NewJSXMemberExpression creates a new JSXMemberExpression
func NewJSXMemberExpression(object JSXElementName, property string) *JSXMemberExpression {
	return &JSXMemberExpression{Object: object, Property: property}
}

func (*JSXMemberExpression) jsxElementName() {}

// Visit implements the Node interface
func (j *JSXMemberExpression) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitJSXMemberExpression(j, context)
}

// Visitor is the interface for visiting output nodes
type Visitor interface {
	VisitIdentifier(ast *Identifier, context interface{}) interface{}
	VisitStringLiteral(ast *StringLiteral, context interface{}) interface{}
	VisitNumericLiteral(ast *NumericLiteral, context interface{}) interface{}
	VisitBooleanLiteral(ast *BooleanLiteral, context interface{}) interface{}
	VisitNullLiteral(ast *NullLiteral, context interface{}) interface{}
	VisitMemberExpression(ast *MemberExpression, context interface{}) interface{}
	VisitCallExpression(ast *CallExpression, context interface{}) interface{}
	VisitObjectExpression(ast *ObjectExpression, context interface{}) interface{}
	VisitObjectProperty(ast *ObjectProperty, context interface{}) interface{}
	VisitBinaryExpression(ast *BinaryExpression, context interface{}) interface{}
	VisitConditionalExpression(ast *ConditionalExpression, context interface{}) interface{}
	VisitArrowFunctionExpression(ast *ArrowFunctionExpression, context interface{}) interface{}
	VisitJSXElement(ast *JSXElement, context interface{}) interface{}
	VisitJSXFragment(ast *JSXFragment, context interface{}) interface{}
	VisitJSXText(ast *JSXText, context interface{}) interface{}
	VisitJSXExpressionContainer(ast *JSXExpressionContainer, context interface{}) interface{}
	VisitJSXEmptyExpression(ast *JSXEmptyExpression, context interface{}) interface{}
	VisitJSXAttribute(ast *JSXAttribute, context interface{}) interface{}
	VisitJSXSpreadAttribute(ast *JSXSpreadAttribute, context interface{}) interface{}
	VisitJSXIdentifier(ast *JSXIdentifier, context interface{}) interface{}
	VisitJSXMemberExpression(ast *JSXMemberExpression, context interface{}) interface{}
}
