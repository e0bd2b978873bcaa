// Package transform converts a template AST into a JS/JSX output AST.
//
// The core resolves statements into value expressions or markup children,
// expressions into literals, member chains and helper calls, and raw text
// into JSX text with braces escaped. Element, fragment, block and comment
// conversion are delegated to collaborators that call back into the core
// through the Resolver interface; defaults for all four are provided.
//
// A Transformer is immutable and safe for concurrent use. Each call to
// Transform (or Resolver) works on private state, and input nodes are never
// mutated.
package transform

import (
	"hbs-jsx/packages/compiler/config"
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
)

// Resolver is the view of the core handed to collaborators.
type Resolver interface {
	// ResolveStatement converts a statement into a value expression.
	ResolveStatement(node glimmer.Statement) (output.Expression, error)
	// ResolveChild converts a statement into one or more markup children.
	ResolveChild(node glimmer.Statement) ([]output.JSXChild, error)
	// ResolveChildren resolves and flattens a list of statements into markup children.
	ResolveChildren(nodes []glimmer.Statement) ([]output.JSXChild, error)
	// ResolveRoot resolves a statement list into a single expression.
	ResolveRoot(nodes []glimmer.Statement) (output.Expression, error)
	// ResolveConcat folds parts into a left-associative string concatenation.
	ResolveConcat(parts []glimmer.ConcatPart) (output.Expression, error)
	// ResolveExpression converts a literal, path or sub-expression.
	ResolveExpression(expr glimmer.Expression) (output.Expression, error)
	// ResolveHelperCall converts a mustache, sub-expression, block or modifier invocation into a call.
	ResolveHelperCall(node glimmer.Node) (*output.CallExpression, error)
	// Config returns the active configuration.
	Config() *config.TransformConfig
}

// ElementConverter turns an element into a JSX element
type ElementConverter interface {
	ConvertElement(r Resolver, el *glimmer.ElementNode) (*output.JSXElement, error)
}

// FragmentConstructor wraps sibling children when there is no single root
type FragmentConstructor interface {
	ConstructFragment(r Resolver, children []output.JSXChild) (output.Expression, error)
}

// BlockResolver turns a block statement into an expression
type BlockResolver interface {
	ResolveBlock(r Resolver, block *glimmer.BlockStatement) (output.Expression, error)
}

// CommentConverter turns a CommentStatement or MustacheCommentStatement into a markup child
type CommentConverter interface {
	ConvertComment(r Resolver, comment glimmer.Statement) (output.JSXChild, error)
}

// ElementConverterFunc adapts a function to ElementConverter
type ElementConverterFunc func(r Resolver, el *glimmer.ElementNode) (*output.JSXElement, error)

// ConvertElement implements ElementConverter
func (f ElementConverterFunc) ConvertElement(r Resolver, el *glimmer.ElementNode) (*output.JSXElement, error) {
	return f(r, el)
}

// FragmentConstructorFunc adapts a function to FragmentConstructor
type FragmentConstructorFunc func(r Resolver, children []output.JSXChild) (output.Expression, error)

// ConstructFragment implements FragmentConstructor
func (f FragmentConstructorFunc) ConstructFragment(r Resolver, children []output.JSXChild) (output.Expression, error) {
	return f(r, children)
}

// BlockResolverFunc adapts a function to BlockResolver
type BlockResolverFunc func(r Resolver, block *glimmer.BlockStatement) (output.Expression, error)

// ResolveBlock implements BlockResolver
func (f BlockResolverFunc) ResolveBlock(r Resolver, block *glimmer.BlockStatement) (output.Expression, error) {
	return f(r, block)
}

// CommentConverterFunc adapts a function to CommentConverter
type CommentConverterFunc func(r Resolver, comment glimmer.Statement) (output.JSXChild, error)

// ConvertComment implements CommentConverter
func (f CommentConverterFunc) ConvertComment(r Resolver, comment glimmer.Statement) (output.JSXChild, error) {
	return f(r, comment)
}

// Transformer holds the configuration and collaborators for a transform
type Transformer struct {
	config    *config.TransformConfig
	elements  ElementConverter
	fragments FragmentConstructor
	blocks    BlockResolver
	comments  CommentConverter
}

// Option is a function that modifies a Transformer
type Option func(*Transformer)

// WithElementConverter replaces the element converter
func WithElementConverter(c ElementConverter) Option {
	return func(t *Transformer) {
		t.elements = c
	}
}

// WithFragmentConstructor replaces the fragment constructor
func WithFragmentConstructor(c FragmentConstructor) Option {
	return func(t *Transformer) {
		t.fragments = c
	}
}

// WithBlockResolver replaces the block resolver
func WithBlockResolver(b BlockResolver) Option {
	return func(t *Transformer) {
		t.blocks = b
	}
}

// WithCommentConverter replaces the comment converter
func WithCommentConverter(c CommentConverter) Option {
	return func(t *Transformer) {
		t.comments = c
	}
}

// New creates a Transformer. A nil cfg uses config.NewTransformConfig().
func New(cfg *config.TransformConfig, opts ...Option) *Transformer {
	if cfg == nil {
		cfg = config.NewTransformConfig()
	}
	t := &Transformer{
		config:    cfg,
		elements:  DefaultElements,
		fragments: DefaultFragments,
		blocks:    DefaultBlocks,
		comments:  DefaultComments,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform resolves a whole template into one expression: the single root
// statement's value, or a fragment of the flattened children.
func (t *Transformer) Transform(template *glimmer.Template) (output.Expression, error) {
	if template == nil {
		return nil, newError(ErrUnexpectedStatementKind, nil)
	}
	return t.Resolver().ResolveRoot(template.Body)
}

// Resolver returns a fresh resolver bound to this Transformer.
// A resolver is not safe for concurrent use; create one per goroutine.
func (t *Transformer) Resolver() Resolver {
	return &resolver{t: t}
}

type resolver struct {
	t     *Transformer
	depth int
}

func (r *resolver) Config() *config.TransformConfig {
	return r.t.config
}

// descend tracks recursion depth. The returned func must be called on the way out.
func (r *resolver) descend(node glimmer.Node) (func(), error) {
	if limit := r.t.config.MaxDepth; limit > 0 && r.depth >= limit {
		return nil, newError(ErrMaxDepthExceeded, node)
	}
	r.depth++
	return r.ascend, nil
}

func (r *resolver) ascend() {
	r.depth--
}
