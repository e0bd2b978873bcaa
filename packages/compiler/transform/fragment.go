package transform

import "hbs-jsx/packages/compiler/output"

// DefaultFragments wraps siblings in <>...</>.
var DefaultFragments FragmentConstructor = FragmentConstructorFunc(
	func(_ Resolver, children []output.JSXChild) (output.Expression, error) {
		return output.NewJSXFragment(children), nil
	},
)
