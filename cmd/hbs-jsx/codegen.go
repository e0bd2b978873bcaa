package main

import (
	"fmt"
	"strings"

	"hbs-jsx/packages/compiler/output"
	"hbs-jsx/packages/compiler/util"
)

// GenerateModule wraps a transformed template in an ES module whose default
// export is a function component taking the template's @arguments.
func GenerateModule(name, source string, body output.Expression) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Compiled by %s\n", appName)
	fmt.Fprintf(&b, "// Component: %s\n", name)
	fmt.Fprintf(&b, "// Template: %s\n\n", source)
	fmt.Fprintf(&b, "export default function %s(args) {\n", name)
	fmt.Fprintf(&b, "  return %s;\n", output.Emit(body))
	b.WriteString("}\n")
	return b.String()
}

// componentName maps a file base name such as "user-card" or "user_card" to UserCard.
func componentName(base string) string {
	camel := util.DashCaseToCamelCase(strings.ToLower(strings.NewReplacer("_", "-", ".", "-", " ", "-").Replace(base)))
	if camel == "" {
		return "Template"
	}
	if c := camel[0]; c >= '0' && c <= '9' {
		camel = "T" + camel
	}
	return util.Capitalize(camel)
}
