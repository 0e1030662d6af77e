package opref

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

// exprText renders expr back to source text for the Expression-kind
// ConstantOrReference variants, where the extractor keeps the call site's
// own wording rather than trying to further interpret it.
func exprText(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), expr); err != nil {
		return ""
	}
	return buf.String()
}
