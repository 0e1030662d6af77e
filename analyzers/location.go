package analyzers

import (
	"go/ast"
	"go/token"

	"github.com/loginsight/logusage/model"
)

// location converts node's span in fset into a 1-based SourceLocation.
func location(fset *token.FileSet, node ast.Node) model.SourceLocation {
	start := fset.Position(node.Pos())
	end := fset.Position(node.End())
	return model.SourceLocation{
		FilePath:    start.Filename,
		StartLine:   start.Line,
		EndLine:     end.Line,
		StartColumn: start.Column,
		EndColumn:   end.Column,
	}
}
