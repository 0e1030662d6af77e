package analyzers

import (
	"go/ast"
	"go/types"

	"github.com/loginsight/logusage/logging"
	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/opref"
)

// CompileTimeAttributeAnalyzer matches method declarations carrying a
// `// +logmsg:` directive, the marker-comment stand-in for a C# partial
// method decorated with the compile-time logging attribute (spec §4.4.2).
// Invocation gathering is deferred to the crosscall package (C5).
type CompileTimeAttributeAnalyzer struct{}

func (*CompileTimeAttributeAnalyzer) Name() string { return "CompileTimeAttribute" }

func (a *CompileTimeAttributeAnalyzer) Analyze(ctx *Context, op Operation) (model.Finding, bool) {
	var zero model.Finding
	decl := op.FuncDecl
	if decl == nil {
		return zero, false
	}

	directive, propDirectives, providerDirectives := parseDirectives(decl)
	if !directive.present {
		return zero, false
	}

	level, ok := logging.LevelFromName(directive.level)
	if !ok {
		return zero, false
	}

	finding := model.Finding{
		MethodType:      model.CompileTimeAttribute,
		MethodName:      decl.Name.Name,
		LogLevel:        &level,
		Location:        location(ctx.Fset, decl),
		DeclaringType:   declaringTypeName(decl),
	}

	if directive.hasEventID || directive.eventName != "" {
		idRef := model.Missing
		if directive.hasEventID {
			idRef = model.Constant(int64(directive.eventID))
		}
		nameRef := model.Missing
		if directive.eventName != "" {
			nameRef = model.Constant(directive.eventName)
		}
		eventID := model.InlineEventID(idRef, nameRef)
		finding.EventID = &eventID
	}

	propByParam := make(map[string]propertyDirective, len(propDirectives))
	for _, p := range propDirectives {
		propByParam[p.paramName] = p
	}
	providerByParam := make(map[string]tagProviderDirective, len(providerDirectives))
	for _, p := range providerDirectives {
		providerByParam[p.paramName] = p
	}

	var params []model.ParameterBinding
	var logProps []model.LogPropertiesParameter

	if decl.Type.Params != nil {
		for _, field := range decl.Type.Params.List {
			paramType := ctx.Info.TypeOf(field.Type)
			for _, nameIdent := range namesOf(field) {
				name := nameIdent.Name

				if paramType != nil && ctx.LoggingTypes.IsLoggerType(paramType) {
					continue
				}
				if isExceptionType(paramType) {
					continue
				}
				if isLevelType(paramType) {
					continue
				}

				if pd, ok := propByParam[name]; ok {
					lp := mineLogProperties(name, paramType, model.LogPropertiesConfig{
						Transitive:         pd.transitive,
						OmitReferenceName:  pd.omitReferenceName,
						SkipNullProperties: pd.skipNullProperties,
					})
					if prov, ok := providerByParam[name]; ok {
						tp := resolveTagProvider(ctx, paramType, prov.providerFunc)
						tp.ParameterName = name
						lp.TagProvider = &tp
					}
					logProps = append(logProps, lp)
					continue
				}

				params = append(params, model.ParameterBinding{
					Name:        name,
					TypeDisplay: opref.TypeDisplay(paramType),
					SourceKind:  model.RefParameter,
				})
			}
		}
	}

	if directive.template != "" {
		template := directive.template
		finding.MessageTemplate = &template
	}

	finding.MessageParameters = params
	finding.LogPropertiesParameters = logProps

	return finding, true
}

func namesOf(field *ast.Field) []*ast.Ident {
	if len(field.Names) == 0 {
		return []*ast.Ident{ast.NewIdent("_")}
	}
	return field.Names
}

func declaringTypeName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}
	expr := decl.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// isExceptionType reports whether t is Go's analogue of a C# exception
// type: anything implementing the error interface, user-derived or not.
func isExceptionType(t types.Type) bool {
	if t == nil {
		return false
	}
	errType := types.Universe.Lookup("error").Type().Underlying().(*types.Interface)
	return types.Implements(t, errType)
}

// isLevelType reports whether t is the Level enum, excluded from
// message_parameters per spec §4.4.2.
func isLevelType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	pkg := named.Obj().Pkg()
	return pkg != nil && pkg.Path() == "github.com/loginsight/logusage/logging" && named.Obj().Name() == "Level"
}

// resolveTagProvider looks up providerFunc as a package-level function in
// paramType's declaring package and validates it against the tag-provider
// rule set (spec §4.4.5). Go has no attribute payload naming a type, so
// the directive names the provider type and method together as
// "Type.Method", and a bare "Method" is resolved against paramType's own
// declaring package, with paramType standing in as the provider type.
func resolveTagProvider(ctx *Context, paramType types.Type, providerFunc string) model.TagProvider {
	named, _ := paramType.(*types.Named)
	var pkg *types.Package
	if named != nil {
		pkg = named.Obj().Pkg()
	}

	typeName, methodName := splitProviderRef(providerFunc)
	var providerType *types.Named
	if typeName == "" {
		providerType = named
	} else if pkg != nil {
		if obj := pkg.Scope().Lookup(typeName); obj != nil {
			providerType, _ = obj.Type().(*types.Named)
		}
	}

	return validateTagProvider("", paramType, providerType, methodName, ctx.LoggingTypes)
}

func splitProviderRef(ref string) (typeName, methodName string) {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '.' {
			return ref[:i], ref[i+1:]
		}
	}
	return "", ref
}
