package analyzers

import (
	"go/ast"
	"strconv"
	"strings"

	"github.com/loginsight/logusage/logging"
)

// compileTimeDirective is the parsed form of a `// +logmsg: ...` doc
// comment, the marker that promotes a plain method declaration to a
// CompileTimeAttribute finding (the Go stand-in for a C# attribute on a
// partial method, since Go has no attribute syntax).
type compileTimeDirective struct {
	present    bool
	level      string
	eventID    int
	hasEventID bool
	eventName  string
	template   string
}

// propertyDirective is the parsed form of a `// +logprop: <param> ...`
// line, attached to one parameter name.
type propertyDirective struct {
	paramName          string
	transitive         bool
	omitReferenceName  bool
	skipNullProperties bool
}

// tagProviderDirective is the parsed form of a `// +logtagprovider:
// <param>=<Func>` line.
type tagProviderDirective struct {
	paramName    string
	providerFunc string
}

// parseDirectives scans decl's doc comment for the three directive kinds
// this module recognizes, returning the single compile-time directive (if
// any) plus every property and tag-provider directive found.
func parseDirectives(decl *ast.FuncDecl) (compileTimeDirective, []propertyDirective, []tagProviderDirective) {
	var ct compileTimeDirective
	var props []propertyDirective
	var providers []tagProviderDirective

	if decl.Doc == nil {
		return ct, props, providers
	}

	for _, line := range decl.Doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(line.Text, "//"))

		switch {
		case strings.HasPrefix(text, logging.DirectiveLogMessage):
			ct = parseCompileTimeDirective(text)

		case strings.HasPrefix(text, logging.DirectiveLogProperties):
			if p, ok := parsePropertyDirective(text); ok {
				props = append(props, p)
			}

		case strings.HasPrefix(text, logging.DirectiveLogTagProvider):
			if p, ok := parseTagProviderDirective(text); ok {
				providers = append(providers, p)
			}
		}
	}

	return ct, props, providers
}

func parseCompileTimeDirective(text string) compileTimeDirective {
	rest := strings.TrimSpace(strings.TrimPrefix(text, logging.DirectiveLogMessage))
	d := compileTimeDirective{present: true}

	for _, field := range splitArgs(rest) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "level":
			d.level = value
		case "eventId":
			if n, err := strconv.Atoi(value); err == nil {
				d.eventID = n
				d.hasEventID = true
			}
		case "eventName":
			d.eventName = value
		case "template":
			d.template = strings.Trim(value, `"`)
		}
	}
	return d
}

func parsePropertyDirective(text string) (propertyDirective, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, logging.DirectiveLogProperties))
	name, opts, _ := strings.Cut(rest, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return propertyDirective{}, false
	}

	p := propertyDirective{paramName: name}
	for _, opt := range splitArgs(opts) {
		switch strings.TrimSpace(opt) {
		case "transitive":
			p.transitive = true
		case "omitref":
			p.omitReferenceName = true
		case "skipnull":
			p.skipNullProperties = true
		}
	}
	return p, true
}

func parseTagProviderDirective(text string) (tagProviderDirective, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, logging.DirectiveLogTagProvider))
	name, fn, ok := strings.Cut(rest, "=")
	if !ok {
		return tagProviderDirective{}, false
	}
	name, fn = strings.TrimSpace(name), strings.TrimSpace(fn)
	if name == "" || fn == "" {
		return tagProviderDirective{}, false
	}
	return tagProviderDirective{paramName: name, providerFunc: fn}, true
}

func splitArgs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
