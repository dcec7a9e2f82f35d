// Package lint provides static checks over a parsed schema declaration tree,
// intended to run from a build or CI step before the schema ever executes.
package lint

import (
	"fmt"

	language "github.com/fieldgate/fieldgate/internal/language"
)

// Violation identifies a field of a target type that carries none of the
// required directives.
type Violation struct {
	Type     string             `json:"type"`
	Field    string             `json:"field"`
	Position *language.Position `json:"-"`
}

// String returns the fully-qualified field identifier, "Type.field".
func (v *Violation) String() string { return v.Type + "." + v.Field }

// ValidationError aggregates violations into an error for callers that want
// a non-empty result to fail a build step.
type ValidationError []*Violation

func (e ValidationError) Error() string {
	msg := "fields missing a required directive:\n"
	for _, v := range e {
		line := "- " + v.String()
		if v.Position != nil && v.Position.Src != nil {
			line += fmt.Sprintf(" %s:%d:%d", v.Position.Src.Name, v.Position.Line, v.Position.Column)
		}
		msg += line + "\n"
	}
	return msg
}

// RequireDirectives checks that every field of every object type named in
// targetTypes carries at least one directive from required, and returns the
// violations in declaration order (definitions first, then extensions, fields
// in source order). The declaration tree is not mutated; the check is
// deterministic given the same inputs.
func RequireDirectives(doc *language.SchemaDocument, required []string, targetTypes []string) []*Violation {
	requiredSet := make(map[string]struct{}, len(required))
	for _, name := range required {
		requiredSet[name] = struct{}{}
	}
	targetSet := make(map[string]struct{}, len(targetTypes))
	for _, name := range targetTypes {
		targetSet[name] = struct{}{}
	}

	var violations []*Violation
	check := func(defs language.DefinitionList) {
		for _, def := range defs {
			if def.Kind != language.Object {
				continue
			}
			if _, ok := targetSet[def.Name]; !ok {
				continue
			}
			for _, field := range def.Fields {
				if hasAnyDirective(field.Directives, requiredSet) {
					continue
				}
				violations = append(violations, &Violation{
					Type:     def.Name,
					Field:    field.Name,
					Position: field.Position,
				})
			}
		}
	}
	check(doc.Definitions)
	check(doc.Extensions)
	return violations
}

// FieldNames renders violations as "Type.field" strings, preserving order.
func FieldNames(violations []*Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}
	return out
}

func hasAnyDirective(directives language.DirectiveList, required map[string]struct{}) bool {
	for _, d := range directives {
		if _, ok := required[d.Name]; ok {
			return true
		}
	}
	return false
}
