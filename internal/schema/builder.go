package schema

import (
	"fmt"

	language "github.com/fieldgate/fieldgate/internal/language"
)

// BuildFromDocument builds an executable GraphQL schema from a parsed schema
// declaration tree. Field directive annotations are carried over verbatim and
// in source order so they stay addressable at execution time.
func BuildFromDocument(doc *language.SchemaDocument) (*Schema, error) {
	s := NewSchema(schemaDescription(doc))
	// Builtins
	s.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	s.AddDirective(includeDirective).
		AddDirective(skipDirective).
		AddDirective(deprecatedDirective)

	for _, def := range doc.Definitions {
		t, err := buildType(def)
		if err != nil {
			return nil, err
		}
		if _, exists := s.Types[t.Name]; exists && isBuiltinType(t.Name) {
			// User redeclaration of a builtin scalar keeps the builtin.
			continue
		}
		s.AddType(t)
	}

	for _, ext := range doc.Extensions {
		base, ok := s.Types[ext.Name]
		if !ok {
			return nil, fmt.Errorf("cannot extend unknown type %q", ext.Name)
		}
		if err := mergeExtension(base, ext); err != nil {
			return nil, err
		}
	}

	for _, dd := range doc.Directives {
		if _, exists := s.Directives[dd.Name]; exists {
			continue
		}
		s.AddDirective(buildDirectiveDefinition(dd))
	}

	applyRootTypes(s, doc)
	return s, nil
}

// BuildFromSDL parses SDL and returns the corresponding Schema.
func BuildFromSDL(sdl string) (*Schema, error) {
	doc, err := language.ParseSchema("sdl", sdl)
	if err != nil {
		return nil, err
	}
	return BuildFromDocument(doc)
}

func schemaDescription(doc *language.SchemaDocument) string {
	for _, sd := range doc.Schema {
		if sd.Description != "" {
			return sd.Description
		}
	}
	return ""
}

// applyRootTypes resolves root operation types from schema definition blocks,
// falling back to the conventional names.
func applyRootTypes(s *Schema, doc *language.SchemaDocument) {
	if t, ok := s.Types["Query"]; ok && t.Kind == TypeKindObject {
		s.SetQueryType("Query")
	}
	if t, ok := s.Types["Mutation"]; ok && t.Kind == TypeKindObject {
		s.SetMutationType("Mutation")
	}
	if t, ok := s.Types["Subscription"]; ok && t.Kind == TypeKindObject {
		s.SetSubscriptionType("Subscription")
	}
	for _, sd := range append(doc.Schema, doc.SchemaExtension...) {
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case language.Query:
				s.SetQueryType(op.Type)
			case language.Mutation:
				s.SetMutationType(op.Type)
			case language.Subscription:
				s.SetSubscriptionType(op.Type)
			}
		}
	}
}

func buildType(def *language.Definition) (*Type, error) {
	switch def.Kind {
	case language.Object, language.Interface:
		kind := TypeKindObject
		if def.Kind == language.Interface {
			kind = TypeKindInterface
		}
		t := NewType(def.Name, kind, def.Description)
		for _, iface := range def.Interfaces {
			t.AddInterface(iface)
		}
		for _, fd := range def.Fields {
			t.AddField(buildField(fd))
		}
		return t, nil
	case language.Union:
		t := NewType(def.Name, TypeKindUnion, def.Description)
		for _, name := range def.Types {
			t.AddPossibleType(name)
		}
		return t, nil
	case language.Enum:
		t := NewType(def.Name, TypeKindEnum, def.Description)
		for _, ev := range def.EnumValues {
			t.AddEnumValue(buildEnumValue(ev))
		}
		return t, nil
	case language.InputObject:
		t := NewType(def.Name, TypeKindInputObject, def.Description)
		for _, fd := range def.Fields {
			t.AddInputField(buildInputValue(fd))
		}
		return t, nil
	case language.Scalar:
		return NewType(def.Name, TypeKindScalar, def.Description), nil
	default:
		return nil, fmt.Errorf("unsupported definition kind %q for type %q", def.Kind, def.Name)
	}
}

func mergeExtension(base *Type, ext *language.Definition) error {
	if kindOf(ext.Kind) != base.Kind {
		return fmt.Errorf("extension kind %q does not match type %q", ext.Kind, base.Name)
	}
	switch base.Kind {
	case TypeKindObject, TypeKindInterface:
		for _, iface := range ext.Interfaces {
			base.AddInterface(iface)
		}
		for _, fd := range ext.Fields {
			if base.GetField(fd.Name) != nil {
				return fmt.Errorf("extension redeclares field %q on type %q", fd.Name, base.Name)
			}
			base.AddField(buildField(fd))
		}
	case TypeKindUnion:
		for _, name := range ext.Types {
			base.AddPossibleType(name)
		}
	case TypeKindEnum:
		for _, ev := range ext.EnumValues {
			base.AddEnumValue(buildEnumValue(ev))
		}
	case TypeKindInputObject:
		for _, fd := range ext.Fields {
			base.AddInputField(buildInputValue(fd))
		}
	}
	return nil
}

func kindOf(k language.DefinitionKind) TypeKind {
	switch k {
	case language.Object:
		return TypeKindObject
	case language.Interface:
		return TypeKindInterface
	case language.Union:
		return TypeKindUnion
	case language.Enum:
		return TypeKindEnum
	case language.InputObject:
		return TypeKindInputObject
	default:
		return TypeKindScalar
	}
}

func buildField(fd *language.FieldDefinition) *Field {
	f := NewField(fd.Name, fd.Description, typeRefFromAST(fd.Type))
	for _, ad := range fd.Arguments {
		arg := NewInputValue(ad.Name, ad.Description, typeRefFromAST(ad.Type))
		if ad.DefaultValue != nil {
			arg.SetDefault(language.GoValue(ad.DefaultValue))
		}
		f.AddArgument(arg)
	}
	for _, d := range fd.Directives {
		f.AddDirective(&FieldDirective{Name: d.Name, Arguments: d.Arguments, Position: d.Position})
	}
	if reason, ok := deprecationReason(fd.Directives); ok {
		f.Deprecate(reason)
	}
	return f
}

func buildEnumValue(ev *language.EnumValueDefinition) *EnumValue {
	e := NewEnumValue(ev.Name, ev.Description)
	if reason, ok := deprecationReason(ev.Directives); ok {
		e.Deprecate(reason)
	}
	return e
}

func buildInputValue(fd *language.FieldDefinition) *InputValue {
	v := NewInputValue(fd.Name, fd.Description, typeRefFromAST(fd.Type))
	if fd.DefaultValue != nil {
		v.SetDefault(language.GoValue(fd.DefaultValue))
	}
	return v
}

func buildDirectiveDefinition(dd *language.DirectiveDefinition) *Directive {
	d := NewDirective(dd.Name, dd.Description).SetRepeatable(dd.IsRepeatable)
	for _, loc := range dd.Locations {
		d.AddLocation(string(loc))
	}
	for _, ad := range dd.Arguments {
		arg := NewInputValue(ad.Name, ad.Description, typeRefFromAST(ad.Type))
		if ad.DefaultValue != nil {
			arg.SetDefault(language.GoValue(ad.DefaultValue))
		}
		d.AddArgument(arg)
	}
	return d
}

func deprecationReason(directives language.DirectiveList) (string, bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}
	for _, arg := range d.Arguments {
		if arg.Name == "reason" {
			if s, ok := language.GoValue(arg.Value).(string); ok {
				return s, true
			}
		}
	}
	return "No longer supported", true
}

func isBuiltinType(name string) bool {
	switch name {
	case "String", "Int", "Float", "Boolean", "ID":
		return true
	}
	return false
}

func typeRefFromAST(t *language.Type) *TypeRef {
	if t == nil {
		return nil
	}
	if t.NonNull {
		return NonNullType(typeRefFromAST(&language.Type{NamedType: t.NamedType, Elem: t.Elem}))
	}
	if t.NamedType != "" {
		return NamedType(t.NamedType)
	}
	if t.Elem != nil {
		return ListType(typeRefFromAST(t.Elem))
	}
	return nil
}
