package events

// DirectiveRejected is emitted when a directive's validation callback rejects
// a field resolution.
type DirectiveRejected struct {
	Directive  string
	ObjectType string
	Field      string
	Reason     string
}

// DirectiveUndefined is emitted when a field annotation references a
// directive name with no definition on the executing schema. Production
// execution treats the annotation as inert; this event exists so debug
// tooling can flag the likely typo.
type DirectiveUndefined struct {
	Directive  string
	ObjectType string
	Field      string
}

// FieldDeclarationMissing is emitted when the runtime resolves a field that
// the schema declaration tree does not declare, indicating a schema/runtime
// mismatch.
type FieldDeclarationMissing struct {
	ObjectType string
	Field      string
}
