package model

import "fmt"

// SchemaError reports a malformed or unsupported schema construct.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema error: %s", e.Message)
	}

	return fmt.Sprintf("schema error in %s: %s", e.Path, e.Message)
}

func SchemaErrorf(path string, format string, args ...any) *SchemaError {
	return &SchemaError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnresolvedReferenceError reports a reference to a schema name that is not
// declared anywhere in the document.
type UnresolvedReferenceError struct {
	Path string
	Ref  string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf(`unresolved reference in %s: no schema named "%s"`, e.Path, e.Ref)
}

// NameCollisionError reports two schema names that derive the same
// identifier within one scope.
type NameCollisionError struct {
	Scope      string
	Identifier string
	First      string
	Second     string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf(
		`name collision in %s: "%s" and "%s" both derive identifier "%s"`,
		e.Scope, e.First, e.Second, e.Identifier,
	)
}

// Path joins an object name and a property name for error reporting.
func Path(object string, property string) string {
	if property == "" {
		return object
	}

	return object + "." + property
}
