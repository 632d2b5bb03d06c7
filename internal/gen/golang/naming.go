package golang

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/koskimas/openapi2beans/internal/names"
)

var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true, "true": true, "false": true, "iota": true,
	"nil": true, "append": true, "cap": true, "clear": true, "close": true,
	"complex": true, "copy": true, "delete": true, "imag": true, "len": true,
	"make": true, "max": true, "min": true, "new": true, "panic": true,
	"print": true, "println": true, "real": true, "recover": true,
}

type naming struct {
	accessors names.AccessorStyle
}

func (n *naming) TypeName(schemaName string) string {
	name := names.Pascal(schemaName)
	if names.StartsWithDigit(name) {
		return ""
	}

	return name
}

func (n *naming) FieldName(propertyName string) string {
	name := names.Camel(propertyName)
	if names.StartsWithDigit(name) {
		return "_" + name
	}

	return name
}

func (n *naming) ScopedEnumTypeName(ownerTypeName string, propertyName string) string {
	return ownerTypeName + names.Pascal(propertyName)
}

func (n *naming) EnumConstant(enumTypeName string, literal string) string {
	suffix := names.Pascal(literal)
	if suffix == "" {
		return ""
	}

	return enumTypeName + suffix
}

func (n *naming) Accessors(fieldName string) (string, string) {
	return names.Accessors(n.accessors, strings.TrimPrefix(fieldName, "_"))
}

func (n *naming) IsReserved(identifier string) bool {
	return token.IsKeyword(identifier) || predeclared[identifier]
}

func (n *naming) FlatNamespace() bool {
	return true
}

// packageName derives a package name from the last element of a directory
// path: "internal/My-Beans" becomes "mybeans".
func packageName(dir string) string {
	var sb strings.Builder

	for _, r := range strings.ToLower(filepath.Base(dir)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}

	name := sb.String()
	if name == "" || names.StartsWithDigit(name) || token.IsKeyword(name) {
		return "beans"
	}

	return name
}

func validatePackage(pkg string) error {
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return fmt.Errorf(`invalid Go package name "%s"`, pkg)
	}

	return nil
}
