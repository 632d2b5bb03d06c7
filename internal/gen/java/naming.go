package java

import (
	"fmt"
	"strings"

	"github.com/koskimas/openapi2beans/internal/names"
)

var reserved = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"var": true, "record": true, "yield": true,
	"true": true, "false": true, "null": true,

	// java.lang types referenced by generated code or shadowed by a class of
	// the same name.
	"String": true, "Object": true, "Integer": true, "Boolean": true, "Double": true,
	"Long": true, "Enum": true, "Class": true, "System": true, "Math": true,
	"Override": true, "SerializedName": true,
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
	return n.TypeName(propertyName)
}

// EnumConstant converts a literal to SCREAMING_SNAKE: "string1" becomes
// STRING_1 and "2xl" becomes _2XL.
func (n *naming) EnumConstant(enumTypeName string, literal string) string {
	name := names.ScreamingSnake(literal)
	if names.StartsWithDigit(name) {
		return "_" + name
	}

	return name
}

func (n *naming) Accessors(fieldName string) (string, string) {
	return names.Accessors(n.accessors, strings.TrimPrefix(fieldName, "_"))
}

func (n *naming) IsReserved(identifier string) bool {
	return reserved[identifier]
}

func (n *naming) FlatNamespace() bool {
	return false
}

// validatePackage checks a dotted package name such as dev.galasa.beans.
func validatePackage(pkg string) error {
	if pkg == "" {
		return fmt.Errorf("java package name cannot be empty")
	}

	for _, segment := range strings.Split(pkg, ".") {
		if !isIdentifier(segment) || reserved[segment] {
			return fmt.Errorf(`invalid Java package name "%s": bad segment "%s"`, pkg, segment)
		}
	}

	return nil
}

func isIdentifier(s string) bool {
	if s == "" || names.StartsWithDigit(s) {
		return false
	}

	for _, r := range s {
		if r != '_' && r != '$' && !isAlphanumeric(r) {
			return false
		}
	}

	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
