// SPDX-License-Identifier: AGPL-3.0-or-later

// Package emit renders GATT enumerations as Go source.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"

	"github.com/bartekus/gattgen/internal/gattxml"
)

// DefaultGenerator names the tool in the generated file header.
const DefaultGenerator = "gattgen"

// commentWidth is the maximum width of wrapped description text.
const commentWidth = 74

// Member is one enumeration member.
type Member struct {
	Constant    string
	Name        string
	ShortCode   string
	UUIDString  string
	Description string
}

// DocLines returns the doc comment lines of m without comment markers.
func (m Member) DocLines() []string { return docLines(m) }

// Enum is the complete model of one generated file.
type Enum struct {
	Package   string
	TypeName  string
	Kind      gattxml.Kind
	Generator string
	Members   []Member
}

// Receiver is the method receiver name used in generated code.
func (e Enum) Receiver() string {
	r, _ := utf8.DecodeRuneInString(e.TypeName)
	return string(unicode.ToLower(r))
}

// Subject is the plural noun used in the type's doc comment.
func (e Enum) Subject() string {
	switch e.Kind {
	case gattxml.KindService:
		return "services"
	case gattxml.KindCharacteristic:
		return "characteristics"
	default:
		return "identifiers"
	}
}

// Declared returns every package-level identifier the rendered file declares.
func (e Enum) Declared() []string {
	t := e.TypeName
	names := []string{t, t + "Unknown", t + "Values", t + "FromUUID", t + "FromUUIDString", t + "FullName"}
	for _, m := range e.Members {
		names = append(names, m.Constant)
	}
	return names
}

// ParseTypeName splits a fully qualified type name such as
// "github.com/acme/ble/gatt.Service" into its package name and type name.
func ParseTypeName(qualified string) (pkg, typeName string, err error) {
	dot := strings.LastIndex(qualified, ".")
	if dot <= 0 || dot == len(qualified)-1 {
		return "", "", fmt.Errorf("type %q must have the form <package>.<Type>", qualified)
	}

	pkgPath, typeName := qualified[:dot], qualified[dot+1:]
	if strings.Contains(typeName, "/") {
		return "", "", fmt.Errorf("type %q must have the form <package>.<Type>", qualified)
	}
	pkg = path.Base(pkgPath)

	if !token.IsIdentifier(pkg) {
		return "", "", fmt.Errorf("package name %q in %q is not a Go identifier", pkg, qualified)
	}
	if !token.IsIdentifier(typeName) {
		return "", "", fmt.Errorf("type name %q in %q is not a Go identifier", typeName, qualified)
	}
	if reservedTypeName(typeName) {
		return "", "", fmt.Errorf("type name %q in %q is reserved", typeName, qualified)
	}
	return pkg, typeName, nil
}

// reservedTypeName reports whether name would collide with the uuid import
// or shadow a predeclared identifier in the generated file.
func reservedTypeName(name string) bool {
	return name == "uuid" || types.Universe.Lookup(name) != nil
}

// FileName returns the name of the file generated for typeName.
func FileName(typeName string) string {
	return strings.ToLower(typeName) + "_gen.go"
}

// Render produces gofmt-formatted Go source for e.
// Rendering is deterministic: equal inputs yield byte-identical output.
func Render(e Enum) ([]byte, error) {
	if !token.IsIdentifier(e.Package) {
		return nil, fmt.Errorf("package name %q is not a Go identifier", e.Package)
	}
	if !token.IsIdentifier(e.TypeName) {
		return nil, fmt.Errorf("type name %q is not a Go identifier", e.TypeName)
	}
	if reservedTypeName(e.TypeName) {
		return nil, fmt.Errorf("type name %q is reserved", e.TypeName)
	}
	if e.Generator == "" {
		e.Generator = DefaultGenerator
	}

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, e); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// paragraphs splits a cleaned description on its <p> markers.
func paragraphs(description string) []string {
	var out []string
	for _, p := range strings.Split(description, "<p>") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func wrap(text string) string {
	return wordwrap.WrapString(text, commentWidth)
}
