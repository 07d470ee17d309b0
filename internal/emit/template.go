package emit

import (
	"strconv"
	"strings"
	"text/template"
)

var enumTemplate = template.Must(template.New("enum").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(enumSource))

const enumSource = `// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

import "github.com/google/uuid"

// {{.TypeName}} enumerates the Bluetooth GATT {{.Subject}} known at generation time.
type {{.TypeName}} int

// {{.TypeName}}Unknown is returned by lookups that match no member.
const {{.TypeName}}Unknown {{.TypeName}} = 0
{{if .Members}}
const (
{{- range $i, $m := .Members}}
{{- if $i}}
{{end}}
{{range $m.DocLines}}	//{{if .}} {{.}}{{end}}
{{end}}	{{$m.Constant}}{{if eq $i 0}} {{$.TypeName}} = iota + 1{{end}}
{{- end}}
)
{{end}}
// String returns the constant name of {{.Receiver}}.
func ({{.Receiver}} {{.TypeName}}) String() string {
{{- if .Members}}
	switch {{.Receiver}} {
{{- range .Members}}
	case {{.Constant}}:
		return {{quote .Constant}}
{{- end}}
	}
{{- end}}
	return {{quote (print .TypeName "Unknown")}}
}

// FullName returns the display name of {{.Receiver}}, or "" when {{.Receiver}} is not a member.
func ({{.Receiver}} {{.TypeName}}) FullName() string {
{{- if .Members}}
	switch {{.Receiver}} {
{{- range .Members}}
	case {{.Constant}}:
		return {{quote .Name}}
{{- end}}
	}
{{- end}}
	return ""
}

// ShortUUIDString returns the short identifier {{.Receiver}} was generated from.
func ({{.Receiver}} {{.TypeName}}) ShortUUIDString() string {
{{- if .Members}}
	switch {{.Receiver}} {
{{- range .Members}}
	case {{.Constant}}:
		return {{quote .ShortCode}}
{{- end}}
	}
{{- end}}
	return ""
}

// UUIDString returns the canonical identifier string of {{.Receiver}}.
func ({{.Receiver}} {{.TypeName}}) UUIDString() string {
{{- if .Members}}
	switch {{.Receiver}} {
{{- range .Members}}
	case {{.Constant}}:
		return {{quote .UUIDString}}
{{- end}}
	}
{{- end}}
	return ""
}

// UUID returns the identifier of {{.Receiver}}, or uuid.Nil when it does not parse.
func ({{.Receiver}} {{.TypeName}}) UUID() uuid.UUID {
	id, err := uuid.Parse({{.Receiver}}.UUIDString())
	if err != nil {
		return uuid.Nil
	}
	return id
}

// {{.TypeName}}Values returns every member in declaration order.
func {{.TypeName}}Values() []{{.TypeName}} {
{{- if .Members}}
	return []{{.TypeName}}{
{{- range .Members}}
		{{.Constant}},
{{- end}}
	}
{{- else}}
	return []{{.TypeName}}{}
{{- end}}
}

// {{.TypeName}}FromUUID returns the member whose identifier is u, or {{.TypeName}}Unknown.
func {{.TypeName}}FromUUID(u uuid.UUID) {{.TypeName}} {
	if u == uuid.Nil {
		return {{.TypeName}}Unknown
	}
	for _, id := range {{.TypeName}}Values() {
		if id.UUID() == u {
			return id
		}
	}
	return {{.TypeName}}Unknown
}

// {{.TypeName}}FromUUIDString parses s and returns the matching member, or {{.TypeName}}Unknown.
func {{.TypeName}}FromUUIDString(s string) {{.TypeName}} {
	u, err := uuid.Parse(s)
	if err != nil {
		return {{.TypeName}}Unknown
	}
	return {{.TypeName}}FromUUID(u)
}

// {{.TypeName}}FullName returns the display name registered for u, falling back
// to the string form of u.
func {{.TypeName}}FullName(u uuid.UUID) string {
	if id := {{.TypeName}}FromUUID(u); id != {{.TypeName}}Unknown {
		return id.FullName()
	}
	return u.String()
}
`

// docLines renders the doc comment body of one member, one entry per line.
// An empty entry is a paragraph break.
func docLines(m Member) []string {
	lines := []string{m.Constant + " is " + strconv.Quote(m.Name) + " (short identifier " + m.ShortCode + ")."}
	for _, para := range paragraphs(m.Description) {
		lines = append(lines, "")
		lines = append(lines, strings.Split(wrap(para), "\n")...)
	}
	return lines
}
