package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote":   func(s string) string { return fmt.Sprintf("%q", s) },
	"binding": fieldBinding,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		messageTypesTmpl +
		messageTmpl +
		dispatchTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// catalogData holds the whole schema as seen by the templates.
type catalogData struct {
	Package  string
	Union    string
	Marker   string
	Imports  []string
	Messages []messageData
}

// messageData holds pre-computed data for one message.
type messageData struct {
	Name        string
	ConstName   string
	Type        uint16
	Description string
	Fields      []RawFieldDef
	Required    []RawFieldDef
	Optional    []RawFieldDef
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by wtwire-gen. DO NOT EDIT.

package {{.Package}}
{{- if .Imports}}

import (
{{- range .Imports}}
{{quote .}}
{{- end}}
)
{{- end}}

{{end}}`

const messageTypesTmpl = `{{define "messageTypes"}}
// MessageType identifies a message shape on the wire.
type MessageType uint16

const (
{{- range .Messages}}
// {{.ConstName}} is the type of {{.Name}}.
{{.ConstName}} MessageType = {{.Type}}
{{- end}}
)

// String returns the message name.
func (t MessageType) String() string {
switch t {
{{- range .Messages}}
case {{.ConstName}}:
return {{quote .Name}}
{{- end}}
default:
return "Unknown"
}
}

{{end}}`

const messageTmpl = `{{define "message"}}
{{- if .Description}}
// {{.Name}} {{.Description}}
{{- end}}
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Description}}
// {{.Description}}
{{- end}}
{{.Name}} {{.Type}}
{{- end}}
}

// MsgType returns {{.ConstName}}.
func (m *{{.Name}}) MsgType() wire.MessageType {
return wire.MessageType({{.ConstName}})
}

// Fields returns the required fields of {{.Name}} in wire order.
func (m *{{.Name}}) Fields() []wire.Item {
{{- if .Required}}
return []wire.Item{
{{- range .Required}}
{{binding .}},
{{- end}}
}
{{- else}}
return nil
{{- end}}
}

// Extensions returns the optional fields of {{.Name}} in tag order.
func (m *{{.Name}}) Extensions() []wire.Extension {
{{- if .Optional}}
return []wire.Extension{
{{- range .Optional}}
{{binding .}},
{{- end}}
}
{{- else}}
return nil
{{- end}}
}

{{end}}`

const dispatchTmpl = `{{define "dispatch"}}
// MakeEmptyMessage returns a zero message of type t.
func MakeEmptyMessage(t MessageType) ({{.Union}}, error) {
switch t {
{{- range .Messages}}
case {{.ConstName}}:
return &{{.Name}}{}, nil
{{- end}}
default:
return nil, wire.InvalidData("unknown message type %d", uint16(t))
}
}

{{range .Messages -}}
func (*{{.Name}}) {{$.Marker}}() {}
{{end}}
var (
{{- range .Messages}}
_ {{$.Union}} = (*{{.Name}})(nil)
{{- end}}
)
{{end}}`
