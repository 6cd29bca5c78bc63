package main

import (
	"fmt"
	"strings"
)

// nativeItems maps Go integer types to the wire helper that binds them.
var nativeItems = map[string]string{
	"uint8":  "wire.Uint8",
	"int8":   "wire.Int8",
	"uint16": "wire.Uint16",
	"int16":  "wire.Int16",
	"uint32": "wire.Uint32",
	"int32":  "wire.Int32",
	"uint64": "wire.Uint64",
	"int64":  "wire.Int64",
}

// GenerateMessages renders the Go source for every message in the schema.
// The result is unformatted; writeFormatted runs it through goimports.
func GenerateMessages(schema *RawSchema) (string, error) {
	if err := ValidateSchema(schema); err != nil {
		return "", err
	}

	data := catalogData{
		Package: schema.Package,
		Union:   schema.Union,
		Marker:  schema.Marker,
		Imports: schema.Imports,
	}
	for _, msg := range schema.Messages {
		md := messageData{
			Name:        msg.Name,
			ConstName:   "Msg" + msg.Name,
			Type:        msg.Type,
			Description: msg.Description,
			Fields:      msg.Fields,
		}
		for _, f := range msg.Fields {
			if f.IsOptional() {
				md.Optional = append(md.Optional, f)
			} else {
				md.Required = append(md.Required, f)
			}
		}
		data.Messages = append(data.Messages, md)
	}

	var b strings.Builder
	renderTemplate(&b, "header", data)
	renderTemplate(&b, "messageTypes", data)
	for _, md := range data.Messages {
		renderTemplate(&b, "message", md)
	}
	renderTemplate(&b, "dispatch", data)
	return b.String(), nil
}

// fieldBinding returns the expression that binds a field for the codec:
// a wire helper for native integers, wire.Optional/OptionalExt for
// extension fields and the field's address otherwise.
func fieldBinding(f RawFieldDef) string {
	ref := "&m." + f.Name
	if f.IsOptional() {
		fn := "wire.Optional"
		if f.Ext {
			fn = "wire.OptionalExt"
		}
		return fmt.Sprintf("%s(%d, %s)", fn, *f.TLV, ref)
	}
	if helper, ok := nativeItems[f.Type]; ok {
		return helper + "(" + ref + ")"
	}
	return ref
}
