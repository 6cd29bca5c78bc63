package main

import (
	"fmt"
	"go/token"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawSchema is a message catalog loaded from YAML.
type RawSchema struct {
	Package  string          `yaml:"package"`
	Union    string          `yaml:"union"`  // interface every message implements
	Marker   string          `yaml:"marker"` // unexported method closing the union
	Imports  []string        `yaml:"imports"`
	Messages []RawMessageDef `yaml:"messages"`
}

// RawMessageDef describes one message shape.
type RawMessageDef struct {
	Name        string        `yaml:"name"`
	Type        uint16        `yaml:"type"`
	Description string        `yaml:"description"`
	Fields      []RawFieldDef `yaml:"fields"`
}

// RawFieldDef describes one message field. Fields with a TLV tag are
// optional extensions and must have a pointer type.
type RawFieldDef struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"` // Go type, e.g. "uint16", "wire.Buffer", "*wire.U32"
	TLV         *uint64 `yaml:"tlv"`
	Ext         bool    `yaml:"ext"` // type implements wire.ExtensionItem rather than wire.Item
	Description string  `yaml:"description"`
}

// IsOptional reports whether the field is carried in the extension stream.
func (f RawFieldDef) IsOptional() bool {
	return f.TLV != nil
}

// ParseSchema parses and validates a message schema from YAML bytes.
func ParseSchema(data []byte) (*RawSchema, error) {
	var schema RawSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if err := ValidateSchema(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// LoadSchema loads and parses a message schema from a file.
func LoadSchema(path string) (*RawSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseSchema(data)
}

// ValidateSchema checks names, type tags and extension ordering.
func ValidateSchema(s *RawSchema) error {
	if s.Package == "" {
		return fmt.Errorf("schema missing package")
	}
	if !token.IsIdentifier(s.Union) || !token.IsExported(s.Union) {
		return fmt.Errorf("union %q must be an exported identifier", s.Union)
	}
	if !token.IsIdentifier(s.Marker) || token.IsExported(s.Marker) {
		return fmt.Errorf("marker %q must be an unexported identifier", s.Marker)
	}
	if len(s.Messages) == 0 {
		return fmt.Errorf("schema defines no messages")
	}

	names := make(map[string]bool)
	types := make(map[uint16]string)
	for _, msg := range s.Messages {
		if !token.IsIdentifier(msg.Name) || !token.IsExported(msg.Name) {
			return fmt.Errorf("message name %q must be an exported identifier", msg.Name)
		}
		if names[msg.Name] {
			return fmt.Errorf("duplicate message %s", msg.Name)
		}
		names[msg.Name] = true
		if other, ok := types[msg.Type]; ok {
			return fmt.Errorf("message %s: type %d already used by %s", msg.Name, msg.Type, other)
		}
		types[msg.Type] = msg.Name

		if err := validateFields(msg); err != nil {
			return fmt.Errorf("message %s: %w", msg.Name, err)
		}
	}
	return nil
}

func validateFields(msg RawMessageDef) error {
	seen := make(map[string]bool)
	var (
		inExtensions bool
		lastTag      uint64
	)
	for _, f := range msg.Fields {
		if !token.IsIdentifier(f.Name) || !token.IsExported(f.Name) {
			return fmt.Errorf("field name %q must be an exported identifier", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true
		if f.Type == "" {
			return fmt.Errorf("field %s: missing type", f.Name)
		}

		if !f.IsOptional() {
			if inExtensions {
				return fmt.Errorf("field %s: required field after extension fields", f.Name)
			}
			if f.Ext {
				return fmt.Errorf("field %s: ext requires a tlv tag", f.Name)
			}
			continue
		}

		if !strings.HasPrefix(f.Type, "*") {
			return fmt.Errorf("field %s: extension field type %s must be a pointer", f.Name, f.Type)
		}
		if inExtensions && *f.TLV <= lastTag {
			return fmt.Errorf("field %s: tlv %d must be greater than %d", f.Name, *f.TLV, lastTag)
		}
		inExtensions = true
		lastTag = *f.TLV
	}
	return nil
}
