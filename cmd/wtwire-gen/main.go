package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to the message schema YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkgName := flag.String("package", "", "Override the package name from the schema")
	flag.Parse()

	if *schemaPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: wtwire-gen -schema <path> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaPath, *outputPath, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, outputPath, pkgName string) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	if pkgName != "" {
		schema.Package = pkgName
	}

	code, err := GenerateMessages(schema)
	if err != nil {
		return fmt.Errorf("generating messages: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s (%d messages)\n", outputPath, len(schema.Messages))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
