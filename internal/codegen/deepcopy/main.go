// Package main generates DeepCopy methods for parser package types.
//
// This generator creates type-aware deep copy methods that properly handle:
// - Pointer fields (deep copy the pointed value)
// - Slice fields (create new slice and copy elements)
// - Map fields (create new map and copy entries)
// - Polymorphic fields (any fields with known types per the Swagger 2.0 spec)
//
// The copy strategy for each field lives in a hand-maintained table
// (typeConfigs). Before generating, the tool loads the parser package with
// go/types and verifies the table against the actual struct definitions, so
// adding a field to a model type without updating the table fails loudly
// instead of producing a DeepCopy that silently shares state.
//
// Usage:
//
//	go run ./internal/codegen/deepcopy
//	go run ./internal/codegen/deepcopy -check  # verify freshness
//
// Or via go generate:
//
//	//go:generate go run ../internal/codegen/deepcopy
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

// FieldConfig defines how a single field should be copied
type FieldConfig struct {
	Name       string // Field name
	Type       string // Go type
	CopyMethod string // How to copy: "value", "pointer", "prim_pointer", "slice", "map", "helper"
	Helper     string // Helper function name (if CopyMethod == "helper")
	ElemType   string // Element type for slices/maps
	KeyType    string // Key type for maps
}

// TypeConfig defines how a struct type should have DeepCopy generated
type TypeConfig struct {
	Name   string        // Type name
	Fields []FieldConfig // Fields requiring special handling
}

// Configuration for all parser types
var typeConfigs = []TypeConfig{
	{
		Name: "Document",
		Fields: []FieldConfig{
			{Name: "Info", Type: "*Info", CopyMethod: "pointer"},
			{Name: "Schemes", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "Consumes", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "Produces", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "Paths", Type: "Paths", CopyMethod: "helper", Helper: "deepCopyPaths"},
			{Name: "Definitions", Type: "map[string]*Schema", CopyMethod: "map", KeyType: "string", ElemType: "*Schema"},
			{Name: "Parameters", Type: "map[string]*Parameter", CopyMethod: "map", KeyType: "string", ElemType: "*Parameter"},
			{Name: "Responses", Type: "map[string]*Response", CopyMethod: "map", KeyType: "string", ElemType: "*Response"},
			{Name: "SecurityDefinitions", Type: "map[string]*SecurityScheme", CopyMethod: "map", KeyType: "string", ElemType: "*SecurityScheme"},
			{Name: "Security", Type: "[]SecurityRequirement", CopyMethod: "helper", Helper: "deepCopySecurityRequirements"},
			{Name: "Tags", Type: "[]*Tag", CopyMethod: "slice", ElemType: "*Tag"},
			{Name: "ExternalDocs", Type: "*ExternalDocs", CopyMethod: "pointer"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Info",
		Fields: []FieldConfig{
			{Name: "Contact", Type: "*Contact", CopyMethod: "pointer"},
			{Name: "License", Type: "*License", CopyMethod: "pointer"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Contact",
		Fields: []FieldConfig{
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "License",
		Fields: []FieldConfig{
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "ExternalDocs",
		Fields: []FieldConfig{
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Tag",
		Fields: []FieldConfig{
			{Name: "ExternalDocs", Type: "*ExternalDocs", CopyMethod: "pointer"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "PathItem",
		Fields: []FieldConfig{
			{Name: "Get", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Put", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Post", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Delete", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Options", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Head", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Patch", Type: "*Operation", CopyMethod: "pointer"},
			{Name: "Parameters", Type: "[]*Parameter", CopyMethod: "slice", ElemType: "*Parameter"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Operation",
		Fields: []FieldConfig{
			{Name: "Tags", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "ExternalDocs", Type: "*ExternalDocs", CopyMethod: "pointer"},
			{Name: "Consumes", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "Produces", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "Parameters", Type: "[]*Parameter", CopyMethod: "slice", ElemType: "*Parameter"},
			{Name: "Responses", Type: "*Responses", CopyMethod: "pointer"},
			{Name: "Schemes", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "Security", Type: "[]SecurityRequirement", CopyMethod: "helper", Helper: "deepCopySecurityRequirements"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Responses",
		Fields: []FieldConfig{
			{Name: "Default", Type: "*Response", CopyMethod: "pointer"},
			{Name: "Codes", Type: "map[string]*Response", CopyMethod: "map", KeyType: "string", ElemType: "*Response"},
		},
	},
	{
		Name: "Response",
		Fields: []FieldConfig{
			{Name: "Schema", Type: "*Schema", CopyMethod: "pointer"},
			{Name: "Headers", Type: "map[string]*Header", CopyMethod: "map", KeyType: "string", ElemType: "*Header"},
			{Name: "Examples", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Parameter",
		Fields: []FieldConfig{
			{Name: "Schema", Type: "*Schema", CopyMethod: "pointer"},
			{Name: "Items", Type: "*Items", CopyMethod: "pointer"},
			{Name: "Default", Type: "any", CopyMethod: "helper", Helper: "deepCopyJSONValue"},
			{Name: "Maximum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Minimum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "MaxLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MaxItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "Enum", Type: "[]any", CopyMethod: "helper", Helper: "deepCopyEnumSlice"},
			{Name: "MultipleOf", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Items",
		Fields: []FieldConfig{
			{Name: "Items", Type: "*Items", CopyMethod: "pointer"},
			{Name: "Default", Type: "any", CopyMethod: "helper", Helper: "deepCopyJSONValue"},
			{Name: "Maximum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Minimum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "MaxLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MaxItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "Enum", Type: "[]any", CopyMethod: "helper", Helper: "deepCopyEnumSlice"},
			{Name: "MultipleOf", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Header",
		Fields: []FieldConfig{
			{Name: "Items", Type: "*Items", CopyMethod: "pointer"},
			{Name: "Default", Type: "any", CopyMethod: "helper", Helper: "deepCopyJSONValue"},
			{Name: "Maximum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Minimum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "MaxLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MaxItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "Enum", Type: "[]any", CopyMethod: "helper", Helper: "deepCopyEnumSlice"},
			{Name: "MultipleOf", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "Schema",
		Fields: []FieldConfig{
			{Name: "Default", Type: "any", CopyMethod: "helper", Helper: "deepCopyJSONValue"},
			{Name: "Enum", Type: "[]any", CopyMethod: "helper", Helper: "deepCopyEnumSlice"},
			{Name: "MultipleOf", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Maximum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "Minimum", Type: "*float64", CopyMethod: "prim_pointer"},
			{Name: "MaxLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinLength", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "Items", Type: "any", CopyMethod: "helper", Helper: "deepCopySchemaOrSlice"},
			{Name: "MaxItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinItems", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "Properties", Type: "map[string]*Schema", CopyMethod: "map", KeyType: "string", ElemType: "*Schema"},
			{Name: "AdditionalProperties", Type: "any", CopyMethod: "helper", Helper: "deepCopySchemaOrBool"},
			{Name: "Required", Type: "[]string", CopyMethod: "slice", ElemType: "string"},
			{Name: "MaxProperties", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "MinProperties", Type: "*int", CopyMethod: "prim_pointer"},
			{Name: "AllOf", Type: "[]*Schema", CopyMethod: "slice", ElemType: "*Schema"},
			{Name: "AnyOf", Type: "[]*Schema", CopyMethod: "slice", ElemType: "*Schema"},
			{Name: "OneOf", Type: "[]*Schema", CopyMethod: "slice", ElemType: "*Schema"},
			{Name: "Not", Type: "*Schema", CopyMethod: "pointer"},
			{Name: "XML", Type: "*XML", CopyMethod: "pointer"},
			{Name: "ExternalDocs", Type: "*ExternalDocs", CopyMethod: "pointer"},
			{Name: "Example", Type: "any", CopyMethod: "helper", Helper: "deepCopyJSONValue"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "XML",
		Fields: []FieldConfig{
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
	{
		Name: "SecurityScheme",
		Fields: []FieldConfig{
			{Name: "Scopes", Type: "map[string]string", CopyMethod: "helper", Helper: "deepCopyStringMap"},
			{Name: "Extra", Type: "map[string]any", CopyMethod: "helper", Helper: "deepCopyExtensions"},
		},
	},
}

// Template for generating DeepCopy methods
const deepCopyTemplate = `// Code generated by internal/codegen/deepcopy; DO NOT EDIT.
//
// This file contains DeepCopy methods for parser package types.
// These methods provide type-aware deep copying that properly handles:
// - Pointer fields (deep copy the pointed value)
// - Slice fields (create new slice and copy elements)
// - Map fields (create new map and copy entries)
// - Polymorphic fields (any fields with known types per the Swagger 2.0 spec)

package parser

{{range .Types}}
// DeepCopy creates a deep copy of {{.Name}}.
func (in *{{.Name}}) DeepCopy() *{{.Name}} {
	if in == nil {
		return nil
	}
	out := new({{.Name}})
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies {{.Name}} into out.
func (in *{{.Name}}) DeepCopyInto(out *{{.Name}}) {
	*out = *in
{{range .Fields}}{{if eq .CopyMethod "pointer"}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = in.{{.Name}}.DeepCopy()
	}
{{else if eq .CopyMethod "prim_pointer"}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = new({{stripPointer .Type}})
		*out.{{.Name}} = *in.{{.Name}}
	}
{{else if eq .CopyMethod "slice"}}{{if hasPointerElem .ElemType}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = make({{.Type}}, len(in.{{.Name}}))
		for i, v := range in.{{.Name}} {
			if v != nil {
				out.{{.Name}}[i] = v.DeepCopy()
			}
		}
	}
{{else}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = make({{.Type}}, len(in.{{.Name}}))
		copy(out.{{.Name}}, in.{{.Name}})
	}
{{end}}{{else if eq .CopyMethod "map"}}{{if hasPointerElem .ElemType}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = make({{.Type}}, len(in.{{.Name}}))
		for k, v := range in.{{.Name}} {
			if v != nil {
				out.{{.Name}}[k] = v.DeepCopy()
			}
		}
	}
{{else}}
	if in.{{.Name}} != nil {
		out.{{.Name}} = make({{.Type}}, len(in.{{.Name}}))
		for k, v := range in.{{.Name}} {
			out.{{.Name}}[k] = v
		}
	}
{{end}}{{else if eq .CopyMethod "helper"}}
	out.{{.Name}} = {{.Helper}}(in.{{.Name}})
{{end}}{{end}}}

{{end}}`

// TemplateData holds the data passed to the template for code generation.
type TemplateData struct {
	Types []TypeConfig
}

func main() {
	check := flag.Bool("check", false, "Compare generated output with existing file and exit non-zero if stale")
	flag.Parse()

	// Determine paths relative to working directory. The generator can be
	// invoked from the project root (go run ./internal/codegen/deepcopy) or
	// from the parser directory (go generate).
	parserDir := "parser"
	outputPath := filepath.Join("parser", "zz_generated_deepcopy.go")
	if _, err := os.Stat("parser"); os.IsNotExist(err) {
		// Likely running from the parser directory via go generate
		parserDir = "."
		outputPath = "zz_generated_deepcopy.go"
	}

	verifyConfigs(parserDir, outputPath)

	// Parse template with helper functions
	funcMap := template.FuncMap{
		"hasPointerElem": func(elemType string) bool {
			return strings.HasPrefix(elemType, "*")
		},
		"stripPointer": func(ptrType string) string {
			return strings.TrimPrefix(ptrType, "*")
		},
	}

	tmpl, err := template.New("deepcopy").Funcs(funcMap).Parse(deepCopyTemplate)
	if err != nil {
		fatal("failed to parse template: %v", err)
	}

	// Sort types alphabetically for consistent output
	sortedConfigs := make([]TypeConfig, len(typeConfigs))
	copy(sortedConfigs, typeConfigs)
	sort.Slice(sortedConfigs, func(i, j int) bool {
		return sortedConfigs[i].Name < sortedConfigs[j].Name
	})

	data := TemplateData{
		Types: sortedConfigs,
	}

	// Generate code
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		fatal("failed to execute template: %v", err)
	}

	// Format generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fatal("failed to format generated code: %v\n\nGenerated code:\n%s", err, buf.String())
	}

	if *check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			fatal("failed to read existing file %s: %v", outputPath, err)
		}
		if !bytes.Equal(existing, formatted) {
			fatal("%s is stale; run 'go generate ./parser/' to regenerate", outputPath)
		}
		fmt.Printf("%s is up to date\n", outputPath)
		return
	}

	if err := os.WriteFile(outputPath, formatted, 0644); err != nil {
		fatal("failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Generated %s\n", outputPath)
}

// verifyConfigs loads the parser package with go/types and checks typeConfigs
// against the actual struct definitions. Model types are discovered by their
// Extra map[string]any field; Responses lacks Extra but participates in deep
// copying, so it is registered explicitly.
func verifyConfigs(parserDir, outputPath string) {
	// Resolve the absolute path for the overlay key. go/packages uses
	// absolute paths internally, so the overlay key must match.
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		fatal("failed to resolve absolute path for %s: %v", outputPath, err)
	}

	// Use an overlay to replace the generated file with a minimal stub.
	// This prevents stale method signatures from causing type errors
	// during package loading, while keeping deepcopy_helpers.go and the
	// rest of the package compilable by providing the methods they
	// reference.
	stub := []byte(`package parser

func (in *Document) DeepCopy() *Document { return nil }
func (in *Schema) DeepCopy() *Schema     { return nil }
func (in *PathItem) DeepCopy() *PathItem { return nil }
`)

	cfg := &packages.Config{
		Mode:    packages.NeedTypes | packages.NeedSyntax | packages.NeedName,
		Dir:     parserDir,
		Overlay: map[string][]byte{absOutput: stub},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		fatal("failed to load parser package: %v", err)
	}
	if len(pkgs) == 0 {
		fatal("no packages found")
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, e := range pkg.Errors {
			fmt.Fprintf(os.Stderr, "package error: %v\n", e)
		}
		fatal("package has errors")
	}

	scope := pkg.Types.Scope()

	// Discover all struct types with an Extra map[string]any field
	discovered := map[string]bool{"Responses": true}
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}
		if hasExtraField(st) {
			discovered[name] = true
		}
	}

	configured := make(map[string]TypeConfig, len(typeConfigs))
	for _, tc := range typeConfigs {
		configured[tc.Name] = tc
	}

	// Every discovered model type must be configured, and every field that
	// needs deep copying must have an entry.
	for name := range discovered {
		tc, ok := configured[name]
		if !ok {
			fatal("type %s has no TypeConfig entry; add one to typeConfigs", name)
		}

		obj := scope.Lookup(name)
		if obj == nil {
			fatal("configured type %s not found in parser package", name)
		}
		st, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			fatal("configured type %s is not a struct", name)
		}

		configuredFields := make(map[string]bool, len(tc.Fields))
		for _, fc := range tc.Fields {
			configuredFields[fc.Name] = true
		}

		structFields := make(map[string]bool, st.NumFields())
		for i := range st.NumFields() {
			f := st.Field(i)
			structFields[f.Name()] = true
			if !f.Exported() {
				continue
			}
			if needsDeepCopy(f.Type()) && !configuredFields[f.Name()] {
				fatal("field %s.%s (type %s) needs a deep copy strategy; add a FieldConfig entry",
					name, f.Name(), types.TypeString(f.Type(), nil))
			}
		}

		// Stale entries point at fields that no longer exist
		for _, fc := range tc.Fields {
			if !structFields[fc.Name] {
				fatal("FieldConfig %s.%s references a field that does not exist", name, fc.Name)
			}
		}
	}

	// Configured types that were not discovered are stale
	for _, tc := range typeConfigs {
		if !discovered[tc.Name] {
			fatal("TypeConfig %s references a type that is not a model type (no Extra field); remove it", tc.Name)
		}
	}
}

// needsDeepCopy reports whether a field of this type shares state when copied
// by plain struct assignment.
func needsDeepCopy(t types.Type) bool {
	switch types.Unalias(t).Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Interface:
		return true
	default:
		return false
	}
}

// hasExtraField returns true if the struct has a field named "Extra" of type
// map[string]any.
func hasExtraField(st *types.Struct) bool {
	for i := range st.NumFields() {
		f := st.Field(i)
		if f.Name() != "Extra" {
			continue
		}
		mt, ok := f.Type().(*types.Map)
		if !ok {
			return false
		}
		keyBasic, ok := mt.Key().(*types.Basic)
		if !ok || keyBasic.Kind() != types.String {
			return false
		}
		// Use Unalias because `any` is a type alias for interface{} in Go 1.22+
		_, ok = types.Unalias(mt.Elem()).(*types.Interface)
		return ok
	}
	return false
}

func fatal(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}
