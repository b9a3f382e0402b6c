package parser

// Schema represents a JSON Schema as used by Swagger 2.0 documents.
// Swagger 2.0 schemas are a subset of JSON Schema Draft 4; the composition
// keywords anyOf/oneOf/not are outside that subset but appear in real-world
// documents, so they are preserved and traversed rather than rejected.
// https://spec.openapis.org/oas/v2.0.html#schemaObject
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	Enum []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       any  `yaml:"items,omitempty" json:"items,omitempty"` // *Schema or []*Schema
	MaxItems    *int `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"` // tolerated beyond strict 2.0
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"` // tolerated beyond strict 2.0
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`     // tolerated beyond strict 2.0

	// Swagger specific fields
	Discriminator string        `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool          `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	XML           *XML          `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any           `yaml:"example,omitempty" json:"example,omitempty"`

	// Format
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // e.g., "date-time", "email", "uri", etc.

	// Extension fields
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// XML represents metadata for XML encoding
// https://spec.openapis.org/oas/v2.0.html#xmlObject
type XML struct {
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string         `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string         `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool           `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool           `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	Extra     map[string]any `yaml:",inline" json:"-"`
}
