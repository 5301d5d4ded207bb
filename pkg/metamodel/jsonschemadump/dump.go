package jsonschemadump

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

const (
	typeObject  = "object"
	typeArray   = "array"
	typeString  = "string"
	typeBoolean = "boolean"
)

// Dumper renders a metamodel.Table into a JSON Schema document. The zero
// value is usable; use the With* options to set root-level metadata.
type Dumper struct {
	title       string
	description string
	id          string
	strict      bool
}

// Option configures a Dumper.
type Option func(*Dumper)

// NewDumper creates a Dumper with the given options.
func NewDumper(opts ...Option) *Dumper {
	d := &Dumper{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithTitle sets the root schema's title.
func WithTitle(title string) Option {
	return func(d *Dumper) { d.title = title }
}

// WithDescription sets the root schema's description.
func WithDescription(desc string) Option {
	return func(d *Dumper) { d.description = desc }
}

// WithID sets the root schema's $id.
func WithID(id string) Option {
	return func(d *Dumper) { d.id = id }
}

// WithStrict sets additionalProperties to false on every emitted object
// schema, rejecting properties the metamodel does not declare for that
// kind. The default (false) leaves additionalProperties permissive, since
// DefaultArtifacts and most real deployments only cover a subset of the
// full vocabulary's properties.
func WithStrict(strict bool) Option {
	return func(d *Dumper) { d.strict = strict }
}

// Dump renders table as a Draft 7 JSON Schema: a root object requiring a
// "kind" discriminator property (enumerated over table.Kinds()) plus one
// $defs entry per kind describing that kind's own-and-inherited property
// shapes. $defs entries are addressable directly ("$ref":
// "#/$defs/PartUsage") by callers that already know which kind they are
// validating.
func (d *Dumper) Dump(table *metamodel.Table) *jsonschema.Schema {
	defs := make(map[string]*jsonschema.Schema, len(table.Kinds()))
	kindNames := make([]any, 0, len(table.Kinds()))

	for _, k := range table.Kinds() {
		defs[string(k)] = d.kindSchema(table, k)
		kindNames = append(kindNames, string(k))
	}

	root := &jsonschema.Schema{
		Schema: "http://json-schema.org/draft-07/schema#",
		Type:   typeObject,
		Defs:   defs,
		Properties: map[string]*jsonschema.Schema{
			"kind": {Type: typeString, Enum: kindNames},
		},
		Required: []string{"kind"},
	}

	if d.strict {
		root.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
	} else {
		root.AdditionalProperties = &jsonschema.Schema{}
	}

	if d.title != "" {
		root.Title = d.title
	}
	if d.description != "" {
		root.Description = d.description
	}
	if d.id != "" {
		root.ID = d.id
	}

	return root
}

// kindSchema builds the object schema for one kind's own-plus-inherited
// property set (Table.Properties already returns the inheritance-resolved,
// nearest-declaration-wins view).
func (d *Dumper) kindSchema(table *metamodel.Table, k string) *jsonschema.Schema {
	accessors := table.Properties(model.Kind(k))

	schema := &jsonschema.Schema{
		Type:        typeObject,
		Description: "Generated from the " + k + " property set.",
		Properties:  make(map[string]*jsonschema.Schema, len(accessors)),
	}

	var required []string
	var order []string

	for _, pa := range accessors {
		propSchema := d.propertySchema(pa)
		schema.Properties[pa.Name] = propSchema
		order = append(order, pa.Name)
		if pa.Cardinality.IsRequired() {
			required = append(required, pa.Name)
		}
	}

	schema.Required = required
	schema.PropertyOrder = order

	if d.strict {
		schema.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
	} else {
		schema.AdditionalProperties = &jsonschema.Schema{}
	}

	return schema
}

func (d *Dumper) propertySchema(pa *metamodel.PropertyAccessor) *jsonschema.Schema {
	base := d.valueSchema(pa)
	if !pa.Cardinality.IsMany() {
		return base
	}
	return &jsonschema.Schema{Type: typeArray, Items: base}
}

// valueSchema returns the schema for a single value of pa's declared
// range, ignoring cardinality (the caller wraps it in an array for
// many-valued properties).
func (d *Dumper) valueSchema(pa *metamodel.PropertyAccessor) *jsonschema.Schema {
	switch pa.ValueType {
	case metamodel.BoolType:
		return &jsonschema.Schema{Type: typeBoolean}
	case metamodel.StringType, metamodel.DateTimeType, metamodel.EnumType:
		return &jsonschema.Schema{Type: typeString}
	case metamodel.RefType:
		if pa.TargetKind == "" {
			return &jsonschema.Schema{Type: typeString, Description: "qualified name or element id"}
		}
		return &jsonschema.Schema{
			Description: "reference to a " + pa.TargetKind,
			Ref:         "#/$defs/" + pa.TargetKind,
		}
	default: // AnyType or unrecognized
		return &jsonschema.Schema{}
	}
}
