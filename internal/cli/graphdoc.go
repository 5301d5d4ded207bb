package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

// This file decodes the JSON document a concrete-syntax parser (out of
// scope per spec §1) is assumed to emit: a flat list of elements and
// relationships with already-assigned identities, ready to load straight
// into a graph.ModelGraph for the resolve/validate commands to run
// against. Unlike pkg/metamodel's artifacts, this shape is not specified by
// spec.md itself; it exists only so the CLI has something concrete to read.

type graphDocument struct {
	Elements        []elementDoc      `json:"elements"`
	Relationships   []relationshipDoc `json:"relationships"`
	LibraryPackages []string          `json:"library_packages"`
}

type elementDoc struct {
	ID               string                 `json:"id"`
	Kind             string                 `json:"kind"`
	Name             *string                `json:"name,omitempty"`
	ShortName        *string                `json:"short_name,omitempty"`
	Owner            *string                `json:"owner,omitempty"`
	OwningMembership *string                `json:"owning_membership,omitempty"`
	Props            map[string]valueDoc    `json:"props,omitempty"`
	Spans            []spanDoc              `json:"spans,omitempty"`
}

type relationshipDoc struct {
	ID     string              `json:"id"`
	Kind   string              `json:"kind"`
	Source string              `json:"source"`
	Target string              `json:"target"`
	Props  map[string]valueDoc `json:"props,omitempty"`
}

type spanDoc struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// valueDoc is the tagged-union wire shape for model.Value.
type valueDoc struct {
	Kind  string              `json:"kind"`
	Bool  *bool               `json:"bool,omitempty"`
	Int   *int64              `json:"int,omitempty"`
	Float *float64            `json:"float,omitempty"`
	Str   *string             `json:"str,omitempty"`
	Ref   *string             `json:"ref,omitempty"`
	List  []valueDoc          `json:"list,omitempty"`
	Map   map[string]valueDoc `json:"map,omitempty"`
}

func (v valueDoc) toValue() (model.Value, error) {
	switch v.Kind {
	case "null", "":
		return model.Null(), nil
	case "bool":
		if v.Bool == nil {
			return model.Value{}, fmt.Errorf("bool value missing \"bool\" field")
		}
		return model.Bool(*v.Bool), nil
	case "int":
		if v.Int == nil {
			return model.Value{}, fmt.Errorf("int value missing \"int\" field")
		}
		return model.Int(*v.Int), nil
	case "float":
		if v.Float == nil {
			return model.Value{}, fmt.Errorf("float value missing \"float\" field")
		}
		return model.Float(*v.Float), nil
	case "string":
		if v.Str == nil {
			return model.Value{}, fmt.Errorf("string value missing \"str\" field")
		}
		return model.String(*v.Str), nil
	case "enum":
		if v.Str == nil {
			return model.Value{}, fmt.Errorf("enum value missing \"str\" field")
		}
		return model.Enum(*v.Str), nil
	case "ref":
		if v.Ref == nil {
			return model.Value{}, fmt.Errorf("ref value missing \"ref\" field")
		}
		id, err := model.ParseElementID(*v.Ref)
		if err != nil {
			return model.Value{}, fmt.Errorf("parsing ref %q: %w", *v.Ref, err)
		}
		return model.Ref(id), nil
	case "list":
		items := make([]model.Value, len(v.List))
		for i, item := range v.List {
			iv, err := item.toValue()
			if err != nil {
				return model.Value{}, fmt.Errorf("list[%d]: %w", i, err)
			}
			items[i] = iv
		}
		return model.List(items), nil
	case "map":
		m := model.NewOrderedMap()
		for key, item := range v.Map {
			iv, err := item.toValue()
			if err != nil {
				return model.Value{}, fmt.Errorf("map[%q]: %w", key, err)
			}
			m.Set(key, iv)
		}
		return model.Map(m), nil
	default:
		return model.Value{}, fmt.Errorf("unknown value kind %q", v.Kind)
	}
}

func (s spanDoc) toSpan() model.Span {
	return model.Span{
		File:      s.File,
		StartLine: s.StartLine,
		StartCol:  s.StartCol,
		EndLine:   s.EndLine,
		EndCol:    s.EndCol,
	}
}

// LoadGraphDocument reads and decodes a graph document from path, returning
// a populated graph.ModelGraph. Element identities are taken verbatim from
// the document (the assumed parser collaborator already assigned them);
// owner/owning-membership references are resolved by id after every
// element has been added, so document order does not matter. Each
// element's declared kind is checked against table, so a document kind the
// configured vocabulary never declared is rejected up front rather than
// surfacing later as an unresolved or miscategorized element.
func LoadGraphDocument(path string, table *metamodel.Table) (*graph.ModelGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph document: %w", err)
	}

	var doc graphDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding graph document: %w", err)
	}

	g := graph.NewModelGraph()

	for _, ed := range doc.Elements {
		e, err := ed.toElement(table)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", ed.ID, err)
		}
		g.AddElement(e)
	}

	for _, rd := range doc.Relationships {
		r, err := rd.toRelationship()
		if err != nil {
			return nil, fmt.Errorf("relationship %s: %w", rd.ID, err)
		}
		g.AddRelationship(r)
	}

	// Elements are loaded with AddElement, which only indexes owner->children
	// and namespace->memberships, not element->owning-membership (that index
	// is populated by AddOwnedElement's atomic construction, which this
	// document-driven load path bypasses since memberships already exist as
	// elements in the document). RebuildIndexes derives all indexes, including
	// owningMembershipOf, from the Owner/OwningMembership fields already set.
	g.RebuildIndexes()

	for _, lp := range doc.LibraryPackages {
		id, err := model.ParseElementID(lp)
		if err != nil {
			return nil, fmt.Errorf("library package %q: %w", lp, err)
		}
		if err := g.AddLibraryPackage(id); err != nil {
			return nil, fmt.Errorf("registering library package %q: %w", lp, err)
		}
	}

	return g, nil
}

func (ed elementDoc) toElement(table *metamodel.Table) (*graph.Element, error) {
	id, err := model.ParseElementID(ed.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", ed.ID, err)
	}

	kind, err := table.KindFromName(ed.Kind)
	if err != nil {
		return nil, fmt.Errorf("kind: %w", err)
	}

	e := &graph.Element{
		ID:    id,
		Kind:  kind,
		Name:  ed.Name,
		Props: model.NewOrderedMap(),
	}
	e.ShortName = ed.ShortName

	if ed.Owner != nil {
		ownerID, err := model.ParseElementID(*ed.Owner)
		if err != nil {
			return nil, fmt.Errorf("parsing owner %q: %w", *ed.Owner, err)
		}
		e.Owner = &ownerID
	}
	if ed.OwningMembership != nil {
		membershipID, err := model.ParseElementID(*ed.OwningMembership)
		if err != nil {
			return nil, fmt.Errorf("parsing owning_membership %q: %w", *ed.OwningMembership, err)
		}
		e.OwningMembership = &membershipID
	}

	for key, vd := range ed.Props {
		v, err := vd.toValue()
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", key, err)
		}
		e.SetProp(key, v)
	}

	for _, sd := range ed.Spans {
		e.Spans = append(e.Spans, sd.toSpan())
	}

	return e, nil
}

func (rd relationshipDoc) toRelationship() (*graph.Relationship, error) {
	id, err := model.ParseElementID(rd.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", rd.ID, err)
	}
	source, err := model.ParseElementID(rd.Source)
	if err != nil {
		return nil, fmt.Errorf("parsing source %q: %w", rd.Source, err)
	}
	target, err := model.ParseElementID(rd.Target)
	if err != nil {
		return nil, fmt.Errorf("parsing target %q: %w", rd.Target, err)
	}

	r := &graph.Relationship{
		ID:     id,
		Kind:   graph.RelationshipKind(rd.Kind),
		Source: source,
		Target: target,
		Props:  model.NewOrderedMap(),
	}

	for key, vd := range rd.Props {
		v, err := vd.toValue()
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", key, err)
		}
		r.Props.Set(key, v)
	}

	return r, nil
}
