// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package semantic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/enrich"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
	"github.com/specialistvlad/jsdmbrs/internal/values"
)

// VisitProperty runs the property rules in order and appends the enriched
// property to the current entity.
func (b *builder) VisitProperty(p *syntax.Property) error {
	name := p.Name.Name
	b.logger.Debug("Starting semantic checks for property.", "class", b.entity.Name, "property", name)

	rt := b.types[p.Type]
	prop := &model.Property{
		Name:          name,
		Type:          rt.typ,
		ListType:      rt.shape,
		Constant:      p.Constant,
		Encapsulation: &model.Encapsulation{Getter: p.Getter, Setter: p.Setter},
		PrimaryKey:    rt.shape == nil && rt.typ.IsPrimaryKey(),
		Range:         syntax.Range(p.Name.Pos, p.Name.EndPos),
	}
	if r := p.Relationship; r != nil {
		typ, err := model.ParseRelationshipType(r.Multiplicity)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		prop.Relationship = &model.Relationship{
			Owner: r.Owner,
			Type:  typ,
			Range: syntax.Range(r.Pos, r.EndPos),
		}
	}

	if err := b.checkProperty(p, prop); err != nil {
		return err
	}

	if p.Value != nil {
		v, err := b.buildValue(p, prop)
		if err != nil {
			return err
		}
		prop.Value = v
		prop.DefaultValue = v.Expr
	} else {
		prop.DefaultValue = enrich.DefaultValue(prop.Type, prop.ListType)
	}

	b.entity.Properties = append(b.entity.Properties, prop)
	return nil
}

func (b *builder) checkProperty(p *syntax.Property, prop *model.Property) error {
	name := prop.Name
	typeName := prop.Type.TypeName()
	search := diag.Token(name)
	at := prop.Range

	if !memberNameRe.MatchString(name) {
		return b.fail(diag.ErrPropertyName, at, search, msgPropertyName, name, explainPropertyName)
	}
	if strings.EqualFold(name, "id") {
		return b.fail(diag.ErrIDPropertyName, at, search, msgIDPropertyName, name,
			fmt.Sprintf(explainIDPropertyName, lowerFirst(b.entity.Name)))
	}

	if prop.PrimaryKey {
		if prop.Constant || p.Value != nil {
			return b.fail(diag.ErrIDPropertyValue, at, search, msgIDPropertyValue, name, typeName)
		}
		if !p.Getter {
			return b.fail(diag.ErrIDPropertyGetter, at, search, msgIDPropertyGetter, name, typeName)
		}
		if p.Setter {
			return b.fail(diag.ErrIDPropertySetter, at, search, msgIDPropertySetter, name, typeName)
		}
	}

	entity := model.IsEntity(prop.Type)
	if entity {
		if prop.Constant {
			return b.fail(diag.ErrEntityPropertyConstant, at, search, msgEntityPropertyConstant, name, typeName, typeName)
		}
		if p.Value != nil {
			return b.fail(diag.ErrEntityPropertyValue, at, search, msgEntityPropertyValue, name, typeName)
		}
		if prop.Relationship == nil {
			return b.fail(diag.ErrEntityPropertyRelationship, at, search, msgEntityPropertyRelationship, name, typeName)
		}
	}

	if rel := prop.Relationship; rel != nil {
		if !entity {
			if prop.IsList() {
				return b.fail(diag.ErrListTypeAndRelationship, rel.Range, search, msgListTypeAndRelationship, name)
			}
			return b.fail(diag.ErrPropertyRelationship, rel.Range, search, msgPropertyRelationship, name)
		}
		tok := rel.Type.Token()
		if prop.IsList() && rel.Type == model.OneToOne {
			return b.fail(diag.ErrPropertyRelationshipType, rel.Range, search,
				msgPropertyRelationshipType, name, typeName, tok, explainListRelationship)
		}
		if !prop.IsList() && rel.Type != model.OneToOne {
			return b.fail(diag.ErrPropertyRelationshipType, rel.Range, search,
				msgPropertyRelationshipType, name, typeName, tok, explainOneRelationship)
		}
	}

	if prop.IsList() && !validElement(prop.ListType, prop.Type) {
		return b.fail(diag.ErrPropertyTypeAndListType, at, search,
			msgPropertyTypeAndListType, name, typeName, prop.ListType.Keyword)
	}

	if prop.Constant != (p.Value != nil) {
		missing := "value"
		if !prop.Constant {
			missing = `"const" or "constant" keyword`
		}
		return b.fail(diag.ErrConstantAndValue, at, search, msgConstantAndValue, missing, name)
	}
	if prop.Constant && p.Setter {
		return b.fail(diag.ErrConstantAndEncapsulation, at, search, msgConstantAndEncapsulation, name)
	}
	return nil
}

// buildValue checks a constant's literal and turns it into a model value.
func (b *builder) buildValue(p *syntax.Property, prop *model.Property) (*model.Value, error) {
	raw := strings.TrimSpace(p.Value.Text)
	at := syntax.Range(p.Value.Pos, p.Value.EndPos)
	tag := prop.Type.TypeName()

	if !prop.IsList() {
		if err := values.Check(tag, raw); err != nil {
			return nil, b.fail(diag.ErrConstantPropertyValue, at, diag.Token(raw),
				msgConstantPropertyValue, raw, prop.Name, tag, values.Reason(tag))
		}
		cv, err := values.Cty(tag, raw)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", prop.Name, err)
		}
		return &model.Value{
			Raw:     raw,
			Literal: values.Normalize(tag, raw),
			Expr:    enrich.ScalarInitializer(tag, raw),
			Cty:     cv,
		}, nil
	}

	shape := prop.ListType
	if err := values.Check(shape.Keyword, raw); err != nil {
		return nil, b.fail(diag.ErrConstantPropertyValue, at, diag.Token(raw),
			msgConstantPropertyValue, raw, prop.Name, shape.Keyword, values.Reason(shape.Keyword))
	}

	elems, err := enrich.NormalizeElements(tag, values.Elements(raw))
	if err != nil {
		var verr *values.Error
		if !errors.As(err, &verr) {
			return nil, fmt.Errorf("property %q: %w", prop.Name, err)
		}
		return nil, b.fail(diag.ErrListValue, elementRange(at, raw, verr.Literal), diag.Token(verr.Literal),
			msgListElements, verr.Literal, raw, shape.Keyword, prop.Name, tag, verr.Reason)
	}

	cv, err := values.CtyCollection(shape.Keyword, tag, elems)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", prop.Name, err)
	}
	return &model.Value{
		Raw:      raw,
		Literal:  enrich.Literal(elems),
		Elements: elems,
		Expr:     enrich.Initializer(tag, shape, elems),
		Cty:      cv,
	}, nil
}

// validElement reports whether t may be the element type of a property of the
// given shape. Generic shapes need reference types. The plain list shape maps
// to an array and also takes primitives. No shape holds keys.
func validElement(shape *catalog.PropertyType, t model.TypeRef) bool {
	if model.KindOf(t) == catalog.KindID {
		return false
	}
	return shape.Keyword == catalog.ShapeList || model.IsReferenceType(t)
}

// elementRange narrows a literal's range to the first occurrence of elem.
// Literals never span lines.
func elementRange(rng hcl.Range, raw, elem string) hcl.Range {
	i := strings.Index(raw, elem)
	if i < 0 || rng.Start.Line != rng.End.Line {
		return rng
	}
	start := rng.Start
	start.Byte += i
	start.Column += len([]rune(raw[:i]))
	end := start
	end.Byte += len(elem)
	end.Column += len([]rune(elem))
	return hcl.Range{Filename: rng.Filename, Start: start, End: end}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
