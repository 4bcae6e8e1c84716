// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package semantic

import (
	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/model"
)

// checkRelationships requires every relationship to be declared from both
// sides, with exactly one owner and complementary multiplicities.
func (b *builder) checkRelationships() error {
	for _, e := range b.model.Entities {
		for _, p := range e.Relationships {
			ref, ok := p.Type.(model.EntityRef)
			if !ok {
				continue
			}
			target := b.model.Entity(ref.Entity)
			if target == nil {
				continue
			}

			q := reciprocal(e.Name, p, target)
			if q == nil {
				return b.fail(diag.ErrEntityRelationships, p.Range,
					diag.Scoped(
						diag.ScopedToken{Class: e.Name, Token: p.Name},
						diag.ScopedToken{Class: target.Name, Token: target.Name},
					),
					msgEntityRelationshipProp, target.Name, e.Name)
			}

			pair := diag.Scoped(
				diag.ScopedToken{Class: e.Name, Token: p.Name},
				diag.ScopedToken{Class: target.Name, Token: q.Name},
			)
			if p.Relationship.Owner == q.Relationship.Owner {
				return b.fail(diag.ErrEntityRelationshipOwner, p.Relationship.Range, pair,
					msgEntityRelationshipOwn, e.Name, target.Name)
			}
			if q.Relationship.Type != p.Relationship.Type.Complement() {
				return b.fail(diag.ErrEntityRelationshipType, p.Relationship.Range, pair,
					msgEntityRelationshipType, e.Name, p.Relationship.Type, target.Name, q.Relationship.Type)
			}
		}
	}
	return nil
}

// reciprocal finds the property of target that points back at owner. A
// candidate that forms a valid pair with p wins over the first candidate.
func reciprocal(owner string, p *model.Property, target *model.Entity) *model.Property {
	var first *model.Property
	for _, q := range target.Relationships {
		if q == p {
			continue
		}
		ref, ok := q.Type.(model.EntityRef)
		if !ok || ref.Entity != owner {
			continue
		}
		if q.Relationship.Owner != p.Relationship.Owner && q.Relationship.Type == p.Relationship.Type.Complement() {
			return q
		}
		if first == nil {
			first = q
		}
	}
	return first
}
