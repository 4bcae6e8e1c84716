// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the enriched, read-only representation of a validated
// JSD-MBRS source file. It is the hand-off point between the semantic pass and
// everything downstream (template rendering, export, editor integrations).
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - EntityModel: The root. It holds every declared Entity in source order,
//     the optional Database block and the project facts supplied by the caller
//     (build tool, project name, package tree, application file name).
//
//   - Entity: A user-declared class with its Properties, Constructors and
//     Methods, plus the derived IDProperty and Relationships.
//
//   - Property: A typed field. Its Type is a TypeRef, a closed sum of Builtin
//     (a catalog type) and EntityRef (another entity). Constant properties
//     carry a Value with the raw literal, the normalised elements, the backend
//     initializer expression and a typed cty.Value.
//
//   - Constructor and Method: Members of an entity. Constructors carry their
//     canonical Signature; the default constructor's parameter list is
//     computed, never authored.
//
// Every node records the hcl.Range it was declared at, so that later stages can
// point back at the source.
//
// Nodes are built once by the semantic package and are not mutated afterwards.
// Callers must treat every field as read-only.
package model
