// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// EntityModel is the root of an enriched source file.
type EntityModel struct {
	Entities []*Entity
	Database *Database

	BuildTool             string
	ProjectName           string
	PackageTree           string
	AppFileName           string
	AddDatabaseDependency bool
}

// Entity returns the entity with the given name, or nil.
func (m *EntityModel) Entity(name string) *Entity {
	for _, e := range m.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}
