// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package export serialises an enriched model for the template renderer. The
// model is first flattened into a Document of plain values, which is then
// written as JSON, YAML or HCL.
package export

import (
	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/enrich"
	"github.com/specialistvlad/jsdmbrs/internal/model"
)

// Document is the serialisable form of an EntityModel.
type Document struct {
	Project  Project   `json:"project" yaml:"project"`
	Database *Database `json:"database,omitempty" yaml:"database,omitempty"`
	Entities []Entity  `json:"entities" yaml:"entities"`
}

// Project carries the target project facts.
type Project struct {
	Name                  string `json:"name,omitempty" yaml:"name,omitempty"`
	BuildTool             string `json:"buildTool,omitempty" yaml:"build_tool,omitempty"`
	PackageTree           string `json:"packageTree,omitempty" yaml:"package_tree,omitempty"`
	AppFileName           string `json:"appFileName,omitempty" yaml:"app_file_name,omitempty"`
	AddDatabaseDependency bool   `json:"addDatabaseDependency" yaml:"add_database_dependency"`
}

// Database is the database block with its dialect.
type Database struct {
	Driver      string `json:"driver" yaml:"driver"`
	DisplayName string `json:"displayName" yaml:"display_name"`
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	DriverClass string `json:"driverClass" yaml:"driver_class"`
	Dialect     string `json:"dialect" yaml:"dialect"`
	Username    string `json:"username,omitempty" yaml:"username,omitempty"`
	Password    string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Entity is one class.
type Entity struct {
	Name          string        `json:"name" yaml:"name"`
	IDProperty    string        `json:"idProperty" yaml:"id_property"`
	ToString      bool          `json:"toString" yaml:"to_string"`
	Properties    []Property    `json:"properties" yaml:"properties"`
	Constructors  []Constructor `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	Methods       []Method      `json:"methods,omitempty" yaml:"methods,omitempty"`
	Relationships []string      `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// Property is one field.
type Property struct {
	Name         string        `json:"name" yaml:"name"`
	Type         string        `json:"type" yaml:"type"`
	JavaType     string        `json:"javaType" yaml:"java_type"`
	ListType     string        `json:"listType,omitempty" yaml:"list_type,omitempty"`
	PrimaryKey   bool          `json:"primaryKey,omitempty" yaml:"primary_key,omitempty"`
	Constant     bool          `json:"constant,omitempty" yaml:"constant,omitempty"`
	Getter       bool          `json:"getter" yaml:"getter"`
	Setter       bool          `json:"setter" yaml:"setter"`
	Value        string        `json:"value,omitempty" yaml:"value,omitempty"`
	Literal      string        `json:"literal,omitempty" yaml:"literal,omitempty"`
	Elements     []string      `json:"elements,omitempty" yaml:"elements,omitempty"`
	DefaultValue string        `json:"defaultValue" yaml:"default_value"`
	Relationship *Relationship `json:"relationship,omitempty" yaml:"relationship,omitempty"`
}

// Relationship is the association carried by a property.
type Relationship struct {
	Type       string `json:"type" yaml:"type"`
	Owner      bool   `json:"owner" yaml:"owner"`
	Annotation string `json:"annotation" yaml:"annotation"`
}

// Constructor is one constructor.
type Constructor struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Method is one method stub.
type Method struct {
	Name      string   `json:"name" yaml:"name"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Returns   string   `json:"returns" yaml:"returns"`
	Params    []Param  `json:"params,omitempty" yaml:"params,omitempty"`
}

// Param is one method parameter.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// NewDocument flattens m.
func NewDocument(m *model.EntityModel) *Document {
	doc := &Document{
		Project: Project{
			Name:                  m.ProjectName,
			BuildTool:             m.BuildTool,
			PackageTree:           m.PackageTree,
			AppFileName:           m.AppFileName,
			AddDatabaseDependency: m.AddDatabaseDependency,
		},
		Entities: make([]Entity, 0, len(m.Entities)),
	}

	if db := m.Database; db != nil {
		doc.Database = &Database{
			Driver:      db.Driver,
			DisplayName: db.Dialect.DisplayName,
			Name:        db.Name,
			URL:         db.Dialect.URL + db.Name,
			DriverClass: db.Dialect.DriverClass,
			Dialect:     db.Dialect.Hibernate,
		}
		if c := db.Credentials; c != nil {
			doc.Database.Username = c.Username
			doc.Database.Password = c.Password
		}
	}

	for _, e := range m.Entities {
		doc.Entities = append(doc.Entities, newEntity(e))
	}
	return doc
}

func newEntity(e *model.Entity) Entity {
	out := Entity{
		Name:       e.Name,
		IDProperty: e.IDProperty,
		ToString:   e.ToString,
		Properties: make([]Property, 0, len(e.Properties)),
	}
	for _, p := range e.Properties {
		out.Properties = append(out.Properties, newProperty(p))
	}
	for _, c := range e.Constructors {
		out.Constructors = append(out.Constructors, Constructor{
			Kind:       constructorKind(c),
			Properties: c.Properties,
		})
	}
	for _, m := range e.Methods {
		out.Methods = append(out.Methods, newMethod(m))
	}
	for _, r := range e.Relationships {
		out.Relationships = append(out.Relationships, r.Name)
	}
	return out
}

func newProperty(p *model.Property) Property {
	out := Property{
		Name:         p.Name,
		Type:         p.Type.TypeName(),
		JavaType:     javaType(p.Type, p.ListType),
		PrimaryKey:   p.PrimaryKey,
		Constant:     p.Constant,
		DefaultValue: p.DefaultValue,
	}
	if p.ListType != nil {
		out.ListType = p.ListType.Keyword
	}
	if enc := p.Encapsulation; enc != nil {
		out.Getter, out.Setter = enc.Getter, enc.Setter
	}
	if v := p.Value; v != nil {
		out.Value = v.Expr
		out.Literal = v.Literal
		out.Elements = v.Elements
	}
	if r := p.Relationship; r != nil {
		out.Relationship = &Relationship{
			Type:       r.Type.String(),
			Owner:      r.Owner,
			Annotation: r.Type.Annotation(),
		}
	}
	return out
}

func newMethod(m *model.Method) Method {
	out := Method{Name: m.Name, Modifiers: m.Modifiers, Returns: "void"}
	if r := m.Return; r != nil && !r.Void {
		out.Returns = typeKey(r.Type, r.ListType)
	}
	for _, p := range m.Params {
		out.Params = append(out.Params, Param{Name: p.Name, Type: typeKey(p.Type, p.ListType)})
	}
	return out
}

func constructorKind(c *model.Constructor) string {
	switch {
	case c.Empty:
		return "empty"
	case c.Default:
		return "default"
	}
	return "custom"
}

// javaType is the backend element type; collection elements are boxed.
// javaType is the element type of collections and the type of scalars. Only
// generic shapes box primitives.
func javaType(t model.TypeRef, shape *catalog.PropertyType) string {
	jt := enrich.JavaType(t)
	if shape != nil && shape.Keyword != catalog.ShapeList {
		return catalog.BoxedName(jt)
	}
	return jt
}

func typeKey(t model.TypeRef, shape *catalog.PropertyType) string {
	if shape != nil {
		return shape.Keyword + " " + t.TypeName()
	}
	return t.TypeName()
}
