// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package export

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// HCL renders m as an HCL document. Constant values keep their cty type, so
// numbers and booleans stay unquoted.
func HCL(m *model.EntityModel) []byte {
	doc := NewDocument(m)
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	project := root.AppendNewBlock("project", nil).Body()
	setString(project, "name", doc.Project.Name)
	setString(project, "build_tool", doc.Project.BuildTool)
	setString(project, "package_tree", doc.Project.PackageTree)
	setString(project, "app_file_name", doc.Project.AppFileName)
	project.SetAttributeValue("add_database_dependency", cty.BoolVal(doc.Project.AddDatabaseDependency))

	if db := doc.Database; db != nil {
		root.AppendNewline()
		body := root.AppendNewBlock("database", []string{db.Driver}).Body()
		setString(body, "name", db.Name)
		setString(body, "display_name", db.DisplayName)
		setString(body, "url", db.URL)
		setString(body, "driver_class", db.DriverClass)
		setString(body, "dialect", db.Dialect)
		setString(body, "username", db.Username)
		setString(body, "password", db.Password)
	}

	for i, e := range m.Entities {
		root.AppendNewline()
		writeEntity(root, e, doc.Entities[i])
	}
	return f.Bytes()
}

func writeEntity(root *hclwrite.Body, e *model.Entity, flat Entity) {
	body := root.AppendNewBlock("entity", []string{e.Name}).Body()
	body.SetAttributeValue("id_property", cty.StringVal(flat.IDProperty))
	body.SetAttributeValue("to_string", cty.BoolVal(flat.ToString))
	if len(flat.Relationships) > 0 {
		body.SetAttributeValue("relationships", stringList(flat.Relationships))
	}

	for i, p := range e.Properties {
		fp := flat.Properties[i]
		pb := body.AppendNewBlock("property", []string{p.Name}).Body()
		pb.SetAttributeValue("type", cty.StringVal(fp.Type))
		pb.SetAttributeValue("java_type", cty.StringVal(fp.JavaType))
		setString(pb, "list_type", fp.ListType)
		if fp.PrimaryKey {
			pb.SetAttributeValue("primary_key", cty.True)
		}
		pb.SetAttributeValue("getter", cty.BoolVal(fp.Getter))
		pb.SetAttributeValue("setter", cty.BoolVal(fp.Setter))
		if p.Value != nil {
			pb.SetAttributeValue("constant", cty.True)
			if !p.Value.Cty.IsNull() {
				pb.SetAttributeValue("value", p.Value.Cty)
			}
			pb.SetAttributeValue("initializer", cty.StringVal(p.Value.Expr))
		}
		pb.SetAttributeValue("default_value", cty.StringVal(fp.DefaultValue))
		if r := fp.Relationship; r != nil {
			rb := pb.AppendNewBlock("relationship", nil).Body()
			rb.SetAttributeValue("type", cty.StringVal(r.Type))
			rb.SetAttributeValue("owner", cty.BoolVal(r.Owner))
			rb.SetAttributeValue("annotation", cty.StringVal(r.Annotation))
		}
	}

	for _, c := range flat.Constructors {
		cb := body.AppendNewBlock("constructor", []string{c.Kind}).Body()
		cb.SetAttributeValue("properties", stringList(c.Properties))
	}

	for _, m := range flat.Methods {
		mb := body.AppendNewBlock("method", []string{m.Name}).Body()
		if len(m.Modifiers) > 0 {
			mb.SetAttributeValue("modifiers", stringList(m.Modifiers))
		}
		mb.SetAttributeValue("returns", cty.StringVal(m.Returns))
		for _, prm := range m.Params {
			mb.AppendNewBlock("param", []string{prm.Name}).Body().SetAttributeValue("type", cty.StringVal(prm.Type))
		}
	}
}

func setString(body *hclwrite.Body, name, v string) {
	if v != "" {
		body.SetAttributeValue(name, cty.StringVal(v))
	}
}

func stringList(vs []string) cty.Value {
	if len(vs) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = cty.StringVal(v)
	}
	return cty.ListVal(out)
}
