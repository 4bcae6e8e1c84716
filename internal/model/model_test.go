package model_test

import (
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRelationshipType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token      string
		want       model.RelationshipType
		str        string
		complement model.RelationshipType
		annotation string
	}{
		{"1..1", model.OneToOne, "1-1", model.OneToOne, "@OneToOne"},
		{"1..*", model.OneToMany, "1-n", model.ManyToOne, "@OneToMany"},
		{"*..1", model.ManyToOne, "n-1", model.OneToMany, "@ManyToOne"},
		{"*..*", model.ManyToMany, "n-n", model.ManyToMany, "@ManyToMany"},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()

			rt, err := model.ParseRelationshipType(tc.token)

			require.NoError(t, err)
			require.Equal(t, tc.want, rt)
			require.Equal(t, tc.str, rt.String())
			require.Equal(t, tc.token, rt.Token())
			require.Equal(t, tc.complement, rt.Complement())
			require.Equal(t, tc.annotation, rt.Annotation())
		})
	}

	_, err := model.ParseRelationshipType("1..n")
	require.Error(t, err)
}

func TestTypeRef(t *testing.T) {
	t.Parallel()

	id, ok := catalog.Lookup("identifier")
	require.True(t, ok)
	integer, ok := catalog.Lookup("Integer")
	require.True(t, ok)
	primitive, ok := catalog.Lookup("int")
	require.True(t, ok)

	require.True(t, model.Builtin{PropertyType: id}.IsPrimaryKey())
	require.False(t, model.EntityRef{Entity: "Order"}.IsPrimaryKey())

	require.True(t, model.IsReferenceType(model.Builtin{PropertyType: integer}))
	require.True(t, model.IsReferenceType(model.EntityRef{Entity: "Order"}))
	require.False(t, model.IsReferenceType(model.Builtin{PropertyType: primitive}))

	require.True(t, model.IsEntity(model.EntityRef{Entity: "Order"}))
	require.Equal(t, catalog.Kind(0), model.KindOf(model.EntityRef{Entity: "Order"}))
	require.Equal(t, "Order", model.EntityRef{Entity: "Order"}.TypeName())
}

func TestDialectFor(t *testing.T) {
	t.Parallel()

	d, ok := model.DialectFor("postgresql")
	require.True(t, ok)
	require.Equal(t, "PostgreSQL", d.DisplayName)

	_, ok = model.DialectFor("sqlite")
	require.False(t, ok)
}

func TestEntityLookups(t *testing.T) {
	t.Parallel()

	person := &model.Entity{Name: "Person", Properties: []*model.Property{{Name: "personId"}, {Name: "name"}}}
	m := &model.EntityModel{Entities: []*model.Entity{person}}

	require.Same(t, person, m.Entity("Person"))
	require.Nil(t, m.Entity("Order"))
	require.Equal(t, "name", person.Property("name").Name)
	require.Nil(t, person.Property("age"))
}
