package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/testutil"
	"github.com/stretchr/testify/require"
)

const acmeDatabase = `
	Database {
	    DB driver: postgresql;
	    DB name: "acme_db";
	    DB username: "admin1";
	    DB password: "Secret123";
	}
`

// Test for: a complete model with a database block generates
func TestScenarios_Acceptance(t *testing.T) {
	t.Parallel()

	testutil.RunSourceCases(t, []testutil.SourceCase{
		{
			Name: "person with database",
			Source: acmeDatabase + `
				class Person {
				    personId: identifier get;
				    name: string get;
				    Constructors {
				        empty;
				        default;
				    }
				}
			`,
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Equal(t, diag.StatusOK, resp.Status)
				person := testutil.Entity(t, resp, "Person")
				require.Equal(t, "personId", person.IDProperty)
				require.Equal(t, "acme_db", resp.Model.Database.Name)
				require.Equal(t, "PostgreSQL", resp.Model.Database.Dialect.DisplayName)
				require.Len(t, person.Constructors, 2)
				require.Equal(t, []string{"personId", "name"}, person.Constructors[1].Properties)
			},
		},
		{
			Name: "bidirectional relationship",
			Source: `
				class Customer {
				    customerId: id get;
				    orders: array Order 1..* + get;
				    Constructors {
				        empty;
				        default;
				    }
				}
				class Order {
				    orderId: id get;
				    customers: array Customer *..1 get;
				    Constructors {
				        empty;
				        default;
				    }
				}
			`,
			Validate: func(t *testing.T, resp *diag.Response) {
				customer := testutil.Entity(t, resp, "Customer")
				require.Len(t, customer.Relationships, 1)
				require.True(t, customer.Relationships[0].Relationship.Owner)
				order := testutil.Entity(t, resp, "Order")
				require.Equal(t, "@ManyToOne", order.Relationships[0].Relationship.Type.Annotation())
				require.Equal(t, "customers", order.Relationships[0].Name)
				require.Equal(t, "new ArrayList<Customer>()", order.Relationships[0].DefaultValue)
			},
		},
	})
}

// Test for: every rejected scenario reports the documented error type
func TestScenarios_Rejections(t *testing.T) {
	t.Parallel()

	class := func(props string) string {
		return "class Person {\n    personId: identifier get;\n" + props + "\n    Constructors {\n        empty;\n        default;\n    }\n}\n"
	}

	testutil.RunSourceCases(t, []testutil.SourceCase{
		{
			Name:    "two primary keys",
			Source:  class("    otherId: uniqueId get;"),
			ErrType: "multiple_id_property_error",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Equal(t, "personId, otherId", resp.SearchValue.String())
				require.Len(t, resp.Highlights, 2)
			},
		},
		{
			Name:    "constant without value",
			Source:  class("    const limit: int get;"),
			ErrType: "constant_and_value",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Contains(t, resp.ErrorMsg, `In this case, value is missing for "limit"`)
			},
		},
		{
			Name:    "value without constant",
			Source:  class("    limit: int get = 3;"),
			ErrType: "constant_and_value",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Contains(t, resp.ErrorMsg, `In this case, "const" or "constant" keyword is missing`)
			},
		},
		{
			Name:    "database name with leading digit",
			Source:  strings.Replace(acmeDatabase, "acme_db", "1bad", 1) + class(""),
			ErrType: "database_name_error",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Equal(t, "1bad", resp.SearchValue.String())
			},
		},
		{
			Name:    "invalid list element",
			Source:  class("    const ratios: array Float = [1.5f, abc];"),
			ErrType: "list_value_error",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Equal(t, "abc", resp.SearchValue.String())
				require.Contains(t, resp.ErrorMsg, `"abc"`)
			},
		},
		{
			Name:    "unknown type",
			Source:  class("    size: Sizeish get;"),
			ErrType: "unknown_object_error",
		},
		{
			Name:    "reserved id in any case",
			Source:  class("    ID: String get;"),
			ErrType: "id_property_name_error",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Contains(t, resp.ErrorMsg, `"personId"`)
			},
		},
		{
			Name:    "constant list of keys",
			Source:  class("    const ids: list id = [1];"),
			ErrType: "property_type_and_list_type_error",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Equal(t, "ids", resp.SearchValue.String())
			},
		},
		{
			Name:    "plain list of primitives returned by a method",
			Source:  strings.Replace(class(""), "    }\n}\n", "    }\n    Methods {\n        list int scores();\n    }\n}\n", 1),
			ErrType: "method_type_in_list_type_error",
		},
		{
			Name: "relationship owned from both sides",
			Source: class("    orders: array Order 1..* + get;") +
				"class Order {\n    orderId: id get;\n    people: array Person *..1 + get;\n    Constructors {\n        empty;\n        default;\n    }\n}\n",
			ErrType: "entity_relationship_owner_error",
			Validate: func(t *testing.T, resp *diag.Response) {
				require.Len(t, resp.Highlights, 2)
			},
		},
	})
}
