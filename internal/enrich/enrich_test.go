package enrich_test

import (
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/catalog"
	"github.com/specialistvlad/jsdmbrs/internal/enrich"
	"github.com/specialistvlad/jsdmbrs/internal/model"
	"github.com/specialistvlad/jsdmbrs/internal/values"
	"github.com/stretchr/testify/require"
)

func builtin(kw string) model.Builtin {
	return model.Builtin{PropertyType: catalog.Builtins()[kw]}
}

func shape(kw string) *catalog.PropertyType {
	return catalog.Builtins()[kw]
}

func TestInitializer_ListOfIntKeepsElementsInOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	elems, err := enrich.NormalizeElements("int", values.Elements("[1, 2, 3]"))
	require.NoError(t, err)

	// --- Act ---
	expr := enrich.Initializer("int", shape("list"), elems)

	// --- Assert ---
	require.Equal(t, []string{"1", "2", "3"}, elems)
	require.Equal(t, "new int[] {1, 2, 3}", expr)
}

func TestInitializer_Shapes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		shape string
		tag   string
		elems []string
		want  string
	}{
		{"array", "Integer", []string{"1", "2"}, "new ArrayList<Integer>(List.of(1, 2))"},
		{"linked", "String", []string{`"a"`}, `new LinkedList<String>(List.of("a"))`},
		{"hashset", "Long", []string{"1L"}, "new HashSet<Long>(List.of(1L))"},
		{"hashmap", "Boolean", []string{"true", "false"}, `new HashMap<String, Boolean>(Map.ofEntries(Map.entry("0", true), Map.entry("1", false)))`},
		{"treemap", "Byte", []string{"7"}, `new TreeMap<String, Byte>(Map.ofEntries(Map.entry("0", (byte) 7)))`},
		{"array", "string", nil, "new ArrayList<String>()"},
		{"list", "int", nil, "new int[] {}"},
		{"list", "Long", []string{"1L", "2L"}, "new Long[] {1L, 2L}"},
		{"list", "date", []string{"2024-01-05"}, `new LocalDate[] {LocalDate.parse("2024-01-05")}`},
	}
	for _, tc := range testCases {
		t.Run(tc.shape+"/"+tc.tag, func(t *testing.T) {
			require.Equal(t, tc.want, enrich.Initializer(tc.tag, shape(tc.shape), tc.elems))
		})
	}
}

func TestLiteral_RoundTripStaysValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tag     string
		literal string
	}{
		{"Long", "[1l, 2L]"},
		{"Float", "[1.5f, 2F]"},
		{"Boolean", "[TRUE, false]"},
		{"String", `["a, b", "c"]`},
		{"Character", "['x', ',']"},
		{"int", "[]"},
		{"int", "[007, +5]"},
	}
	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			elems, err := enrich.NormalizeElements(tc.tag, values.Elements(tc.literal))
			require.NoError(t, err)

			again := enrich.Literal(elems)
			require.NoError(t, values.Check("array", again))
			elems2, err := enrich.NormalizeElements(tc.tag, values.Elements(again))
			require.NoError(t, err)
			require.Equal(t, again, enrich.Literal(elems2))
			require.Equal(t, len(elems), len(elems2))
			for i := range elems {
				require.Equal(t, elems[i], elems2[i])
			}
		})
	}
}

func TestNormalizeElements_StopsAtFirstInvalid(t *testing.T) {
	t.Parallel()

	_, err := enrich.NormalizeElements("Float", []string{"1.5F", "abc", "nope"})
	var verr *values.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "abc", verr.Literal)
}

func TestScalarInitializer(t *testing.T) {
	t.Parallel()

	require.Equal(t, "10L", enrich.ScalarInitializer("long", "10l"))
	require.Equal(t, "(short) 3", enrich.ScalarInitializer("short", "3"))
	require.Equal(t, `LocalDate.parse("2024-01-02")`, enrich.ScalarInitializer("date", "2024-01-02"))
	require.Equal(t, `LocalDateTime.parse("2024-01-02T10:11:12")`, enrich.ScalarInitializer("datetime", "2024-01-02 10:11:12"))
	require.Equal(t, "true", enrich.ScalarInitializer("boolean", "True"))
	require.Equal(t, "8", enrich.ScalarInitializer("int", "08"))
	require.Equal(t, "(byte) -7", enrich.ScalarInitializer("byte", "-07"))
	require.Equal(t, `LocalDate.parse("2024-01-05")`, enrich.ScalarInitializer("date", "2024-1-5"))
}

func TestDefaultValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0L", enrich.DefaultValue(builtin("long"), nil))
	require.Equal(t, "new Order()", enrich.DefaultValue(model.EntityRef{Entity: "Order"}, nil))
	require.Equal(t, "new ArrayList<Order>()", enrich.DefaultValue(model.EntityRef{Entity: "Order"}, shape("array")))
	require.Equal(t, "new HashSet<String>()", enrich.DefaultValue(builtin("str"), shape("hashset")))
	require.Equal(t, "new int[] {}", enrich.DefaultValue(builtin("int"), shape("list")))
	require.Equal(t, "new String[] {}", enrich.DefaultValue(builtin("str"), shape("list")))
	require.Equal(t, "new Order[] {}", enrich.DefaultValue(model.EntityRef{Entity: "Order"}, shape("list")))
	require.Equal(t, "UUID.randomUUID()", enrich.DefaultValue(builtin("uniqueId"), nil))
}

func TestDerivedEntityFacts(t *testing.T) {
	t.Parallel()

	props := []*model.Property{
		{Name: "personId", PrimaryKey: true},
		{Name: "max", Constant: true},
		{Name: "orders", Relationship: &model.Relationship{Type: model.OneToMany}},
		{Name: "name"},
	}

	require.Equal(t, []string{"personId", "orders", "name"}, enrich.DefaultConstructorParams(props))
	require.Equal(t, "personId", enrich.IDProperty(props))
	require.Len(t, enrich.Relationships(props), 1)

	require.Equal(t, "default", enrich.Signature(false, true, nil, props))
	require.Equal(t, "empty", enrich.Signature(true, false, nil, props))
	require.Equal(t, "empty", enrich.Signature(false, false, nil, props))
	require.Equal(t, "default", enrich.Signature(false, false, []string{"name", "orders", "personId"}, props))
	require.Equal(t, "[name, orders]", enrich.Signature(false, false, []string{"orders", "name"}, props))
}
