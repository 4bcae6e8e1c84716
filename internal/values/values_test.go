package values_test

import (
	"testing"

	"github.com/specialistvlad/jsdmbrs/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCheck_Literals(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tag     string
		literal string
		valid   bool
	}{
		{"byte", "127", true},
		{"byte", "128", false},
		{"Byte", "-128", true},
		{"short", "-32769", false},
		{"int", "2147483647", true},
		{"Integer", "2147483648", false},
		{"int", "abc", false},
		{"long", "10L", true},
		{"Long", "10l", true},
		{"long", "10", false},
		{"long", "9223372036854775808L", false},
		{"long", "L", false},
		{"float", "1.5F", true},
		{"Float", "2f", true},
		{"float", "1.5", false},
		{"float", "abc", false},
		{"float", "infF", false},
		{"double", "3.14D", true},
		{"double", "3.14F", false},
		{"char", "'a'", true},
		{"Character", "'ab'", false},
		{"char", "a", false},
		{"boolean", "TRUE", true},
		{"Boolean", "false", true},
		{"boolean", "yes", false},
		{"string", `"hello"`, true},
		{"String", `hello`, false},
		{"str", `"`, false},
		{"date", "2024-02-29", true},
		{"date", "2023-02-29", false},
		{"date", "2024-1-5", true},
		{"date", "24-01-05", false},
		{"time", "9:5:0", true},
		{"datetime", "2024-1-5 9:30:00", true},
		{"int", "08", true},
		{"time", "23:59:59", true},
		{"time", "24:00:00", false},
		{"datetime", "2024-01-01 10:00:00", true},
		{"datetime", "2024-01-01T10:00:00", false},
		{"array", "[1, 2]", true},
		{"list", "[]", true},
		{"hashset", "1, 2", false},
	}

	for _, tc := range testCases {
		t.Run(tc.tag+"/"+tc.literal, func(t *testing.T) {
			err := values.Check(tc.tag, tc.literal)
			if tc.valid {
				require.NoError(t, err)
				return
			}
			var verr *values.Error
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.tag, verr.Tag)
			require.Equal(t, values.Reason(tc.tag), verr.Reason)
		})
	}
}

func TestCheck_TagWithoutLiteralForm(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"id", "identifier", "Person"} {
		var err error
		require.NotPanics(t, func() { err = values.Check(tag, "1") }, tag)

		var verr *values.Error
		require.ErrorAs(t, err, &verr, tag)
		require.Equal(t, tag+" values cannot be written as literals", verr.Reason)
	}
}

func TestElements_SplitsTopLevelCommas(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"1", "2", "3"}, values.Elements("[1, 2, 3]"))
	require.Equal(t, []string{`"a, b"`, `"c"`}, values.Elements(`["a, b", "c"]`))
	require.Equal(t, []string{"','", "'x'"}, values.Elements("[',', 'x']"))
	require.Nil(t, values.Elements("[ ]"))
	require.Equal(t, []string{"1.5F", "abc"}, values.Elements("[1.5F,abc]"))
}

func TestNormalize_IsStableUnderCheck(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"long":    "5l",
		"Float":   "1.25f",
		"double":  "2d",
		"boolean": "True",
		"int":     "42",
		"string":  `"x"`,
	}
	for tag, lit := range testCases {
		require.NoError(t, values.Check(tag, lit))
		norm := values.Normalize(tag, lit)
		assert.NoError(t, values.Check(tag, norm), "tag %s", tag)
		assert.Equal(t, norm, values.Normalize(tag, norm), "tag %s", tag)
	}
	assert.Equal(t, "5L", values.Normalize("long", "5l"))
	assert.Equal(t, "true", values.Normalize("boolean", "True"))
}

func TestNormalize_CanonicalForms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tag     string
		literal string
		want    string
	}{
		{"int", "08", "8"},
		{"Integer", "+42", "42"},
		{"byte", "-007", "-7"},
		{"long", "0010l", "10L"},
		{"int", "-0", "0"},
		{"date", "2024-1-5", "2024-01-05"},
		{"time", "9:5:0", "09:05:00"},
		{"datetime", "2024-1-5 9:30:00", "2024-01-05 09:30:00"},
		{"date", "2024-02-29", "2024-02-29"},
	}
	for _, tc := range testCases {
		t.Run(tc.tag+"/"+tc.literal, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, values.Check(tc.tag, tc.literal))
			require.Equal(t, tc.want, values.Normalize(tc.tag, tc.literal))
		})
	}
}

func TestCty_Conversions(t *testing.T) {
	t.Parallel()

	v, err := values.Cty("long", "7L")
	require.NoError(t, err)
	require.True(t, v.RawEquals(cty.NumberIntVal(7)))

	v, err = values.Cty("String", `"hi"`)
	require.NoError(t, err)
	require.Equal(t, "hi", v.AsString())

	v, err = values.Cty("Boolean", "TRUE")
	require.NoError(t, err)
	require.True(t, v.True())

	v, err = values.Cty("date", "2024-1-5")
	require.NoError(t, err)
	require.Equal(t, "2024-01-05", v.AsString())

	_, err = values.Cty("int", "x")
	require.Error(t, err)
}

func TestCtyCollection_Shapes(t *testing.T) {
	t.Parallel()

	list, err := values.CtyCollection("list", "int", []string{"1", "2", "3"})
	require.NoError(t, err)
	require.True(t, list.Type().IsListType())
	require.Equal(t, 3, list.LengthInt())

	set, err := values.CtyCollection("hashset", "Integer", []string{"1", "1"})
	require.NoError(t, err)
	require.True(t, set.Type().IsSetType())
	require.Equal(t, 1, set.LengthInt())

	m, err := values.CtyCollection("treemap", "String", []string{`"a"`, `"b"`})
	require.NoError(t, err)
	require.True(t, m.Type().IsMapType())
	require.Equal(t, "b", m.Index(cty.StringVal("1")).AsString())

	empty, err := values.CtyCollection("array", "Double", nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.LengthInt())

	_, err = values.CtyCollection("array", "Float", []string{"1.5F", "abc"})
	require.Error(t, err)
}
