package version

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pvchecker/pv-checker/internal/errors"
)

func TestCommit_String(t *testing.T) {
	t.Parallel()

	c := NewCommit("abc123", "2021-01-01T00:00:00Z")
	require.Equal(t, "sha: abc123, date: 2021-01-01T00:00:00Z", c.String())
	require.Equal(t, SchemeCommit, c.Scheme())
}

func TestTag_String(t *testing.T) {
	t.Parallel()

	tag := NewTag("v1.2.3")
	require.Equal(t, "tag version: v1.2.3", tag.String())
	require.Equal(t, SchemeTag, tag.Scheme())
}

func TestInfo_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		info     Info
		expected Fields
	}{
		{
			name: "commit",
			info: NewCommit("abc123", "2021-01-01T00:00:00Z"),
			expected: Fields{
				{Name: "sha", Value: "abc123"},
				{Name: "date", Value: "2021-01-01T00:00:00Z"},
			},
		},
		{
			name:     "tag",
			info:     NewTag("v1.2.3"),
			expected: Fields{{Name: "tag_version", Value: "v1.2.3"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, tc.info.Fields())
		})
	}
}

func TestFields_Get(t *testing.T) {
	t.Parallel()

	v, ok := NewCommit("abc123", "2021-01-01T00:00:00Z").Fields().Get("date")
	require.True(t, ok)
	require.Equal(t, "2021-01-01T00:00:00Z", v)

	v, ok = NewTag("v2").Fields().Get("tag_version")
	require.True(t, ok)
	require.Equal(t, "v2", v)

	_, ok = NewTag("v2").Fields().Get("sha")
	require.False(t, ok)
}

func TestFields_MarshalJSON_PreservesOrder(t *testing.T) {
	t.Parallel()

	// "sha" sorts after "date", so a map would reorder these.
	data, err := json.Marshal(NewCommit("abc123", "2021-01-01T00:00:00Z").Fields())
	require.NoError(t, err)
	require.Equal(t, `{"sha":"abc123","date":"2021-01-01T00:00:00Z"}`, string(data))

	data, err = json.Marshal(Fields(nil))
	require.NoError(t, err)
	require.Equal(t, "null", string(data))
}

func TestFields_MarshalYAML_PreservesOrder(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(NewCommit("abc123", "2021-01-01T00:00:00Z").Fields())
	require.NoError(t, err)
	require.Equal(t, "sha: abc123\ndate: \"2021-01-01T00:00:00Z\"\n", string(data))
}

func TestParseScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input       string
		expected    Scheme
		expectError bool
	}{
		{input: "commit", expected: SchemeCommit},
		{input: "tag", expected: SchemeTag},
		{input: "", expectError: true},
		{input: "Tag", expectError: true},
		{input: " tag", expectError: true},
		{input: "release", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseScheme(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, errors.ErrInvalidVersionScheme)

				var schemeErr *errors.VersionSchemeError
				require.ErrorAs(t, err, &schemeErr)
				require.Equal(t, tc.input, schemeErr.Value)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestFields_Schema(t *testing.T) {
	t.Parallel()

	var _ huma.SchemaProvider = Fields{}

	registry := huma.NewMapRegistry("#/components/schemas/", huma.DefaultSchemaNamer)
	s := registry.Schema(reflect.TypeOf(Fields{}), true, "")

	require.Equal(t, huma.TypeObject, s.Type)
	require.Equal(t, &huma.Schema{Type: huma.TypeString}, s.AdditionalProperties)
}
