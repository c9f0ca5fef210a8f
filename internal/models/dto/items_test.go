package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"array", `["a","b","c"]`, []string{"a", "b", "c"}},
		{"array with padding", `[" a", "b ", ""]`, []string{"a", "b"}},
		{"comma string", `"a, b,c"`, []string{"a", "b", "c"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tags TagList
			require.NoError(t, json.Unmarshal([]byte(tc.in), &tags))
			require.Equal(t, TagList(tc.want), tags)
		})
	}
}

func TestPriceUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		set   bool
		value float64
	}{
		{"number", `79.99`, true, 79.99},
		{"integer", `5`, true, 5},
		{"numeric string", `"12.50"`, true, 12.5},
		{"null", `null`, false, 0},
		{"empty string", `""`, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			require.Equal(t, tc.set, p.Set)
			require.Equal(t, tc.value, p.Value)
		})
	}

	var p Price
	require.Error(t, json.Unmarshal([]byte(`"not a number"`), &p))
}

func TestPriceValid(t *testing.T) {
	require.True(t, Price{Value: 0, Set: true}.Valid())
	require.True(t, Price{Value: 10, Set: true}.Valid())
	require.False(t, Price{Value: -1, Set: true}.Valid())
	require.False(t, Price{}.Valid())
}
