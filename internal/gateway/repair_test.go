package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/common"
)

func TestRepairToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "already valid",
			in:   `{"invoice_number":"INV-1","total":12.5}`,
			want: `{"invoice_number":"INV-1","total":12.5}`,
		},
		{
			name: "markdown fenced",
			in:   "Here you go:\n```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "prose around object",
			in:   `The extracted data is {"a":1} as requested.`,
			want: `{"a":1}`,
		},
		{
			name: "trailing comma",
			in:   `{"a":1,"b":2,}`,
			want: `{"a":1,"b":2}`,
		},
		{
			name: "truncated mid string",
			in:   `{"vendor":"Acme Corp","address":"123 Main St`,
			want: `{"vendor":"Acme Corp","address":"123 Main St"}`,
		},
		{
			name: "truncated after comma",
			in:   `{"vendor":"Acme","total":10.5,`,
			want: `{"vendor":"Acme","total":10.5}`,
		},
		{
			name: "truncated dangling key",
			in:   `{"vendor":"Acme","total":`,
			want: `{"vendor":"Acme"}`,
		},
		{
			name: "truncated nested object",
			in:   `{"vendor":{"name":"Acme","city":"Ber`,
			want: `{"vendor":{"name":"Acme","city":"Ber"}}`,
		},
		{
			name: "truncated array",
			in:   `{"items":[{"sku":"A-1"},{"sku":"B-2"`,
			want: `{"items":[{"sku":"A-1"},{"sku":"B-2"}]}`,
		},
		{
			name: "truncated mid number keeps digits seen so far",
			in:   `{"vendor":"Acme","lines":[{"qty":2,"price":1`,
			want: `{"vendor":"Acme","lines":[{"qty":2,"price":1}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepairToJSON(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestRepairToJSONRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "no json here", "I could not read the document."} {
		_, err := RepairToJSON(in)
		assert.ErrorIs(t, err, common.ErrInvalidModelOutput, "input %q", in)
	}
}

func TestRepairToJSONGrowingPartials(t *testing.T) {
	full := `{"vendor":"Acme Corp","invoice_number":"INV-42","total":118.8,"lines":[{"sku":"A","qty":2},{"sku":"B","qty":1}]}`
	// every prefix that contains at least one complete member should repair
	// into valid JSON
	for i := 12; i < len(full); i++ {
		got, err := RepairToJSON(full[:i])
		if err != nil {
			continue
		}
		var v map[string]any
		require.NoError(t, json.Unmarshal(got, &v), "prefix %d repaired to invalid JSON: %s", i, got)
	}
	got, err := RepairToJSON(full)
	require.NoError(t, err)
	assert.JSONEq(t, full, string(got))
}
