package jsonb_test

import (
	"hotelsphere/shared/jsonb"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected jsonb.List[item]
		wantErr  bool
	}{
		{name: "bytes", src: []byte(`[{"id":"c1","amount":15000}]`), expected: jsonb.List[item]{{ID: "c1", Amount: 15000}}},
		{name: "string", src: `[{"id":"c2","amount":1}]`, expected: jsonb.List[item]{{ID: "c2", Amount: 1}}},
		{name: "null", src: nil, expected: nil},
		{name: "unsupported", src: 42, wantErr: true},
		{name: "malformed", src: `{"id":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list jsonb.List[item]

			err := list.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, list)
		})
	}
}

func TestListValueNil(t *testing.T) {
	var list jsonb.List[item]

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestMap(t *testing.T) {
	m := jsonb.Map{"aadhaar": "front.jpg"}

	value, err := m.Value()
	require.NoError(t, err)

	var scanned jsonb.Map
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, m, scanned)

	var empty jsonb.Map
	value, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}
