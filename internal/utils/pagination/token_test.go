package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		SortDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 3, 1, 14, 30, 45, 123456789, time.UTC),
		ID:        "3f0c5a5e-7f6b-4a55-9d0e-7c9b1b0f2a11",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)

	zero := Cursor{ID: "x"}
	decodedZero, err := DecodeToken(EncodeToken(zero))
	require.NoError(t, err)
	assert.True(t, decodedZero.SortDate.IsZero())
	assert.Equal(t, "x", decodedZero.ID)
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"not base64", "this is not base64!", "base64 decode"},
		{"missing separators", encode("2025-03-01T00:00:00Z"), "split"},
		{"empty id", encode("2025-03-01T00:00:00Z|2025-03-01T00:00:00Z|"), "split"},
		{"bad sort date", encode("notadate|2025-03-01T00:00:00Z|id"), "sort date parse"},
		{"bad created at", encode("2025-03-01T00:00:00Z|notadate|id"), "created_at parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
