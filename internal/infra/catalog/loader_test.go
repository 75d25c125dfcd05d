//go:build unit

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"rental-booking/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedErr string
		expectedLen int
	}{
		{
			name: "success: mixed price shapes",
			input: `[
				{"id": 5, "title": "Greenride", "category": "Car",
				 "timingOptions": [{"label": "On time", "price": 10000}, {"label": "Half Day", "price": 95000}]},
				{"id": 3, "title": "SUZUKI DZIRE", "category": "Car", "price": "75,000"},
				{"id": 4, "title": "Day Package", "category": "Package", "min_price": 70000, "max_price": 101000}
			]`,
			expectedLen: 3,
		},
		{
			name:        "success: empty catalog",
			input:       `[]`,
			expectedLen: 0,
		},
		{
			name:        "error: not json",
			input:       `{offers`,
			expectedErr: "decode catalog",
		},
		{
			name:        "error: duplicate id",
			input:       `[{"id": 1, "title": "a"}, {"id": 1, "title": "b"}]`,
			expectedErr: "duplicate id 1",
		},
		{
			name:        "error: missing id",
			input:       `[{"title": "a"}]`,
			expectedErr: "id must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offers, err := catalog.Parse([]byte(tc.input))

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, offers, tc.expectedLen)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("reads the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "offers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": 2, "title": "SUZUKI VITARA", "price": 7500}]`), 0o600))

		offers, err := catalog.LoadFile(path)
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "SUZUKI VITARA", offers[0].Title)
		assert.Equal(t, int64(7500), offers[0].Price.Int64())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("bundled catalog is valid", func(t *testing.T) {
		offers, err := catalog.LoadFile("../../../data/offers.json")
		require.NoError(t, err)
		assert.NotEmpty(t, offers)
	})
}
