// internal/records/normalizer_test.go
package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestFarmer(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"name":     "Ramesh Kumar",
		"district": "cuttack",
		"village":  "choudwar",
		"status":   "active",
		"phone":    "+91-9437102938",
		"crops":    []interface{}{"rice", "wheat"},
	}
}

func createTestAlert(id, alertType string) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"title":    "Heavy rainfall warning",
		"message":  "alertsPage.templates.heavyRain",
		"type":     alertType,
		"priority": "high",
		"status":   "delivered",
	}
}

// ==========================
// Normalize Tests
// ==========================

func TestNormalize_Farmer(t *testing.T) {
	rec, err := Normalize(createTestFarmer("F001"), TypeFarmer)
	require.NoError(t, err)

	assert.Equal(t, "F001", rec.ID)
	assert.Equal(t, TypeFarmer, rec.Type)
	assert.Equal(t, "cuttack", rec.Category)
	assert.Equal(t, "active", rec.Status)

	// Fields with a catalog prefix become dotted keys; the name stays a
	// literal so it renders verbatim through the fallback path.
	assert.Equal(t, "districts.cuttack", rec.LocaleKeys["district"])
	assert.Equal(t, "villages.choudwar", rec.LocaleKeys["village"])
	assert.Equal(t, "Ramesh Kumar", rec.LocaleKeys["name"])

	assert.Equal(t, "+91-9437102938", rec.RawFields["phone"])
}

func TestNormalize_InputNotMutated(t *testing.T) {
	raw := createTestFarmer("F001")
	_, err := Normalize(raw, TypeFarmer)
	require.NoError(t, err)
	assert.Equal(t, createTestFarmer("F001"), raw)
}

func TestNormalize_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]interface{})
		typ    RecordType
	}{
		{
			name:   "missing required field",
			mutate: func(raw map[string]interface{}) { delete(raw, "district") },
			typ:    TypeFarmer,
		},
		{
			name:   "status outside enumeration",
			mutate: func(raw map[string]interface{}) { raw["status"] = "archived" },
			typ:    TypeFarmer,
		},
		{
			name:   "wrong type for name",
			mutate: func(raw map[string]interface{}) { raw["name"] = 42 },
			typ:    TypeFarmer,
		},
		{
			name:   "empty id",
			mutate: func(raw map[string]interface{}) { raw["id"] = "" },
			typ:    TypeFarmer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := createTestFarmer("F001")
			tt.mutate(raw)

			_, err := Normalize(raw, tt.typ)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeSchemaMismatch))
		})
	}
}

func TestNormalize_UnknownType(t *testing.T) {
	_, err := Normalize(createTestFarmer("F001"), RecordType("satellite"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeSchemaMismatch))
}

func TestNormalize_AllTypes(t *testing.T) {
	tests := []struct {
		typ RecordType
		raw map[string]interface{}
	}{
		{TypeAlert, createTestAlert("A001", "pest")},
		{TypeScheme, map[string]interface{}{
			"id": "S001", "name": "pmKisan", "category": "incomeSupport", "status": "active",
		}},
		{TypeReport, map[string]interface{}{
			"id": "R001", "title": "Monthly summary", "type": "registration", "status": "completed",
		}},
		{TypeOutbreak, map[string]interface{}{
			"id": "P001", "pest": "stemBorer", "crop": "rice", "district": "puri",
			"severity": "medium", "status": "active",
		}},
		{TypeMarketPrice, map[string]interface{}{
			"id": "M001", "commodity": "rice", "market": "cuttack", "price": 2240.0, "trend": "rising",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			rec, err := Normalize(tt.raw, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, rec.Type)
			assert.NotEmpty(t, rec.ID)
			assert.NotEmpty(t, rec.Status)
		})
	}
}

// ==========================
// NormalizeAll Tests
// ==========================

func TestNormalizeAll_ExcludesOnlyInvalid(t *testing.T) {
	bad := createTestFarmer("F002")
	delete(bad, "village")

	raws := []map[string]interface{}{
		createTestFarmer("F001"),
		bad,
		createTestFarmer("F003"),
	}

	out := NormalizeAll(raws, TypeFarmer, logger.NewTestLogger(t))
	require.Len(t, out, 2)
	assert.Equal(t, "F001", out[0].ID)
	assert.Equal(t, "F003", out[1].ID)
}

func TestNormalizeAll_EmptyInput(t *testing.T) {
	out := NormalizeAll(nil, TypeFarmer, logger.NewNoOpLogger())
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

// ==========================
// SearchValues Tests
// ==========================

func TestSearchValues(t *testing.T) {
	rec, err := Normalize(createTestFarmer("F001"), TypeFarmer)
	require.NoError(t, err)

	values := rec.SearchValues()
	assert.Contains(t, values, "F001")
	assert.Contains(t, values, "Ramesh Kumar")
	assert.Contains(t, values, "districts.cuttack")
	assert.Contains(t, values, "villages.choudwar")
}
