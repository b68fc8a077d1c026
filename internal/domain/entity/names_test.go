package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// La clave canónica es la única semántica de unicidad de nombres: ambos
// drivers (memoria y PostgreSQL vía name_key) persisten y comparan con ella.
func TestNormalizeName_CaseFoldingUnicode(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"Laddu", "LADDU"},
		{"  Azúcar ", "azúcar"},
		{"straße", "STRASSE"}, // folding Unicode, no solo ASCII: ß ≡ ss
	}
	for _, tc := range cases {
		assert.Equal(t, entity.NormalizeName(tc.a), entity.NormalizeName(tc.b),
			"%q y %q deben plegar a la misma clave", tc.a, tc.b)
	}
	assert.NotEqual(t, entity.NormalizeName("Laddu"), entity.NormalizeName("Jalebi"))
}
