package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeName devuelve la clave canónica de un nombre para comparaciones de
// unicidad sin distinguir mayúsculas (case folding Unicode, no solo ASCII).
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
