package forms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
)

// ParseMoney convertit une saisie monétaire ("12.50") en centimes entiers.
// Champ vide => null, jamais 0 ni NaN. La virgule décimale est tolérée.
func ParseMoney(s string) (null.Int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Int64{}, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return null.Int64{}, fmt.Errorf("montant invalide: %q", s)
	}
	if f < 0 {
		return null.Int64{}, fmt.Errorf("le montant ne peut pas être négatif")
	}
	return null.Int64From(int64(math.Round(f * 100))), nil
}

// FormatMoney rend des centimes affichables pour le pré-remplissage du
// formulaire: 1250 => "12.50". Null => champ vide.
func FormatMoney(cents null.Int64) string {
	if !cents.Valid {
		return ""
	}
	return fmt.Sprintf("%.2f", float64(cents.Int64)/100)
}

// FormatInt pré-remplit un champ numérique.
func FormatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ParseOptionalInt: "" => null (illimité pour maxUsers).
func ParseOptionalInt(s string) (null.Int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Int64{}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return null.Int64{}, fmt.Errorf("nombre entier invalide: %q", s)
	}
	return null.Int64From(n), nil
}

// ParseIntDefault: "" => valeur par défaut (0 pour currentUsers).
func ParseIntDefault(s string, def int64) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("nombre entier invalide: %q", s)
	}
	return n, nil
}
