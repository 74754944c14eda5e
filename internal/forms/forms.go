// Package forms transforme les champs bruts d'un formulaire (ou d'une ligne
// de fichier importé) en payload typé prêt pour l'API. La validation est
// synchrone, locale au champ, et seule la première règle en échec par champ
// est remontée.
package forms

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
)

// Sentinelle utilisée par les listes déroulantes quand "aucune sélection"
// n'est pas représentable. Jamais transmise au serveur.
const UnassignedSentinel = "unassigned"

// Errors associe à chaque champ son premier message d'erreur.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "formulaire valide"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

// add n'écrit que la première erreur d'un champ.
func (e Errors) add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

func (e Errors) OrNil() Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

// NormalizeOptional: champ optionnel vide => null, jamais chaîne vide.
func NormalizeOptional(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// NormalizeAssignee mappe la sentinelle "unassigned" (et le vide) vers null.
func NormalizeAssignee(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" || s == UnassignedSentinel {
		return null.String{}
	}
	return null.StringFrom(s)
}

func requireField(errs Errors, field, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		errs.add(field, "champ obligatoire")
	}
	return v
}

func requireEnum(errs Errors, field, value string, allowed []string) string {
	v := requireField(errs, field, value)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	errs.add(field, fmt.Sprintf("valeur invalide, attendu: %s", strings.Join(allowed, ", ")))
	return v
}

func requireEmail(errs Errors, field, value string) string {
	v := requireField(errs, field, value)
	if v == "" {
		return v
	}
	if _, err := mail.ParseAddress(v); err != nil {
		errs.add(field, "adresse email invalide")
	}
	return v
}

func requireDate(errs Errors, field, value string) string {
	v := requireField(errs, field, value)
	if v == "" {
		return v
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		errs.add(field, "date invalide, format attendu AAAA-MM-JJ")
	}
	return v
}

func optionalDate(errs Errors, field, value string) null.String {
	v := strings.TrimSpace(value)
	if v == "" {
		return null.String{}
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		errs.add(field, "date invalide, format attendu AAAA-MM-JJ")
		return null.String{}
	}
	return null.StringFrom(v)
}
