package entities

import (
	"strings"
	"unicode"
)

// Slugify normalizes a free-text name ("Leeds", "Boiler Repair") into a
// URL-safe slug ("leeds", "boiler-repair"). Empty input yields an empty
// slug, which downstream matching treats as "no location known".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '/':
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// serviceVocabulary maps a service type slug to the specialty slugs a job of
// that type may carry. Specialties outside the vocabulary are dropped during
// normalization rather than rejected.
var serviceVocabulary = map[string][]string{
	"plumbing":    {"boiler-repair", "boiler-installation", "leak-repair", "bathroom-fitting", "drainage", "gas-safety"},
	"electrical":  {"rewiring", "fuse-box", "lighting", "ev-charging", "pat-testing", "smart-home"},
	"carpentry":   {"kitchen-fitting", "doors-windows", "flooring", "furniture", "decking"},
	"roofing":     {"flat-roof", "tiling", "guttering", "chimney", "insulation"},
	"painting":    {"interior", "exterior", "wallpapering", "plastering"},
	"gardening":   {"landscaping", "fencing", "tree-surgery", "lawn-care", "paving"},
	"heating":     {"boiler-repair", "boiler-installation", "radiators", "underfloor-heating", "gas-safety"},
	"building":    {"extensions", "conversions", "brickwork", "damp-proofing", "groundwork"},
	"locksmith":   {"lock-change", "emergency-entry", "security-upgrade"},
	"cleaning":    {"end-of-tenancy", "deep-clean", "carpet-cleaning", "window-cleaning"},
}

// NormalizeSpecialties slugifies the given specialties and keeps only those
// allowed for the service type. An unknown service type keeps all slugified
// specialties: the vocabulary is a filter, not a gate on new trades.
func NormalizeSpecialties(serviceType string, specialties []string) []string {
	allowed, known := serviceVocabulary[Slugify(serviceType)]
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}

	out := make([]string, 0, len(specialties))
	seen := make(map[string]struct{}, len(specialties))
	for _, s := range specialties {
		slug := Slugify(s)
		if slug == "" {
			continue
		}
		if known {
			if _, ok := allowedSet[slug]; !ok {
				continue
			}
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}
