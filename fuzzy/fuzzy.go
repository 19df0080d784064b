// Package fuzzy implements tolerant allow-list matching for configured
// values whose real-world spellings drift by vendor, such as colorspace
// names ("ACES - ACEScg", "acescg", "aces_cg").
//
// Acceptance runs five stages in order of decreasing precision and stops at
// the first success: exact membership, normalized comparison, long-form
// vendor name lookup, named synonym groups, and finally shared key terms.
// Exact match is cheapest and most authoritative; later stages trade
// precision for tolerance of naming drift.
package fuzzy

import "strings"

// normalize lowers the string and strips the separators that vary freely
// between vendor spellings.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// vendorCodes maps long-form vendor colorspace names, lowercased but
// otherwise untouched, to the short canonical code used in pipeline naming.
var vendorCodes = map[string]string{
	"aces - acescg":     "acescg",
	"aces - acescct":    "acescg",
	"aces - aces2065-1": "ap0",
	"input - srgb":      "srgb",
	"output - srgb":     "srgb",
	"input - rec.709":   "rec709",
	"output - rec.709":  "rec709",
	"output - rec.2020": "rec2020",
	"output - p3d65":    "p3",
	"arri logc3":        "log",
	"arri logc4":        "log",
	"alexa v3 logc":     "log",
	"scene linear":      "linear",
	"scene_linear":      "linear",
}

// synonymGroups lists interchangeable normalized spellings of one concept.
// A candidate belongs to a group when any spelling is a substring of its
// normalized form.
var synonymGroups = map[string][]string{
	"acescg":  {"acescg", "aces", "acesapplied"},
	"linear":  {"linear", "scenelinear", "scenereferred", "lin"},
	"srgb":    {"srgb", "inputsrgb", "outputsrgb"},
	"rec709":  {"rec709", "rec.709", "inputrec709", "outputrec709", "r709"},
	"log":     {"log", "logc", "alog", "arri"},
	"p3":      {"p3", "p3d65", "displayp3", "dcip3"},
	"rec2020": {"rec2020", "rec.2020", "bt2020", "bt.2020"},
}

// keyTerms is the fixed vocabulary used by the last-resort stage: sharing
// any one term with an allow-list entry is enough.
var keyTerms = []string{"acescg", "linear", "srgb", "rec709", "log", "p3", "rec2020"}

// Accept reports whether the candidate value is considered equivalent to at
// least one allow-list entry. An empty candidate is never accepted.
func Accept(candidate string, allowed []string) bool {
	if candidate == "" {
		return false
	}

	for _, a := range allowed {
		if candidate == a {
			return true
		}
	}

	cn := normalize(candidate)
	for _, a := range allowed {
		if cn == normalize(a) {
			return true
		}
	}

	if code, ok := vendorCodes[strings.ToLower(candidate)]; ok {
		for _, a := range allowed {
			if strings.Contains(normalize(a), code) {
				return true
			}
		}
	}

	for _, group := range synonymGroups {
		if !inGroup(cn, group) {
			continue
		}
		for _, a := range allowed {
			if inGroup(normalize(a), group) {
				return true
			}
		}
	}

	for _, term := range keyTerms {
		if !strings.Contains(cn, term) {
			continue
		}
		for _, a := range allowed {
			if strings.Contains(normalize(a), term) {
				return true
			}
		}
	}

	return false
}

// inGroup reports whether the normalized value carries any of the group's
// spellings.
func inGroup(norm string, group []string) bool {
	for _, spelling := range group {
		if strings.Contains(norm, spelling) {
			return true
		}
	}
	return false
}
