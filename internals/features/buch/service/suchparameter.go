package service

import (
	"buchverein_backend/internals/features/buch/model"
)

// Valid names for the search parameters of the book family.
var suchparameterNamen = []string{
	"isbn",
	"rating",
	"art",
	"preis",
	"rabatt",
	"lieferbar",
	"datum",
	"homepage",
	"schlagwoerter",
	"titel",
}

// Tag flag parameter -> canonical vocabulary label. The vocabulary is
// closed: only these four flags exist, one per model.Schlagwoerter entry.
var schlagwortFlags = map[string]string{
	"javascript": "JAVASCRIPT",
	"typescript": "TYPESCRIPT",
	"java":       "JAVA",
	"python":     "PYTHON",
}

// CheckKeys reports whether every key is a known search parameter name or
// one of the tag flags. One unknown key invalidates the whole search.
func CheckKeys(suchparameter map[string]string) bool {
	valid := true
	for key := range suchparameter {
		if _, ok := schlagwortFlags[key]; ok {
			continue
		}
		found := false
		for _, name := range suchparameterNamen {
			if key == name {
				found = true
				break
			}
		}
		if !found {
			valid = false
		}
	}
	return valid
}

// CheckEnums validates the candidate value of the art parameter up front,
// before any predicate is built.
func CheckEnums(suchparameter map[string]string) bool {
	art, ok := suchparameter["art"]
	if !ok {
		return true
	}
	return model.IsValidArt(art)
}
