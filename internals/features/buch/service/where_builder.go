package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Cond is one conjunctive WHERE clause.
type Cond struct {
	Query string
	Args  []any
}

// Where is the structured predicate for the flexible book search.
type Where struct {
	// join the titel table for the substring search on the title
	JoinTitel bool
	Conds     []Cond
}

// Apply attaches the predicate to a GORM query.
func (w *Where) Apply(db *gorm.DB) *gorm.DB {
	if w.JoinTitel {
		db = db.Joins("JOIN titel ON titel.titel_buch_id = buecher.buch_id")
	}
	for _, cond := range w.Conds {
		db = db.Where(cond.Query, cond.Args...)
	}
	return db
}

// BuildWhere turns the sparse search parameters into a predicate.
// "titel" is a case-insensitive substring match one join away, "rating" a
// lower bound, "preis" an upper bound, "datum" a lower bound, the tag flags
// collapse into one array containment clause. Every clause is AND-combined.
// A value that cannot be parsed for its parameter rejects the whole search
// instead of being dropped, same policy as unknown parameter names.
func BuildWhere(suchparameter map[string]string) (*Where, error) {
	where := &Where{}

	for key, value := range suchparameter {
		switch key {
		case "titel":
			where.JoinTitel = true
			where.Conds = append(where.Conds, Cond{
				Query: "LOWER(titel.titel_titel) LIKE ?",
				Args:  []any{"%" + strings.ToLower(value) + "%"},
			})
		case "isbn":
			where.Conds = append(where.Conds, Cond{
				Query: "buch_isbn = ?",
				Args:  []any{value},
			})
		case "rating":
			rating, err := strconv.Atoi(value)
			if err != nil {
				return nil, &InvalidSearchError{Param: "rating"}
			}
			where.Conds = append(where.Conds, Cond{
				Query: "buch_rating >= ?",
				Args:  []any{rating},
			})
		case "preis":
			preis, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, &InvalidSearchError{Param: "preis"}
			}
			where.Conds = append(where.Conds, Cond{
				Query: "buch_preis <= ?",
				Args:  []any{preis},
			})
		case "art":
			// validated up front by CheckEnums
			where.Conds = append(where.Conds, Cond{
				Query: "buch_art = ?",
				Args:  []any{value},
			})
		case "lieferbar":
			switch strings.ToLower(value) {
			case "true":
				where.Conds = append(where.Conds, Cond{Query: "buch_lieferbar = ?", Args: []any{true}})
			case "false":
				where.Conds = append(where.Conds, Cond{Query: "buch_lieferbar = ?", Args: []any{false}})
			default:
				return nil, &InvalidSearchError{Param: "lieferbar"}
			}
		case "datum":
			datum, err := time.Parse("2006-01-02", value)
			if err != nil {
				return nil, &InvalidSearchError{Param: "datum"}
			}
			where.Conds = append(where.Conds, Cond{
				Query: "buch_datum >= ?",
				Args:  []any{datum},
			})
		case "homepage":
			where.Conds = append(where.Conds, Cond{
				Query: "buch_homepage = ?",
				Args:  []any{value},
			})
		}
		// "rabatt" and "schlagwoerter" are accepted names without a clause
	}

	if schlagwoerter := buildSchlagwoerter(suchparameter); len(schlagwoerter) > 0 {
		where.Conds = append(where.Conds, Cond{
			Query: "buch_schlagwoerter @> ?",
			Args:  []any{pq.Array(schlagwoerter)},
		})
	}

	return where, nil
}

// buildSchlagwoerter collects the canonical labels of every truthy tag
// flag; a flag that is absent or not "true" contributes nothing.
func buildSchlagwoerter(suchparameter map[string]string) []string {
	var schlagwoerter []string
	for flag, label := range schlagwortFlags {
		if value, ok := suchparameter[flag]; ok && strings.EqualFold(value, "true") {
			schlagwoerter = append(schlagwoerter, label)
		}
	}
	return schlagwoerter
}
