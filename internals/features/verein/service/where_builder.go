package service

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Cond is one conjunctive WHERE clause.
type Cond struct {
	Query string
	Args  []any
}

// Where is the structured predicate for the flexible club search.
type Where struct {
	// join the stadion table for the stadt and kapazitaet parameters
	JoinStadion bool
	Conds       []Cond
}

// Apply attaches the predicate to a GORM query.
func (w *Where) Apply(db *gorm.DB) *gorm.DB {
	if w.JoinStadion {
		db = db.Joins("JOIN stadien ON stadien.stadion_verein_id = vereine.verein_id")
	}
	for _, cond := range w.Conds {
		db = db.Where(cond.Query, cond.Args...)
	}
	return db
}

// BuildWhere turns the sparse search parameters into a predicate.
// "name", "telefonnummer" and "stadt" are case-insensitive substring
// matches, "gruendungsdatum", "mitgliederanzahl" and "kapazitaet" lower
// bounds, "website" and "email" exact matches. Every clause is
// AND-combined. A value that cannot be parsed for its parameter rejects
// the whole search instead of being dropped, same policy as unknown
// parameter names.
func BuildWhere(suchparameter map[string]string) (*Where, error) {
	where := &Where{}

	for key, value := range suchparameter {
		switch key {
		case "name":
			where.Conds = append(where.Conds, Cond{
				Query: "LOWER(verein_name) LIKE ?",
				Args:  []any{"%" + strings.ToLower(value) + "%"},
			})
		case "telefonnummer":
			where.Conds = append(where.Conds, Cond{
				Query: "LOWER(verein_telefonnummer) LIKE ?",
				Args:  []any{"%" + strings.ToLower(value) + "%"},
			})
		case "stadt":
			where.JoinStadion = true
			where.Conds = append(where.Conds, Cond{
				Query: "LOWER(stadien.stadion_stadt) LIKE ?",
				Args:  []any{"%" + strings.ToLower(value) + "%"},
			})
		case "kapazitaet":
			kapazitaet, err := strconv.Atoi(value)
			if err != nil {
				return nil, &InvalidSearchError{Param: "kapazitaet"}
			}
			where.JoinStadion = true
			where.Conds = append(where.Conds, Cond{
				Query: "stadien.stadion_kapazitaet >= ?",
				Args:  []any{kapazitaet},
			})
		case "mitgliederanzahl":
			mitglieder, err := strconv.Atoi(value)
			if err != nil {
				return nil, &InvalidSearchError{Param: "mitgliederanzahl"}
			}
			where.Conds = append(where.Conds, Cond{
				Query: "verein_mitgliederanzahl >= ?",
				Args:  []any{mitglieder},
			})
		case "gruendungsdatum":
			datum, err := time.Parse("2006-01-02", value)
			if err != nil {
				return nil, &InvalidSearchError{Param: "gruendungsdatum"}
			}
			where.Conds = append(where.Conds, Cond{
				Query: "verein_gruendungsdatum >= ?",
				Args:  []any{datum},
			})
		case "website":
			where.Conds = append(where.Conds, Cond{
				Query: "verein_website = ?",
				Args:  []any{value},
			})
		case "email":
			where.Conds = append(where.Conds, Cond{
				Query: "verein_email = ?",
				Args:  []any{value},
			})
		}
	}

	return where, nil
}
