package dto

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"buchverein_backend/internals/features/buch/model"
)

// 🔹 Nested DTOs

type TitelDTO struct {
	Titel      string  `json:"titel" validate:"required,max=40"`
	Untertitel *string `json:"untertitel" validate:"omitempty,max=40"`
}

type AbbildungDTO struct {
	Beschriftung string `json:"beschriftung" validate:"required,max=32"`
	ContentType  string `json:"contentType" validate:"required,max=16"`
}

// 🔹 Request to create a book (title required, illustrations optional)
type BuchCreateRequest struct {
	ISBN          string         `json:"isbn" validate:"required,isbn13"`
	Rating        int            `json:"rating" validate:"min=0,max=5"`
	Art           *string        `json:"art" validate:"omitempty,oneof=EPUB HARDCOVER PAPERBACK"`
	Preis         float64        `json:"preis" validate:"required,gt=0"`
	Rabatt        *float64       `json:"rabatt" validate:"omitempty,gte=0,lt=1"`
	Lieferbar     *bool          `json:"lieferbar"`
	Datum         *string        `json:"datum" validate:"omitempty,datetime=2006-01-02"`
	Homepage      *string        `json:"homepage" validate:"omitempty,url"`
	Schlagwoerter []string       `json:"schlagwoerter" validate:"omitempty,unique,dive,oneof=JAVASCRIPT TYPESCRIPT JAVA PYTHON"`
	Titel         TitelDTO       `json:"titel" validate:"required"`
	Abbildungen   []AbbildungDTO `json:"abbildungen" validate:"omitempty,dive"`
}

// 🔹 Request to update the scalar fields of a book; relations stay as-is
type BuchUpdateRequest struct {
	ISBN          *string  `json:"isbn" validate:"omitempty,isbn13"`
	Rating        *int     `json:"rating" validate:"omitempty,min=0,max=5"`
	Art           *string  `json:"art" validate:"omitempty,oneof=EPUB HARDCOVER PAPERBACK"`
	Preis         *float64 `json:"preis" validate:"omitempty,gt=0"`
	Rabatt        *float64 `json:"rabatt" validate:"omitempty,gte=0,lt=1"`
	Lieferbar     *bool    `json:"lieferbar"`
	Datum         *string  `json:"datum" validate:"omitempty,datetime=2006-01-02"`
	Homepage      *string  `json:"homepage" validate:"omitempty,url"`
	Schlagwoerter []string `json:"schlagwoerter" validate:"omitempty,unique,dive,oneof=JAVASCRIPT TYPESCRIPT JAVA PYTHON"`
}

// 🔄 request → model
func (r *BuchCreateRequest) ToModel() *model.BuchModel {
	m := &model.BuchModel{
		BuchISBN:      r.ISBN,
		BuchRating:    r.Rating,
		BuchArt:       r.Art,
		BuchPreis:     r.Preis,
		BuchRabatt:    r.Rabatt,
		BuchLieferbar: r.Lieferbar,
		BuchHomepage:  r.Homepage,
		Titel: &model.TitelModel{
			TitelTitel:      r.Titel.Titel,
			TitelUntertitel: r.Titel.Untertitel,
		},
	}
	if r.Datum != nil {
		if t, err := time.Parse("2006-01-02", *r.Datum); err == nil {
			d := datatypes.Date(t)
			m.BuchDatum = &d
		}
	}
	if len(r.Schlagwoerter) > 0 {
		m.BuchSchlagwoerter = pq.StringArray(r.Schlagwoerter)
	}
	for _, a := range r.Abbildungen {
		m.Abbildungen = append(m.Abbildungen, model.AbbildungModel{
			AbbildungBeschriftung: a.Beschriftung,
			AbbildungContentType:  a.ContentType,
		})
	}
	return m
}

// ToUpdates builds the column map for the partial update; only fields
// present in the request end up in the UPDATE statement.
func (r *BuchUpdateRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.ISBN != nil {
		updates["buch_isbn"] = *r.ISBN
	}
	if r.Rating != nil {
		updates["buch_rating"] = *r.Rating
	}
	if r.Art != nil {
		updates["buch_art"] = *r.Art
	}
	if r.Preis != nil {
		updates["buch_preis"] = *r.Preis
	}
	if r.Rabatt != nil {
		updates["buch_rabatt"] = *r.Rabatt
	}
	if r.Lieferbar != nil {
		updates["buch_lieferbar"] = *r.Lieferbar
	}
	if r.Datum != nil {
		if t, err := time.Parse("2006-01-02", *r.Datum); err == nil {
			updates["buch_datum"] = datatypes.Date(t)
		}
	}
	if r.Homepage != nil {
		updates["buch_homepage"] = *r.Homepage
	}
	if r.Schlagwoerter != nil {
		updates["buch_schlagwoerter"] = pq.StringArray(r.Schlagwoerter)
	}
	return updates
}

// 🔹 Responses

type TitelResponse struct {
	Titel      string  `json:"titel"`
	Untertitel *string `json:"untertitel,omitempty"`
}

type AbbildungResponse struct {
	Beschriftung string `json:"beschriftung"`
	ContentType  string `json:"contentType"`
}

type BuchResponse struct {
	BuchID        int                 `json:"buch_id"`
	Version       int                 `json:"version"`
	ISBN          string              `json:"isbn"`
	Rating        int                 `json:"rating"`
	Art           *string             `json:"art,omitempty"`
	Preis         float64             `json:"preis"`
	Rabatt        *float64            `json:"rabatt,omitempty"`
	Lieferbar     *bool               `json:"lieferbar,omitempty"`
	Datum         *string             `json:"datum,omitempty"`
	Homepage      *string             `json:"homepage,omitempty"`
	Schlagwoerter []string            `json:"schlagwoerter"`
	Titel         *TitelResponse      `json:"titel,omitempty"`
	Abbildungen   []AbbildungResponse `json:"abbildungen,omitempty"`
}

// 🔄 model → response
func ToBuchResponse(m *model.BuchModel) *BuchResponse {
	resp := &BuchResponse{
		BuchID:        m.BuchID,
		Version:       m.BuchVersion,
		ISBN:          m.BuchISBN,
		Rating:        m.BuchRating,
		Art:           m.BuchArt,
		Preis:         m.BuchPreis,
		Rabatt:        m.BuchRabatt,
		Lieferbar:     m.BuchLieferbar,
		Homepage:      m.BuchHomepage,
		Schlagwoerter: append([]string{}, m.BuchSchlagwoerter...),
	}
	if m.BuchDatum != nil {
		d := time.Time(*m.BuchDatum).Format("2006-01-02")
		resp.Datum = &d
	}
	if m.Titel != nil {
		resp.Titel = &TitelResponse{
			Titel:      m.Titel.TitelTitel,
			Untertitel: m.Titel.TitelUntertitel,
		}
	}
	for _, a := range m.Abbildungen {
		resp.Abbildungen = append(resp.Abbildungen, AbbildungResponse{
			Beschriftung: a.AbbildungBeschriftung,
			ContentType:  a.AbbildungContentType,
		})
	}
	return resp
}

// 🔄 list model → list response
func ToBuchResponseList(models []model.BuchModel) []BuchResponse {
	result := make([]BuchResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToBuchResponse(&models[i]))
	}
	return result
}
