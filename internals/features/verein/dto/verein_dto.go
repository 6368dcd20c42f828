package dto

import (
	"time"

	"gorm.io/datatypes"

	"buchverein_backend/internals/features/verein/model"
)

// 🔹 Nested DTOs

type StadionDTO struct {
	Name       string `json:"name" validate:"required,max=40"`
	Stadt      string `json:"stadt" validate:"required,max=40"`
	Kapazitaet *int   `json:"kapazitaet" validate:"omitempty,gt=0"`
}

type SpielerDTO struct {
	Vorname      string  `json:"vorname" validate:"required,max=40"`
	Nachname     string  `json:"nachname" validate:"required,max=40"`
	Geburtsdatum *string `json:"geburtsdatum" validate:"omitempty,datetime=2006-01-02"`
	StarkerFuss  *string `json:"starkerFuss" validate:"omitempty,oneof=LINKS RECHTS BEIDE"`
}

// 🔹 Request to create a club (stadium required, squad optional)
type VereinCreateRequest struct {
	Name             string       `json:"name" validate:"required,max=60"`
	Gruendungsdatum  *string      `json:"gruendungsdatum" validate:"omitempty,datetime=2006-01-02"`
	Website          *string      `json:"website" validate:"omitempty,url"`
	Email            *string      `json:"email" validate:"omitempty,email"`
	Telefonnummer    *string      `json:"telefonnummer" validate:"omitempty,max=20"`
	Mitgliederanzahl *int         `json:"mitgliederanzahl" validate:"omitempty,gte=0"`
	Stadion          StadionDTO   `json:"stadion" validate:"required"`
	Spieler          []SpielerDTO `json:"spieler" validate:"omitempty,dive"`
}

// 🔹 Request to update the scalar fields of a club; relations stay as-is
type VereinUpdateRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=60"`
	Gruendungsdatum  *string `json:"gruendungsdatum" validate:"omitempty,datetime=2006-01-02"`
	Website          *string `json:"website" validate:"omitempty,url"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Telefonnummer    *string `json:"telefonnummer" validate:"omitempty,max=20"`
	Mitgliederanzahl *int    `json:"mitgliederanzahl" validate:"omitempty,gte=0"`
}

// 🔄 request → model
func (r *VereinCreateRequest) ToModel() *model.VereinModel {
	m := &model.VereinModel{
		VereinName:             r.Name,
		VereinWebsite:          r.Website,
		VereinEmail:            r.Email,
		VereinTelefonnummer:    r.Telefonnummer,
		VereinMitgliederanzahl: r.Mitgliederanzahl,
		Stadion: &model.StadionModel{
			StadionName:       r.Stadion.Name,
			StadionStadt:      r.Stadion.Stadt,
			StadionKapazitaet: r.Stadion.Kapazitaet,
		},
	}
	if r.Gruendungsdatum != nil {
		if t, err := time.Parse("2006-01-02", *r.Gruendungsdatum); err == nil {
			d := datatypes.Date(t)
			m.VereinGruendungsdatum = &d
		}
	}
	for _, sp := range r.Spieler {
		spieler := model.SpielerModel{
			SpielerVorname:     sp.Vorname,
			SpielerNachname:    sp.Nachname,
			SpielerStarkerFuss: sp.StarkerFuss,
		}
		if sp.Geburtsdatum != nil {
			if t, err := time.Parse("2006-01-02", *sp.Geburtsdatum); err == nil {
				d := datatypes.Date(t)
				spieler.SpielerGeburtsdatum = &d
			}
		}
		m.Spieler = append(m.Spieler, spieler)
	}
	return m
}

// ToUpdates builds the column map for the partial update; only fields
// present in the request end up in the UPDATE statement.
func (r *VereinUpdateRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["verein_name"] = *r.Name
	}
	if r.Gruendungsdatum != nil {
		if t, err := time.Parse("2006-01-02", *r.Gruendungsdatum); err == nil {
			updates["verein_gruendungsdatum"] = datatypes.Date(t)
		}
	}
	if r.Website != nil {
		updates["verein_website"] = *r.Website
	}
	if r.Email != nil {
		updates["verein_email"] = *r.Email
	}
	if r.Telefonnummer != nil {
		updates["verein_telefonnummer"] = *r.Telefonnummer
	}
	if r.Mitgliederanzahl != nil {
		updates["verein_mitgliederanzahl"] = *r.Mitgliederanzahl
	}
	return updates
}

// 🔹 Responses

type StadionResponse struct {
	Name       string `json:"name"`
	Stadt      string `json:"stadt"`
	Kapazitaet *int   `json:"kapazitaet,omitempty"`
}

type SpielerResponse struct {
	Vorname      string  `json:"vorname"`
	Nachname     string  `json:"nachname"`
	Geburtsdatum *string `json:"geburtsdatum,omitempty"`
	StarkerFuss  *string `json:"starkerFuss,omitempty"`
}

type VereinResponse struct {
	VereinID         int               `json:"verein_id"`
	Version          int               `json:"version"`
	Name             string            `json:"name"`
	Gruendungsdatum  *string           `json:"gruendungsdatum,omitempty"`
	Website          *string           `json:"website,omitempty"`
	Email            *string           `json:"email,omitempty"`
	Telefonnummer    *string           `json:"telefonnummer,omitempty"`
	Mitgliederanzahl *int              `json:"mitgliederanzahl,omitempty"`
	Stadion          *StadionResponse  `json:"stadion,omitempty"`
	Spieler          []SpielerResponse `json:"spieler,omitempty"`
}

// 🔄 model → response
func ToVereinResponse(m *model.VereinModel) *VereinResponse {
	resp := &VereinResponse{
		VereinID:         m.VereinID,
		Version:          m.VereinVersion,
		Name:             m.VereinName,
		Website:          m.VereinWebsite,
		Email:            m.VereinEmail,
		Telefonnummer:    m.VereinTelefonnummer,
		Mitgliederanzahl: m.VereinMitgliederanzahl,
	}
	if m.VereinGruendungsdatum != nil {
		d := time.Time(*m.VereinGruendungsdatum).Format("2006-01-02")
		resp.Gruendungsdatum = &d
	}
	if m.Stadion != nil {
		resp.Stadion = &StadionResponse{
			Name:       m.Stadion.StadionName,
			Stadt:      m.Stadion.StadionStadt,
			Kapazitaet: m.Stadion.StadionKapazitaet,
		}
	}
	for i := range m.Spieler {
		sp := &m.Spieler[i]
		spieler := SpielerResponse{
			Vorname:     sp.SpielerVorname,
			Nachname:    sp.SpielerNachname,
			StarkerFuss: sp.SpielerStarkerFuss,
		}
		if sp.SpielerGeburtsdatum != nil {
			d := time.Time(*sp.SpielerGeburtsdatum).Format("2006-01-02")
			spieler.Geburtsdatum = &d
		}
		resp.Spieler = append(resp.Spieler, spieler)
	}
	return resp
}

// 🔄 list model → list response
func ToVereinResponseList(models []model.VereinModel) []VereinResponse {
	result := make([]VereinResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToVereinResponse(&models[i]))
	}
	return result
}
