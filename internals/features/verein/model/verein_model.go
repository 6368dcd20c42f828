package model

import (
	"time"

	"gorm.io/datatypes"
)

type VereinModel struct {
	VereinID int `gorm:"column:verein_id;primaryKey;autoIncrement" json:"verein_id"`
	// optimistic concurrency token, +1 per accepted update
	VereinVersion int `gorm:"column:verein_version;not null;default:0" json:"verein_version"`

	VereinName             string          `gorm:"column:verein_name;type:varchar(60);not null;uniqueIndex:uq_verein_name" json:"verein_name"`
	VereinGruendungsdatum  *datatypes.Date `gorm:"column:verein_gruendungsdatum;type:date"                                 json:"verein_gruendungsdatum,omitempty"`
	VereinWebsite          *string         `gorm:"column:verein_website;type:varchar(40)"                                  json:"verein_website,omitempty"`
	VereinEmail            *string         `gorm:"column:verein_email;type:varchar(40)"                                    json:"verein_email,omitempty"`
	VereinTelefonnummer    *string         `gorm:"column:verein_telefonnummer;type:varchar(20)"                            json:"verein_telefonnummer,omitempty"`
	VereinMitgliederanzahl *int            `gorm:"column:verein_mitgliederanzahl"                                          json:"verein_mitgliederanzahl,omitempty"`

	VereinCreatedAt time.Time `gorm:"column:verein_created_at;autoCreateTime" json:"verein_created_at"`
	VereinUpdatedAt time.Time `gorm:"column:verein_updated_at;autoUpdateTime" json:"verein_updated_at"`

	Stadion *StadionModel  `gorm:"foreignKey:StadionVereinID;references:VereinID"  json:"stadion,omitempty"`
	Spieler []SpielerModel `gorm:"foreignKey:SpielerVereinID;references:VereinID"  json:"spieler,omitempty"`
	Logo    *LogoFileModel `gorm:"foreignKey:LogoFileVereinID;references:VereinID" json:"logo,omitempty"`
}

func (VereinModel) TableName() string {
	return "vereine"
}

// StadionModel is the required 1:1 home ground of a club.
type StadionModel struct {
	StadionID        int    `gorm:"column:stadion_id;primaryKey;autoIncrement"                     json:"stadion_id"`
	StadionVereinID  int    `gorm:"column:stadion_verein_id;not null;uniqueIndex:uq_stadion_verein_id" json:"stadion_verein_id"`
	StadionName      string `gorm:"column:stadion_name;type:varchar(40);not null"                  json:"stadion_name"`
	StadionStadt     string `gorm:"column:stadion_stadt;type:varchar(40);not null"                 json:"stadion_stadt"`
	StadionKapazitaet *int  `gorm:"column:stadion_kapazitaet"                                      json:"stadion_kapazitaet,omitempty"`
}

func (StadionModel) TableName() string {
	return "stadien"
}

// SpielerModel is one of the 1:N squad members of a club.
type SpielerModel struct {
	SpielerID           int             `gorm:"column:spieler_id;primaryKey;autoIncrement"                    json:"spieler_id"`
	SpielerVereinID     int             `gorm:"column:spieler_verein_id;not null;index:idx_spieler_verein_id" json:"spieler_verein_id"`
	SpielerVorname      string          `gorm:"column:spieler_vorname;type:varchar(40);not null"              json:"spieler_vorname"`
	SpielerNachname     string          `gorm:"column:spieler_nachname;type:varchar(40);not null"             json:"spieler_nachname"`
	SpielerGeburtsdatum *datatypes.Date `gorm:"column:spieler_geburtsdatum;type:date"                         json:"spieler_geburtsdatum,omitempty"`
	SpielerStarkerFuss  *string         `gorm:"column:spieler_starker_fuss;type:varchar(10)"                  json:"spieler_starker_fuss,omitempty"`
}

func (SpielerModel) TableName() string {
	return "spieler"
}

// LogoFileModel is the 0-or-1 club logo, replaced wholesale on every upload.
type LogoFileModel struct {
	LogoFileID       int     `gorm:"column:logo_file_id;primaryKey;autoIncrement"                       json:"logo_file_id"`
	LogoFileVereinID int     `gorm:"column:logo_file_verein_id;not null;index:idx_logo_file_verein_id"  json:"logo_file_verein_id"`
	LogoFileFilename string  `gorm:"column:logo_file_filename;type:varchar(128);not null"               json:"logo_file_filename"`
	// sniffed from the payload bytes, never taken from the client
	LogoFileMimetype *string `gorm:"column:logo_file_mimetype;type:varchar(64)"                         json:"logo_file_mimetype,omitempty"`
	LogoFileData     []byte  `gorm:"column:logo_file_data;type:bytea"                                   json:"-"`
}

func (LogoFileModel) TableName() string {
	return "logo_files"
}
