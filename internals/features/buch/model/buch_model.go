package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Buchart enum values for buch_art.
const (
	ArtEpub      = "EPUB"
	ArtHardcover = "HARDCOVER"
	ArtPaperback = "PAPERBACK"
)

func IsValidArt(art string) bool {
	switch art {
	case ArtEpub, ArtHardcover, ArtPaperback:
		return true
	}
	return false
}

// Closed vocabulary for buch_schlagwoerter.
var Schlagwoerter = []string{"JAVASCRIPT", "TYPESCRIPT", "JAVA", "PYTHON"}

type BuchModel struct {
	BuchID      int `gorm:"column:buch_id;primaryKey;autoIncrement" json:"buch_id"`
	// optimistic concurrency token, +1 per accepted update
	BuchVersion int `gorm:"column:buch_version;not null;default:0" json:"buch_version"`

	BuchISBN      string   `gorm:"column:buch_isbn;type:varchar(17);not null;uniqueIndex:uq_buch_isbn" json:"buch_isbn"`
	BuchRating    int      `gorm:"column:buch_rating;not null"                                         json:"buch_rating"`
	BuchArt       *string  `gorm:"column:buch_art;type:varchar(12)"                                    json:"buch_art,omitempty"`
	BuchPreis     float64  `gorm:"column:buch_preis;type:decimal(8,2);not null"                        json:"buch_preis"`
	BuchRabatt    *float64 `gorm:"column:buch_rabatt;type:decimal(4,3)"                                json:"buch_rabatt,omitempty"`
	BuchLieferbar *bool    `gorm:"column:buch_lieferbar"                                               json:"buch_lieferbar,omitempty"`
	BuchDatum     *datatypes.Date `gorm:"column:buch_datum;type:date"                                  json:"buch_datum,omitempty"`
	BuchHomepage  *string  `gorm:"column:buch_homepage;type:varchar(40)"                               json:"buch_homepage,omitempty"`

	// closed vocabulary, queried per tag via the javascript/typescript/...
	// flag parameters
	BuchSchlagwoerter pq.StringArray `gorm:"column:buch_schlagwoerter;type:text[]" json:"buch_schlagwoerter"`

	BuchCreatedAt time.Time `gorm:"column:buch_created_at;autoCreateTime" json:"buch_created_at"`
	BuchUpdatedAt time.Time `gorm:"column:buch_updated_at;autoUpdateTime" json:"buch_updated_at"`

	Titel       *TitelModel      `gorm:"foreignKey:TitelBuchID;references:BuchID"     json:"titel,omitempty"`
	Abbildungen []AbbildungModel `gorm:"foreignKey:AbbildungBuchID;references:BuchID" json:"abbildungen,omitempty"`
	File        *BuchFileModel   `gorm:"foreignKey:BuchFileBuchID;references:BuchID"  json:"file,omitempty"`
}

func (BuchModel) TableName() string {
	return "buecher"
}

// TitelModel is the required 1:1 title of a book.
type TitelModel struct {
	TitelID         int     `gorm:"column:titel_id;primaryKey;autoIncrement"            json:"titel_id"`
	TitelBuchID     int     `gorm:"column:titel_buch_id;not null;uniqueIndex:uq_titel_buch_id" json:"titel_buch_id"`
	TitelTitel      string  `gorm:"column:titel_titel;type:varchar(40);not null"        json:"titel_titel"`
	TitelUntertitel *string `gorm:"column:titel_untertitel;type:varchar(40)"            json:"titel_untertitel,omitempty"`
}

func (TitelModel) TableName() string {
	return "titel"
}

// AbbildungModel is one of the 1:N illustrations of a book.
type AbbildungModel struct {
	AbbildungID           int    `gorm:"column:abbildung_id;primaryKey;autoIncrement"             json:"abbildung_id"`
	AbbildungBuchID       int    `gorm:"column:abbildung_buch_id;not null;index:idx_abbildung_buch_id" json:"abbildung_buch_id"`
	AbbildungBeschriftung string `gorm:"column:abbildung_beschriftung;type:varchar(32);not null"  json:"abbildung_beschriftung"`
	AbbildungContentType  string `gorm:"column:abbildung_content_type;type:varchar(16);not null"  json:"abbildung_content_type"`
}

func (AbbildungModel) TableName() string {
	return "abbildungen"
}

// BuchFileModel is the 0-or-1 binary attachment of a book, replaced
// wholesale on every upload.
type BuchFileModel struct {
	BuchFileID       int     `gorm:"column:buch_file_id;primaryKey;autoIncrement"                   json:"buch_file_id"`
	BuchFileBuchID   int     `gorm:"column:buch_file_buch_id;not null;index:idx_buch_file_buch_id"  json:"buch_file_buch_id"`
	BuchFileFilename string  `gorm:"column:buch_file_filename;type:varchar(128);not null"           json:"buch_file_filename"`
	// sniffed from the payload bytes, never taken from the client
	BuchFileMimetype *string `gorm:"column:buch_file_mimetype;type:varchar(64)"                     json:"buch_file_mimetype,omitempty"`
	BuchFileData     []byte  `gorm:"column:buch_file_data;type:bytea"                               json:"-"`
}

func (BuchFileModel) TableName() string {
	return "buch_files"
}
