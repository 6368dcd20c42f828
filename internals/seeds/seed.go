package seeds

import (
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"buchverein_backend/internals/configs"
	buchmodel "buchverein_backend/internals/features/buch/model"
	vereinmodel "buchverein_backend/internals/features/verein/model"
)

// Populate fills an empty database with a handful of development records.
// Gated by DB_POPULATE=true and skipped as soon as any book exists, so a
// restart never duplicates data.
func Populate(db *gorm.DB) {
	if configs.GetEnv("DB_POPULATE", "false") != "true" {
		return
	}

	var cnt int64
	if err := db.Model(&buchmodel.BuchModel{}).Count(&cnt).Error; err != nil {
		log.Printf("[ERROR] populate: %v", err)
		return
	}
	if cnt > 0 {
		log.Println("[INFO] populate: data already present, skipping")
		return
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for i := range buecher {
			if err := tx.Create(&buecher[i]).Error; err != nil {
				return err
			}
		}
		for i := range vereine {
			if err := tx.Create(&vereine[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Printf("[ERROR] populate: %v", err)
		return
	}
	log.Printf("[INFO] populate: %d books, %d clubs", len(buecher), len(vereine))
}

func date(value string) *datatypes.Date {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func str(s string) *string   { return &s }
func f64(f float64) *float64 { return &f }
func boolp(b bool) *bool     { return &b }
func intp(i int) *int        { return &i }

var buecher = []buchmodel.BuchModel{
	{
		BuchISBN:          "978-3-897-22583-1",
		BuchRating:        4,
		BuchArt:           str(buchmodel.ArtEpub),
		BuchPreis:         11.1,
		BuchRabatt:        f64(0.011),
		BuchLieferbar:     boolp(true),
		BuchDatum:         date("2022-02-01"),
		BuchHomepage:      str("https://acme.at"),
		BuchSchlagwoerter: pq.StringArray{"JAVASCRIPT"},
		Titel:             &buchmodel.TitelModel{TitelTitel: "Alpha", TitelUntertitel: str("alpha")},
		Abbildungen: []buchmodel.AbbildungModel{
			{AbbildungBeschriftung: "Abb. 1", AbbildungContentType: "img/png"},
		},
	},
	{
		BuchISBN:          "978-3-827-31552-6",
		BuchRating:        2,
		BuchArt:           str(buchmodel.ArtHardcover),
		BuchPreis:         22.2,
		BuchRabatt:        f64(0.022),
		BuchLieferbar:     boolp(true),
		BuchDatum:         date("2022-02-02"),
		BuchHomepage:      str("https://acme.biz"),
		BuchSchlagwoerter: pq.StringArray{"TYPESCRIPT"},
		Titel:             &buchmodel.TitelModel{TitelTitel: "Beta"},
	},
	{
		BuchISBN:          "978-0-201-63361-0",
		BuchRating:        3,
		BuchArt:           str(buchmodel.ArtPaperback),
		BuchPreis:         33.3,
		BuchRabatt:        f64(0.033),
		BuchLieferbar:     boolp(true),
		BuchDatum:         date("2022-02-03"),
		BuchHomepage:      str("https://acme.com"),
		BuchSchlagwoerter: pq.StringArray{"JAVASCRIPT", "TYPESCRIPT"},
		Titel:             &buchmodel.TitelModel{TitelTitel: "Gamma", TitelUntertitel: str("gamma")},
	},
}

var vereine = []vereinmodel.VereinModel{
	{
		VereinName:             "FC Alpha",
		VereinGruendungsdatum:  date("1909-05-13"),
		VereinWebsite:          str("https://fc-alpha.at"),
		VereinEmail:            str("kontakt@fc-alpha.at"),
		VereinTelefonnummer:    str("+43 1 2345670"),
		VereinMitgliederanzahl: intp(12000),
		Stadion: &vereinmodel.StadionModel{
			StadionName:       "Alpha Arena",
			StadionStadt:      "Wien",
			StadionKapazitaet: intp(28000),
		},
		Spieler: []vereinmodel.SpielerModel{
			{SpielerVorname: "Max", SpielerNachname: "Muster", SpielerGeburtsdatum: date("1998-07-21"), SpielerStarkerFuss: str("LINKS")},
			{SpielerVorname: "Erik", SpielerNachname: "Eder", SpielerGeburtsdatum: date("2001-03-02"), SpielerStarkerFuss: str("RECHTS")},
		},
	},
	{
		VereinName:             "SV Beta",
		VereinGruendungsdatum:  date("1954-11-30"),
		VereinWebsite:          str("https://sv-beta.de"),
		VereinEmail:            str("info@sv-beta.de"),
		VereinTelefonnummer:    str("+49 89 7654321"),
		VereinMitgliederanzahl: intp(4300),
		Stadion: &vereinmodel.StadionModel{
			StadionName:  "Betapark",
			StadionStadt: "Muenchen",
		},
	},
}
