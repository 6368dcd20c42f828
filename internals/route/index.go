// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	buchRoute "buchverein_backend/internals/features/buch/route"
	vereinRoute "buchverein_backend/internals/features/verein/route"
)

// SetupRoutes mounts both entity families under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up BuchRoutes...")
	buchRoute.BuchRoutes(api.Group("/buecher"), db)

	log.Println("[INFO] Setting up VereinRoutes...")
	vereinRoute.VereinRoutes(api.Group("/vereine"), db)
}
