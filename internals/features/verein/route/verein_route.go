package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/controller"
	"buchverein_backend/internals/middlewares"
	"buchverein_backend/internals/middlewares/auth"
)

// VereinRoutes mounts the club endpoints under the given router group.
// Reads are public, writes need a valid token with the right role.
func VereinRoutes(router fiber.Router, db *gorm.DB) {
	readCtrl := controller.NewVereinController(db)
	writeCtrl := controller.NewVereinWriteController(db)

	router.Get("/", readCtrl.Find)
	router.Get("/logo/:id", readCtrl.GetLogo)
	router.Get("/:id", readCtrl.GetByID)

	write := router.Group("",
		middlewares.WriteRateLimiter(),
		auth.AuthMiddleware(),
	)
	write.Post("/", auth.RequireRoles("admin", "user"), writeCtrl.Post)
	write.Put("/:id", auth.RequireRoles("admin", "user"), writeCtrl.Put)
	write.Put("/:id/logo", auth.RequireRoles("admin", "user"), writeCtrl.AddLogo)
	write.Delete("/:id", auth.RequireRoles("admin"), writeCtrl.Delete)
}
