package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/buch/controller"
	"buchverein_backend/internals/middlewares"
	"buchverein_backend/internals/middlewares/auth"
)

// BuchRoutes mounts the book endpoints under the given router group.
// Reads are public, writes need a valid token with the right role.
func BuchRoutes(router fiber.Router, db *gorm.DB) {
	readCtrl := controller.NewBuchController(db)
	writeCtrl := controller.NewBuchWriteController(db)

	router.Get("/", readCtrl.Find)
	router.Get("/file/:id", readCtrl.GetFile)
	router.Get("/:id", readCtrl.GetByID)

	write := router.Group("",
		middlewares.WriteRateLimiter(),
		auth.AuthMiddleware(),
	)
	write.Post("/", auth.RequireRoles("admin", "user"), writeCtrl.Post)
	write.Put("/:id", auth.RequireRoles("admin", "user"), writeCtrl.Put)
	write.Put("/:id/file", auth.RequireRoles("admin", "user"), writeCtrl.AddFile)
	write.Delete("/:id", auth.RequireRoles("admin"), writeCtrl.Delete)
}
