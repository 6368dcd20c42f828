package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/dto"
	"buchverein_backend/internals/features/verein/service"
	helper "buchverein_backend/internals/helpers"
)

// VereinController serves the read side of the REST interface.
type VereinController struct {
	Service *service.VereinService
}

func NewVereinController(db *gorm.DB) *VereinController {
	return &VereinController{Service: service.NewVereinService(db)}
}

// 🟢 GET /api/vereine/:id
// A matching If-None-Match short-circuits into 304, otherwise the club is
// returned with its version as ETag.
func (ctrl *VereinController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid club id")
	}

	verein, err := ctrl.Service.FindByID(c.UserContext(), id, true)
	if err != nil {
		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
		}
		log.Printf("[ERROR] getById: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load club")
	}

	etag := fmt.Sprintf("%q", strconv.Itoa(verein.VereinVersion))
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderETag, etag)
	return helper.JsonOK(c, "club found", dto.ToVereinResponse(verein))
}

// 🟢 GET /api/vereine
// Every query key except page/size/only is treated as a search parameter;
// unknown names reject the whole search. ?only=count returns the bare count.
func (ctrl *VereinController) Find(c *fiber.Ctx) error {
	suchparameter := map[string]string{}
	for key, value := range c.Queries() {
		switch key {
		case "page", "size", "only":
			continue
		}
		suchparameter[key] = value
	}

	if c.Query("only") == "count" {
		count, err := ctrl.Service.Count(c.UserContext(), suchparameter)
		if err != nil {
			return mapReadError(c, err)
		}
		return helper.JsonOK(c, "count", fiber.Map{"count": count})
	}

	pageable := helper.CreatePageable(c.Query("page"), c.Query("size"))
	slice, err := ctrl.Service.Find(c.UserContext(), suchparameter, pageable)
	if err != nil {
		return mapReadError(c, err)
	}

	return helper.JsonOK(c, "clubs found", helper.Slice[dto.VereinResponse]{
		Content:       dto.ToVereinResponseList(slice.Content),
		TotalElements: slice.TotalElements,
	})
}

// 🟢 GET /api/vereine/logo/:id
// Streams the logo with its sniffed content type.
func (ctrl *VereinController) GetLogo(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid club id")
	}

	logo, err := ctrl.Service.FindLogoByVereinID(c.UserContext(), id)
	if err != nil {
		return mapReadError(c, err)
	}

	if logo.LogoFileMimetype != nil {
		c.Set(fiber.HeaderContentType, *logo.LogoFileMimetype)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", logo.LogoFileFilename))
	return c.Send(logo.LogoFileData)
}

// mapReadError translates the service error kinds into HTTP statuses. An
// invalid search surfaces as 404 like an empty result, per API contract.
func mapReadError(c *fiber.Ctx, err error) error {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
	}
	var invalidSearch *service.InvalidSearchError
	if errors.As(err, &invalidSearch) {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid search parameters")
	}
	log.Printf("[ERROR] find: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "search failed")
}
