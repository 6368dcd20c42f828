package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/buch/dto"
	"buchverein_backend/internals/features/buch/service"
	helper "buchverein_backend/internals/helpers"
)

// BuchController serves the read side of the REST interface.
type BuchController struct {
	Service *service.BuchService
}

func NewBuchController(db *gorm.DB) *BuchController {
	return &BuchController{Service: service.NewBuchService(db)}
}

// 🟢 GET /api/buecher/:id
// A matching If-None-Match short-circuits into 304, otherwise the book is
// returned with its version as ETag.
func (ctrl *BuchController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid book id")
	}

	buch, err := ctrl.Service.FindByID(c.UserContext(), id, true)
	if err != nil {
		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
		}
		log.Printf("[ERROR] getById: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load book")
	}

	etag := fmt.Sprintf("%q", strconv.Itoa(buch.BuchVersion))
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderETag, etag)
	return helper.JsonOK(c, "book found", dto.ToBuchResponse(buch))
}

// 🟢 GET /api/buecher
// Every query key except page/size/only is treated as a search parameter;
// unknown names reject the whole search. ?only=count returns the bare count.
func (ctrl *BuchController) Find(c *fiber.Ctx) error {
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

	return helper.JsonOK(c, "books found", helper.Slice[dto.BuchResponse]{
		Content:       dto.ToBuchResponseList(slice.Content),
		TotalElements: slice.TotalElements,
	})
}

// 🟢 GET /api/buecher/file/:id
// Streams the binary attachment with its sniffed content type.
func (ctrl *BuchController) GetFile(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid book id")
	}

	file, err := ctrl.Service.FindFileByBuchID(c.UserContext(), id)
	if err != nil {
		return mapReadError(c, err)
	}

	if file.BuchFileMimetype != nil {
		c.Set(fiber.HeaderContentType, *file.BuchFileMimetype)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", file.BuchFileFilename))
	return c.Send(file.BuchFileData)
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
