package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/dto"
	"buchverein_backend/internals/features/verein/service"
	helper "buchverein_backend/internals/helpers"
)

// MaxLogoSize caps uploaded logos at 10 MB.
const MaxLogoSize = 10 << 20

// Declared content types accepted for logo uploads. The stored type is
// still sniffed from the bytes, this is just an early reject.
var allowedLogoTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// VereinWriteController serves the write side: create, update, logo upload
// and delete.
type VereinWriteController struct {
	Service  *service.VereinWriteService
	Validate *validator.Validate
}

func NewVereinWriteController(db *gorm.DB) *VereinWriteController {
	readService := service.NewVereinService(db)
	mailer := helper.NewMailerFromEnv()
	return &VereinWriteController{
		Service:  service.NewVereinWriteService(db, readService, mailer),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/vereine
func (ctrl *VereinWriteController) Post(c *fiber.Ctx) error {
	var req dto.VereinCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, validationMessage(err))
	}

	id, err := ctrl.Service.Create(c.UserContext(), req.ToModel())
	if err != nil {
		var exists *service.NameExistsError
		if errors.As(err, &exists) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, exists.Error())
		}
		log.Printf("[ERROR] create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create club")
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%d", c.BaseURL()+c.Path(), id))
	return helper.JsonCreated(c, "club created", fiber.Map{"id": id})
}

// 🟢 PUT /api/vereine/:id
// The version token travels in If-Match; a missing header is 428, a stale
// or malformed one 412.
func (ctrl *VereinWriteController) Put(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid club id")
	}

	version := c.Get(fiber.HeaderIfMatch)
	if version == "" {
		return helper.JsonError(c, fiber.StatusPreconditionRequired, "header If-Match is missing")
	}

	var req dto.VereinUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, validationMessage(err))
	}

	newVersion, err := ctrl.Service.Update(c.UserContext(), id, req.ToUpdates(), version)
	if err != nil {
		var versionInvalid *service.VersionInvalidError
		if errors.As(err, &versionInvalid) {
			return helper.JsonError(c, fiber.StatusPreconditionFailed, versionInvalid.Error())
		}
		var versionOutdated *service.VersionOutdatedError
		if errors.As(err, &versionOutdated) {
			return helper.JsonError(c, fiber.StatusPreconditionFailed, versionOutdated.Error())
		}
		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
		}
		log.Printf("[ERROR] update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update club")
	}

	c.Set(fiber.HeaderETag, fmt.Sprintf("%q", strconv.Itoa(newVersion)))
	return c.SendStatus(fiber.StatusNoContent)
}

// 🟢 PUT /api/vereine/:id/logo
// multipart upload, field name "file". Replaces any existing logo.
func (ctrl *VereinWriteController) AddLogo(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invalid club id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "multipart field 'file' is missing")
	}
	if fileHeader.Size > MaxLogoSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "file exceeds the 10 MB limit")
	}
	declared := strings.TrimSpace(strings.SplitN(fileHeader.Header.Get(fiber.HeaderContentType), ";", 2)[0])
	if !allowedLogoTypes[declared] {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("content type %q is not allowed", declared))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot read upload")
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, MaxLogoSize+1))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot read upload")
	}
	if len(data) > MaxLogoSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "file exceeds the 10 MB limit")
	}

	logo, err := ctrl.Service.AddLogo(c.UserContext(), id, data, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
		}
		log.Printf("[ERROR] addLogo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store logo")
	}

	location := strings.TrimSuffix(c.BaseURL()+c.Path(), fmt.Sprintf("/%d/logo", id)) + fmt.Sprintf("/logo/%d", id)
	c.Set(fiber.HeaderLocation, location)
	return helper.JsonCreated(c, "logo stored", fiber.Map{
		"id":       logo.LogoFileID,
		"mimetype": logo.LogoFileMimetype,
	})
}

// 🟢 DELETE /api/vereine/:id
// Idempotent: deleting a missing club is still 204.
func (ctrl *VereinWriteController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	deleted, err := ctrl.Service.Delete(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] delete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete club")
	}
	if !deleted {
		log.Printf("[WARN] delete: no club with id %d", id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed on %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
