package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/model"
	helper "buchverein_backend/internals/helpers"
)

// version tokens travel as quoted integers, e.g. `"3"`, same textual form
// as an If-Match/ETag header
var versionPattern = regexp.MustCompile(`^"\d{1,3}"$`)

// VereinWriteService implements the write side for clubs: create with
// uniqueness check, update with optimistic locking, logo replace and
// delete.
type VereinWriteService struct {
	db          *gorm.DB
	readService *VereinService
	mailer      *helper.Mailer
}

func NewVereinWriteService(db *gorm.DB, readService *VereinService, mailer *helper.Mailer) *VereinWriteService {
	return &VereinWriteService{db: db, readService: readService, mailer: mailer}
}

// Create inserts the club together with its stadium and squad inside one
// transaction and returns the generated id. The new club starts at
// version 0. The notification mail runs after the commit and is
// best-effort: a mail failure never rolls back the create.
func (s *VereinWriteService) Create(ctx context.Context, verein *model.VereinModel) (int, error) {
	if err := s.validateCreate(ctx, verein); err != nil {
		return 0, err
	}

	verein.VereinVersion = 0
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(verein).Error
	}); err != nil {
		return 0, err
	}

	s.sendMail(verein)

	log.Printf("[INFO] create: verein_id=%d", verein.VereinID)
	return verein.VereinID, nil
}

// Update applies the changed scalar columns under optimistic locking. The
// version token must match the quoted-integer pattern. The UPDATE statement
// itself is gated on the stored version and increments it in the same
// statement, so of several concurrent writers presenting the same token
// exactly one hits the row; every other one sees zero affected rows and is
// rejected. A fabricated future version fails the same way as a stale one.
func (s *VereinWriteService) Update(ctx context.Context, id int, updates map[string]any, version string) (int, error) {
	parsed, err := parseVersion(version)
	if err != nil {
		return 0, err
	}

	if _, err := s.readService.FindByID(ctx, id, false); err != nil {
		return 0, err
	}

	// the caller keeps its map, the version column only goes into the copy
	cols := make(map[string]any, len(updates)+1)
	for col, val := range updates {
		cols[col] = val
	}
	cols["verein_version"] = gorm.Expr("verein_version + 1")

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.VereinModel{}).
			Where("verein_id = ? AND verein_version = ?", id, parsed).
			Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// the token diverges from the stored version, or another
			// writer moved the row since the read above
			return &VersionOutdatedError{Version: parsed}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	newVersion := parsed + 1
	log.Printf("[INFO] update: verein_id=%d version=%d", id, newVersion)
	return newVersion, nil
}

// AddLogo replaces the logo of a club: any existing row for the parent is
// deleted before the insert, so there is never more than one. The MIME
// type is sniffed from the payload bytes, the client-declared content type
// is not trusted.
func (s *VereinWriteService) AddLogo(ctx context.Context, vereinID int, data []byte, filename string, size int64) (*model.LogoFileModel, error) {
	log.Printf("[INFO] addLogo: verein_id=%d filename=%s size=%d", vereinID, filename, size)

	logo := &model.LogoFileModel{
		LogoFileVereinID: vereinID,
		LogoFileFilename: filename,
		LogoFileData:     data,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.VereinModel{}).Where("verein_id = ?", vereinID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return &NotFoundError{Msg: fmt.Sprintf("no club with id %d", vereinID)}
		}

		if err := tx.Where("logo_file_verein_id = ?", vereinID).Delete(&model.LogoFileModel{}).Error; err != nil {
			return err
		}

		mime := mimetype.Detect(data).String()
		logo.LogoFileMimetype = &mime

		return tx.Create(logo).Error
	}); err != nil {
		return nil, err
	}
	return logo, nil
}

// Delete removes the club with all its relations. A missing id is the
// no-op success signal false, not an error.
func (s *VereinWriteService) Delete(ctx context.Context, id int) (bool, error) {
	var verein model.VereinModel
	if err := s.db.WithContext(ctx).First(&verein, "verein_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("spieler_verein_id = ?", id).Delete(&model.SpielerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stadion_verein_id = ?", id).Delete(&model.StadionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("logo_file_verein_id = ?", id).Delete(&model.LogoFileModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&verein).Error
	}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *VereinWriteService) validateCreate(ctx context.Context, verein *model.VereinModel) error {
	if verein.VereinName == "" {
		return nil
	}
	var cnt int64
	if err := s.db.WithContext(ctx).Model(&model.VereinModel{}).
		Where("verein_name = ?", verein.VereinName).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return &NameExistsError{Name: verein.VereinName}
	}
	return nil
}

func (s *VereinWriteService) sendMail(verein *model.VereinModel) {
	subject := fmt.Sprintf("Neuer Verein %d", verein.VereinID)
	body := fmt.Sprintf("Der Verein mit dem Namen %q ist angelegt", verein.VereinName)
	_ = s.mailer.Send(subject, body)
}

// parseVersion checks the quoted-integer token shape and extracts the
// number between the quotes.
func parseVersion(version string) (int, error) {
	if !versionPattern.MatchString(version) {
		return 0, &VersionInvalidError{Version: version}
	}
	parsed, err := strconv.Atoi(version[1 : len(version)-1])
	if err != nil {
		return 0, &VersionInvalidError{Version: version}
	}
	return parsed, nil
}
