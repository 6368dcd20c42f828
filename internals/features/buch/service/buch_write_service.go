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

	"buchverein_backend/internals/features/buch/model"
	helper "buchverein_backend/internals/helpers"
)

// version tokens travel as quoted integers, e.g. `"3"`, same textual form
// as an If-Match/ETag header
var versionPattern = regexp.MustCompile(`^"\d{1,3}"$`)

// BuchWriteService implements the write side for books: create with
// uniqueness check, update with optimistic locking, attachment replace
// and delete.
type BuchWriteService struct {
	db          *gorm.DB
	readService *BuchService
	mailer      *helper.Mailer
}

func NewBuchWriteService(db *gorm.DB, readService *BuchService, mailer *helper.Mailer) *BuchWriteService {
	return &BuchWriteService{db: db, readService: readService, mailer: mailer}
}

// Create inserts the book together with its title and illustrations inside
// one transaction and returns the generated id. The new book starts at
// version 0. The notification mail runs after the commit and is
// best-effort: a mail failure never rolls back the create.
func (s *BuchWriteService) Create(ctx context.Context, buch *model.BuchModel) (int, error) {
	if err := s.validateCreate(ctx, buch); err != nil {
		return 0, err
	}

	buch.BuchVersion = 0
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(buch).Error
	}); err != nil {
		return 0, err
	}

	s.sendMail(buch)

	log.Printf("[INFO] create: buch_id=%d", buch.BuchID)
	return buch.BuchID, nil
}

// Update applies the changed scalar columns under optimistic locking. The
// version token must match the quoted-integer pattern. The UPDATE statement
// itself is gated on the stored version and increments it in the same
// statement, so of several concurrent writers presenting the same token
// exactly one hits the row; every other one sees zero affected rows and is
// rejected. A fabricated future version fails the same way as a stale one.
func (s *BuchWriteService) Update(ctx context.Context, id int, updates map[string]any, version string) (int, error) {
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
	cols["buch_version"] = gorm.Expr("buch_version + 1")

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.BuchModel{}).
			Where("buch_id = ? AND buch_version = ?", id, parsed).
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
	log.Printf("[INFO] update: buch_id=%d version=%d", id, newVersion)
	return newVersion, nil
}

// AddFile replaces the binary attachment of a book: any existing row for
// the parent is deleted before the insert, so there is never more than one.
// The MIME type is sniffed from the payload bytes, the client-declared
// content type is not trusted.
func (s *BuchWriteService) AddFile(ctx context.Context, buchID int, data []byte, filename string, size int64) (*model.BuchFileModel, error) {
	log.Printf("[INFO] addFile: buch_id=%d filename=%s size=%d", buchID, filename, size)

	file := &model.BuchFileModel{
		BuchFileBuchID:   buchID,
		BuchFileFilename: filename,
		BuchFileData:     data,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.BuchModel{}).Where("buch_id = ?", buchID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return &NotFoundError{Msg: fmt.Sprintf("no book with id %d", buchID)}
		}

		if err := tx.Where("buch_file_buch_id = ?", buchID).Delete(&model.BuchFileModel{}).Error; err != nil {
			return err
		}

		mime := mimetype.Detect(data).String()
		file.BuchFileMimetype = &mime

		return tx.Create(file).Error
	}); err != nil {
		return nil, err
	}
	return file, nil
}

// Delete removes the book with all its relations. A missing id is the
// no-op success signal false, not an error.
func (s *BuchWriteService) Delete(ctx context.Context, id int) (bool, error) {
	var buch model.BuchModel
	if err := s.db.WithContext(ctx).First(&buch, "buch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("abbildung_buch_id = ?", id).Delete(&model.AbbildungModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("titel_buch_id = ?", id).Delete(&model.TitelModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("buch_file_buch_id = ?", id).Delete(&model.BuchFileModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&buch).Error
	}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *BuchWriteService) validateCreate(ctx context.Context, buch *model.BuchModel) error {
	if buch.BuchISBN == "" {
		return nil
	}
	var cnt int64
	if err := s.db.WithContext(ctx).Model(&model.BuchModel{}).
		Where("buch_isbn = ?", buch.BuchISBN).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return &IsbnExistsError{ISBN: buch.BuchISBN}
	}
	return nil
}

func (s *BuchWriteService) sendMail(buch *model.BuchModel) {
	titel := "N/A"
	if buch.Titel != nil {
		titel = buch.Titel.TitelTitel
	}
	subject := fmt.Sprintf("Neues Buch %d", buch.BuchID)
	body := fmt.Sprintf("Das Buch mit dem Titel %q ist angelegt", titel)
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
