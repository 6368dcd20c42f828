package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/buch/model"
	helper "buchverein_backend/internals/helpers"
)

// BuchService implements the read side for books.
type BuchService struct {
	db *gorm.DB
}

func NewBuchService(db *gorm.DB) *BuchService {
	return &BuchService{db: db}
}

// FindByID loads one book with its title, optionally with its
// illustrations. The tag set is never nil on the way out.
func (s *BuchService) FindByID(ctx context.Context, id int, mitAbbildungen bool) (*model.BuchModel, error) {
	q := s.db.WithContext(ctx).Preload("Titel")
	if mitAbbildungen {
		q = q.Preload("Abbildungen")
	}

	var buch model.BuchModel
	if err := q.First(&buch, "buch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: fmt.Sprintf("no book with id %d", id)}
		}
		return nil, err
	}
	normalizeSchlagwoerter(&buch)
	return &buch, nil
}

// FindFileByBuchID loads the binary attachment of a book.
func (s *BuchService) FindFileByBuchID(ctx context.Context, buchID int) (*model.BuchFileModel, error) {
	var file model.BuchFileModel
	if err := s.db.WithContext(ctx).First(&file, "buch_file_buch_id = ?", buchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: fmt.Sprintf("no file for book %d", buchID)}
		}
		return nil, err
	}
	return &file, nil
}

// Find searches books with the given parameters and paging. Without
// parameters it falls back to the plain paginated listing. Unknown
// parameter names and invalid enum values reject the whole search; an
// empty result page surfaces as NotFoundError, never as an empty slice.
func (s *BuchService) Find(ctx context.Context, suchparameter map[string]string, pageable helper.Pageable) (*helper.Slice[model.BuchModel], error) {
	if len(suchparameter) == 0 {
		return s.findAll(ctx, pageable)
	}

	if !CheckKeys(suchparameter) || !CheckEnums(suchparameter) {
		log.Printf("[INFO] find: invalid search parameters %v", suchparameter)
		return nil, &InvalidSearchError{}
	}

	where, err := BuildWhere(suchparameter)
	if err != nil {
		return nil, err
	}

	var buecher []model.BuchModel
	q := where.Apply(s.db.WithContext(ctx).Model(&model.BuchModel{}))
	if err := q.Preload("Titel").
		Offset(pageable.Number * pageable.Size).
		Limit(pageable.Size).
		Find(&buecher).Error; err != nil {
		return nil, err
	}
	if len(buecher) == 0 {
		return nil, &NotFoundError{
			Msg: fmt.Sprintf("no books found: %v, page %d", suchparameter, pageable.Number),
		}
	}

	totalElements, err := s.Count(ctx, suchparameter)
	if err != nil {
		return nil, err
	}
	return createSlice(buecher, totalElements), nil
}

// Count returns the number of books matching the parameters; with nil or
// empty parameters it counts all books. Parameters go through the same
// allow-list and enum checks as Find, an unknown name is never ignored.
func (s *BuchService) Count(ctx context.Context, suchparameter map[string]string) (int64, error) {
	q := s.db.WithContext(ctx).Model(&model.BuchModel{})
	if len(suchparameter) > 0 {
		if !CheckKeys(suchparameter) || !CheckEnums(suchparameter) {
			log.Printf("[INFO] count: invalid search parameters %v", suchparameter)
			return 0, &InvalidSearchError{}
		}
		where, err := BuildWhere(suchparameter)
		if err != nil {
			return 0, err
		}
		q = where.Apply(q)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *BuchService) findAll(ctx context.Context, pageable helper.Pageable) (*helper.Slice[model.BuchModel], error) {
	var buecher []model.BuchModel
	if err := s.db.WithContext(ctx).
		Preload("Titel").
		Offset(pageable.Number * pageable.Size).
		Limit(pageable.Size).
		Find(&buecher).Error; err != nil {
		return nil, err
	}
	if len(buecher) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("invalid page %d", pageable.Number)}
	}

	totalElements, err := s.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	return createSlice(buecher, totalElements), nil
}

func createSlice(buecher []model.BuchModel, totalElements int64) *helper.Slice[model.BuchModel] {
	for i := range buecher {
		normalizeSchlagwoerter(&buecher[i])
	}
	return &helper.Slice[model.BuchModel]{
		Content:       buecher,
		TotalElements: totalElements,
	}
}

func normalizeSchlagwoerter(buch *model.BuchModel) {
	if buch.BuchSchlagwoerter == nil {
		buch.BuchSchlagwoerter = pq.StringArray{}
	}
}
