package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/model"
	helper "buchverein_backend/internals/helpers"
)

// VereinService implements the read side for clubs.
type VereinService struct {
	db *gorm.DB
}

func NewVereinService(db *gorm.DB) *VereinService {
	return &VereinService{db: db}
}

// FindByID loads one club with its stadium, optionally with its squad.
func (s *VereinService) FindByID(ctx context.Context, id int, mitSpielern bool) (*model.VereinModel, error) {
	q := s.db.WithContext(ctx).Preload("Stadion")
	if mitSpielern {
		q = q.Preload("Spieler")
	}

	var verein model.VereinModel
	if err := q.First(&verein, "verein_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: fmt.Sprintf("no club with id %d", id)}
		}
		return nil, err
	}
	return &verein, nil
}

// FindLogoByVereinID loads the logo of a club.
func (s *VereinService) FindLogoByVereinID(ctx context.Context, vereinID int) (*model.LogoFileModel, error) {
	var logo model.LogoFileModel
	if err := s.db.WithContext(ctx).First(&logo, "logo_file_verein_id = ?", vereinID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: fmt.Sprintf("no logo for club %d", vereinID)}
		}
		return nil, err
	}
	return &logo, nil
}

// Find searches clubs with the given parameters and paging. Without
// parameters it falls back to the plain paginated listing. Unknown
// parameter names reject the whole search; an empty result page surfaces
// as NotFoundError, never as an empty slice.
func (s *VereinService) Find(ctx context.Context, suchparameter map[string]string, pageable helper.Pageable) (*helper.Slice[model.VereinModel], error) {
	if len(suchparameter) == 0 {
		return s.findAll(ctx, pageable)
	}

	if !CheckKeys(suchparameter) {
		log.Printf("[INFO] find: invalid search parameters %v", suchparameter)
		return nil, &InvalidSearchError{}
	}

	where, err := BuildWhere(suchparameter)
	if err != nil {
		return nil, err
	}

	var vereine []model.VereinModel
	q := where.Apply(s.db.WithContext(ctx).Model(&model.VereinModel{}))
	if err := q.Preload("Stadion").
		Offset(pageable.Number * pageable.Size).
		Limit(pageable.Size).
		Find(&vereine).Error; err != nil {
		return nil, err
	}
	if len(vereine) == 0 {
		return nil, &NotFoundError{
			Msg: fmt.Sprintf("no clubs found: %v, page %d", suchparameter, pageable.Number),
		}
	}

	totalElements, err := s.Count(ctx, suchparameter)
	if err != nil {
		return nil, err
	}
	return &helper.Slice[model.VereinModel]{Content: vereine, TotalElements: totalElements}, nil
}

// Count returns the number of clubs matching the parameters; with nil or
// empty parameters it counts all clubs. Parameters go through the same
// allow-list check as Find, an unknown name is never ignored.
func (s *VereinService) Count(ctx context.Context, suchparameter map[string]string) (int64, error) {
	q := s.db.WithContext(ctx).Model(&model.VereinModel{})
	if len(suchparameter) > 0 {
		if !CheckKeys(suchparameter) {
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

func (s *VereinService) findAll(ctx context.Context, pageable helper.Pageable) (*helper.Slice[model.VereinModel], error) {
	var vereine []model.VereinModel
	if err := s.db.WithContext(ctx).
		Preload("Stadion").
		Offset(pageable.Number * pageable.Size).
		Limit(pageable.Size).
		Find(&vereine).Error; err != nil {
		return nil, err
	}
	if len(vereine) == 0 {
		return nil, &NotFoundError{Msg: fmt.Sprintf("invalid page %d", pageable.Number)}
	}

	totalElements, err := s.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &helper.Slice[model.VereinModel]{Content: vereine, TotalElements: totalElements}, nil
}
