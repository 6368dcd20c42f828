package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/model"
	helper "buchverein_backend/internals/helpers"
)

func seedVerein(t *testing.T, db *gorm.DB, name, stadt string) *model.VereinModel {
	t.Helper()
	verein := &model.VereinModel{
		VereinName: name,
		Stadion:    &model.StadionModel{StadionName: name + " Arena", StadionStadt: stadt},
	}
	require.NoError(t, db.Create(verein).Error)
	return verein
}

func TestFindByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewVereinService(db)
	ctx := context.Background()

	seeded := seedVerein(t, db, "FC Alpha", "Wien")

	verein, err := svc.FindByID(ctx, seeded.VereinID, false)
	require.NoError(t, err)
	assert.Equal(t, "FC Alpha", verein.VereinName)
	require.NotNil(t, verein.Stadion)
	assert.Equal(t, "Wien", verein.Stadion.StadionStadt)

	_, err = svc.FindByID(ctx, 4711, false)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFindByStadtJoin(t *testing.T) {
	db := newTestDB(t)
	svc := NewVereinService(db)
	ctx := context.Background()

	seedVerein(t, db, "FC Alpha", "Wien")
	seedVerein(t, db, "SV Beta", "Graz")
	seedVerein(t, db, "SK Gamma", "Wiener Neustadt")

	slice, err := svc.Find(ctx, map[string]string{"stadt": "wien"},
		helper.Pageable{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, slice.Content, 2)
	assert.EqualValues(t, 2, slice.TotalElements)
}

func TestFindAllPaging(t *testing.T) {
	db := newTestDB(t)
	svc := NewVereinService(db)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		seedVerein(t, db, fmt.Sprintf("Verein %d", i), "Wien")
	}

	slice, err := svc.Find(ctx, nil, helper.Pageable{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, slice.Content, 5)
	assert.EqualValues(t, 6, slice.TotalElements)

	// page past the last row is a miss, not an empty slice
	_, err = svc.Find(ctx, nil, helper.Pageable{Number: 5, Size: 5})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFindUnknownParameterRejects(t *testing.T) {
	db := newTestDB(t)
	svc := NewVereinService(db)

	seedVerein(t, db, "FC Alpha", "Wien")

	_, err := svc.Find(context.Background(),
		map[string]string{"liga": "1"}, helper.Pageable{Number: 0, Size: 5})
	var invalid *InvalidSearchError
	assert.ErrorAs(t, err, &invalid)
}

func TestCountUnknownParameterRejects(t *testing.T) {
	db := newTestDB(t)
	svc := NewVereinService(db)
	ctx := context.Background()

	seedVerein(t, db, "FC Alpha", "Wien")
	seedVerein(t, db, "SV Beta", "Graz")

	// an unknown parameter name rejects the count, it never degrades into
	// the unfiltered total
	cnt, err := svc.Count(ctx, map[string]string{"liga": "1"})
	assert.Zero(t, cnt)
	var invalid *InvalidSearchError
	require.ErrorAs(t, err, &invalid)

	cnt, err = svc.Count(ctx, map[string]string{"name": "alpha"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}
