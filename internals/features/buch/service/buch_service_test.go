package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/buch/model"
	helper "buchverein_backend/internals/helpers"
)

func seedBuch(t *testing.T, db *gorm.DB, isbn, titel string, rating int) *model.BuchModel {
	t.Helper()
	buch := &model.BuchModel{
		BuchISBN:   isbn,
		BuchRating: rating,
		BuchPreis:  10,
		Titel:      &model.TitelModel{TitelTitel: titel},
	}
	require.NoError(t, db.Create(buch).Error)
	return buch
}

func TestFindByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	seeded := seedBuch(t, db, "978-0-007-00644-1", "Alpha", 4)

	buch, err := svc.FindByID(ctx, seeded.BuchID, false)
	require.NoError(t, err)
	assert.Equal(t, "978-0-007-00644-1", buch.BuchISBN)
	require.NotNil(t, buch.Titel)
	assert.Equal(t, "Alpha", buch.Titel.TitelTitel)
	// tags come back as an empty set, never nil
	assert.NotNil(t, buch.BuchSchlagwoerter)
	assert.Empty(t, buch.BuchSchlagwoerter)
}

func TestFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)

	buch, err := svc.FindByID(context.Background(), 4711, false)
	assert.Nil(t, buch)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFindByIDKeepsTags(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)

	buch := &model.BuchModel{
		BuchISBN:          "978-0-306-40615-7",
		BuchPreis:         10,
		BuchSchlagwoerter: pq.StringArray{"JAVASCRIPT", "PYTHON"},
		Titel:             &model.TitelModel{TitelTitel: "Beta"},
	}
	require.NoError(t, db.Create(buch).Error)

	got, err := svc.FindByID(context.Background(), buch.BuchID, false)
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"JAVASCRIPT", "PYTHON"}, got.BuchSchlagwoerter)
}

func TestFindFilteredPaging(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	// 7 matching titles plus 2 that do not match
	for i := 0; i < 7; i++ {
		seedBuch(t, db, fmt.Sprintf("isbn-go-%d", i), fmt.Sprintf("Go Buch %d", i), 3)
	}
	seedBuch(t, db, "isbn-x-1", "Java Buch", 3)
	seedBuch(t, db, "isbn-x-2", "Rust Buch", 3)

	params := map[string]string{"titel": "go"}

	first, err := svc.Find(ctx, params, helper.Pageable{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, first.Content, 5)
	assert.EqualValues(t, 7, first.TotalElements)

	second, err := svc.Find(ctx, params, helper.Pageable{Number: 1, Size: 5})
	require.NoError(t, err)
	assert.Len(t, second.Content, 2)
	assert.EqualValues(t, 7, second.TotalElements)

	// page past the last row is a miss, not an empty slice
	_, err = svc.Find(ctx, params, helper.Pageable{Number: 2, Size: 5})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFindAllPaging(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		seedBuch(t, db, fmt.Sprintf("isbn-%d", i), fmt.Sprintf("Buch %d", i), 1)
	}

	slice, err := svc.Find(ctx, nil, helper.Pageable{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, slice.Content, 5)
	assert.EqualValues(t, 6, slice.TotalElements)
	for _, buch := range slice.Content {
		assert.NotNil(t, buch.Titel, "titel must be preloaded")
		assert.NotNil(t, buch.BuchSchlagwoerter)
	}

	rest, err := svc.Find(ctx, nil, helper.Pageable{Number: 1, Size: 5})
	require.NoError(t, err)
	assert.Len(t, rest.Content, 1)
}

func TestFindUnknownParameterRejects(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)

	seedBuch(t, db, "isbn-1", "Alpha", 3)

	_, err := svc.Find(context.Background(),
		map[string]string{"farbe": "rot"}, helper.Pageable{Number: 0, Size: 5})
	var invalid *InvalidSearchError
	assert.ErrorAs(t, err, &invalid)
}

func TestFindInvalidEnumRejects(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)

	seedBuch(t, db, "isbn-1", "Alpha", 3)

	_, err := svc.Find(context.Background(),
		map[string]string{"art": "AUDIO"}, helper.Pageable{Number: 0, Size: 5})
	var invalid *InvalidSearchError
	assert.ErrorAs(t, err, &invalid)
}

func TestFindRatingLowerBound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	seedBuch(t, db, "isbn-1", "Alpha", 1)
	seedBuch(t, db, "isbn-2", "Beta", 3)
	seedBuch(t, db, "isbn-3", "Gamma", 5)

	slice, err := svc.Find(ctx, map[string]string{"rating": "3"},
		helper.Pageable{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, slice.Content, 2)
	assert.EqualValues(t, 2, slice.TotalElements)
}

func TestCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	seedBuch(t, db, "isbn-1", "Alpha", 1)
	seedBuch(t, db, "isbn-2", "Beta", 4)

	all, err := svc.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all)

	filtered, err := svc.Count(ctx, map[string]string{"rating": "4"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, filtered)
}

func TestCountInvalidParametersReject(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	seedBuch(t, db, "isbn-1", "Alpha", 1)
	seedBuch(t, db, "isbn-2", "Beta", 4)

	// an unknown parameter name rejects the count, it never degrades into
	// the unfiltered total
	cnt, err := svc.Count(ctx, map[string]string{"farbe": "rot"})
	assert.Zero(t, cnt)
	var invalid *InvalidSearchError
	require.ErrorAs(t, err, &invalid)

	// an invalid enum value rejects the count instead of counting nothing
	cnt, err = svc.Count(ctx, map[string]string{"art": "AUDIO"})
	assert.Zero(t, cnt)
	assert.ErrorAs(t, err, &invalid)
}

func TestFindFileByBuchID(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuchService(db)
	ctx := context.Background()

	buch := seedBuch(t, db, "isbn-1", "Alpha", 1)
	mime := "image/png"
	require.NoError(t, db.Create(&model.BuchFileModel{
		BuchFileBuchID:   buch.BuchID,
		BuchFileFilename: "cover.png",
		BuchFileMimetype: &mime,
		BuchFileData:     []byte{0x89, 0x50},
	}).Error)

	file, err := svc.FindFileByBuchID(ctx, buch.BuchID)
	require.NoError(t, err)
	assert.Equal(t, "cover.png", file.BuchFileFilename)

	_, err = svc.FindFileByBuchID(ctx, 4711)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
