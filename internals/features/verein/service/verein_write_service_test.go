package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"buchverein_backend/internals/features/verein/model"
	helper "buchverein_backend/internals/helpers"
)

func newWriteService(db *gorm.DB) *VereinWriteService {
	// empty host keeps the mailer in dry-run mode
	return NewVereinWriteService(db, NewVereinService(db), &helper.Mailer{})
}

func TestCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	verein := &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
		Spieler: []model.SpielerModel{
			{SpielerVorname: "Max", SpielerNachname: "Muster"},
		},
	}
	id, err := svc.Create(ctx, verein)
	require.NoError(t, err)
	assert.Positive(t, id)

	stored, err := svc.readService.FindByID(ctx, id, true)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.VereinVersion)
	require.NotNil(t, stored.Stadion)
	assert.Equal(t, "Alpha Arena", stored.Stadion.StadionName)
	assert.Len(t, stored.Spieler, 1)
}

func TestCreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Beta Arena", StadionStadt: "Graz"},
	})
	var exists *NameExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "FC Alpha", exists.Name)

	cnt, err := svc.readService.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestUpdateVersionFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
	})
	require.NoError(t, err)

	newVersion, err := svc.Update(ctx, id, map[string]any{"verein_name": "FC Alpha 09"}, `"0"`)
	require.NoError(t, err)
	assert.Equal(t, 1, newVersion)

	stored, err := svc.readService.FindByID(ctx, id, false)
	require.NoError(t, err)
	assert.Equal(t, "FC Alpha 09", stored.VereinName)
	assert.Equal(t, 1, stored.VereinVersion)

	// stale token loses
	_, err = svc.Update(ctx, id, map[string]any{"verein_name": "FC Omega"}, `"0"`)
	var outdated *VersionOutdatedError
	assert.ErrorAs(t, err, &outdated)

	// malformed token never reaches the row
	_, err = svc.Update(ctx, id, map[string]any{"verein_name": "FC Omega"}, "1")
	var invalid *VersionInvalidError
	assert.ErrorAs(t, err, &invalid)

	stored, err = svc.readService.FindByID(ctx, id, false)
	require.NoError(t, err)
	assert.Equal(t, "FC Alpha 09", stored.VereinName)
}

func TestUpdateLosesRaceAgainstOtherWriter(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
	})
	require.NoError(t, err)

	// another writer commits between this writer's read and its UPDATE;
	// the version gate on the UPDATE itself must reject the replayed token
	require.NoError(t, db.Model(&model.VereinModel{}).
		Where("verein_id = ?", id).
		Updates(map[string]any{
			"verein_name":    "FC Alpha 09",
			"verein_version": gorm.Expr("verein_version + 1"),
		}).Error)

	_, err = svc.Update(ctx, id, map[string]any{"verein_name": "FC Omega"}, `"0"`)
	var outdated *VersionOutdatedError
	require.ErrorAs(t, err, &outdated)

	// the losing writer changed nothing, only one +1 happened
	stored, err := svc.readService.FindByID(ctx, id, false)
	require.NoError(t, err)
	assert.Equal(t, "FC Alpha 09", stored.VereinName)
	assert.Equal(t, 1, stored.VereinVersion)
}

func TestUpdateLeavesCallerMapAlone(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
	})
	require.NoError(t, err)

	updates := map[string]any{"verein_name": "FC Alpha 09"}
	_, err = svc.Update(ctx, id, updates, `"0"`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"verein_name": "FC Alpha 09"}, updates)
}

func TestAddLogoReplaces(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
	})
	require.NoError(t, err)

	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	first, err := svc.AddLogo(ctx, id, png, "logo.png", int64(len(png)))
	require.NoError(t, err)
	require.NotNil(t, first.LogoFileMimetype)
	assert.Equal(t, "image/png", *first.LogoFileMimetype)

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	_, err = svc.AddLogo(ctx, id, jpeg, "logo.jpg", int64(len(jpeg)))
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Model(&model.LogoFileModel{}).
		Where("logo_file_verein_id = ?", id).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)

	logo, err := svc.readService.FindLogoByVereinID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "logo.jpg", logo.LogoFileFilename)

	_, err = svc.AddLogo(ctx, 4711, png, "logo.png", int64(len(png)))
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newWriteService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.VereinModel{
		VereinName: "FC Alpha",
		Stadion:    &model.StadionModel{StadionName: "Alpha Arena", StadionStadt: "Wien"},
		Spieler: []model.SpielerModel{
			{SpielerVorname: "Max", SpielerNachname: "Muster"},
		},
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, probe := range []struct {
		model any
		where string
	}{
		{&model.VereinModel{}, "verein_id = ?"},
		{&model.StadionModel{}, "stadion_verein_id = ?"},
		{&model.SpielerModel{}, "spieler_verein_id = ?"},
		{&model.LogoFileModel{}, "logo_file_verein_id = ?"},
	} {
		var cnt int64
		require.NoError(t, db.Model(probe.model).Where(probe.where, id).Count(&cnt).Error)
		assert.Zero(t, cnt)
	}

	// deleting again is the idempotent no-op
	deleted, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
