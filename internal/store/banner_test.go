package store

import (
	"context"
	"testing"
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestBanner(t *testing.T, db *MYSQLStore, languageId, title string) (string, string) {
	t.Helper()
	ctx := context.Background()

	fileId, err := db.Files().AddFile(ctx, testFile(slug.Make(title)+".png"), testActor)
	require.NoError(t, err)

	bannerId, err := db.Banner().AddBanner(ctx, &entity.BannerInsert{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Published: true,
	}, testActor)
	require.NoError(t, err)

	_, err = db.Banner().AddBannerLanguage(ctx, &entity.BannerLanguageInsert{
		BannerId:       bannerId,
		LanguageId:     languageId,
		Title:          title,
		Slug:           slug.Make(title),
		NormalizedSlug: slug.Normalize(title),
		FileId:         fileId,
	}, testActor)
	require.NoError(t, err)
	return bannerId, fileId
}

func TestResolveBannerLanguageFallback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	bannerId, fileId := addTestBanner(t, db, testLanguageVI, "Chào mừng")

	bl, err := db.Banner().ResolveBannerLanguage(ctx, bannerId, testLanguageEN, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, bl)
	assert.Equal(t, testLanguageVI, bl.LanguageId)
	assert.Equal(t, "Chào mừng", bl.Title)
	assert.Equal(t, "chao-mung", bl.Slug)
	assert.Equal(t, bannerId, bl.Banner.Id)
	assert.Equal(t, fileId, bl.File.Id)
	assert.True(t, bl.Banner.Published)

	bl, err = db.Banner().ResolveBannerLanguage(ctx, bannerId, "", testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, bl)
	assert.Equal(t, testLanguageVI, bl.LanguageId)

	_, err = db.Banner().AddBannerLanguage(ctx, &entity.BannerLanguageInsert{
		BannerId:       bannerId,
		LanguageId:     testLanguageEN,
		Title:          "Welcome",
		Slug:           "welcome",
		NormalizedSlug: "welcome",
		FileId:         fileId,
	}, testActor)
	require.NoError(t, err)

	bl, err = db.Banner().ResolveBannerLanguage(ctx, bannerId, testLanguageEN, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, bl)
	assert.Equal(t, testLanguageEN, bl.LanguageId)
	assert.Equal(t, "Welcome", bl.Title)
}

func TestResolveBannerLanguageMissing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	bl, err := db.Banner().ResolveBannerLanguage(ctx, "00000000-0000-4000-8000-000000000000", testLanguageEN, testLanguageVI)
	require.NoError(t, err)
	assert.Nil(t, bl)

	bannerId, fileId := addTestBanner(t, db, testLanguageVI, "Tin mới")
	_, err = db.Files().DeleteFileById(ctx, fileId, testActor)
	require.NoError(t, err)

	bl, err = db.Banner().ResolveBannerLanguage(ctx, bannerId, testLanguageVI, testLanguageVI)
	require.NoError(t, err)
	assert.Nil(t, bl, "translation with a deleted file is not resolved")
}

func TestBannersPagedAndCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, _ := addTestBanner(t, db, testLanguageVI, "Khai giảng")
	addTestBanner(t, db, testLanguageVI, "Tốt nghiệp")
	last, _ := addTestBanner(t, db, testLanguageVI, "Hội thảo khoa học")
	addTestBanner(t, db, testLanguageEN, "English only")

	n, err := db.Banner().CountBanners(ctx, testLanguageVI, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	items, err := db.Banner().GetBannersPaged(ctx, 0, 2, testLanguageVI, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, last, items[0].Id)
	assert.Equal(t, "Hội thảo khoa học", items[0].Language.Title)
	assert.Equal(t, testLanguageVI, items[0].Language.LanguageId)

	items, err = db.Banner().GetBannersPaged(ctx, 2, 2, testLanguageVI, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first, items[0].Id)

	n, err = db.Banner().CountBanners(ctx, testLanguageVI, "hoi thao")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err = db.Banner().GetBannersPaged(ctx, 0, 10, testLanguageVI, "Hội Thảo")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, last, items[0].Id)
}

func TestUpdateBanner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	bannerId, fileId := addTestBanner(t, db, testLanguageVI, "Cũ")

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	err := db.Banner().UpdateBanner(ctx, bannerId, &entity.BannerInsert{
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
		Published: false,
	}, testActor)
	require.NoError(t, err)

	b, err := db.Banner().GetBannerById(ctx, bannerId)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.False(t, b.Published)
	assert.True(t, start.Equal(b.StartDate))
	assert.Equal(t, testActor, b.UpdatedBy.String)

	bl, err := db.Banner().GetBannerLanguage(ctx, bannerId, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, bl)

	err = db.Banner().UpdateBannerLanguage(ctx, bl.Id, &entity.BannerLanguageInsert{
		Title:          "Mới",
		Slug:           "moi",
		NormalizedSlug: "moi",
		FileId:         fileId,
	}, testActor)
	require.NoError(t, err)

	bl, err = db.Banner().GetBannerLanguage(ctx, bannerId, testLanguageVI)
	require.NoError(t, err)
	require.NotNil(t, bl)
	assert.Equal(t, "Mới", bl.Title)
	assert.Equal(t, bannerId, bl.BannerId)
}

func TestDeleteBannerCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	bannerId, _ := addTestBanner(t, db, testLanguageVI, "Xóa")

	n, err := db.Banner().DeleteBannerById(ctx, bannerId, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = db.Banner().DeleteBannerLanguages(ctx, bannerId, testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var deletedAt string
	err = db.DB().GetContext(ctx, &deletedAt, "SELECT deleted_at FROM banner_languages WHERE banner_id = ?", bannerId)
	require.NoError(t, err)

	// rows deleted earlier still count and keep their audit columns
	n, err = db.Banner().DeleteBannerLanguages(ctx, bannerId, "someone-else")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var again, by string
	err = db.DB().QueryRowxContext(ctx, "SELECT deleted_at, deleted_by FROM banner_languages WHERE banner_id = ?", bannerId).Scan(&again, &by)
	require.NoError(t, err)
	assert.Equal(t, deletedAt, again)
	assert.Equal(t, testActor, by)

	b, err := db.Banner().GetBannerById(ctx, bannerId)
	require.NoError(t, err)
	assert.Nil(t, b)

	bl, err := db.Banner().ResolveBannerLanguage(ctx, bannerId, testLanguageVI, testLanguageVI)
	require.NoError(t, err)
	assert.Nil(t, bl)

	count, err := db.Banner().CountBanners(ctx, testLanguageVI, "")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
