package store

import (
	"context"
	"fmt"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
)

var bannerTables = translatable{
	parent:       "banners",
	translation:  "banner_languages",
	parentKey:    "banner_id",
	prefix:       "banner",
	parentCols:   []string{"start_date", "end_date"},
	languageCols: []string{"title"},
	withFile:     true,
}

type bannerStore struct {
	*MYSQLStore
}

// Banner returns an object implementing banner interface
func (ms *MYSQLStore) Banner() dependency.Banner {
	return &bannerStore{
		MYSQLStore: ms,
	}
}

func (bs *bannerStore) GetBannerById(ctx context.Context, id string) (*entity.Banner, error) {
	return getParent[entity.Banner](ctx, bs.DB(), bannerTables, id)
}

func (bs *bannerStore) GetBannersPaged(ctx context.Context, offset, limit int, languageId, input string) ([]entity.BannerListItem, error) {
	return getPaged[entity.BannerListItem](ctx, bs.DB(), bannerTables, offset, limit, languageId, input)
}

func (bs *bannerStore) CountBanners(ctx context.Context, languageId, input string) (int, error) {
	return countPaged(ctx, bs.DB(), bannerTables, languageId, input)
}

func (bs *bannerStore) AddBanner(ctx context.Context, b *entity.BannerInsert, actor string) (string, error) {
	return bs.insertRow(ctx, bannerTables.parent, map[string]any{
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"published":  b.Published,
	}, actor)
}

func (bs *bannerStore) UpdateBanner(ctx context.Context, id string, b *entity.BannerInsert, actor string) error {
	query := `
	UPDATE banners SET
		start_date = :startDate,
		end_date = :endDate,
		published = :published,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, bs.DB(), query, bs.updateParams(id, actor, map[string]any{
		"startDate": b.StartDate,
		"endDate":   b.EndDate,
		"published": b.Published,
	}))
	if err != nil {
		return fmt.Errorf("can't update banner: %w", err)
	}
	return nil
}

func (bs *bannerStore) DeleteBannerById(ctx context.Context, id, actor string) (int64, error) {
	return bs.softDelete(ctx, bannerTables.parent, "id", id, actor)
}

func (bs *bannerStore) ResolveBannerLanguage(ctx context.Context, bannerId, languageId, defaultLanguageId string) (*entity.BannerLanguageFull, error) {
	return resolveLanguage[entity.BannerLanguageFull](ctx, bs.DB(), bannerTables, bannerId, languageId, defaultLanguageId)
}

func (bs *bannerStore) GetBannerLanguage(ctx context.Context, bannerId, languageId string) (*entity.BannerLanguage, error) {
	return getLanguage[entity.BannerLanguage](ctx, bs.DB(), bannerTables, bannerId, languageId)
}

func (bs *bannerStore) AddBannerLanguage(ctx context.Context, bl *entity.BannerLanguageInsert, actor string) (string, error) {
	return bs.insertRow(ctx, bannerTables.translation, map[string]any{
		"banner_id":       bl.BannerId,
		"language_id":     bl.LanguageId,
		"title":           bl.Title,
		"slug":            bl.Slug,
		"normalized_slug": bl.NormalizedSlug,
		"file_id":         bl.FileId,
	}, actor)
}

func (bs *bannerStore) UpdateBannerLanguage(ctx context.Context, id string, bl *entity.BannerLanguageInsert, actor string) error {
	query := `
	UPDATE banner_languages SET
		title = :title,
		slug = :slug,
		normalized_slug = :normalizedSlug,
		file_id = :fileId,
		updated_at = :updatedAt,
		updated_by = :updatedBy
	WHERE id = :id AND deleted = FALSE`
	err := ExecNamed(ctx, bs.DB(), query, bs.updateParams(id, actor, map[string]any{
		"title":          bl.Title,
		"slug":           bl.Slug,
		"normalizedSlug": bl.NormalizedSlug,
		"fileId":         bl.FileId,
	}))
	if err != nil {
		return fmt.Errorf("can't update banner language: %w", err)
	}
	return nil
}

func (bs *bannerStore) DeleteBannerLanguageById(ctx context.Context, id, actor string) (int64, error) {
	return bs.softDelete(ctx, bannerTables.translation, "id", id, actor)
}

func (bs *bannerStore) DeleteBannerLanguages(ctx context.Context, bannerId, actor string) (int64, error) {
	return bs.unlinkAll(ctx, bannerTables.translation, bannerTables.parentKey, bannerId, actor)
}
