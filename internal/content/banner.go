package content

import (
	"context"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var bannerLabel = label{where: "banner", name: "[banner]", title: "[Banner]"}

// GetBanner resolves a banner in languageId, falling back to the default language.
func (s *Service) GetBanner(ctx context.Context, id, languageId string) (*entity.BannerLanguageFull, error) {
	bl, err := s.repo.Banner().ResolveBannerLanguage(ctx, id, languageId, s.c.DefaultLanguage)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, bannerLabel.where, err)
	}
	if bl == nil {
		return nil, bannerLabel.notFound(id)
	}
	return bl, nil
}

func (s *Service) ListBanners(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.BannerListItem], error) {
	languageId := s.language(q.LanguageId)
	return listPage(ctx, s, bannerLabel.where, q,
		func() (int, error) {
			return s.repo.Banner().CountBanners(ctx, languageId, q.Input)
		},
		func(offset, limit int) ([]entity.BannerListItem, error) {
			return s.repo.Banner().GetBannersPaged(ctx, offset, limit, languageId, q.Input)
		})
}

func (s *Service) CreateBanner(ctx context.Context, in *entity.BannerInput, actor string) (*entity.BannerLanguageFull, error) {
	if err := s.requireFile(ctx, bannerLabel.where, in.FileId); err != nil {
		return nil, err
	}
	if err := checkRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	var id string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Banner().AddBanner(ctx, &entity.BannerInsert{
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Published: in.Published,
		}, actor)
		if err != nil {
			return err
		}
		if _, err := rep.Banner().AddBannerLanguage(ctx, s.bannerLanguage(id, in), actor); err != nil {
			return err
		}
		return publishFile(ctx, rep, in.FileId, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, bannerLabel, err)
	}
	return s.GetBanner(ctx, id, in.LanguageId)
}

// UpdateBanner updates the banner and upserts or deletes its translation in
// in.LanguageId. The result is nil when the translation was deleted.
func (s *Service) UpdateBanner(ctx context.Context, id string, in *entity.BannerInput, actor string) (*entity.BannerLanguageFull, error) {
	b, err := s.repo.Banner().GetBannerById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, bannerLabel.where, err)
	}
	if b == nil {
		return nil, bannerLabel.notFound(id)
	}
	if err := s.requireFile(ctx, bannerLabel.where, in.FileId); err != nil {
		return nil, err
	}
	if err := checkRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	var deleted bool
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		err := rep.Banner().UpdateBanner(ctx, id, &entity.BannerInsert{
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Published: in.Published,
		}, actor)
		if err != nil {
			return err
		}

		bl, err := rep.Banner().GetBannerLanguage(ctx, id, s.language(in.LanguageId))
		if err != nil {
			return err
		}
		switch {
		case bl != nil && in.Deleted:
			deleted = true
			return dropTranslation(ctx, rep, func() (int64, error) {
				return rep.Banner().DeleteBannerLanguageById(ctx, bl.Id, actor)
			}, bl.FileId, actor)
		case bl != nil:
			if err := rep.Banner().UpdateBannerLanguage(ctx, bl.Id, s.bannerLanguage(id, in), actor); err != nil {
				return err
			}
			return swapFile(ctx, rep, bl.FileId, in.FileId, actor)
		default:
			if _, err := rep.Banner().AddBannerLanguage(ctx, s.bannerLanguage(id, in), actor); err != nil {
				return err
			}
			return publishFile(ctx, rep, in.FileId, actor)
		}
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, bannerLabel, err)
	}
	if deleted {
		return nil, nil
	}
	return s.GetBanner(ctx, id, in.LanguageId)
}

// DeleteBanner soft-deletes a banner and all of its translations.
func (s *Service) DeleteBanner(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	b, err := s.repo.Banner().GetBannerById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, bannerLabel.where, err)
	}
	if b == nil {
		return bannerLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(
			func() (int64, error) { return rep.Banner().DeleteBannerById(ctx, id, actor) },
			func() (int64, error) { return rep.Banner().DeleteBannerLanguages(ctx, id, actor) },
		)
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, bannerLabel, err)
	}
	return nil
}

func (s *Service) bannerLanguage(bannerId string, in *entity.BannerInput) *entity.BannerLanguageInsert {
	return &entity.BannerLanguageInsert{
		BannerId:       bannerId,
		LanguageId:     s.language(in.LanguageId),
		Title:          in.Title,
		Slug:           slug.Make(in.Title),
		NormalizedSlug: slug.Normalize(in.Title),
		FileId:         in.FileId,
	}
}
