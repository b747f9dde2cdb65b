package content

import (
	"context"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var positionLabel = label{where: "position", name: "[vị trí tuyểp dụng]", title: "[Vị trí tuyểp dụng]"}

func (s *Service) GetPosition(ctx context.Context, id, languageId string) (*entity.PositionLanguageFull, error) {
	pl, err := s.repo.Position().ResolvePositionLanguage(ctx, id, languageId, s.c.DefaultLanguage)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, positionLabel.where, err)
	}
	if pl == nil {
		return nil, positionLabel.notFound(id)
	}
	return pl, nil
}

func (s *Service) ListPositions(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.PositionListItem], error) {
	languageId := s.language(q.LanguageId)
	return listPage(ctx, s, positionLabel.where, q,
		func() (int, error) {
			return s.repo.Position().CountPositions(ctx, languageId, q.Input)
		},
		func(offset, limit int) ([]entity.PositionListItem, error) {
			return s.repo.Position().GetPositionsPaged(ctx, offset, limit, languageId, q.Input)
		})
}

func (s *Service) CreatePosition(ctx context.Context, in *entity.PositionInput, actor string) (*entity.PositionLanguageFull, error) {
	var id string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		id, err = rep.Position().AddPosition(ctx, &entity.PositionInsert{Published: in.Published}, actor)
		if err != nil {
			return err
		}
		_, err = rep.Position().AddPositionLanguage(ctx, s.positionLanguage(id, in), actor)
		return err
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, positionLabel, err)
	}
	return s.GetPosition(ctx, id, in.LanguageId)
}

// UpdatePosition updates the position and upserts or deletes its
// translation in in.LanguageId.
func (s *Service) UpdatePosition(ctx context.Context, id string, in *entity.PositionInput, actor string) (*entity.PositionLanguageFull, error) {
	p, err := s.repo.Position().GetPositionById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, positionLabel.where, err)
	}
	if p == nil {
		return nil, positionLabel.notFound(id)
	}

	var deleted bool
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := rep.Position().UpdatePosition(ctx, id, &entity.PositionInsert{Published: in.Published}, actor); err != nil {
			return err
		}
		pl, err := rep.Position().GetPositionLanguage(ctx, id, s.language(in.LanguageId))
		if err != nil {
			return err
		}
		switch {
		case pl != nil && in.Deleted:
			deleted = true
			return dropTranslation(ctx, rep, func() (int64, error) {
				return rep.Position().DeletePositionLanguageById(ctx, pl.Id, actor)
			}, "", actor)
		case pl != nil:
			return rep.Position().UpdatePositionLanguage(ctx, pl.Id, s.positionLanguage(id, in), actor)
		default:
			_, err := rep.Position().AddPositionLanguage(ctx, s.positionLanguage(id, in), actor)
			return err
		}
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, positionLabel, err)
	}
	if deleted {
		return nil, nil
	}
	return s.GetPosition(ctx, id, in.LanguageId)
}

func (s *Service) DeletePosition(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	p, err := s.repo.Position().GetPositionById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodDelete, positionLabel.where, err)
	}
	if p == nil {
		return positionLabel.notFound(id)
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(
			func() (int64, error) { return rep.Position().DeletePositionById(ctx, id, actor) },
			func() (int64, error) { return rep.Position().DeletePositionLanguages(ctx, id, actor) },
		)
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, positionLabel, err)
	}
	return nil
}

func (s *Service) positionLanguage(positionId string, in *entity.PositionInput) *entity.PositionLanguageInsert {
	return &entity.PositionLanguageInsert{
		PositionId:     positionId,
		LanguageId:     s.language(in.LanguageId),
		Title:          in.Title,
		Slug:           slug.Make(in.Title),
		NormalizedSlug: slug.Normalize(in.Title),
	}
}
