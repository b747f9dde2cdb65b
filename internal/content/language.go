package content

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/internal/slug"
	"github.com/lkphuong/api-homepage/log"
)

var languageLabel = label{where: "language", name: "[ngôn ngữ]", title: "[Ngôn ngữ]"}

func languageExists(name string) *gerr.Error {
	return gerr.AlreadyExists(fmt.Sprintf("[Ngôn ngữ] đã tồn tại (name: %s)", name))
}

func (s *Service) requireLanguage(ctx context.Context, where, id string) error {
	l, err := s.repo.Language().GetLanguageById(ctx, id)
	if err != nil {
		return internal(ctx, log.MethodGet, where, err)
	}
	if l == nil {
		return languageLabel.notFound(id)
	}
	return nil
}

func (s *Service) GetLanguage(ctx context.Context, id string) (*entity.Language, error) {
	l, err := s.repo.Language().GetLanguageById(ctx, id)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, languageLabel.where, err)
	}
	if l == nil {
		return nil, languageLabel.notFound(id)
	}
	return l, nil
}

func (s *Service) ListLanguages(ctx context.Context, q entity.PageQuery) (*entity.Page[entity.Language], error) {
	return listPage(ctx, s, languageLabel.where, q,
		func() (int, error) {
			return s.repo.Language().CountLanguages(ctx, q.Input)
		},
		func(offset, limit int) ([]entity.Language, error) {
			return s.repo.Language().GetLanguagesPaged(ctx, offset, limit, q.Input)
		})
}

// CreateLanguage adds a language coded with the next number in sequence.
// Deleted languages keep their codes.
func (s *Service) CreateLanguage(ctx context.Context, in *entity.LanguageInput, actor string) (*entity.Language, error) {
	normalized := slug.Normalize(in.Name)
	existing, err := s.repo.Language().GetLanguageBySlug(ctx, normalized)
	if err != nil {
		return nil, internal(ctx, log.MethodCreate, languageLabel.where, err)
	}
	if existing != nil {
		return nil, languageExists(in.Name)
	}

	var id string
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		n, err := rep.Language().CountAllLanguages(ctx)
		if err != nil {
			return err
		}
		id, err = rep.Language().AddLanguage(ctx, &entity.LanguageInsert{
			Code:           strconv.Itoa(n + 1),
			Name:           in.Name,
			Slug:           slug.Make(in.Name),
			NormalizedSlug: normalized,
			Published:      in.Published,
		}, actor)
		return err
	})
	if err != nil {
		return nil, fail(ctx, log.MethodCreate, languageLabel, err)
	}
	return s.GetLanguage(ctx, id)
}

func (s *Service) UpdateLanguage(ctx context.Context, id string, in *entity.LanguageInput, actor string) (*entity.Language, error) {
	l, err := s.GetLanguage(ctx, id)
	if err != nil {
		return nil, err
	}
	normalized := slug.Normalize(in.Name)
	existing, err := s.repo.Language().GetLanguageBySlug(ctx, normalized)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, languageLabel.where, err)
	}
	if existing != nil && existing.Id != id {
		return nil, languageExists(in.Name)
	}

	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return rep.Language().UpdateLanguage(ctx, id, &entity.LanguageInsert{
			Code:           l.Code,
			Name:           in.Name,
			Slug:           slug.Make(in.Name),
			NormalizedSlug: normalized,
			Published:      in.Published,
		}, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, languageLabel, err)
	}
	return s.GetLanguage(ctx, id)
}

// DeleteLanguage soft-deletes a language. The default language cannot be deleted.
func (s *Service) DeleteLanguage(ctx context.Context, id, actor string) error {
	if err := validateId(id); err != nil {
		return err
	}
	if id == s.c.DefaultLanguage {
		return gerr.Validation(gerr.ExitInvalidValue, "Không thể xóa [ngôn ngữ] mặc định.")
	}
	if _, err := s.GetLanguage(ctx, id); err != nil {
		return err
	}
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return cascade(func() (int64, error) {
			return rep.Language().DeleteLanguageById(ctx, id, actor)
		})
	})
	if err != nil {
		return fail(ctx, log.MethodDelete, languageLabel, err)
	}
	return nil
}
