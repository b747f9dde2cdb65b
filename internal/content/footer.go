package content

import (
	"context"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/log"
)

var footerLabel = label{where: "footer", name: "[footer]", title: "[Footer]"}

// GetFooter returns the footer of languageId, or of the default language when
// languageId has none.
func (s *Service) GetFooter(ctx context.Context, languageId string) (*entity.FooterFull, error) {
	languageId = s.language(languageId)
	f, err := s.repo.Footer().GetFooter(ctx, languageId)
	if err != nil {
		return nil, internal(ctx, log.MethodGet, footerLabel.where, err)
	}
	if f == nil && languageId != s.c.DefaultLanguage {
		f, err = s.repo.Footer().GetFooter(ctx, s.c.DefaultLanguage)
		if err != nil {
			return nil, internal(ctx, log.MethodGet, footerLabel.where, err)
		}
	}
	if f == nil {
		return nil, gerr.NoContent(msgNoContent)
	}
	return f, nil
}

// UpsertFooter creates the footer of a language or replaces its content.
func (s *Service) UpsertFooter(ctx context.Context, in *entity.FooterInput, actor string) (*entity.FooterFull, error) {
	languageId := s.language(in.LanguageId)
	if err := s.requireLanguage(ctx, footerLabel.where, languageId); err != nil {
		return nil, err
	}
	content := s.sanitize.Sanitize(in.Content)

	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		f, err := rep.Footer().GetFooter(ctx, languageId)
		if err != nil {
			return err
		}
		if f == nil {
			_, err = rep.Footer().AddFooter(ctx, languageId, content, actor)
			return err
		}
		return rep.Footer().UpdateFooterContent(ctx, f.Content.Id, content, actor)
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, footerLabel, err)
	}
	return s.GetFooter(ctx, languageId)
}
