package content

import (
	"context"
	"strings"

	"github.com/lkphuong/api-homepage/internal/dependency"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/log"
)

var linkLabel = label{where: "link", name: "[liên kết]", title: "[Liên kết]"}

// ListLinks returns the links of languageId, or of the default language when
// languageId has none.
func (s *Service) ListLinks(ctx context.Context, languageId string) ([]entity.LinkLanguage, error) {
	languageId = s.language(languageId)
	links, err := s.repo.Link().GetLinks(ctx, languageId)
	if err != nil {
		return nil, internal(ctx, log.MethodList, linkLabel.where, err)
	}
	if len(links) == 0 && languageId != s.c.DefaultLanguage {
		links, err = s.repo.Link().GetLinks(ctx, s.c.DefaultLanguage)
		if err != nil {
			return nil, internal(ctx, log.MethodList, linkLabel.where, err)
		}
	}
	if len(links) == 0 {
		return nil, gerr.NoContent(msgNoContent)
	}
	return links, nil
}

// UpdateLinks changes the url of every listed link. Nothing is written when
// one of the ids is unknown.
func (s *Service) UpdateLinks(ctx context.Context, updates []entity.LinkUpdate, actor string) ([]entity.LinkLanguage, error) {
	ids := make([]string, 0, len(updates))
	seen := map[string]bool{}
	for _, u := range updates {
		if !seen[u.Id] {
			seen[u.Id] = true
			ids = append(ids, u.Id)
		}
	}

	found, err := s.repo.Link().GetLinksByIds(ctx, ids)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, linkLabel.where, err)
	}
	exists := make(map[string]bool, len(found))
	for _, l := range found {
		exists[l.Id] = true
	}
	var missing []string
	for _, id := range ids {
		if !exists[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, linkLabel.notFound(strings.Join(missing, ", "))
	}

	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		for _, u := range updates {
			if err := rep.Link().UpdateLinkURL(ctx, u.Id, u.URL, actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fail(ctx, log.MethodUpdate, linkLabel, err)
	}

	links, err := s.repo.Link().GetLinksByIds(ctx, ids)
	if err != nil {
		return nil, internal(ctx, log.MethodUpdate, linkLabel.where, err)
	}
	return links, nil
}
