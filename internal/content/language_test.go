package content

import (
	"context"
	"testing"

	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageCodes(t *testing.T) {
	db := newTestStore(t)
	s := newTestService(t, db, nil)
	ctx := context.Background()

	fr, err := s.CreateLanguage(ctx, &entity.LanguageInput{Name: "Français", Published: true}, actor)
	require.NoError(t, err)
	assert.Equal(t, "3", fr.Code)
	assert.Equal(t, "francais", fr.Slug)

	_, err = s.CreateLanguage(ctx, &entity.LanguageInput{Name: "francais"}, actor)
	e, ok := gerr.As(err)
	require.True(t, ok)
	assert.Equal(t, gerr.KindAlreadyExists, e.Kind)

	require.NoError(t, s.DeleteLanguage(ctx, fr.Id, actor))

	de, err := s.CreateLanguage(ctx, &entity.LanguageInput{Name: "Deutsch"}, actor)
	require.NoError(t, err)
	assert.Equal(t, "4", de.Code, "deleted languages keep their code")

	updated, err := s.UpdateLanguage(ctx, de.Id, &entity.LanguageInput{Name: "Deutsch", Published: true}, actor)
	require.NoError(t, err)
	assert.True(t, updated.Published)
	assert.Equal(t, "4", updated.Code)

	_, err = s.UpdateLanguage(ctx, de.Id, &entity.LanguageInput{Name: "English"}, actor)
	assert.True(t, gerr.Is(err, gerr.KindAlreadyExists))

	assert.True(t, gerr.Is(s.DeleteLanguage(ctx, languageVI, actor), gerr.KindValidation))

	page, err := s.ListLanguages(ctx, entity.PageQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pages)
}
