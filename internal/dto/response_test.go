package dto

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, v render.Renderer) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, render.Render(w, r, v))
	return w
}

func TestPageResponse(t *testing.T) {
	p := &entity.Page[entity.LinkLanguage]{
		Items: []entity.LinkLanguage{{Id: "l-1", Title: "A", URL: "https://a"}},
		Page:  2,
		Pages: 3,
	}
	w := serve(t, NewPageResponse(p, func(l entity.LinkLanguage) Link {
		return Link{Id: l.Id, Title: l.Title, URL: l.URL}
	}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pages":3,"page":2,"data":[{"id":"l-1","title":"A","url":"https://a"}]}`, w.Body.String())
}

func TestCreatedResponse(t *testing.T) {
	w := serve(t, Created(map[string]string{"id": "x"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":"x"}}`, w.Body.String())
}

func TestErrRender(t *testing.T) {
	t.Run("typed", func(t *testing.T) {
		w := serve(t, ErrRender(gerr.NotFound("[Banner] không tồn tại (id: %s)", "b-1")))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{
			"data": null,
			"error": {"code": 2001, "status": 404, "message": "[Banner] không tồn tại (id: b-1)"}
		}`, w.Body.String())
	})

	t.Run("fields", func(t *testing.T) {
		w := serve(t, ErrRender(gerr.InvalidFields("Dữ liệu không hợp lệ.", map[string]string{"title": "Bạn vui lòng nhập [tiêu đề]."})))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"fields":{"title":"Bạn vui lòng nhập [tiêu đề]."}`)
	})

	t.Run("untyped is internal", func(t *testing.T) {
		w := serve(t, ErrRender(errors.New("driver: bad connection")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "driver")
	})

	t.Run("invalid request", func(t *testing.T) {
		w := serve(t, ErrInvalidRequest(errors.New("unexpected EOF")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":1002`)
	})
}
