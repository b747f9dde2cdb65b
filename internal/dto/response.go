package dto

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
)

// Response is the success envelope. Pages and Page are set for paged lists only.
type Response struct {
	HTTPStatusCode int `json:"-"`

	Pages int `json:"pages,omitempty"`
	Page  int `json:"page,omitempty"`
	Data  any `json:"data"`
}

func (rs *Response) Render(w http.ResponseWriter, r *http.Request) error {
	if rs.HTTPStatusCode != 0 {
		render.Status(r, rs.HTTPStatusCode)
	}
	return nil
}

func OK(data any) *Response {
	return &Response{HTTPStatusCode: http.StatusOK, Data: data}
}

func Created(data any) *Response {
	return &Response{HTTPStatusCode: http.StatusCreated, Data: data}
}

// NewPageResponse converts every item of p with f.
func NewPageResponse[T, R any](p *entity.Page[T], f func(T) R) *Response {
	data := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		data = append(data, f(it))
	}
	return &Response{
		HTTPStatusCode: http.StatusOK,
		Pages:          p.Pages,
		Page:           p.Page,
		Data:           data,
	}
}

// errors

type ErrBody struct {
	Code    gerr.ExitCode     `json:"code"`
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Data  any     `json:"data"`
	Error ErrBody `json:"error"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrRender converts any error into the error envelope. Untyped errors become Internal.
func ErrRender(err error) render.Renderer {
	ge := gerr.Convert(err)
	status := ge.HTTPStatus()
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		Error: ErrBody{
			Code:    ge.Code,
			Status:  status,
			Message: ge.Message,
			Fields:  ge.Fields,
		},
	}
}

// ErrInvalidRequest is returned when the request body can't be decoded.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Error: ErrBody{
			Code:    gerr.ExitInvalidFormat,
			Status:  http.StatusBadRequest,
			Message: msgInvalidRequest,
		},
	}
}

const msgInvalidRequest = "Dữ liệu gửi lên không đúng định dạng."

// Write renders v and falls back to the error envelope when rendering fails.
func Write(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't render response",
			slog.String("err", err.Error()),
		)
		WriteError(w, r, err)
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if rerr := render.Render(w, r, ErrRender(err)); rerr != nil {
		slog.Default().ErrorContext(r.Context(), "can't render error response",
			slog.String("err", rerr.Error()),
		)
	}
}

// Bind decodes and validates the body into v. It writes the error
// response itself and reports whether the handler may continue.
func Bind(w http.ResponseWriter, r *http.Request, v render.Binder) bool {
	err := render.Bind(r, v)
	if err == nil {
		return true
	}
	if _, ok := gerr.As(err); ok {
		WriteError(w, r, err)
		return false
	}
	if rerr := render.Render(w, r, ErrInvalidRequest(err)); rerr != nil {
		slog.Default().ErrorContext(r.Context(), "can't render error response",
			slog.String("err", rerr.Error()),
		)
	}
	return false
}

// Deleted is the body of a successful delete.
type Deleted struct {
	Id string `json:"id"`
}
