package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lkphuong/api-homepage/internal/content"
	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
	"github.com/lkphuong/api-homepage/internal/middleware"
)

// languageCookie is read when the query carries no language_id.
const languageCookie = "language_id"

// Server implements handlers for the content manager.
type Server struct {
	svc *content.Service
}

// New creates a new server with admin handlers.
func New(svc *content.Service) *Server {
	return &Server{svc: svc}
}

// Routes returns every content route. Callers mount it behind the auth guard.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/banners", func(r chi.Router) {
		r.Post("/all", s.ListBanners)
		r.Post("/", s.CreateBanner)
		r.Get("/{id}", s.GetBanner)
		r.Put("/{id}", s.UpdateBanner)
		r.Delete("/{id}", s.DeleteBanner)
	})
	r.Route("/events", func(r chi.Router) {
		r.Post("/all", s.ListEvents)
		r.Post("/", s.CreateEvent)
		r.Get("/{id}", s.GetEvent)
		r.Put("/{id}", s.UpdateEvent)
		r.Delete("/{id}", s.DeleteEvent)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Post("/all", s.ListEmployees)
		r.Post("/", s.CreateEmployee)
		r.Get("/{id}", s.GetEmployee)
		r.Put("/{id}", s.UpdateEmployee)
		r.Delete("/{id}", s.DeleteEmployee)
	})
	r.Route("/notifications", func(r chi.Router) {
		r.Post("/all", s.ListNotifications)
		r.Post("/", s.CreateNotification)
		r.Get("/{id}", s.GetNotification)
		r.Put("/{id}", s.UpdateNotification)
		r.Delete("/{id}", s.DeleteNotification)
	})
	r.Route("/positions", func(r chi.Router) {
		r.Post("/all", s.ListPositions)
		r.Post("/", s.CreatePosition)
		r.Get("/{id}", s.GetPosition)
		r.Put("/{id}", s.UpdatePosition)
		r.Delete("/{id}", s.DeletePosition)
	})
	r.Route("/schedules", func(r chi.Router) {
		r.Post("/all", s.ListSchedules)
		r.Post("/", s.CreateSchedule)
		r.Get("/{id}", s.GetSchedule)
		r.Put("/{id}", s.UpdateSchedule)
		r.Delete("/{id}", s.DeleteSchedule)
	})
	r.Route("/languages", func(r chi.Router) {
		r.Post("/all", s.ListLanguages)
		r.Post("/", s.CreateLanguage)
		r.Get("/{id}", s.GetLanguage)
		r.Put("/{id}", s.UpdateLanguage)
		r.Delete("/{id}", s.DeleteLanguage)
	})
	r.Route("/users", func(r chi.Router) {
		r.Post("/all", s.ListUsers)
		r.Post("/", s.CreateUser)
		r.Get("/{id}", s.GetUser)
		r.Put("/{id}", s.UpdateUser)
		r.Delete("/{id}", s.DeleteUser)
	})

	r.Get("/footers", s.GetFooter)
	r.Put("/footers", s.UpsertFooter)
	r.Get("/links", s.ListLinks)
	r.Put("/links", s.UpdateLinks)
	r.Get("/permissions", s.ListPermissions)

	r.Route("/files", func(r chi.Router) {
		r.Post("/", s.UploadFile)
		r.Get("/{id}", s.GetFile)
		r.Delete("/{id}", s.DeleteFile)
	})
	return r
}

// languageId reads language_id from the query, then from the cookie.
func languageId(r *http.Request) string {
	if id := r.URL.Query().Get("language_id"); id != "" {
		return id
	}
	if c, err := r.Cookie(languageCookie); err == nil {
		return c.Value
	}
	return ""
}

func actor(r *http.Request) string {
	return middleware.GetActor(r.Context())
}

func id(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// bindPage decodes a list request. An empty language_id in the body falls
// back to the query and the cookie.
func bindPage(w http.ResponseWriter, r *http.Request) (*form.PageRequest, bool) {
	req := &form.PageRequest{}
	if !dto.Bind(w, r, req) {
		return nil, false
	}
	if req.LanguageId == "" {
		req.LanguageId = languageId(r)
	}
	return req, true
}

func writeDeleted(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.Deleted{Id: id(r)}))
}
