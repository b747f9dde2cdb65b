package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetLanguage(w http.ResponseWriter, r *http.Request) {
	l, err := s.svc.GetLanguage(r.Context(), id(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertLanguagePtr(l)))
}

func (s *Server) ListLanguages(w http.ResponseWriter, r *http.Request) {
	req := &form.PageRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	p, err := s.svc.ListLanguages(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertLanguage))
}

func (s *Server) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	req := &form.LanguageRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	l, err := s.svc.CreateLanguage(r.Context(), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertLanguagePtr(l)))
}

func (s *Server) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	req := &form.LanguageRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	l, err := s.svc.UpdateLanguage(r.Context(), id(r), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertLanguagePtr(l)))
}

func (s *Server) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteLanguage(r.Context(), id(r), actor(r)))
}
