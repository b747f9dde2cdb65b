package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetFooter(w http.ResponseWriter, r *http.Request) {
	f, err := s.svc.GetFooter(r.Context(), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertFooter(f)))
}

func (s *Server) UpsertFooter(w http.ResponseWriter, r *http.Request) {
	req := &form.FooterRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	in := req.ToInput()
	if in.LanguageId == "" {
		in.LanguageId = languageId(r)
	}
	f, err := s.svc.UpsertFooter(r.Context(), in, actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertFooter(f)))
}

func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.svc.ListLinks(r.Context(), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertLinks(links)))
}

func (s *Server) UpdateLinks(w http.ResponseWriter, r *http.Request) {
	req := &form.LinksRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	links, err := s.svc.UpdateLinks(r.Context(), req.ToUpdates(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertLinks(links)))
}
