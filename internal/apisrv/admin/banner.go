package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetBanner(w http.ResponseWriter, r *http.Request) {
	b, err := s.svc.GetBanner(r.Context(), id(r), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertBanner(b)))
}

func (s *Server) ListBanners(w http.ResponseWriter, r *http.Request) {
	req, ok := bindPage(w, r)
	if !ok {
		return
	}
	p, err := s.svc.ListBanners(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertBannerListItem))
}

func (s *Server) CreateBanner(w http.ResponseWriter, r *http.Request) {
	req := &form.DatedRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	b, err := s.svc.CreateBanner(r.Context(), req.ToBannerInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertBanner(b)))
}

// UpdateBanner answers with null data when the translation was deleted.
func (s *Server) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	req := &form.DatedRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	b, err := s.svc.UpdateBanner(r.Context(), id(r), req.ToBannerInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertBanner(b)))
}

func (s *Server) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteBanner(r.Context(), id(r), actor(r)))
}

func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.GetEvent(r.Context(), id(r), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertEvent(e)))
}

func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	req, ok := bindPage(w, r)
	if !ok {
		return
	}
	p, err := s.svc.ListEvents(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertEventListItem))
}

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	req := &form.DatedRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	e, err := s.svc.CreateEvent(r.Context(), req.ToEventInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertEvent(e)))
}

func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	req := &form.DatedRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	e, err := s.svc.UpdateEvent(r.Context(), id(r), req.ToEventInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertEvent(e)))
}

func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteEvent(r.Context(), id(r), actor(r)))
}
