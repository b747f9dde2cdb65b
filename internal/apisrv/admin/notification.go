package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetNotification(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.GetNotification(r.Context(), id(r), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertNotification(n)))
}

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	req, ok := bindPage(w, r)
	if !ok {
		return
	}
	p, err := s.svc.ListNotifications(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertNotificationListItem))
}

func (s *Server) CreateNotification(w http.ResponseWriter, r *http.Request) {
	req := &form.TitleRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	n, err := s.svc.CreateNotification(r.Context(), req.ToNotificationInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertNotification(n)))
}

func (s *Server) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	req := &form.TitleRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	n, err := s.svc.UpdateNotification(r.Context(), id(r), req.ToNotificationInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertNotification(n)))
}

func (s *Server) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteNotification(r.Context(), id(r), actor(r)))
}

func (s *Server) GetPosition(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.GetPosition(r.Context(), id(r), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertPosition(p)))
}

func (s *Server) ListPositions(w http.ResponseWriter, r *http.Request) {
	req, ok := bindPage(w, r)
	if !ok {
		return
	}
	p, err := s.svc.ListPositions(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertPositionListItem))
}

func (s *Server) CreatePosition(w http.ResponseWriter, r *http.Request) {
	req := &form.TitleRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	p, err := s.svc.CreatePosition(r.Context(), req.ToPositionInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertPosition(p)))
}

func (s *Server) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	req := &form.TitleRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	p, err := s.svc.UpdatePosition(r.Context(), id(r), req.ToPositionInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertPosition(p)))
}

func (s *Server) DeletePosition(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeletePosition(r.Context(), id(r), actor(r)))
}
