package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sc, err := s.svc.GetSchedule(r.Context(), id(r), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertSchedule(sc)))
}

func (s *Server) ListSchedules(w http.ResponseWriter, r *http.Request) {
	req, ok := bindPage(w, r)
	if !ok {
		return
	}
	p, err := s.svc.ListSchedules(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertScheduleListItem))
}

func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	req := &form.ScheduleRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	sc, err := s.svc.CreateSchedule(r.Context(), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertSchedule(sc)))
}

func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	req := &form.ScheduleRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	sc, err := s.svc.UpdateSchedule(r.Context(), id(r), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertSchedule(sc)))
}

func (s *Server) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteSchedule(r.Context(), id(r), actor(r)))
}
