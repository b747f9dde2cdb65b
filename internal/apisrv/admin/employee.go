package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.GetEmployee(r.Context(), id(r), languageId(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertEmployee(e)))
}

func (s *Server) ListEmployees(w http.ResponseWriter, r *http.Request) {
	req, ok := bindPage(w, r)
	if !ok {
		return
	}
	p, err := s.svc.ListEmployees(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertEmployeeListItem))
}

func (s *Server) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	req := &form.EmployeeRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	e, err := s.svc.CreateEmployee(r.Context(), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertEmployee(e)))
}

func (s *Server) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	req := &form.EmployeeRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	e, err := s.svc.UpdateEmployee(r.Context(), id(r), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertEmployee(e)))
}

func (s *Server) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteEmployee(r.Context(), id(r), actor(r)))
}
