package admin

import (
	"net/http"

	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/form"
)

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.svc.GetUser(r.Context(), id(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertUser(u)))
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := &form.PageRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	p, err := s.svc.ListUsers(r.Context(), req.ToQuery())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.NewPageResponse(p, dto.ConvertUserListItem))
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	req := &form.UserRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	u, err := s.svc.CreateUser(r.Context(), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertUser(u)))
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	req := &form.UserRequest{}
	if !dto.Bind(w, r, req) {
		return
	}
	u, err := s.svc.UpdateUser(r.Context(), id(r), req.ToInput(), actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertUser(u)))
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteUser(r.Context(), id(r), actor(r)))
}

func (s *Server) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := s.svc.ListPermissions(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertPermissions(perms)))
}
