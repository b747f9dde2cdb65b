package admin

import (
	"io"
	"net/http"
	"net/url"

	"github.com/lkphuong/api-homepage/internal/dto"
)

// FileNameHeader carries the original name of a raw upload, optionally percent-encoded.
const FileNameHeader = "X-File-Name"

// UploadFile stores the raw request body. The size is taken from Content-Length.
func (s *Server) UploadFile(w http.ResponseWriter, r *http.Request) {
	name := r.Header.Get(FileNameHeader)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	body := io.LimitReader(r.Body, r.ContentLength)
	f, err := s.svc.UploadFile(r.Context(), name, r.Header.Get("Content-Type"), body, r.ContentLength, actor(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.Created(dto.ConvertEntityToFile(*f)))
}

func (s *Server) GetFile(w http.ResponseWriter, r *http.Request) {
	f, err := s.svc.GetFile(r.Context(), id(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertEntityToFile(*f)))
}

func (s *Server) DeleteFile(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, s.svc.DeleteFile(r.Context(), id(r), actor(r)))
}
