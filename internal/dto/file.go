// Package dto converts entities into the JSON shapes served by the API.
package dto

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
)

const (
	dateLayout = "2006-01-02"
	hourLayout = "3:04:05 PM"
)

// File is an uploaded object as attached to content.
type File struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ConvertEntityToFile returns nil for a file that was not joined.
func ConvertEntityToFile(f entity.File) *File {
	if f.Id == "" {
		return nil
	}
	return &File{
		Id:   f.Id,
		Name: f.OriginalName,
		URL:  f.URL,
		Type: strings.TrimPrefix(f.Extension, "."),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func formatHour(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(hourLayout)
}

func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}
