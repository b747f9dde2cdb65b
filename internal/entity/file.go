package entity

// FileInsert describes a stored object registered in the files table.
type FileInsert struct {
	OriginalName string `db:"original_name"`
	FileName     string `db:"file_name"`
	Path         string `db:"path"`
	URL          string `db:"url"`
	Extension    string `db:"extension"`
	Drafted      bool   `db:"drafted"`
}

type File struct {
	Id string `db:"id"`
	FileInsert
	Audit
}

// FileState is one element of a bulk file update.
type FileState struct {
	Id      string
	Drafted bool
	Deleted bool
}

// StoredObject is what the object storage returns after an upload.
type StoredObject struct {
	Path string
	URL  string
}
