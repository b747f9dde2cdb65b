package entity

type EmployeeInsert struct {
	Published bool `db:"published"`
}

type Employee struct {
	Id string `db:"id"`
	EmployeeInsert
	Audit
}

type EmployeeLanguageInsert struct {
	EmployeeId     string `db:"employee_id"`
	LanguageId     string `db:"language_id"`
	Name           string `db:"name"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
	AcademicDegree string `db:"academic_degree"`
	FileId         string `db:"file_id"`
}

type EmployeeLanguage struct {
	Id string `db:"id"`
	EmployeeLanguageInsert
	Audit
}

type EmployeeLanguageFull struct {
	EmployeeLanguage
	Employee Employee `db:"employee"`
	File     File     `db:"file"`
}

type EmployeeListItem struct {
	Employee
	Language EmployeeLanguage `db:"language"`
}

type EmployeeInput struct {
	Published      bool
	Name           string
	AcademicDegree string
	FileId         string
	LanguageId     string
	Deleted        bool
}
