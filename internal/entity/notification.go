package entity

type NotificationInsert struct {
	Published bool `db:"published"`
}

type Notification struct {
	Id string `db:"id"`
	NotificationInsert
	Audit
}

type NotificationLanguageInsert struct {
	NotificationId string `db:"notification_id"`
	LanguageId     string `db:"language_id"`
	Title          string `db:"title"`
	Slug           string `db:"slug"`
	NormalizedSlug string `db:"normalized_slug"`
}

type NotificationLanguage struct {
	Id string `db:"id"`
	NotificationLanguageInsert
	Audit
}

type NotificationLanguageFull struct {
	NotificationLanguage
	Notification Notification `db:"notification"`
}

type NotificationListItem struct {
	Notification
	Language NotificationLanguage `db:"language"`
}

type NotificationInput struct {
	Published  bool
	Title      string
	LanguageId string
	Deleted    bool
}
