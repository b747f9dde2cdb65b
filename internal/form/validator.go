package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	v "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
)

const msgInvalidData = "Dữ liệu không hợp lệ."

var (
	isUUID     = v.NewStringRule(govalidator.IsUUID, "must be a valid UUID")
	isDate     = v.NewStringRule(func(s string) bool { _, err := ParseDate(s); return err == nil }, "must be a valid date")
	dateLayout = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}
)

// ParseDate accepts RFC3339, a date-time without zone or a plain date. Zone-less values are UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayout {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("can't parse date %q", s)
}

// ValidateStruct is validation.ValidateStruct that returns a gerr validation
// error keyed by json field names. Rules are checked in order and the first
// failing one provides the message.
func ValidateStruct(structPtr any, rules ...*v.FieldRules) error {
	fields := map[string]string{}
	var first string

	for _, rule := range rules {
		err := v.ValidateStruct(structPtr, rule)
		if err == nil {
			continue
		}
		var ve v.Errors
		if !errors.As(err, &ve) {
			return err
		}
		collect("", ve, fields, &first)
	}
	if len(fields) == 0 {
		return nil
	}
	if first == "" {
		first = msgInvalidData
	}
	return gerr.InvalidFields(first, fields)
}

// collect flattens nested errors into dotted keys such as links.0.url.
func collect(prefix string, ve v.Errors, fields map[string]string, first *string) {
	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		var nested v.Errors
		if errors.As(ve[k], &nested) {
			collect(key, nested, fields, first)
			continue
		}
		msg := ve[k].Error()
		fields[key] = msg
		if *first == "" {
			*first = msg
		}
	}
}

func trim(s *string) {
	*s = strings.TrimSpace(*s)
}
