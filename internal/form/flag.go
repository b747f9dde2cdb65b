package form

import (
	"errors"
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
)

// Flag is a boolean that also accepts 0, 1 and their quoted forms.
// Unknown values are kept as invalid so validation can name the field.
type Flag struct {
	value   bool
	set     bool
	invalid bool
}

func NewFlag(b bool) Flag {
	return Flag{value: b, set: true}
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag{set: true}
	switch strings.ToLower(strings.Trim(string(b), `"`)) {
	case "true", "1":
		f.value = true
	case "false", "0":
	case "null", "":
		f.set = false
	default:
		f.invalid = true
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f.value {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// Or returns def when the flag was absent.
func (f Flag) Or(def bool) bool {
	if !f.set {
		return def
	}
	return f.value
}

func (f Flag) Bool() bool {
	return f.value
}

// validFlag rejects values that are neither booleans nor 0 or 1.
func validFlag(msg string) v.Rule {
	return v.By(func(value any) error {
		f, ok := value.(Flag)
		if ok && f.invalid {
			return errors.New(msg)
		}
		return nil
	})
}
