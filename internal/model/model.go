// Package model holds the swim-tournament entities, the request payloads
// that create them and the fixed-label response shapes returned by the API.
package model

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DateLayout is the textual calendar date format, e.g. "15 Apr 2024".
	DateLayout = "02 Jan 2006"

	// ClockLayout is the 24-hour wall-clock format, e.g. "14:30".
	ClockLayout = "15:04"
)

// validate is shared by every payload. validator.Validate is safe for
// concurrent use once its tags are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report request keys ("fecha") instead of Go field names ("Date").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("date_dmy", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("clock_hm", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseDate parses a "DD Mon YYYY" date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders a date as "DD Mon YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock parses an "HH:MM" time of day. The date part of the result is
// the zero date and must be ignored.
func ParseClock(value string) (time.Time, error) {
	return time.Parse(ClockLayout, value)
}

// FormatClock renders a time of day as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ListRequest is the empty payload of list endpoints without parameters.
type ListRequest struct{}

func (ListRequest) Validate() error { return nil }
