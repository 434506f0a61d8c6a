// Package validate holds the input rules applied at the edges of the app:
// CLI flags and backend request bodies. Nothing below the gateway validates.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/revisaai/revisaai/internal/models"
)

const (
	MinPasswordLen = 4
	MinNameLen     = 3
	MinYear        = 1900
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	yearRe  = regexp.MustCompile(`^\d{1,4}$`)

	v = newValidator()
)

func newValidator() *validator.Validate {
	vv := validator.New(validator.WithRequiredStructEnabled())
	vv.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = vv.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = vv.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := ParseISODate(fl.Field().String())
		return err == nil
	})
	return vv
}

// Struct validates s against its `validate` tags and reports the first
// failing field as a *models.ValidationError.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &models.ValidationError{Message: err.Error()}
	}
	fe := verrs[0]
	return &models.ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "simple_email":
		return "invalid email"
	case "iso_date":
		return "must be an ISO-8601 date"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}

func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return &models.ValidationError{Field: "email", Message: "is required"}
	}
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return &models.ValidationError{Field: "email", Message: "invalid email"}
	}
	return nil
}

func Password(pw string) error {
	if len(pw) < MinPasswordLen {
		return &models.ValidationError{Field: "password", Message: fmt.Sprintf("must have at least %d characters", MinPasswordLen)}
	}
	return nil
}

func Name(name string) error {
	if len([]rune(strings.TrimSpace(name))) < MinNameLen {
		return &models.ValidationError{Field: "name", Message: fmt.Sprintf("must have at least %d characters", MinNameLen)}
	}
	return nil
}

// ParseKm reads an odometer value typed in pt-BR notation:
// "20.500" is 20500 and "1.234,5" is 1234.5.
func ParseKm(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &models.ValidationError{Field: "km", Message: "is required"}
	}
	norm := strings.ReplaceAll(s, ".", "")
	norm = strings.ReplaceAll(norm, ",", ".")
	km, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: "km", Message: fmt.Sprintf("%q is not a number", s)}
	}
	if km < 0 {
		return 0, &models.ValidationError{Field: "km", Message: "must not be negative"}
	}
	return km, nil
}

// ParseYear accepts up to four digits, not earlier than MinYear.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !yearRe.MatchString(s) {
		return 0, &models.ValidationError{Field: "year", Message: "must have up to 4 digits"}
	}
	y, _ := strconv.Atoi(s)
	if y < MinYear {
		return 0, &models.ValidationError{Field: "year", Message: fmt.Sprintf("must be %d or later", MinYear)}
	}
	return y, nil
}

// ParseISODate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// NotPast rejects a date before the calendar day of now. Empty is allowed.
func NotPast(date string, now time.Time) error {
	if date == "" {
		return nil
	}
	t, err := ParseISODate(date)
	if err != nil {
		return &models.ValidationError{Field: "date", Message: "must be an ISO-8601 date"}
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ty, tm, td := t.In(now.Location()).Date()
	if time.Date(ty, tm, td, 0, 0, 0, 0, now.Location()).Before(today) {
		return &models.ValidationError{Field: "date", Message: "must not be in the past"}
	}
	return nil
}
