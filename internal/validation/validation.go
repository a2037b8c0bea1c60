// Package validation checks and formats contact form input.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"alloy-catalog/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(
		`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`)
	namePattern = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\s]+$`)
	phoneChars  = regexp.MustCompile(`[^0-9+]`)
	nonDigits   = regexp.MustCompile(`[^0-9]`)
)

// minPhoneDigits is the shortest acceptable phone number.
const minPhoneDigits = 10

// IsValidEmail reports whether email is a non-blank address.
func IsValidEmail(email string) bool {
	return strings.TrimSpace(email) != "" && emailPattern.MatchString(email)
}

// IsValidPhone reports whether phone has at least ten digits once
// everything except digits and '+' is dropped.
func IsValidPhone(phone string) bool {
	return len(nonDigits.ReplaceAllString(CleanPhone(phone), "")) >= minPhoneDigits
}

// IsValidName accepts Latin and Cyrillic letters and whitespace.
func IsValidName(name string) bool {
	return strings.TrimSpace(name) != "" && namePattern.MatchString(name)
}

// CleanPhone keeps only digits and '+', suitable for a tel: link.
func CleanPhone(phone string) string {
	return phoneChars.ReplaceAllString(phone, "")
}

// FormatPhone renders a Russian number as "+7 (926) 123-45-67".
// Eleven digits starting with 7 or 8, or ten digits, are formatted; any
// other input is returned unchanged.
func FormatPhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 11 && (digits[0] == '7' || digits[0] == '8'):
		digits = digits[1:]
	case len(digits) == 10:
	default:
		return phone
	}

	return "+7 (" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:8] + "-" + digits[8:]
}

// FieldErrors maps a JSON field name to a user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

var fieldMessages = map[string]string{
	"name":  "Введите корректное имя",
	"phone": "Введите корректный номер телефона",
	"email": "Введите корректный email",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]func(string) bool{
		"person_name":   IsValidName,
		"phone":         IsValidPhone,
		"contact_email": IsValidEmail,
	}
	for tag, rule := range rules {
		rule := rule
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	return v
}

// ValidateOrder checks the contact fields of an order inquiry. It returns
// FieldErrors when any field is rejected.
func ValidateOrder(req *model.OrderRequest) error {
	if req == nil {
		return FieldErrors{"request": "Заполните форму заявки"}
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}

	out := FieldErrors{}
	for _, fe := range invalid {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "Некорректное значение"
		}
		out[fe.Field()] = msg
	}
	return out
}
