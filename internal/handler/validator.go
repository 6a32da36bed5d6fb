package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// Custom validation tags
const (
	TagDateOnly = "dateonly"
	TagImageRef = "imageref"
)

// imageRefPrefixes are the accepted forms of an image reference: a URL,
// a server-relative path or an inline data URI
var imageRefPrefixes = []string{"http://", "https://", "/", "data:image/"}

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(TagDateOnly, validateDateOnly)
	_ = v.RegisterValidation(TagImageRef, validateImageRef)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map keyed by
// the JSON path of each failing field, e.g. "warranty.expiry_date" or "images[1]"
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required", "required_without":
			errs[field] = "This field is required"
		case "excluded_with":
			errs[field] = fmt.Sprintf("Must be empty when %s is set", strings.ToLower(e.Param()))
		case TagDateOnly:
			errs[field] = "Must be a date in YYYY-MM-DD format"
		case TagImageRef:
			errs[field] = "Must be an http(s) URL, an absolute path or a data:image URI"
		case "url":
			errs[field] = "Must be a valid URL"
		case "datauri":
			errs[field] = "Must be a valid data URI"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath turns a validator namespace into a JSON path. Struct and embedded struct names
// are the only capitalized segments, since every JSON name is snake_case.
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	kept := segments[:0]
	for _, seg := range segments {
		if seg != "" && unicode.IsUpper(rune(seg[0])) {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return namespace
	}
	return strings.Join(kept, ".")
}

// validateDateOnly accepts an empty string or a real calendar date in YYYY-MM-DD form
func validateDateOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func validateImageRef(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, prefix := range imageRefPrefixes {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return true
		}
	}
	return false
}
