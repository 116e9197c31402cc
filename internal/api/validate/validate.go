package validate

import (
	"regexp"
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// OrNil returns the slice as an error, or nil when no field failed.
// A typed nil Errs inside an error interface would read as non-nil.
func (e Errs) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var (
	slugRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	urlRe   = regexp.MustCompile(`^https?://.+`)
)

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if len(value) > max {
		return &ErrField{Field: field, Msg: "cannot exceed " + strconv.Itoa(max) + " characters"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

func OneOf(field, value string, allowed ...string) *ErrField {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ErrField{Field: field, Msg: "must be one of " + strings.Join(allowed, "|")}
}

// URL accepts empty values; pair with Required when the field is mandatory.
func URL(field, value string) *ErrField {
	if value != "" && !urlRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "must be a valid http(s) URL"}
	}
	return nil
}

func Slug(field, value string) *ErrField {
	if !slugRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "can only contain lowercase letters, numbers, and hyphens"}
	}
	return nil
}

func Email(field, value string) *ErrField {
	if !emailRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "must be a valid email"}
	}
	return nil
}

func (e *Errs) Add(fe *ErrField) {
	if fe != nil {
		*e = append(*e, *fe)
	}
}
