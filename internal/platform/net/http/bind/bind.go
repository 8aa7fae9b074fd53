// Package bind decodes request bodies and runs validate tags, in english, with json field names
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "interventions/internal/platform/errors"
	"interventions/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// messages override the english texts per tag. {0} is the field, {1} the param
var messages = map[string]string{
	"min": "{0} must be at least {1}",
	"max": "{0} must be at most {1}",
}

type checker struct {
	v     *validator.Validate
	trans ut.Translator
}

var shared = sync.OnceValue(newChecker)

// trailing reports whether anything but whitespace follows the first value
var trailing = func(dec *json.Decoder) bool {
	var extra json.RawMessage
	return !errors.Is(dec.Decode(&extra), io.EOF)
}

func newChecker() *checker {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	for tag, text := range messages {
		translate(v, trans, tag, text)
	}
	return &checker{v: v, trans: trans}
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func translate(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// JSONOptions controls ParseJSON. The zero value reads at most 64KB and allows unknown fields
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
}

var strict = JSONOptions{MaxBytes: 64 << 10, DisallowUnknown: true}

// ParseJSON decodes exactly one JSON value into T and validates it.
// Without opts unknown fields are rejected
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst, zero T
	o := strict
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = strict.MaxBytes
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("closing request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, o.MaxBytes))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	switch err := dec.Decode(&dst); {
	case errors.Is(err, io.EOF):
		return zero, perr.JSONErrf("empty body")
	case err != nil:
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if trailing(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate checks v's validate tags. The first failing field becomes a Validation
// error carrying that field's json path
func Validate(v any) error {
	err := shared().v.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validate called on a non struct")
		return perr.Internalf("validation error")
	}
	field, msg := Describe(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// Describe returns the first failing field and its english message
func Describe(err error) (field, message string) {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &verrs) && len(verrs) > 0:
		return verrs[0].Field(), verrs[0].Translate(shared().trans)
	}
	return "", err.Error()
}
