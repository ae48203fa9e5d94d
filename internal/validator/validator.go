package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// validate and trans are shared by every caller; both are safe for
// concurrent use once built.
var validate, trans = setup()

// setup builds the validator with English translations and json field names.
func setup() (*govalidator.Validate, ut.Translator) {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	t, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, t)

	// Names are checked with alphaunicode; phrase it for operators.
	_ = v.RegisterTranslation("alphaunicode", t,
		func(ut ut.Translator) error {
			return ut.Add("alphaunicode", "{0} must contain only alphabetic characters", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, err := ut.T("alphaunicode", fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)

	return v, t
}

// Fields validates only the named struct fields of s.
func Fields(s interface{}, fields ...string) error {
	return validate.StructPartial(s, fields...)
}

// TranslateErrors takes a validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Translate turns a validation error into a plain error carrying the
// translated field messages, ordered by field name. nil stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	fields := TranslateErrors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return errors.New(strings.Join(msgs, "; "))
}
