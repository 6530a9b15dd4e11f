package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/tbourn/go-api-envelope/result"
)

// ruleCodes catalogues the binding rules that carry a stable validation
// code. Messages for these rules are emitted as "Vnnn: text" so the engine
// picks the code up; any other rule falls through to V999.
var ruleCodes = map[string]string{
	"required": "V001",
	"min":      "V002",
	"gt":       "V002",
	"max":      "V003",
	"oneof":    "V004",
	"len":      "V005",
	"uuid":     "V006",
	"iso4217":  "V007",
}

var (
	setupOnce sync.Once
	trans     ut.Translator
)

// setupValidation configures gin's validator once: field names come from
// json tags and messages use the English translations.
func setupValidation() {
	setupOnce.Do(func() {
		english := en.New()
		trans, _ = ut.New(english, english).GetTranslator("en")

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterTranslation("iso4217", trans,
			func(t ut.Translator) error {
				return t.Add("iso4217", "{0} must be an ISO 4217 currency code", true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T("iso4217", fe.Field())
				return msg
			},
		)
	})
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// translateErrors turns validator errors into a field-error map, keeping the
// order in which the validator reported them (struct field order).
func translateErrors(verrs validator.ValidationErrors) result.FieldErrors {
	setupValidation()

	var fields result.FieldErrors
	for _, fe := range verrs {
		fields.Add(fe.Field(), ruleMessage(fe.Tag(), fe.Translate(trans)))
	}
	return fields
}

// fieldError builds a single-field map for checks done outside the binder,
// such as path parameters.
func fieldError(field, tag, msg string) result.FieldErrors {
	var fields result.FieldErrors
	fields.Add(field, ruleMessage(tag, msg))
	return fields
}

func ruleMessage(tag, msg string) string {
	if code, ok := ruleCodes[tag]; ok {
		return code + ": " + msg
	}
	return msg
}
