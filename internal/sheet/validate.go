package sheet

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translators   map[string]ut.Translator
	validatorErr  error
)

var clockMessages = map[string]string{
	LocaleEnglish: "{0} must be a 24-hour HH:MM time",
	LocaleSpanish: "{0} debe ser una hora HH:MM de 24 horas",
}

func initValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})

	if err := validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return validClock(fl.Field().String())
	}); err != nil {
		validatorErr = err
		return
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, es.New())
	translators = make(map[string]ut.Translator)

	for _, locale := range []string{LocaleEnglish, LocaleSpanish} {
		trans, _ := uni.GetTranslator(locale)
		var err error
		switch locale {
		case LocaleEnglish:
			err = en_translations.RegisterDefaultTranslations(validate, trans)
		case LocaleSpanish:
			err = es_translations.RegisterDefaultTranslations(validate, trans)
		}
		if err != nil {
			validatorErr = fmt.Errorf("failed to register %s translations: %w", locale, err)
			return
		}

		message := clockMessages[locale]
		err = validate.RegisterTranslation("clock", trans, func(ut ut.Translator) error {
			return ut.Add("clock", message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("clock", fe.Field())
			return t
		})
		if err != nil {
			validatorErr = fmt.Errorf("failed to register clock translation: %w", err)
			return
		}
		translators[locale] = trans
	}
}

// Validate checks every request invariant and returns the first violation
// as a *ValidationError with a message in the request's locale.
func (r *Request) Validate() error {
	if r == nil {
		return &ValidationError{Field: "request", Message: "request is required"}
	}

	validatorOnce.Do(initValidator)
	if validatorErr != nil {
		return validatorErr
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	locale := LocaleEnglish
	if _, ok := translators[r.Locale]; ok {
		locale = r.Locale
	}
	fe := errs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Message: fe.Translate(translators[locale]),
	}
}
