package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tablepick/internal/theme"
	tperrors "github.com/alexisbeaulieu97/tablepick/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			_, err := theme.ParseMode(value)
			return err == nil && strings.TrimSpace(value) != ""
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the file against its schema.
func Validate(f *File) error {
	if f == nil {
		return tperrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return tperrors.NewValidationError(field, msg, err)
	}

	return tperrors.NewValidationError("config", err.Error(), err)
}
