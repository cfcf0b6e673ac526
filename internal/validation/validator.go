package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the dashboard's custom rules
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("group_key", validateGroupKey)
	_ = v.RegisterValidation("metric", validateMetric)

	// Mensagens usam o nome da flag ou da chave do arquivo de config
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and flattens validator errors into a single readable error.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, formatFieldError(fe))
	}
	return fmt.Errorf("invalid arguments: %s", strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "group_key":
		return fmt.Sprintf("%s %q is not a groupable column (use one of: %s)", field, fe.Value(), groupKeyNames())
	case "metric":
		return fmt.Sprintf("%s %q must be Sales or Profit", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %v must be one of: %s", field, fe.Value(), fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s %v is out of range (%s %s)", field, fe.Value(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// validateGroupKey aceita qualquer grafia reconhecida de uma coluna categórica
func validateGroupKey(fl validator.FieldLevel) bool {
	_, ok := entity.ParseGroupKey(fl.Field().String())
	return ok
}

// validateMetric validates that the field names Sales or Profit
func validateMetric(fl validator.FieldLevel) bool {
	_, ok := entity.ParseMetric(fl.Field().String())
	return ok
}

func groupKeyNames() string {
	names := make([]string, len(entity.GroupKeys))
	for i, k := range entity.GroupKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
