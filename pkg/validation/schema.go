package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages configures how rule failures are rendered for users.
type Messages struct {
	// Labels maps a JSON field path to a user-friendly label
	Labels map[string]string
	// Rules maps "<field path>.<tag>" to an exact message, overriding the
	// generated one
	Rules map[string]string
}

// Schema evaluates the `validate` struct tags of a value and reports every
// violated field in one pass. A Schema is safe for concurrent use.
type Schema struct {
	validate *validator.Validate
	messages Messages
}

// NewSchema creates a schema that addresses fields by their JSON names.
func NewSchema(messages Messages) *Schema {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	return &Schema{
		validate: v,
		messages: messages,
	}
}

// Validate returns nil, an Errors value listing every violated field, or the
// underlying error when value cannot be validated at all (e.g. not a struct).
func (s *Schema) Validate(value interface{}) error {
	err := s.validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validation: %w", err)
	}

	violations := make(Errors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		path := fieldPath(fe)
		violations = append(violations, Violation{
			Path:    path,
			Message: s.format(strings.Join(path, "."), fe),
		})
	}
	return violations
}

func (s *Schema) format(field string, e validator.FieldError) string {
	if msg, ok := s.messages.Rules[field+"."+e.Tag()]; ok {
		return msg
	}

	label := s.label(field)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", label)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter pelo menos %s caracteres", label, param)
		}
		return fmt.Sprintf("%s deve ser no mínimo %s", label, param)
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s muito longo (máximo %s caracteres)", label, param)
		}
		return fmt.Sprintf("%s deve ser no máximo %s", label, param)
	case "email":
		return fmt.Sprintf("%s inválido", label)
	default:
		return fmt.Sprintf("%s: validação falhou (%s)", label, e.Tag())
	}
}

func (s *Schema) label(field string) string {
	if label, ok := s.messages.Labels[field]; ok {
		return label
	}
	return field
}

// fieldPath drops the root struct name from the namespace:
// "ContactSubmission.name" -> ["name"].
func fieldPath(e validator.FieldError) []string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		return []string{}
	}
	return strings.Split(ns, ".")
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
