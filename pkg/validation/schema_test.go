package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Code string `json:"code" validate:"min=3"`
}

type sample struct {
	Title  string `json:"title" validate:"min=2,max=4"`
	Mail   string `json:"mail" validate:"required,email"`
	Nested inner  `json:"nested"`
	Hidden string `json:"-" validate:"max=1"`
}

func TestSchemaFallbackMessages(t *testing.T) {
	s := NewSchema(Messages{Labels: map[string]string{"title": "Título"}})

	err := s.Validate(sample{Title: "abcdef", Mail: "", Nested: inner{Code: "x"}, Hidden: "ok"})
	var verrs Errors
	require.ErrorAs(t, err, &verrs)

	assert.Equal(t, Errors{
		{Path: []string{"title"}, Message: "Título muito longo (máximo 4 caracteres)"},
		{Path: []string{"mail"}, Message: "mail é obrigatório"},
		{Path: []string{"nested", "code"}, Message: "nested.code deve ter pelo menos 3 caracteres"},
		{Path: []string{"Hidden"}, Message: "Hidden muito longo (máximo 1 caracteres)"},
	}, verrs)
}

func TestSchemaRuleOverride(t *testing.T) {
	s := NewSchema(Messages{Rules: map[string]string{"mail.email": "bad mail"}})

	err := s.Validate(sample{Title: "abc", Mail: "nope", Nested: inner{Code: "xyz"}})
	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{"mail": "bad mail"}, verrs.FieldErrors())
}

func TestSchemaValid(t *testing.T) {
	s := NewSchema(Messages{})
	assert.NoError(t, s.Validate(sample{Title: "abc", Mail: "a@b.co", Nested: inner{Code: "xyz"}}))
}

func TestSchemaRejectsNonStruct(t *testing.T) {
	err := NewSchema(Messages{}).Validate("text")
	require.Error(t, err)
	var verrs Errors
	assert.False(t, errors.As(err, &verrs))
}

func TestFieldErrorsKeepsFirstPerField(t *testing.T) {
	errs := Errors{
		{Path: []string{"name"}, Message: "first"},
		{Path: []string{"name"}, Message: "second"},
		{Path: []string{}, Message: "body"},
	}
	assert.Equal(t, map[string]string{"name": "first"}, errs.FieldErrors())
	assert.Equal(t, "validation failed: name: first; name: second; body", errs.Error())
}

func TestFromDecodeError(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	typeErr := json.Unmarshal([]byte(`{"name": 42}`), &target)
	require.Error(t, typeErr)
	got := FromDecodeError(typeErr)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"name"}, got[0].Path)
	assert.Contains(t, got[0].Message, "esperado string")

	syntaxErr := json.Unmarshal([]byte(`{"name":`), &target)
	assert.Equal(t, Errors{{Path: []string{}, Message: "JSON malformado"}}, FromDecodeError(syntaxErr))

	assert.Equal(t, Errors{{Path: []string{}, Message: "Corpo da requisição vazio"}},
		FromDecodeError(fmt.Errorf("decode: %w", io.EOF)))

	tooLarge := FromDecodeError(&http.MaxBytesError{Limit: 16384})
	assert.Equal(t, Errors{{Path: []string{}, Message: "Corpo da requisição muito grande (máximo 16384 bytes)"}}, tooLarge)
}
