package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Violation is a single failed rule addressed by the JSON path of its field.
type Violation struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Errors lists every violation found while checking one value.
type Errors []Violation

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		if len(v.Path) == 0 {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, strings.Join(v.Path, ".")+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldErrors maps each top-level field to its first violation message.
// Violations without a path are skipped.
func (e Errors) FieldErrors() map[string]string {
	out := make(map[string]string, len(e))
	for _, v := range e {
		if len(v.Path) == 0 {
			continue
		}
		if _, seen := out[v.Path[0]]; seen {
			continue
		}
		out[v.Path[0]] = v.Message
	}
	return out
}

// FromDecodeError converts a JSON decoding failure into violations so that
// malformed bodies are reported the same way as rule failures.
func FromDecodeError(err error) Errors {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return Errors{{Path: []string{}, Message: "Corpo da requisição vazio"}}
	case errors.As(err, &maxErr):
		return Errors{{
			Path:    []string{},
			Message: fmt.Sprintf("Corpo da requisição muito grande (máximo %d bytes)", maxErr.Limit),
		}}
	case errors.As(err, &typeErr):
		path := []string{}
		if typeErr.Field != "" {
			path = strings.Split(typeErr.Field, ".")
		}
		return Errors{{
			Path:    path,
			Message: fmt.Sprintf("Tipo inválido: esperado %s, recebido %s", typeErr.Type.Kind(), typeErr.Value),
		}}
	default:
		return Errors{{Path: []string{}, Message: "JSON malformado"}}
	}
}
