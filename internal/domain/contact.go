package domain

import (
	"context"
	"errors"

	"portfolio-backend/pkg/validation"
)

// ContactSubmission is the contact form payload. Its `validate` tags are the
// single rule set shared by the HTTP endpoint and the form client.
//
// Lengths are counted in runes, not UTF-16 code units as a browser would, so
// "😀" is one character here and fails min=2 on Name.
type ContactSubmission struct {
	Name    string `json:"name" validate:"min=2,max=100"`
	Email   string `json:"email" validate:"email,max=100"`
	Subject string `json:"subject" validate:"min=5,max=200"`
	Message string `json:"message" validate:"min=10,max=1000"`
}

// Response messages shown to the visitor.
const (
	MsgContactSent     = "Mensagem enviada com sucesso!"
	MsgInvalidData     = "Dados inválidos"
	MsgDeliveryFailed  = "Erro ao enviar mensagem. Por favor, tente novamente."
	MsgTooManyRequests = "Muitas tentativas. Por favor, aguarde e tente novamente."
)

// ErrDelivery wraps every failure of the downstream side effect.
var ErrDelivery = errors.New("contact delivery failed")

var contactMessages = validation.Messages{
	Labels: map[string]string{
		"name":    "Nome",
		"email":   "Email",
		"subject": "Assunto",
		"message": "Mensagem",
	},
	Rules: map[string]string{
		"name.min":    "Nome deve ter pelo menos 2 caracteres",
		"name.max":    "Nome muito longo (máximo 100 caracteres)",
		"email.email": "Email inválido",
		"email.max":   "Email muito longo (máximo 100 caracteres)",
		"subject.min": "Assunto deve ter pelo menos 5 caracteres",
		"subject.max": "Assunto muito longo (máximo 200 caracteres)",
		"message.min": "Mensagem deve ter pelo menos 10 caracteres",
		"message.max": "Mensagem muito longa (máximo 1000 caracteres)",
	},
}

var contactSchema = validation.NewSchema(contactMessages)

// Validate checks every field and returns validation.Errors listing all
// violations, or nil.
func (s ContactSubmission) Validate() error {
	return contactSchema.Validate(s)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and relays a contact form message.
	// Returns validation.Errors for rule failures and an error wrapping
	// ErrDelivery when the side effect fails.
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
}
