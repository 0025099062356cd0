package usecase

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
)

type contactUsecase struct {
	mailer email.Mailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer email.Mailer) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

// SendContactMessage re-validates the submission and performs the side effect.
// Client-side validation is never trusted.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emailData := email.ContactEmail{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
	}

	if err := uc.mailer.Send(ctx, emailData); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	return nil
}
