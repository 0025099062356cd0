package usecase_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, data email.ContactEmail) error {
	return m.Called(ctx, data).Error(0)
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hello there",
		Message: "This is a test message.",
	}
}

func TestSendContactMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Should relay a valid submission unchanged", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("Send", ctx, email.ContactEmail{
			SenderName:  "Jo",
			SenderEmail: "jo@x.com",
			Subject:     "Hello there",
			Message:     "This is a test message.",
		}).Return(nil).Once()

		uc := usecase.NewContactUsecase(mailer)
		require.NoError(t, uc.SendContactMessage(ctx, validSubmission()))
		mailer.AssertExpectations(t)
	})

	t.Run("Should reject invalid input without calling the mailer", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer)

		err := uc.SendContactMessage(ctx, &domain.ContactSubmission{
			Name: "J", Email: "bad", Subject: "Hi", Message: "short",
		})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 4)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap mailer failures as delivery errors", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("Send", ctx, mock.AnythingOfType("email.ContactEmail")).
			Return(errors.New("smtp: 535 auth failed")).Once()

		uc := usecase.NewContactUsecase(mailer)
		err := uc.SendContactMessage(ctx, validSubmission())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDelivery)
		var verrs validation.Errors
		assert.False(t, errors.As(err, &verrs))
	})

	t.Run("Should report a not configured mailer as delivery error", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("Send", ctx, mock.Anything).Return(email.ErrNotConfigured).Once()

		err := usecase.NewContactUsecase(mailer).SendContactMessage(ctx, validSubmission())
		assert.ErrorIs(t, err, domain.ErrDelivery)
		assert.ErrorIs(t, err, email.ErrNotConfigured)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("Should report redis disabled without a client", func(t *testing.T) {
		status := usecase.NewHealthUsecase("simulated", nil).Check(context.Background())
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "simulated", status["delivery_mode"])
		assert.Equal(t, "disabled", status["redis"])
	})

	t.Run("Should report redis up", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		defer client.Close()

		status := usecase.NewHealthUsecase("smtp", client).Check(context.Background())
		assert.Equal(t, "up", status["redis"])
	})
}
