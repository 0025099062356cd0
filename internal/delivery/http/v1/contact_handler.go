package v1

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// maxContactBodyBytes comfortably fits the largest valid submission.
const maxContactBodyBytes = 16 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
	metrics   *metrics.Contact
	audit     *audit.Logger
}

// NewContactHandler registers the contact routes (public, no auth required).
// middlewares run before the handler on this route only.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, m *metrics.Contact, a *audit.Logger, middlewares ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		metrics:   m,
		audit:     a,
	}

	public.POST("/contact", append(middlewares, handler.SubmitContact)...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact form submission and relays it to the site owner. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	start := time.Now()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)

	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		details := validation.FromDecodeError(err)
		h.record(c, audit.EventContactValidationFailed, metrics.OutcomeInvalid, start, "", map[string]interface{}{
			"reason": "decode",
		})
		_ = c.Error(apperror.Validation(domain.MsgInvalidData, details))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.record(c, audit.EventContactValidationFailed, metrics.OutcomeInvalid, start, req.Email, map[string]interface{}{
				"fields": fieldNames(verrs),
			})
			_ = c.Error(apperror.Validation(domain.MsgInvalidData, verrs))
			return
		}

		h.record(c, audit.EventContactDeliveryFailed, metrics.OutcomeFailed, start, req.Email, nil)
		_ = c.Error(apperror.New(http.StatusInternalServerError, domain.MsgDeliveryFailed, err))
		return
	}

	h.record(c, audit.EventContactSubmitted, metrics.OutcomeSent, start, req.Email, nil)
	response.Success(c, http.StatusOK, domain.MsgContactSent, nil)
}

func (h *ContactHandler) record(c *gin.Context, event audit.EventType, outcome string, start time.Time, email string, details map[string]interface{}) {
	h.metrics.Observe(outcome, time.Since(start))
	h.audit.Log(c.Request.Context(), audit.Event{
		Event:     event,
		Email:     email,
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
		Details:   details,
	})
}

func fieldNames(verrs validation.Errors) []string {
	names := make([]string, 0, len(verrs))
	for field := range verrs.FieldErrors() {
		names = append(names, field)
	}
	sort.Strings(names)
	return names
}
