// Package contactform holds the client side of the contact pipeline: it
// validates a submission locally, sends it to the endpoint and tracks the
// resulting status and field errors for one form instance.
package contactform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
)

// Status is the lifecycle state of a form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	// ErrValidation wraps local validation failures. No request is sent.
	ErrValidation = errors.New("contactform: validation failed")
	// ErrSubmissionInFlight is returned when Submit is called while another
	// submission on the same form has not resolved yet.
	ErrSubmissionInFlight = errors.New("contactform: submission already in flight")
)

// Result is the outcome of one Submit call.
type Result struct {
	Success bool
	Data    *SubmitResponse
	Err     error
}

// Form owns the status and field errors of a single contact form.
// Each form is independent; create one per mounted form.
type Form struct {
	mu        sync.Mutex
	submitter Submitter
	status    Status
	errors    map[string]string
	inFlight  bool
}

// New returns an idle form that sends through submitter.
func New(submitter Submitter) *Form {
	return &Form{
		submitter: submitter,
		status:    StatusIdle,
		errors:    map[string]string{},
	}
}

// Submit validates data and, when valid, sends it. Field errors are cleared
// at the start of every attempt and only populated by local validation.
func (f *Form) Submit(ctx context.Context, data domain.ContactSubmission) Result {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return Result{Err: ErrSubmissionInFlight}
	}
	f.inFlight = true
	f.status = StatusLoading
	f.errors = map[string]string{}
	f.mu.Unlock()

	if err := data.Validate(); err != nil {
		var fieldErrs map[string]string
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			fieldErrs = verrs.FieldErrors()
		}
		f.finish(StatusError, fieldErrs)
		return Result{Err: fmt.Errorf("%w: %w", ErrValidation, err)}
	}

	resp, err := f.submitter.Submit(ctx, data)
	if err != nil {
		f.finish(StatusError, nil)
		return Result{Err: err}
	}

	f.finish(StatusSuccess, nil)
	return Result{Success: true, Data: resp}
}

func (f *Form) finish(status Status, fieldErrs map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = status
	if fieldErrs != nil {
		f.errors = fieldErrs
	}
	f.inFlight = false
}

// Reset returns the form to idle with no field errors. A submission still
// in flight will overwrite the status when it resolves.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = StatusIdle
	f.errors = map[string]string{}
}

// ClearFieldError removes the error of one field, typically once the user
// edits it again.
func (f *Form) ClearFieldError(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.errors, field)
}

// Status returns the current lifecycle state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// FieldErrors returns a copy of the current field errors.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) IsIdle() bool    { return f.Status() == StatusIdle }
func (f *Form) IsLoading() bool { return f.Status() == StatusLoading }
func (f *Form) IsSuccess() bool { return f.Status() == StatusSuccess }
func (f *Form) IsError() bool   { return f.Status() == StatusError }
