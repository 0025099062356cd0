package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/contactform"
	"portfolio-backend/internal/domain"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

func TestRunSendSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"` + domain.MsgContactSent + `"}`))
	}))
	defer srv.Close()

	cmd, stdout, _ := testCommand()
	form := contactform.New(contactform.NewHTTPSubmitter(srv.URL, time.Second))

	err := runSend(cmd, form, domain.ContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hello there",
		Message: "This is a test message.",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MsgContactSent+"\n", stdout.String())
}

func TestRunSendPrintsFieldErrors(t *testing.T) {
	cmd, _, stderr := testCommand()
	form := contactform.New(contactform.NewHTTPSubmitter("http://127.0.0.1:1", time.Second))

	err := runSend(cmd, form, domain.ContactSubmission{Name: "Jo", Email: "bad", Subject: "Hello there", Message: "short"})

	require.EqualError(t, err, domain.MsgInvalidData)
	assert.Equal(t, "email: Email inválido\nmessage: Mensagem deve ter pelo menos 10 caracteres\n", stderr.String())
}

func TestRunSendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"error":"` + domain.MsgTooManyRequests + `"}`))
	}))
	defer srv.Close()

	cmd, _, _ := testCommand()
	form := contactform.New(contactform.NewHTTPSubmitter(srv.URL, time.Second))

	err := runSend(cmd, form, domain.ContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hello there",
		Message: "This is a test message.",
	})

	require.EqualError(t, err, domain.MsgTooManyRequests)
}
