package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"portfolio-backend/internal/contactform"
	"portfolio-backend/internal/domain"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:          "send",
	Short:        "Send a contact message",
	Long:         `Validates the message with the same rules as the server, then submits it. Field errors are printed one per line.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		data := domain.ContactSubmission{}
		data.Name, _ = cmd.Flags().GetString("name")
		data.Email, _ = cmd.Flags().GetString("email")
		data.Subject, _ = cmd.Flags().GetString("subject")
		data.Message, _ = cmd.Flags().GetString("message")

		form := contactform.New(contactform.NewHTTPSubmitter(endpoint, timeout))
		return runSend(cmd, form, data)
	},
}

func init() {
	sendCmd.Flags().String("name", "", "Sender name")
	sendCmd.Flags().String("email", "", "Sender email (used as reply-to)")
	sendCmd.Flags().String("subject", "", "Message subject")
	sendCmd.Flags().String("message", "", "Message body")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, form *contactform.Form, data domain.ContactSubmission) error {
	res := form.Submit(cmd.Context(), data)
	if res.Success {
		fmt.Fprintln(cmd.OutOrStdout(), res.Data.Message)
		return nil
	}

	if errors.Is(res.Err, contactform.ErrValidation) {
		printFieldErrors(cmd.ErrOrStderr(), form.FieldErrors())
		return errors.New(domain.MsgInvalidData)
	}

	var respErr *contactform.ResponseError
	if errors.As(res.Err, &respErr) && respErr.Message != "" {
		return errors.New(respErr.Message)
	}
	return errors.New(domain.MsgDeliveryFailed)
}

func printFieldErrors(w io.Writer, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "%s: %s\n", field, errs[field])
	}
}
