package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contact",
	Short: "Client for the portfolio contact endpoint",
	Long:  `contact validates a contact form submission locally and posts it to the portfolio backend.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("endpoint", "http://localhost:8080/api/contact", "Contact endpoint URL")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Request timeout (default 10s)")
}
