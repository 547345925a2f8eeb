package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidemark-labs/kbridge/internal/adapters/driven/dify"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage knowledge-base credentials",
	Long: `Store and verify the API key and base URL used to reach the remote
knowledge-base service.

Credentials are kept in the config file, and can always be overridden per
run with the KBRIDGE_API_KEY and KBRIDGE_BASE_URL environment variables.

Examples:
  # Store credentials
  kbridge auth set --api-key dataset-xxx --base-url https://api.dify.ai/v1

  # Verify the stored credentials against the service
  kbridge auth status`,
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key and base URL",
	RunE:  runAuthSet,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Verify the configured credentials against the service",
	RunE:  runAuthStatus,
}

// Flags for auth set.
var (
	authSetAPIKey  string
	authSetBaseURL string
)

func init() {
	authSetCmd.Flags().StringVar(&authSetAPIKey, "api-key", "", "dataset API key")
	authSetCmd.Flags().StringVar(&authSetBaseURL, "base-url", "", "API base URL, e.g. https://api.dify.ai/v1")

	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthSet(cmd *cobra.Command, _ []string) error {
	if authSetAPIKey == "" && authSetBaseURL == "" {
		return errors.New("nothing to store: pass --api-key and/or --base-url")
	}

	if authSetAPIKey != "" {
		if err := configStore.Set("dify."+driven.CredentialAPIKey, authSetAPIKey); err != nil {
			return fmt.Errorf("saving api key: %w", err)
		}
	}
	if authSetBaseURL != "" {
		if err := configStore.Set("dify."+driven.CredentialBaseURL, authSetBaseURL); err != nil {
			return fmt.Errorf("saving base url: %w", err)
		}
	}

	cmd.Printf("Credentials saved to %s\n", configStore.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	client, err := dify.NewClient(cmd.Context(), credentials)
	if err != nil {
		return err
	}

	if err := client.ValidateCredentials(cmd.Context()); err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	cmd.Println("Credentials are valid.")
	return nil
}
