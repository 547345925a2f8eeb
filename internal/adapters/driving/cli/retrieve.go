package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Search chunks in a knowledge base",
	Long: `Run a retrieval query against a knowledge base and print the raw
records returned by the service.

Examples:
  kbridge retrieve --dataset ds-123 "error handling"
  kbridge retrieve --dataset ds-123 --method semantic_search --top-k 10 "goroutines"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRetrieve,
}

// Flags for retrieve.
var (
	retrieveDatasetID string
	retrieveMethod    string
	retrieveTopK      int
)

func init() {
	retrieveCmd.Flags().StringVar(&retrieveDatasetID, "dataset", "", "dataset ID")
	retrieveCmd.Flags().StringVar(&retrieveMethod, "method", "", "search method (default keyword_search)")
	retrieveCmd.Flags().IntVar(&retrieveTopK, "top-k", 0, "number of results (default 5)")

	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	payload, err := retrievalService.Retrieve(cmd.Context(), retrieveDatasetID, domain.RetrievalQuery{
		Query:        strings.Join(args, " "),
		SearchMethod: retrieveMethod,
		TopK:         retrieveTopK,
	})
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}
	return printJSON(cmd, payload)
}
