// Package cli implements the kbridge command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidemark-labs/kbridge/internal/adapters/driven/config/env"
	"github.com/tidemark-labs/kbridge/internal/adapters/driven/config/file"
	"github.com/tidemark-labs/kbridge/internal/adapters/driven/dify"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
	"github.com/tidemark-labs/kbridge/internal/core/services"
	"github.com/tidemark-labs/kbridge/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

// Shared infrastructure, initialized in rootCmd's PersistentPreRunE.
var (
	configStore *file.ConfigStore
	credentials driven.CredentialSource
)

// Services, built lazily because most commands need remote credentials but
// some (version, auth set) must work without them.
var (
	knowledgeStore   driven.KnowledgeStore
	datasetService   driving.DatasetService
	documentService  driving.DocumentService
	segmentService   driving.SegmentService
	metadataService  driving.MetadataService
	retrievalService driving.RetrievalService
	costEstimator    driving.CostEstimator
)

var rootCmd = &cobra.Command{
	Use:   "kbridge",
	Short: "Bridge a remote knowledge base into AI assistants",
	Long: `kbridge manages datasets, documents, chunks and metadata in a remote
knowledge-base service, and exposes the same operations as MCP tools for
AI assistants.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		store, err := file.NewConfigStore(flagConfigDir)
		if err != nil {
			return fmt.Errorf("opening config store: %w", err)
		}
		configStore = store
		credentials = env.NewCredentials(configStore)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.kbridge)")
}

// ensureServices builds the remote client and the service layer. It fails
// when credentials are missing, pointing at 'kbridge auth set'.
func ensureServices(cmd *cobra.Command) error {
	if knowledgeStore != nil {
		return nil
	}

	client, err := dify.NewClient(cmd.Context(), credentials)
	if err != nil {
		return fmt.Errorf("%w (run 'kbridge auth set' or export KBRIDGE_API_KEY and KBRIDGE_BASE_URL)", err)
	}

	knowledgeStore = client
	datasetService = services.NewDatasetService(knowledgeStore)
	documentService = services.NewDocumentService(knowledgeStore)
	segmentService = services.NewSegmentService(knowledgeStore)
	metadataService = services.NewMetadataService(knowledgeStore)
	retrievalService = services.NewRetrievalService(knowledgeStore)

	if model := configStore.GetString("cost.embedding_model"); model != "" || configStore.GetBool("cost.enabled") {
		custom := float64(configStore.GetInt("cost.price_per_1m_cents")) / 100
		costEstimator = services.NewCostEstimator(model, custom)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the reported version, for build-time injection.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
