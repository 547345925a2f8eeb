package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage documents in a knowledge base",
}

var documentUpsertCmd = &cobra.Command{
	Use:   "upsert",
	Short: "Create a document from text, or update the one with the same name",
	Long: `Create a document from text. If a document with the exact same name
already exists in the dataset, its content is replaced instead of creating
a duplicate.

Examples:
  # Create or update from a file
  kbridge document upsert --dataset ds-123 --name guide.md --file ./guide.md

  # Inline text with a custom processing rule
  kbridge document upsert --dataset ds-123 --name note.txt --text "hello" \
    --process-rule '{"mode":"automatic"}'`,
	RunE: runDocumentUpsert,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in a knowledge base",
	RunE:  runDocumentList,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [document-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// Flags for document commands.
var (
	documentDatasetID   string
	documentName        string
	documentText        string
	documentFile        string
	documentTechnique   string
	documentProcessRule string
	documentMetadata    string
	documentKeyword     string
	documentListPage    int
	documentListLimit   int
)

func init() {
	documentCmd.PersistentFlags().StringVar(&documentDatasetID, "dataset", "", "dataset ID")

	documentUpsertCmd.Flags().StringVar(&documentName, "name", "", "document name")
	documentUpsertCmd.Flags().StringVar(&documentText, "text", "", "document text")
	documentUpsertCmd.Flags().StringVar(&documentFile, "file", "", "read document text from a file")
	documentUpsertCmd.Flags().StringVar(&documentTechnique, "indexing-technique", "", "high_quality or economy")
	documentUpsertCmd.Flags().StringVar(&documentProcessRule, "process-rule", "", "processing rule as JSON")
	documentUpsertCmd.Flags().StringVar(&documentMetadata, "metadata", "", "metadata list as JSON")

	documentListCmd.Flags().StringVar(&documentKeyword, "keyword", "", "filter by name keyword")
	documentListCmd.Flags().IntVar(&documentListPage, "page", 1, "page number")
	documentListCmd.Flags().IntVar(&documentListLimit, "limit", 20, "page size")

	documentCmd.AddCommand(documentUpsertCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentUpsert(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	text := documentText
	if documentFile != "" {
		if text != "" {
			return errors.New("pass either --text or --file, not both")
		}
		data, err := os.ReadFile(documentFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", documentFile, err)
		}
		text = string(data)
	}

	result, err := documentService.UpsertByText(cmd.Context(), driving.UpsertRequest{
		DatasetID:         documentDatasetID,
		Name:              documentName,
		Text:              text,
		IndexingTechnique: documentTechnique,
		ProcessRuleJSON:   documentProcessRule,
		MetadataJSON:      documentMetadata,
	})
	if err != nil {
		return err
	}

	cmd.Println(result.Summary)
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	payload, err := documentService.List(
		cmd.Context(), documentDatasetID, documentKeyword, documentListPage, documentListLimit)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	return printJSON(cmd, payload)
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	payload, err := documentService.Delete(cmd.Context(), documentDatasetID, args[0])
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return printJSON(cmd, payload)
}
