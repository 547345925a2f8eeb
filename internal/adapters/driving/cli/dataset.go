package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage knowledge bases",
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge bases",
	RunE:  runDatasetList,
}

var datasetCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an empty knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetCreate,
}

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete [dataset-id]",
	Short: "Delete a knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetDelete,
}

// Flags for dataset commands.
var (
	datasetListPage   int
	datasetListLimit  int
	datasetPermission string
)

func init() {
	datasetListCmd.Flags().IntVar(&datasetListPage, "page", 1, "page number")
	datasetListCmd.Flags().IntVar(&datasetListLimit, "limit", 20, "page size")
	datasetCreateCmd.Flags().StringVar(&datasetPermission, "permission", "", "access permission (default only_me)")

	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetCreateCmd)
	datasetCmd.AddCommand(datasetDeleteCmd)
	rootCmd.AddCommand(datasetCmd)
}

// printJSON writes an indented JSON rendering of a payload.
func printJSON(cmd *cobra.Command, payload map[string]any) error {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

func runDatasetList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	payload, err := datasetService.List(cmd.Context(), datasetListPage, datasetListLimit)
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}
	return printJSON(cmd, payload)
}

func runDatasetCreate(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	payload, err := datasetService.Create(cmd.Context(), args[0], datasetPermission)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	return printJSON(cmd, payload)
}

func runDatasetDelete(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	payload, err := datasetService.Delete(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return printJSON(cmd, payload)
}
