package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/bourse-labs/regchat/internal/adapters/driven/config/file"
	"github.com/bourse-labs/regchat/internal/core/ports/driven"
)

var modelsJSON bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available to the configured API key",
	Long: `Queries the Generative Language API for the models the configured
key can access and marks which of them support generateContent.

This doubles as a connectivity probe: an error here means the key or the
network path is broken before any chat request is involved.`,
	RunE: runModels,
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "output models as JSON")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	if envCredential() == "" {
		return fmt.Errorf("%s is not set", credentialEnvVar)
	}

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}

	client, err := newGeminiClient(cfg)
	if err != nil {
		return err
	}

	models, err := client.ListModels(cmd.Context())
	if err != nil {
		return fmt.Errorf("list models failed: %w", err)
	}

	if modelsJSON {
		return outputModelsJSON(cmd, models)
	}
	return outputModelsTable(cmd, models)
}

func outputModelsJSON(cmd *cobra.Command, models []driven.ModelInfo) error {
	data, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal models: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputModelsTable(cmd *cobra.Command, models []driven.ModelInfo) error {
	if len(models) == 0 {
		cmd.Println("No models available to this key.")
		return nil
	}

	cmd.Printf("Models available (%d):\n\n", len(models))
	for _, m := range models {
		marker := " "
		if m.SupportsGeneration() {
			marker = "*"
		}
		name := strings.TrimPrefix(m.Name, "models/")
		cmd.Printf("  %s %s", marker, name)
		if m.DisplayName != "" && m.DisplayName != name {
			cmd.Printf(" (%s)", m.DisplayName)
		}
		cmd.Println()
	}
	cmd.Println("\n  * supports generateContent")
	return nil
}
