// Package cli implements the regchat command surface.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bourse-labs/regchat/internal/logger"
)

// version is set from main via SetVersion (populated by -ldflags at build).
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "regchat",
	Short: "Chat with the exchange regulations knowledge base",
	Long: `regchat answers questions about the National Stock Exchange's
regulations by loading a static knowledge corpus and forwarding each
question, wrapped with the full corpus, to the Gemini generation API.

Run "regchat serve" for the browser client or "regchat chat" for the
terminal client. "regchat merge" builds the knowledge file from scraped
batches.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose diagnostic output")
}

// SetVersion sets the version string displayed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. A .env file in the working directory is
// loaded first so GEMINI_API_KEY behaves as it does in the scraper tooling.
func Execute() error {
	_ = godotenv.Load()
	return rootCmd.Execute()
}
