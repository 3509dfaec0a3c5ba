package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configfile "github.com/bourse-labs/regchat/internal/adapters/driven/config/file"
	corpusfile "github.com/bourse-labs/regchat/internal/adapters/driven/corpus/file"
)

var (
	mergeOut   string
	mergeWatch bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [batch files...]",
	Short: "Merge scraped batch files into the knowledge file",
	Long: `Flattens scraped batch files (each a JSON object mapping source URL
to content) into the single knowledge file the server loads at startup.

Unreadable batches are skipped with a notice. Entries are never
deduplicated: overlapping URLs across batches all survive the merge.

With no arguments the configured corpus.batch_files list is used, falling
back to scraped_batch_1.json through scraped_batch_4.json.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "output knowledge file (default data/knowledge.json)")
	mergeCmd.Flags().BoolVarP(&mergeWatch, "watch", "w", false, "stay running and re-merge when a batch file changes")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		cfg, err := configfile.NewConfigStore("")
		if err != nil {
			return err
		}
		paths = cfg.GetStringSlice(configfile.KeyCorpusBatchFiles)
	}
	if len(paths) == 0 {
		paths = corpusfile.DefaultBatchFiles
	}

	out := mergeOut
	if out == "" {
		out = corpusfile.DefaultKnowledgePath
	}

	count, err := corpusfile.MergeBatches(paths, out)
	if err != nil {
		return err
	}
	cmd.Printf("Merged %d entries into %s\n", count, out)

	if !mergeWatch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return corpusfile.WatchBatches(ctx, paths, out)
}
