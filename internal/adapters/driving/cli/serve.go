package cli

import (
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configfile "github.com/bourse-labs/regchat/internal/adapters/driven/config/file"
	"github.com/bourse-labs/regchat/internal/adapters/driving/httpapi"
)

var (
	serveAddr       string
	serveCorpusPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser chat client",
	Long: `Starts the HTTP server hosting the browser chat client and the
answering endpoint (POST /api/chat).

The knowledge corpus is loaded once at startup. A missing knowledge file
is not fatal: the server starts with an empty corpus and the assistant
will say it has no data.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config, else :3000)")
	serveCmd.Flags().StringVar(&serveCorpusPath, "corpus", "", "knowledge file path (default from config, else data/knowledge.json)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}

	chat, err := buildChatService(cfg, serveCorpusPath)
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.GetString(configfile.KeyServerAddr)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := httpapi.NewServer(chat, addr)
	if err := server.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
