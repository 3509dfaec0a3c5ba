package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	configfile "github.com/bourse-labs/regchat/internal/adapters/driven/config/file"
	"github.com/bourse-labs/regchat/internal/adapters/driving/tui"
)

var chatCorpusPath string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive terminal chat client",
	Long: `Launch the terminal chat client for the regulations knowledge base.

Controls:
  Enter - Send the typed question
  Esc   - Quit`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatCorpusPath, "corpus", "", "knowledge file path (default from config, else data/knowledge.json)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Panic recovery so terminal state problems come with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat client: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}

	chat, err := buildChatService(cfg, chatCorpusPath)
	if err != nil {
		return err
	}

	model := tui.NewChat(chat).WithContext(cmd.Context())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat client error: %w", err)
	}
	return nil
}
