package cli

import (
	"os"
	"time"

	configfile "github.com/bourse-labs/regchat/internal/adapters/driven/config/file"
	corpusfile "github.com/bourse-labs/regchat/internal/adapters/driven/corpus/file"
	"github.com/bourse-labs/regchat/internal/adapters/driven/llm/gemini"
	"github.com/bourse-labs/regchat/internal/core/ports/driving"
	"github.com/bourse-labs/regchat/internal/core/services"
	"github.com/bourse-labs/regchat/internal/logger"
)

// credentialEnvVar names the environment variable holding the API key.
const credentialEnvVar = "GEMINI_API_KEY"

// envCredential reads the API key from the environment on every call so
// that per-request validation sees changes without a restart.
func envCredential() string {
	return os.Getenv(credentialEnvVar)
}

// buildChatService wires the corpus, prompt store and Gemini client into a
// chat service using the file config store for settings. corpusPath, when
// non-empty, overrides the configured knowledge file path.
func buildChatService(cfg *configfile.ConfigStore, corpusPath string) (driving.ChatService, error) {
	if corpusPath == "" {
		corpusPath = cfg.GetString(configfile.KeyCorpusPath)
	}

	// The corpus is loaded exactly once here and injected as an immutable
	// value; a missing or broken knowledge file degrades to an empty
	// corpus rather than preventing startup.
	store := corpusfile.NewStore(corpusPath)
	corpus, err := store.Load()
	if err != nil {
		logger.Warn("corpus load failed, continuing with empty corpus: %v", err)
		corpus = nil
	}

	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		return nil, err
	}

	generator, err := newGeminiClient(cfg)
	if err != nil {
		return nil, err
	}

	return services.NewChatService(
		corpus,
		services.NewPromptBuilder(prompts),
		generator,
		envCredential,
	), nil
}

// newGeminiClient builds the Gemini client from configured settings.
func newGeminiClient(cfg *configfile.ConfigStore) (*gemini.Client, error) {
	var timeout time.Duration
	if secs := cfg.GetInt(configfile.KeyLLMTimeoutSecs); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	return gemini.NewClient(gemini.Config{
		Key:     envCredential,
		BaseURL: cfg.GetString(configfile.KeyLLMBaseURL),
		Model:   cfg.GetString(configfile.KeyLLMModel),
		Timeout: timeout,
	})
}
