package llm

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Credentials are the API key and model name required to call the provider.
type Credentials struct {
	APIKey string
	Model  string
}

var (
	apiKeyCandidates = []string{"OPENROUTER_API_KEY", "API_KEY", "API-KEY"}
	modelCandidates  = []string{"OPENROUTER_MODEL", "LLM_MODEL", "LLM-MODEL", "MODEL"}
)

// LoadCredentials reads the API key and model from the environment,
// optionally seeded from a .env file. A missing .env file is not an error;
// non-empty real environment variables always win over file values.
func LoadCredentials(envPath string) (*Credentials, error) {
	if envPath == "" {
		envPath = ".env"
	}

	fileEnv := map[string]string{}
	if _, err := os.Stat(envPath); err == nil {
		fileEnv, err = godotenv.Read(envPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	apiKey, err := lookupValue(apiKeyCandidates, fileEnv)
	if err != nil {
		return nil, err
	}
	model, err := lookupValue(modelCandidates, fileEnv)
	if err != nil {
		return nil, err
	}

	return &Credentials{APIKey: apiKey, Model: model}, nil
}

func lookupValue(candidates []string, fileEnv map[string]string) (string, error) {
	for _, name := range candidates {
		normalized := strings.ReplaceAll(strings.ToUpper(name), "-", "_")
		for _, key := range []string{name, normalized} {
			if v := os.Getenv(key); v != "" {
				return v, nil
			}
			if v := fileEnv[key]; v != "" {
				return v, nil
			}
		}
	}
	return "", fmt.Errorf("missing required environment variable, tried: %s", strings.Join(candidates, ", "))
}

// MaskSecret hides the middle of a secret for log output.
func MaskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible*2 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:visible] + "..." + secret[len(secret)-visible:]
}
