package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultModels is the fallback chain attempted in order when MODEL_LIST is
// not set. Earlier entries are cheaper; later entries are the safety net.
var DefaultModels = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"gpt-3.5-turbo",
}

type ModelConfig struct {
	ApiUrl string
	ApiKey string
	Models []string
}

func GetModelConfig() (*ModelConfig, error) {
	apiUrl := os.Getenv("MODEL_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("MODEL_API_URL must be set")
	}
	apiKey := os.Getenv("MODEL_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("MODEL_API_KEY must be set")
	}

	models := DefaultModels
	if list := os.Getenv("MODEL_LIST"); list != "" {
		models = nil
		for _, m := range strings.Split(list, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
		if len(models) == 0 {
			return nil, fmt.Errorf("MODEL_LIST contains no model identifiers")
		}
	}

	return &ModelConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Models: models,
	}, nil
}
