package config

import (
	"fmt"
	"os"
)

type SunoConfig struct {
	ApiUrl       string
	ApiKey       string
	ModelVersion string
}

func GetSunoConfig() (*SunoConfig, error) {
	apiUrl := os.Getenv("SUNO_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("SUNO_API_URL must be set")
	}
	apiKey := os.Getenv("SUNO_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SUNO_API_KEY must be set")
	}
	modelVersion := os.Getenv("SUNO_MODEL_VERSION")
	if modelVersion == "" {
		modelVersion = "chirp-v3-5"
	}

	return &SunoConfig{
		ApiUrl:       apiUrl,
		ApiKey:       apiKey,
		ModelVersion: modelVersion,
	}, nil
}
