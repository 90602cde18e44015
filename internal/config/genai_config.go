package config

import "os"

type GenAIConfig struct {
	APIKey string
	Model  string
}

func NewGenAIConfig() *GenAIConfig {
	return &GenAIConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
	}
}
