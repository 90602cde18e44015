package config

import "os"

// JavaLanguageID is the judge's identifier for Java (OpenJDK 13).
const JavaLanguageID = 62

type JudgeConfig struct {
	BaseURL    string
	APIKey     string
	Host       string
	LanguageID int
}

func NewJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		BaseURL:    getEnv("JUDGE0_URL", "https://judge0-ce.p.rapidapi.com"),
		APIKey:     os.Getenv("JUDGE0_KEY"),
		Host:       getEnv("JUDGE0_HOST", "judge0-ce.p.rapidapi.com"),
		LanguageID: getIntEnv("JUDGE0_LANGUAGE_ID", JavaLanguageID),
	}
}
