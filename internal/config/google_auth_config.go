package config

import (
	"os"
	"time"
)

type GGAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	StateTTL     time.Duration
}

func NewGGAuthConfig() *GGAuthConfig {
	return &GGAuthConfig{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:3000/auth/google/callback"),
		AuthURL:      getEnv("GOOGLE_OAUTH_URL", "https://accounts.google.com/o/oauth2/auth"),
		TokenURL:     getEnv("GOOGLE_ACCESS_TOKEN_URL", "https://oauth2.googleapis.com/token"),
		UserInfoURL:  getEnv("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v3/userinfo"),
		StateTTL:     getSecondsEnv("GOOGLE_STATE_TTL_SEC", 10*time.Minute),
	}
}
