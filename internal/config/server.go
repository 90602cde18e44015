package config

import "time"

type ServerConfig struct {
	Port           int
	ServiceName    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes int64
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:        getIntEnv("PORT", 3000),
		ServiceName: getEnv("SERVICE_NAME", "codeplatform"),
		ReadTimeout: getSecondsEnv("HTTP_READ_TIMEOUT_SEC", 15*time.Second),
		// evaluations wait on the remote judge, keep this well above its run time
		WriteTimeout:   getSecondsEnv("HTTP_WRITE_TIMEOUT_SEC", 90*time.Second),
		IdleTimeout:    getSecondsEnv("HTTP_IDLE_TIMEOUT_SEC", 60*time.Second),
		AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxBodyBytes:   int64(getIntEnv("HTTP_MAX_BODY_MB", 10)) << 20,
	}
}
