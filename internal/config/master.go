package config

type AppConfig struct {
	Environment    string
	DebugMode      bool
	ServerConfig   *ServerConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	GGAuthConfig   *GGAuthConfig
	JudgeConfig    *JudgeConfig
	GenAIConfig    *GenAIConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		Environment:    getEnv("APP_ENV", "development"),
		DebugMode:      getEnv("DEBUG_MODE", "false") == "true",
		ServerConfig:   NewServerConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		GGAuthConfig:   NewGGAuthConfig(),
		JudgeConfig:    NewJudgeConfig(),
		GenAIConfig:    NewGenAIConfig(),
	}
}

func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}
