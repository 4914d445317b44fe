package cli

import "os"

// Config holds CLI configuration
type Config struct {
	GameServerURL   string
	PlayerServerURL string
	Output          string
	Verbose         bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GameServerURL:   getEnvOrDefault("GAMECTL_GAME_SERVER", "http://localhost:2021"),
		PlayerServerURL: getEnvOrDefault("GAMECTL_PLAYER_SERVER", "http://localhost:2020"),
		Output:          "text",
		Verbose:         false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
