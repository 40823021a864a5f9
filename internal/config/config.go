package config

import "os"

type Config struct {
	OutputDir    string
	SettingsPath string
}

func Load() Config {
	return Config{
		OutputDir:    env("STACKVIEW_OUTPUT_DIR", ""),
		SettingsPath: env("STACKVIEW_SETTINGS_PATH", ""),
	}
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
