package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable before the
// server starts. LLM and S3 settings are optional: the AI endpoints report
// their own errors when unconfigured, and photo archival is best effort.
func ValidateConfig(cfg *Config) error {
	var problems []string

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			problems = append(problems, "DB_HOST is required for the postgres driver")
		}
		if cfg.DBUser == "" {
			problems = append(problems, "DB_USER is required for the postgres driver")
		}
		if cfg.DBName == "" {
			problems = append(problems, "DB_NAME is required for the postgres driver")
		}
		if IsProduction() && cfg.DBPassword == "" {
			problems = append(problems, "DB_PASSWORD is required in production")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH must not be empty")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown DB_DRIVER %q (expected postgres or sqlite)", cfg.DBDriver))
	}

	if cfg.ServerPort == "" {
		problems = append(problems, "SERVER_PORT must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
