package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	StorePath  string
	Debug      bool
}

// ParseFlags reads configuration from flags, falling back to environment
// variables (a .env file is loaded first if present). Returns the remaining
// non-flag arguments: subcommand name and its operands.
func ParseFlags(args []string) (cfg Config, rest []string, err error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("surveys", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "api-url", envOr("SURVEY_API_URL", "http://localhost:8081"), "base URL of the survey service")
	fs.StringVar(&cfg.StorePath, "store", envOr("SURVEY_STORE", defaultStorePath()), "path to the local session/draft store")
	fs.BoolVar(&cfg.Debug, "debug", os.Getenv("SURVEY_DEBUG") != "", "log at DEBUG level")
	if err = fs.Parse(args); err != nil {
		return
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.APIBaseURL == "" {
		err = errors.New("missing parameter -api-url")
		return
	}

	rest = fs.Args()
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "surveys.sqlite"
	}
	return filepath.Join(home, ".surveys", "surveys.sqlite")
}
