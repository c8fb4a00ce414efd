// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values and validate

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	//Credentials
	Username string `yaml:"username" env:"LINKEDIN_USERNAME"`
	Password string `yaml:"password" env:"LINKEDIN_PASSWORD"`
	//Search criteria
	Keyword string `yaml:"keyword" env:"JOB_KEYWORD"`
	BaseURL string `yaml:"base_url"`
	//Output
	OutputPath     string `yaml:"output_path" env:"OUTPUT_PATH"`
	ScreenshotsDir string `yaml:"screenshots_dir" env:"SCREENSHOTS_DIR"`
	DatabaseURL    string `yaml:"database_url" env:"DATABASE_URL"`
	//Waits
	PageTimeout time.Duration `yaml:"page_timeout"`
	PaneTimeout time.Duration `yaml:"pane_timeout"`
	Headless    bool          `yaml:"headless" env:"HEADLESS"`
	//Run report
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Logging
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"LOG_FILE"`
}

// Load reads .env, then the YAML file at path, then environment overrides.
// A missing YAML file is not an error. Call Prepare before use.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&c.Username, "LINKEDIN_USERNAME")
	setString(&c.Password, "LINKEDIN_PASSWORD")
	setString(&c.Keyword, "JOB_KEYWORD")
	setString(&c.OutputPath, "OUTPUT_PATH")
	setString(&c.ScreenshotsDir, "SCREENSHOTS_DIR")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.TelegramToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFile, "LOG_FILE")

	if v := os.Getenv("HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid HEADLESS: %w", err)
		}
		c.Headless = b
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

// Prepare fills defaults, expands ~ in paths and validates the result.
func (c *Config) Prepare() error {
	if c.Keyword == "" {
		c.Keyword = "Python Developer"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://www.linkedin.com"
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.OutputPath == "" {
		c.OutputPath = filepath.Join("~", "Desktop", "linkedin_scraper", "jobs.csv")
	}
	if c.PageTimeout == 0 {
		c.PageTimeout = 30 * time.Second
	}
	if c.PaneTimeout == 0 {
		c.PaneTimeout = 10 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	for _, p := range []*string{&c.OutputPath, &c.ScreenshotsDir, &c.LogFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("could not expand %q: %w", *p, err)
		}
		*p = expanded
	}

	return c.Validate()
}

// Validate reports every missing or invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Username == "" {
		errs = append(errs, errors.New("LINKEDIN_USERNAME is required"))
	}
	if c.Password == "" {
		errs = append(errs, errors.New("LINKEDIN_PASSWORD is required"))
	}
	if strings.TrimSpace(c.Keyword) == "" {
		errs = append(errs, errors.New("keyword is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output_path is required"))
	}
	if c.PageTimeout <= 0 || c.PaneTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together"))
	}
	return errors.Join(errs...)
}

// ReportEnabled reports whether a Telegram run report should be sent.
func (c *Config) ReportEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
