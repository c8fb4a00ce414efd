package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/logger"
	"go-linkedin-scraper/internal/reporter"
	"go-linkedin-scraper/internal/scraper"
	"go-linkedin-scraper/internal/scraper/linkedin"
	"go-linkedin-scraper/internal/sink"
)

var flags struct {
	config   string
	keyword  string
	output   string
	username string
	headless bool
}

var rootCmd = &cobra.Command{
	Use:          "linkedin-scraper",
	Short:        "Logs in to LinkedIn, walks one job search and appends every job to a CSV file.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.config, "config", "c", config.DefaultPath, "YAML config file")
	f.StringVarP(&flags.keyword, "keyword", "k", "", "job search keyword (overrides JOB_KEYWORD)")
	f.StringVarP(&flags.output, "output", "o", "", "CSV output path (overrides OUTPUT_PATH)")
	f.StringVarP(&flags.username, "username", "u", "", "LinkedIn username (overrides LINKEDIN_USERNAME)")
	f.BoolVar(&flags.headless, "headless", false, "run Chromium without a window")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// loadConfig layers command-line flags over the YAML and env config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.keyword != "" {
		cfg.Keyword = flags.keyword
	}
	if flags.output != "" {
		cfg.OutputPath = flags.output
	}
	if flags.username != "" {
		cfg.Username = flags.username
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = flags.headless
	}
	if err := cfg.Prepare(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	defer log.Sync()

	info := reporter.Run{ID: uuid.NewString(), Keyword: cfg.Keyword, Output: cfg.OutputPath}
	log = log.With("run", info.ID)
	log.Infof("🔧 Config loaded. Keyword: %q → %s", cfg.Keyword, cfg.OutputPath)

	var report *reporter.TelegramReporter
	if cfg.ReportEnabled() {
		r, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Warnf("⚠️ Telegram report disabled: %v", err)
		} else {
			report = r
			log.Info("🤖 Telegram Bot initialized.")
		}
	}

	stats, err := scrape(ctx, cfg, log)
	if err != nil {
		log.Errorf("❌ Run failed: %v", err)
		if report != nil {
			if rerr := report.SendError(info, err); rerr != nil {
				log.Warnf("⚠️ Failed to send error to Telegram: %v", rerr)
			}
		}
		return err
	}

	log.Infof("📦 Pages: %d • Seen: %d • Written: %d • Skipped: %d", stats.Pages, stats.Seen, stats.Written, stats.Skipped)
	if report != nil {
		if rerr := report.SendSummary(info, stats); rerr != nil {
			log.Warnf("⚠️ Failed to send summary to Telegram: %v", rerr)
		}
	}
	return nil
}

// scrape wires the browser and sinks and runs one scraper. The scraper owns
// both once it is constructed.
func scrape(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (scraper.RunStats, error) {
	csvSink, err := sink.OpenCSV(cfg.OutputPath)
	if err != nil {
		return scraper.RunStats{}, err
	}
	var out scraper.Sink = csvSink
	log.Infof("📁 Appending rows to %s", csvSink.Path())

	if cfg.DatabaseURL != "" {
		pg, err := sink.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warnf("⚠️ Postgres mirror disabled: %v", err)
		} else {
			log.Info("🗄️ Mirroring rows to Postgres")
			out = &sink.Mirror{Primary: csvSink, Secondary: pg, Log: log}
		}
	}

	pm, err := browser.NewPlaywright(browser.Options{
		Headless:          cfg.Headless,
		ActionTimeout:     cfg.PaneTimeout,
		NavigationTimeout: cfg.PageTimeout,
	})
	if err != nil {
		out.Close()
		return scraper.RunStats{}, err
	}
	driver, err := pm.NewDriver()
	if err != nil {
		pm.Close()
		out.Close()
		return scraper.RunStats{}, err
	}
	log.Info("✅ Browser initialized successfully!")

	opts := []linkedin.Option{}
	if cfg.ScreenshotsDir != "" {
		shots, err := browser.NewScreenShotDebugger(cfg.ScreenshotsDir, driver, log)
		if err != nil {
			log.Warnf("⚠️ Screenshots disabled: %v", err)
		} else {
			opts = append(opts, linkedin.WithScreenshots(shots))
		}
	}

	s := linkedin.NewLinkedInScraper(cfg, driver, out, log, opts...)
	log.Infof("▶️ Starting scraper: %s", s.Name())
	return s.Run(ctx)
}
