package main

import (
	"fmt"
	"log"
	"os"

	"go-linkedin-scraper/internal/config"
)

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

func main() {
	fmt.Println("🔧 Testing config loading...")
	path := config.DefaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if err := cfg.Prepare(); err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}

	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Username: %s\n", mask(cfg.Username))
	fmt.Printf("   Keyword: %s\n", cfg.Keyword)
	fmt.Printf("   Base URL: %s\n", cfg.BaseURL)
	fmt.Printf("   Output: %s\n", cfg.OutputPath)
	fmt.Printf("   Timeouts: page %s, pane %s\n", cfg.PageTimeout, cfg.PaneTimeout)
	fmt.Printf("   Headless: %t\n", cfg.Headless)
	fmt.Printf("   Postgres mirror: %t\n", cfg.DatabaseURL != "")
	fmt.Printf("   Telegram report: %t\n", cfg.ReportEnabled())
}
