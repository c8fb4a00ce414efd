package main

import (
	"fmt"
	"log"
	"time"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/logger"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	pm, err := browser.NewPlaywright(browser.Options{ActionTimeout: 10 * time.Second, NavigationTimeout: 30 * time.Second})
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	fmt.Println("✅ Playwright started")

	//closing the driver also stops playwright
	driver, err := pm.NewDriver()
	if err != nil {
		pm.Close()
		log.Fatalf("Failed to create page: %v", err)
	}
	defer driver.Close()

	fmt.Println("🔍 Navigating to LinkedIn login...")
	if err := driver.Navigate("https://www.linkedin.com/login"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}
	if _, err := driver.WaitFor("#username", 30*time.Second); err != nil {
		log.Fatalf("Login form did not render: %v", err)
	}
	fmt.Printf("✅ Login form found at %s\n", driver.URL())

	shots, err := browser.NewScreenShotDebugger("screenshots", driver, logger.New(logger.Config{Level: "info"}))
	if err != nil {
		log.Fatalf("Failed to prepare screenshots: %v", err)
	}
	shots.CaptureAndLog("login-page", "Browser smoke test")
	fmt.Println("✨ Test complete!")
}
