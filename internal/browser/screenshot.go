package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// ScreenShotDebugger handles debug screenshots
type ScreenShotDebugger struct {
	outputDir string
	driver    Driver
	log       *zap.SugaredLogger
}

func NewScreenShotDebugger(dir string, driver Driver, log *zap.SugaredLogger) (*ScreenShotDebugger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create screenshot directory: %w", err)
	}
	return &ScreenShotDebugger{outputDir: dir, driver: driver, log: log}, nil
}

// CaptureAndLog saves a full-page screenshot named after name and the
// current time. Failures are logged, not returned to the caller's flow.
func (s *ScreenShotDebugger) CaptureAndLog(name, message string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))
	s.log.Infof("📸 %s", message)

	if err := s.driver.Screenshot(path); err != nil {
		s.log.Warnf("⚠️ Failed to capture screenshot: %v", err)
		return ""
	}
	s.log.Infof("   Screenshot saved: %s", path)
	return path
}
