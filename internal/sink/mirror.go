package sink

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go-linkedin-scraper/internal/scraper"
)

// Mirror writes every record to Primary and then to Secondary. Only a
// Primary failure is returned; Secondary failures are logged as warnings.
type Mirror struct {
	Primary   scraper.Sink
	Secondary scraper.Sink
	Log       *zap.SugaredLogger
}

func (m *Mirror) Write(ctx context.Context, rec scraper.Record) error {
	if err := m.Primary.Write(ctx, rec); err != nil {
		return err
	}
	if err := m.Secondary.Write(ctx, rec); err != nil {
		m.Log.Warnf("⚠️ Mirror write failed for %s: %v", rec.JobLink, err)
	}
	return nil
}

func (m *Mirror) Close() error {
	return errors.Join(m.Primary.Close(), m.Secondary.Close())
}
