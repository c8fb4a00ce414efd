package sink

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"go-linkedin-scraper/internal/scraper"
)

// ErrLocked is returned when another process holds the output file.
var ErrLocked = errors.New("output file is locked by another run")

// CSV appends records to a CSV file. The header is written only when the
// file did not exist at open time, so repeated runs accumulate rows.
type CSV struct {
	path string
	file *os.File
	w    *csv.Writer
	lock *flock.Flock
}

// OpenCSV opens path for appending, creating it and its directory as needed.
// An advisory lock on path+".lock" is held until Close.
func OpenCSV(path string) (*CSV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	s := &CSV{path: path, file: f, w: csv.NewWriter(f), lock: lock}
	if writeHeader {
		if err := s.writeRow(scraper.Columns); err != nil {
			s.Close()
			return nil, fmt.Errorf("could not write header: %w", err)
		}
	}
	return s, nil
}

// Write appends one row and syncs it to disk before returning.
func (s *CSV) Write(_ context.Context, rec scraper.Record) error {
	if s.file == nil {
		return os.ErrClosed
	}
	return s.writeRow(rec.Row())
}

func (s *CSV) writeRow(row []string) error {
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	return s.file.Sync()
}

func (s *CSV) Path() string { return s.path }

// Close releases the file and the lock. It is safe to call more than once.
func (s *CSV) Close() error {
	if s.file == nil {
		return nil
	}
	s.w.Flush()
	err := errors.Join(s.w.Error(), s.file.Close(), s.lock.Unlock())
	s.file = nil
	return err
}
