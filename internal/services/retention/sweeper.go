// Package retention removes uploaded PDFs once they are older than the
// configured retention. Notes and decks live on; only the source uploads go.
package retention

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Schedule runs the sweep at the top of every hour.
const Schedule = "@hourly"

// Sweeper periodically prunes files in Dir.
type Sweeper struct {
	Dir    string
	MaxAge time.Duration
	cron   *cron.Cron
}

// NewSweeper creates a sweeper for dir. It does nothing until Start.
func NewSweeper(dir string, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		Dir:    dir,
		MaxAge: maxAge,
		cron:   cron.New(),
	}
}

// Start schedules the sweep and runs one immediately.
func (s *Sweeper) Start() error {
	if s.MaxAge <= 0 {
		return fmt.Errorf("retention must be positive, got %v", s.MaxAge)
	}

	if _, err := s.cron.AddFunc(Schedule, s.run); err != nil {
		return fmt.Errorf("failed to schedule upload cleanup: %w", err)
	}
	s.cron.Start()
	log.Printf("🧹 Upload cleanup scheduled (%s, retention %v)", Schedule, s.MaxAge)

	go s.run()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) run() {
	removed, err := Prune(s.Dir, time.Now().Add(-s.MaxAge))
	if err != nil {
		log.Printf("⚠️  Upload cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("🧹 Removed %d upload(s) older than %v", removed, s.MaxAge)
	}
}

// Prune deletes regular files in dir last modified before cutoff and returns
// how many were removed. A missing dir is not an error.
func Prune(dir string, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				log.Printf("⚠️  Could not remove %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}
