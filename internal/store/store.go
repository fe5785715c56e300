// Package store keeps the most recent consolidated report in memory.
package store

import (
	"sync"

	"fjacquet/saldo-xlsx/internal/logging"
	"fjacquet/saldo-xlsx/internal/models"
)

// ReportStore holds the report produced by the latest processing run. Each
// run replaces the previous report wholesale; there is no history.
type ReportStore struct {
	mu      sync.RWMutex
	current *models.Report
	logger  logging.Logger
}

// NewReportStore creates an empty ReportStore.
func NewReportStore(logger logging.Logger) *ReportStore {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &ReportStore{logger: logger}
}

// Replace swaps in the report from a new run, discarding the previous one.
func (s *ReportStore) Replace(rep *models.Report) {
	s.mu.Lock()
	s.current = rep
	s.mu.Unlock()

	if rep != nil {
		s.logger.Info("Stored report from new run",
			logging.Field{Key: logging.FieldRunID, Value: rep.RunID},
			logging.Field{Key: logging.FieldRows, Value: len(rep.Rows)})
	}
}

// Current returns the report from the latest run, or nil when no run has
// completed yet.
func (s *ReportStore) Current() *models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
