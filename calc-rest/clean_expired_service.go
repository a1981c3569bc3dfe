package main

import (
	"time"

	"github.com/tevino/abool/v2"
	"go.uber.org/zap"
)

const kCleanBatch = 2000

// Cleaner soft-deletes history rows whose retention has run out.
type Cleaner struct {
	store_   *Store
	logger_  *zap.Logger
	running_ *abool.AtomicBool
	now_     func() time.Time
}

func NewCleaner(store *Store, logger *zap.Logger) *Cleaner {
	return &Cleaner{store_: store, logger_: logger, running_: abool.New(), now_: time.Now}
}

// cleanTask runs one cleanup pass and returns the number of rows removed.
// A pass that starts while another is still running does nothing.
func (this *Cleaner) cleanTask() int {
	if !this.running_.SetToIf(false, true) {
		return 0
	}
	defer this.running_.UnSet()

	cleaned := 0
	for {
		expired, err := this.store_.FindExpiredWithLimit(this.now_(), kCleanBatch)
		if err != nil {
			this.logger_.Error("finding expired records failed", zap.Error(err))
			return cleaned
		}
		if len(expired) == 0 {
			break
		}
		ids := make([]int64, 0, len(expired))
		for _, rec := range expired {
			ids = append(ids, rec.ID)
		}
		if err := this.store_.DeleteRecords(ids); err != nil {
			this.logger_.Error("deleting expired records failed", zap.Error(err))
			return cleaned
		}
		cleaned += len(ids)
		if len(expired) < kCleanBatch {
			break
		}
	}
	if cleaned > 0 {
		cleanedRecords.Add(int64(cleaned))
		this.logger_.Info("cleaned expired records", zap.Int("count", cleaned))
	}
	return cleaned
}
