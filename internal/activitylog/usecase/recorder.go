// Package usecase holds the audit trail writer used by every mutating command.
package usecase

import (
	"context"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// Recorder appends audit entries synchronously, after the audited write has committed.
// A failed append is logged and dropped; the audited write is never rolled back.
type Recorder struct {
	repo domain.ActivityLogRepository
}

// NewRecorder creates a new recorder
func NewRecorder(repo domain.ActivityLogRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record stamps the acting user and appends the entry
func (r *Recorder) Record(ctx context.Context, entry *domain.ActivityLog) {
	if entry.User == "" {
		entry.User = auth.ActorFromContext(ctx)
	}
	if entry.User == "" {
		entry.User = domain.DefaultUser
	}

	if err := r.repo.Append(ctx, entry); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("action", string(entry.Action)).
			Str("entity_type", string(entry.EntityType)).
			Str("entity_id", entry.EntityID).
			Msg("Failed to record activity")
		return
	}

	logger.Debug(ctx).
		Str("action", string(entry.Action)).
		Str("entity_id", entry.EntityID).
		Str("user", entry.User).
		Msg("Activity recorded")
}
