package jobs

import (
	"context"
	"log/slog"

	portssvc "github.com/omnibuskit/price_history_app/internal/core/ports/services"
)

// RetentionJob deletes price history records older than the configured
// retention window. It is fire-and-forget: a failed run is logged and the next
// scheduled run proceeds independently, with no retry and no carried state.
type RetentionJob struct {
	service       portssvc.PriceHistoryWriterSvc
	retentionDays int
	logger        *slog.Logger
}

// NewRetentionJob creates a retention job bound to a fixed retention window.
func NewRetentionJob(service portssvc.PriceHistoryWriterSvc, retentionDays int, logger *slog.Logger) *RetentionJob {
	return &RetentionJob{
		service:       service,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Run performs one cleanup pass. Re-running with the same clock simply finds
// fewer or no qualifying records.
func (j *RetentionJob) Run(ctx context.Context) {
	deleted, err := j.service.CleanupOldRecords(ctx, j.retentionDays)
	if err != nil {
		j.logger.Error("Price history cleanup job failed",
			slog.Int("retention_days", j.retentionDays),
			slog.String("error", err.Error()),
		)
		return
	}
	j.logger.Info("Price history cleanup job completed",
		slog.Int64("deleted_count", deleted),
		slog.Int("retention_days", j.retentionDays),
	)
}
