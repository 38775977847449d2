package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultPendingBatch is the batch size used when draining pending
// notifications without an explicit limit.
const DefaultPendingBatch = 50

// DispatchSummary reports the outcome of one fan-out or drain run.
type DispatchSummary struct {
	Created int `json:"created"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// HistoryResult is one page of a user's notification history.
type HistoryResult struct {
	Items   []*entity.Notification `json:"items"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
}

// NotificationUsecase defines the interface for notification dispatch use cases.
type NotificationUsecase interface {
	// NotifyProfileEvent creates one pending notification per follower and
	// enabled channel, then attempts delivery inline. Individual delivery
	// failures are recorded on the notification and never returned as errors.
	NotifyProfileEvent(ctx context.Context, profile *entity.BusinessProfile, action entity.ProfileAction) (*DispatchSummary, error)

	// ProcessPending drains up to limit pending notifications through their
	// channel strategies. A limit below 1 selects DefaultPendingBatch.
	ProcessPending(ctx context.Context, limit int) (*DispatchSummary, error)

	// GetHistory retrieves a page of the user's notifications, newest first.
	GetHistory(ctx context.Context, userID uuid.UUID, page, pageSize int) (*HistoryResult, error)
}
