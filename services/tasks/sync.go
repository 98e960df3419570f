package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeShootSync = "sync:shoots"

// ShootSyncPayload carries the service identity the sync runs under.
type ShootSyncPayload struct {
	RequestedBy string `json:"requestedBy"`
	EnqueuedAt  string `json:"enqueuedAt"`
}

// NewShootSyncTask builds a poll-sync task that re-fetches the shoot list
// from the remote authority.
func NewShootSyncTask(requestedBy string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ShootSyncPayload{
		RequestedBy: requestedBy,
		EnqueuedAt:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeShootSync, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
