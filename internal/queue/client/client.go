package client

import (
	"github.com/hibiken/asynq"

	"github.com/vibe-gaming/waitlist/internal/config"
	"github.com/vibe-gaming/waitlist/internal/queue/asynqserver"
)

// New returns a task client connected to the same redis the worker
// server consumes from.
func New(cfg config.Cache) *asynq.Client {
	return asynq.NewClient(asynqserver.RedisOptions(cfg))
}
