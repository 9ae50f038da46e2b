// Package notifier hands waiting list emails to the delivery mechanism
// selected by configuration.
package notifier

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/vibe-gaming/waitlist/internal/queue/task"
	"github.com/vibe-gaming/waitlist/internal/worker"
)

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Queue schedules emails as background tasks. Delivery happens in the
// worker server with bounded retries; callers only wait for the enqueue.
type Queue struct {
	client Enqueuer
}

func NewQueue(client Enqueuer) *Queue {
	return &Queue{client: client}
}

func (q *Queue) NotifyVerification(ctx context.Context, email string, verificationToken string) error {
	return q.enqueue(ctx, task.SendEmail{
		Kind:              task.EmailKindVerification,
		Email:             email,
		VerificationToken: verificationToken,
	})
}

func (q *Queue) NotifyWelcome(ctx context.Context, email string, position int) error {
	return q.enqueue(ctx, task.SendEmail{
		Kind:     task.EmailKindWelcome,
		Email:    email,
		Position: position,
	})
}

func (q *Queue) enqueue(ctx context.Context, data task.SendEmail) error {
	t, err := task.NewSendEmailTask(data)
	if err != nil {
		return fmt.Errorf("create send email task failed: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue %s email failed: %w", data.Kind, err)
	}
	return nil
}

// Direct renders and sends emails within the calling request.
type Direct struct {
	sender worker.EmailSender
}

func NewDirect(sender worker.EmailSender) *Direct {
	return &Direct{sender: sender}
}

func (d *Direct) NotifyVerification(ctx context.Context, email string, verificationToken string) error {
	return d.sender.SendVerificationEmail(ctx, email, verificationToken)
}

func (d *Direct) NotifyWelcome(ctx context.Context, email string, position int) error {
	return d.sender.SendWelcomeEmail(ctx, email, position)
}
