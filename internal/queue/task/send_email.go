package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendEmailTaskName  = "sendEmailTask"
	SendEmailQueueName = "sendEmailQueue"

	sendEmailMaxRetry = 5
)

type EmailKind string

const (
	EmailKindVerification EmailKind = "verification"
	EmailKindWelcome      EmailKind = "welcome"
)

type SendEmail struct {
	Kind              EmailKind `json:"kind"`
	Email             string    `json:"email"`
	VerificationToken string    `json:"verification_token,omitempty"`
	Position          int       `json:"position,omitempty"`
}

func NewSendEmailTask(data SendEmail) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendEmailTaskName,
		payload,
		asynq.MaxRetry(sendEmailMaxRetry),
		asynq.Queue(SendEmailQueueName),
	), nil
}
