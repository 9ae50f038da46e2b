package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/waitlist/internal/queue/task"
)

type enqueuerMock struct {
	mock.Mock
}

func (m *enqueuerMock) EnqueueContext(ctx context.Context, t *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(t)
	return nil, args.Error(0)
}

func payloadOf(t *testing.T, tk *asynq.Task) task.SendEmail {
	t.Helper()
	var data task.SendEmail
	require.NoError(t, json.Unmarshal(tk.Payload(), &data))
	return data
}

func TestQueueNotifyVerification(t *testing.T) {
	m := new(enqueuerMock)
	m.On("EnqueueContext", mock.Anything).Return(nil).Once()

	require.NoError(t, NewQueue(m).NotifyVerification(context.Background(), "a@x.com", "tok"))

	tk := m.Calls[0].Arguments.Get(0).(*asynq.Task)
	assert.Equal(t, task.SendEmailTaskName, tk.Type())
	assert.Equal(t, task.SendEmail{Kind: task.EmailKindVerification, Email: "a@x.com", VerificationToken: "tok"}, payloadOf(t, tk))
}

func TestQueueNotifyWelcome(t *testing.T) {
	m := new(enqueuerMock)
	m.On("EnqueueContext", mock.Anything).Return(nil).Once()

	require.NoError(t, NewQueue(m).NotifyWelcome(context.Background(), "a@x.com", 4))

	tk := m.Calls[0].Arguments.Get(0).(*asynq.Task)
	assert.Equal(t, task.SendEmail{Kind: task.EmailKindWelcome, Email: "a@x.com", Position: 4}, payloadOf(t, tk))
}

func TestQueueEnqueueFailure(t *testing.T) {
	m := new(enqueuerMock)
	m.On("EnqueueContext", mock.Anything).Return(errors.New("redis down"))

	err := NewQueue(m).NotifyWelcome(context.Background(), "a@x.com", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}
