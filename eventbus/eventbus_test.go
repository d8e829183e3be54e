package eventbus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEventFillsIdentityFields(t *testing.T) {
	ev, err := NewEvent(EventPostPublished, 7, 42, map[string]string{"title": "hello"})
	assert.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, EventPostPublished, ev.Type)
	assert.Equal(t, int64(7), ev.ActorID)
	assert.Equal(t, int64(42), ev.EntityID)
	assert.False(t, ev.OccurredAt.IsZero())

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, "hello", payload["title"])
}

func TestNewEventNilPayload(t *testing.T) {
	ev, err := NewEvent(EventUserDeleted, 1, 2, nil)
	assert.NoError(t, err)
	assert.Nil(t, ev.Payload)
}

func TestNoopBusPublishes(t *testing.T) {
	var bus EventBus = NoopBus{}
	err := bus.Publish(context.Background(), TopicAdminActivity, Event{})
	assert.NoError(t, err)
	bus.Close()
}
