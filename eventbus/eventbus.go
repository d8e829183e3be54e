package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event는 관리자 활동 스트림에 발행되는 메시지 페이로드입니다.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	ActorID    int64           `json:"actor_id"`
	EntityID   int64           `json:"entity_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent builds an event with a fresh id and timestamp. The payload is
// marshaled here so publishers hand in plain structs.
func NewEvent(eventType string, actorID, entityID int64, payload any) (Event, error) {
	ev := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ActorID:    actorID,
		EntityID:   entityID,
		OccurredAt: time.Now(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		ev.Payload = data
	}
	return ev, nil
}

// EventBus 인터페이스는 이벤트 발행의 추상화를 정의합니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NoopBus discards events. Used when no brokers are configured so the
// admin API works in a single-node setup.
type NoopBus struct{}

func (NoopBus) Publish(context.Context, string, Event) error { return nil }
func (NoopBus) Close()                                       {}
