package events

import (
	"context"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/core"
)

// TypedTopic provides type-safe publish/subscribe for events of type T.
// It wraps the event bus to ensure compile-time type safety.
// Unlike the ref-based Subscribe/Publish helpers, T does not need to
// implement Event itself - the topic supplies the routing ref.
type TypedTopic[T any] interface {
	// Subscribe registers a handler for events of type T.
	// Returns a subscription ID that can be used to unsubscribe.
	Subscribe(ctx context.Context, handler func(context.Context, T) error) (string, error)

	// Unsubscribe removes a handler using its subscription ID.
	// Returns an error if the ID is not found.
	Unsubscribe(ctx context.Context, id string) error

	// Publish sends an event to all subscribers.
	Publish(ctx context.Context, event T) error
}

// GetTopic returns a typed topic for the specified event type.
// This provides type-safe access to the event bus for a specific topic.
func GetTopic[T any](bus EventBus, topic Topic) TypedTopic[T] {
	return &typedTopic[T]{
		bus:   bus,
		topic: topic,
	}
}

// typedTopic is the implementation of TypedTopic[T].
type typedTopic[T any] struct {
	bus   EventBus
	topic Topic
}

// topicEvent wraps a plain payload so it can travel through the ref-routed bus.
type topicEvent[T any] struct {
	ref     *core.Ref
	payload T
	ctx     *EventContext
}

func (e *topicEvent[T]) EventRef() *core.Ref {
	return e.ref
}

func (e *topicEvent[T]) Context() *EventContext {
	if e.ctx == nil {
		e.ctx = NewEventContext()
	}
	return e.ctx
}

// topicRef builds the routing ref for a topic name. Topics are always
// valid ref values, so the error path only guards against future misuse.
func topicRef(topic Topic) *core.Ref {
	ref, err := core.NewRef(core.RefInput{
		Module: "topic",
		Type:   "event",
		Value:  string(topic),
	})
	if err != nil {
		return &core.Ref{Module: "topic", Type: "event", Value: string(topic)}
	}
	return ref
}

// Subscribe implements TypedTopic[T].
func (t *typedTopic[T]) Subscribe(_ context.Context, handler func(context.Context, T) error) (string, error) {
	wrapped := func(ctx context.Context, payload any) error {
		te, ok := payload.(*topicEvent[T])
		if !ok {
			return nil
		}
		return handler(ctx, te.payload)
	}
	return t.bus.Subscribe(topicRef(t.topic), wrapped)
}

// Unsubscribe implements TypedTopic[T].
func (t *typedTopic[T]) Unsubscribe(_ context.Context, id string) error {
	return t.bus.Unsubscribe(id)
}

// Publish implements TypedTopic[T].
func (t *typedTopic[T]) Publish(ctx context.Context, event T) error {
	return t.bus.PublishWithContext(ctx, &topicEvent[T]{
		ref:     topicRef(t.topic),
		payload: event,
	})
}
