package services

import (
	"context"
	"errors"
	"sync"

	"keyforest/internal/events"
)

// Notifier publishes status and store change events to the webview.
type Notifier interface {
	Status(status events.Status) error
	StoreChanged(file string) error
}

type EventEmitterService struct {
	context context.Context
	mu      sync.Mutex
}

func (e *EventEmitterService) Startup(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.context = ctx
}

func NewEventEmitterService() *EventEmitterService {
	return &EventEmitterService{}
}

func (e *EventEmitterService) ctx() (context.Context, error) {
	if e == nil {
		return nil, errors.New("the event emitter is not initialized")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.context == nil {
		return nil, errors.New("the event emitter is not initialized")
	}
	return e.context, nil
}

func (e *EventEmitterService) Status(status events.Status) error {
	ctx, err := e.ctx()
	if err != nil {
		return err
	}
	events.Emit(ctx, events.StatusEvent, status)
	return nil
}

func (e *EventEmitterService) StoreChanged(file string) error {
	ctx, err := e.ctx()
	if err != nil {
		return err
	}
	events.Emit(ctx, events.StoreChanged, events.NewStoreChange(file))
	return nil
}
