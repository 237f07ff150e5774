package event

import (
	"context"
	"encoding/json"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
	"github.com/carebridge/eldercare-api/pkg/logger"
)

// Service enqueues care events for asynchronous publication. A failed
// enqueue is logged and swallowed: the feed is best-effort and must never
// fail the mutation that produced the event.
type Service struct {
	outbox repository.OutboxRepository
	log    *logger.Logger
}

func NewService(outbox repository.OutboxRepository, log *logger.Logger) *Service {
	return &Service{outbox: outbox, log: log}
}

func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) {
	if s == nil || s.outbox == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error(err, "failed to marshal care event", "event_type", eventType)
		return
	}

	evt := &model.OutboxEvent{EventType: eventType, Payload: data}
	if err := s.outbox.Create(ctx, evt); err != nil {
		s.log.Error(err, "failed to enqueue care event", "event_type", eventType)
	}
}
