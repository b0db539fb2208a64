package delivery

import (
	"context"

	"roadmap_backend/internal/events"
	"roadmap_backend/internal/generation"
	"roadmap_backend/internal/roadmap"
	"roadmap_backend/platform/logger"
)

// Module is the delivery bounded context. It is not HTTP-facing: it
// subscribes to domain events and pushes results to the configured sinks.
type Module struct {
	dispatcher *Dispatcher
}

// NewModule creates the delivery module. Either sink may be nil (disabled).
func NewModule(crm CRMUpdater, mail MailSender, log *logger.Logger) *Module {
	return &Module{
		dispatcher: NewDispatcher(crm, mail, log),
	}
}

// Dispatcher exposes the dispatcher for composition-root wiring and tests.
func (m *Module) Dispatcher() *Dispatcher {
	return m.dispatcher
}

// RegisterHandlers subscribes delivery to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.RoadmapGenerated{}.EventName(), events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		evt, ok := e.(events.RoadmapGenerated)
		if !ok {
			return nil
		}
		m.dispatcher.Deliver(ctx, evt.ProcessingID, roadmap.FromSnapshot(evt.Lead), generation.Result{
			Text:      evt.Text,
			ModelUsed: evt.ModelUsed,
			Source:    generation.Source(evt.Source),
		})
		return nil
	}))
}
