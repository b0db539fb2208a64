// Package delivery pushes finished roadmaps to the configured sinks: the
// CRM contact's custom field and the operator's inbox. Delivery is
// best-effort and side-effect only; every failure is logged and swallowed,
// and a missing configuration is a normal "feature disabled" state, not an
// error.
package delivery

import (
	"context"

	"golang.org/x/sync/errgroup"

	"roadmap_backend/internal/generation"
	"roadmap_backend/internal/roadmap"
	"roadmap_backend/platform/logger"
)

// CRMUpdater writes generated text to a CRM contact. Implemented by CRMClient.
type CRMUpdater interface {
	UpdateContactRoadmap(ctx context.Context, contactID, text string) error
}

// MailSender notifies the operator inbox. Implemented by SMTPSender.
type MailSender interface {
	SendRoadmapNotification(ctx context.Context, lead roadmap.LeadRecord, text, modelUsed string) error
}

// Dispatcher fans a generation result out to the active sinks. A nil sink
// is disabled; zero, one, or two sinks may fire per request.
type Dispatcher struct {
	crm  CRMUpdater
	mail MailSender
	log  *logger.Logger
}

// NewDispatcher creates a dispatcher. Pass nil for any sink that is not
// configured.
func NewDispatcher(crm CRMUpdater, mail MailSender, log *logger.Logger) *Dispatcher {
	return &Dispatcher{crm: crm, mail: mail, log: log}
}

// Deliver pushes the result to every active sink. The sinks are independent:
// they run concurrently and one failing never affects the other. Nothing is
// retried and nothing propagates to the caller.
func (d *Dispatcher) Deliver(ctx context.Context, processingID string, lead roadmap.LeadRecord, result generation.Result) {
	if result.Failed() {
		d.log.DeliverySkipped(processingID, "no generated text")
		return
	}

	var g errgroup.Group

	if d.crm != nil && lead.ContactID != "" {
		g.Go(func() error {
			if err := d.crm.UpdateContactRoadmap(ctx, lead.ContactID, result.Text); err != nil {
				d.log.SinkError(processingID, "crm", err)
				return err
			}
			d.log.Info("roadmap delivered to crm", "processing_id", processingID, "contact_id", lead.ContactID)
			return nil
		})
	}

	if d.mail != nil {
		g.Go(func() error {
			if err := d.mail.SendRoadmapNotification(ctx, lead, result.Text, result.ModelUsed); err != nil {
				d.log.SinkError(processingID, "email", err)
				return err
			}
			d.log.Info("roadmap delivered to operator inbox", "processing_id", processingID)
			return nil
		})
	}

	// Sink failures were already logged individually.
	_ = g.Wait()
}
