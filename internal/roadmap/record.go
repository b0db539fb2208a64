// Package roadmap implements the request-to-delivery pipeline for inbound
// lead webhooks: payload normalization, tier-based model selection, prompt
// construction, and the webhook endpoint that acknowledges the CRM before
// generation starts.
package roadmap

import "roadmap_backend/internal/events"

// LeadRecord is the canonical, request-scoped view of an inbound lead.
// Every field is resolved to a non-empty value by Normalize except
// ContactID, Email, and Phone, which stay empty when the payload carried
// nothing usable; downstream consumers must check before use.
type LeadRecord struct {
	FirstName string
	Goal      string
	Stuck     string
	Level     string
	ContactID string
	Email     string
	Phone     string
}

// Snapshot flattens the record for event payloads.
func (r LeadRecord) Snapshot() events.LeadSnapshot {
	return events.LeadSnapshot{
		FirstName: r.FirstName,
		Goal:      r.Goal,
		Stuck:     r.Stuck,
		Level:     r.Level,
		ContactID: r.ContactID,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// FromSnapshot rebuilds a LeadRecord from an event payload.
func FromSnapshot(s events.LeadSnapshot) LeadRecord {
	return LeadRecord{
		FirstName: s.FirstName,
		Goal:      s.Goal,
		Stuck:     s.Stuck,
		Level:     s.Level,
		ContactID: s.ContactID,
		Email:     s.Email,
		Phone:     s.Phone,
	}
}
