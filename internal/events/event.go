// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"roadmap_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// LeadSnapshot carries the normalized lead fields an event needs downstream.
// ContactID and Email are empty when the payload did not resolve them;
// consumers must check before use.
type LeadSnapshot struct {
	FirstName string `json:"firstName"`
	Goal      string `json:"goal"`
	Stuck     string `json:"stuck"`
	Level     string `json:"level"`
	ContactID string `json:"contactId,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// RoadmapGenerated is published when the background generation attempt for a
// webhook request has finished, successfully or not. Delivery subscribes to
// this event; Source follows the generation provenance tags
// (primary, fallback, failed) and Text is empty on total failure.
type RoadmapGenerated struct {
	BaseEvent
	ProcessingID string       `json:"processingId"`
	Lead         LeadSnapshot `json:"lead"`
	Text         string       `json:"text,omitempty"`
	ModelUsed    string       `json:"modelUsed,omitempty"`
	Source       string       `json:"source"`
}

func (e RoadmapGenerated) EventName() string { return "roadmap.generated" }
