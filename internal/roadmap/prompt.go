package roadmap

import "fmt"

// SystemPrompt is the fixed persona and style specification for the roadmap
// writer. It is sent as the system message of every generation request.
func SystemPrompt() string {
	return `You are an expert transformation coach who writes concise, clear, highly practical roadmaps.

Voice and style rules:
- Warm, confident, and encouraging. Speak directly to the reader by name.
- Short sentences. No filler, no corporate speak.
- At most 3 emojis in the whole message, and bold text only for the goal labels.
- Never mention that you are an AI or that this text was generated.`
}

// BuildPrompt renders the user prompt for a lead. Field values are
// interpolated verbatim; the downstream consumer is a generation API, not a
// renderer, so no escaping is applied.
func BuildPrompt(lead LeadRecord) string {
	return fmt.Sprintf(`User name: %s
Main goal: %s
Current struggle: %s
Plan: %s

Write a short, punchy 30-day roadmap email they'll receive immediately after filling out the form.

Requirements:
- Open with one warm sentence addressed to them by name.
- Exactly 3 labeled goals (Goal 1, Goal 2, Goal 3), each with a bold one-line label and 2-3 bullet sub-actions.
- Each goal has a rough time frame within the 30 days.
- Acknowledge what is making them feel stuck, without dwelling on it.
- End with a single call-to-action line inviting them to reply or book a call.`,
		lead.FirstName, lead.Goal, lead.Stuck, lead.Level)
}
