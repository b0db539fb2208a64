package roadmap

import (
	"strconv"
	"strings"

	"roadmap_backend/platform/phone"
)

const (
	defaultFirstName = "friend"
	defaultGoal      = "get results"
	defaultLevel     = "free"
)

// The intake form question keys arrive with either a typographic (U+2019) or
// an ASCII apostrophe depending on which integration forwarded the payload.
var (
	goalKeys  = []string{"What’s your biggest goal in life right now?", "What's your biggest goal in life right now?", "goal"}
	stuckKeys = []string{"What’s making you feel stuck right now?", "What's making you feel stuck right now?", "stuck"}

	contactObjectKeys = []string{"contact", "contactData", "contact_details", "contactRecord"}
	firstNameKeys     = []string{"first_name", "firstName", "full_name", "name"}
	levelKeys         = []string{"level", "plan", "package", "tier"}
	phoneKeys         = []string{"phone", "phone_number"}
)

// Normalize extracts a canonical LeadRecord from an unstructured webhook
// body. It never fails: every field has a deterministic fallback chain, and
// the same payload arrives with inconsistently named keys across CRM
// integrations, so each field probes an ordered key list and takes the
// first usable value.
func Normalize(body map[string]any) LeadRecord {
	if body == nil {
		body = map[string]any{}
	}

	contact := contactObject(body)

	firstName, ok := firstString(contact, firstNameKeys...)
	if !ok {
		firstName, ok = firstString(body, "first_name")
	}
	if !ok {
		firstName = defaultFirstName
	}

	goal, ok := firstString(body, goalKeys...)
	if !ok {
		goal = defaultGoal
	}

	stuck, _ := firstString(body, stuckKeys...)

	level, ok := firstString(body, levelKeys...)
	if !ok {
		level = defaultLevel
	}

	contactID, ok := firstString(body, "contact_id")
	if !ok {
		contactID, ok = firstString(contact, "id")
	}
	if !ok {
		contactID, _ = firstString(contact, "contact_id")
	}

	email, ok := firstString(body, "email")
	if !ok {
		email, ok = firstString(contact, "email")
	}
	if !ok {
		if details, found := asObject(body["contact_details"]); found {
			email, _ = firstString(details, "email")
		}
	}

	leadPhone, ok := firstString(contact, phoneKeys...)
	if !ok {
		leadPhone, _ = firstString(body, "phone")
	}
	if leadPhone != "" {
		leadPhone = phone.NormalizeE164(leadPhone)
	}

	return LeadRecord{
		FirstName: firstName,
		Goal:      goal,
		Stuck:     stuck,
		Level:     level,
		ContactID: contactID,
		Email:     email,
		Phone:     leadPhone,
	}
}

// contactObject returns the first contact sub-object present in the body,
// or the body itself when none of the known wrapper keys hold an object.
func contactObject(body map[string]any) map[string]any {
	for _, key := range contactObjectKeys {
		if obj, ok := asObject(body[key]); ok {
			return obj
		}
	}
	return body
}

// firstString probes keys in order and returns the first value that
// stringifies to something non-empty.
func firstString(obj map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		value, ok := obj[key]
		if !ok {
			continue
		}
		if s := stringify(value); s != "" {
			return s, true
		}
	}
	return "", false
}

func asObject(value any) (map[string]any, bool) {
	obj, ok := value.(map[string]any)
	return obj, ok
}

// stringify renders scalar JSON values; objects, arrays, and nulls yield "".
// Numeric contact IDs are common in CRM exports, so numbers are kept.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
