package roadmap

import "strings"

// entryKeywords are the plan labels that route to the entry-tier model.
// Matching is a case-insensitive substring test, so "Level 1 - Spark"
// and "LEVEL 1" both qualify.
var entryKeywords = []string{"level 1", "level 2", "spark", "breakthrough", "300", "900", "free"}

// ModelSelector maps a free-text plan/tier label to a generation model.
type ModelSelector struct {
	entryModel       string
	premiumModel     string
	defaultToPremium bool
}

// NewModelSelector creates a selector. defaultToPremium controls where
// unmatched labels (including the empty string) route; the historical
// behavior routes them to the premium model.
func NewModelSelector(entryModel, premiumModel string, defaultToPremium bool) *ModelSelector {
	return &ModelSelector{
		entryModel:       entryModel,
		premiumModel:     premiumModel,
		defaultToPremium: defaultToPremium,
	}
}

// EntryModel returns the entry-tier model identifier, which doubles as the
// generation fallback model.
func (s *ModelSelector) EntryModel() string {
	return s.entryModel
}

// ChooseModel is total over all string inputs: every label maps to exactly
// one of the two configured model identifiers.
func (s *ModelSelector) ChooseModel(level string) string {
	normalized := strings.ToLower(level)
	for _, keyword := range entryKeywords {
		if strings.Contains(normalized, keyword) {
			return s.entryModel
		}
	}
	if s.defaultToPremium {
		return s.premiumModel
	}
	return s.entryModel
}
