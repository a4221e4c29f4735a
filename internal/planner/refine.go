package planner

import (
	"fmt"
	"strings"

	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
)

// Alternative builds the alternative of the given mode for a bundle.
// Its id is alt_<mode>_<bundleID>, so repeated requests yield the same id.
func Alternative(bundleID string, m fixtures.Mode) (domain.Bundle, bool) {
	b, ok := fixtures.Alternative(m)
	if !ok {
		return domain.Bundle{}, false
	}
	b.ID = fmt.Sprintf("%s%s_%s", altPrefix, m, bundleID)
	return b, true
}

// intents map chat phrases to alternative modes, first match wins.
var intents = []struct {
	term string
	mode fixtures.Mode
}{
	{"cheaper", fixtures.ModeCheaper},
	{"eco", fixtures.ModeEco},
	{"accessib", fixtures.ModeAccessible},
	{"luxur", fixtures.ModeLuxury},
}

// Intent returns the alternative mode a chat message asks for.
func Intent(message string) (fixtures.Mode, bool) {
	msg := strings.ToLower(message)
	for _, in := range intents {
		if strings.Contains(msg, in.term) {
			return in.mode, true
		}
	}
	return "", false
}

var replies = map[fixtures.Mode]string{
	fixtures.ModeCheaper:    "Added a budget-friendly alternative.",
	fixtures.ModeEco:        "Added an eco-conscious alternative.",
	fixtures.ModeAccessible: "Added an alternative with accessible accommodation.",
	fixtures.ModeLuxury:     "Added a luxury upgrade.",
}

const noMatchReply = "I can suggest cheaper, eco-friendly, accessible or luxury alternatives. Try one of those."

const altPrefix = "alt_"

// base picks the bundle alternatives hang off: the first one that is not
// itself an alternative, else the first one.
func base(current []domain.Bundle) domain.Bundle {
	for _, b := range current {
		if !strings.HasPrefix(b.ID, altPrefix) {
			return b
		}
	}
	return current[0]
}

// Refine applies a chat message to the current bundle list. A recognised
// request prepends the matching alternative unless it is already listed.
func Refine(message string, current []domain.Bundle) domain.RefineResult {
	out := domain.CloneAll(current)
	m, ok := Intent(message)
	if !ok || len(current) == 0 {
		return domain.RefineResult{Bundles: out, Reply: noMatchReply}
	}
	alt, _ := Alternative(base(current).ID, m)
	for _, b := range current {
		if b.ID == alt.ID {
			return domain.RefineResult{Bundles: out, Mode: string(m), Reply: "That alternative is already in your list."}
		}
	}
	return domain.RefineResult{
		Bundles: append([]domain.Bundle{alt}, out...),
		Mode:    string(m),
		Reply:   replies[m],
	}
}

// ParseAlternativeID splits alt_<mode>_<bundleID> back into its parts.
func ParseAlternativeID(id string) (bundleID string, m fixtures.Mode, ok bool) {
	rest, ok := strings.CutPrefix(id, altPrefix)
	if !ok {
		return "", "", false
	}
	mode, bundleID, ok := strings.Cut(rest, "_")
	if !ok || bundleID == "" {
		return "", "", false
	}
	m, ok = fixtures.ParseMode(mode)
	if !ok {
		return "", "", false
	}
	return bundleID, m, true
}
