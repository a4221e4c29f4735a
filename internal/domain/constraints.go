package domain

import "fmt"

type BudgetTier string

const (
	BudgetTierNone     BudgetTier = ""
	BudgetTierBudget   BudgetTier = "budget"
	BudgetTierMidRange BudgetTier = "mid-range"
	BudgetTierLuxury   BudgetTier = "luxury"
)

// Band edges in whole USD per person.
const (
	BudgetCeiling   = 1200
	MidRangeCeiling = 2000
)

func (t BudgetTier) Valid() bool {
	switch t {
	case BudgetTierNone, BudgetTierBudget, BudgetTierMidRange, BudgetTierLuxury:
		return true
	}
	return false
}

// Contains reports whether a per-person price falls in the tier's band.
// The empty tier contains every price.
func (t BudgetTier) Contains(pricePP int) bool {
	switch t {
	case BudgetTierBudget:
		return pricePP < BudgetCeiling
	case BudgetTierMidRange:
		return pricePP >= BudgetCeiling && pricePP <= MidRangeCeiling
	case BudgetTierLuxury:
		return pricePP > MidRangeCeiling
	default:
		return true
	}
}

type TravelStyle string

const (
	StyleRelaxed   TravelStyle = "relaxed"
	StyleActive    TravelStyle = "active"
	StyleCultural  TravelStyle = "cultural"
	StyleAdventure TravelStyle = "adventure"
)

func (s TravelStyle) Valid() bool {
	switch s {
	case "", StyleRelaxed, StyleActive, StyleCultural, StyleAdventure:
		return true
	}
	return false
}

// PlanningConstraints are user preferences. Only Budget, Accessibility and
// EcoFriendly narrow the candidate list; the rest are carried for display.
type PlanningConstraints struct {
	Budget              BudgetTier  `json:"budget,omitempty" yaml:"budget,omitempty"`
	TravelStyle         TravelStyle `json:"travelStyle,omitempty" yaml:"travelStyle,omitempty"`
	Accessibility       bool        `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`
	EcoFriendly         bool        `json:"ecoFriendly,omitempty" yaml:"ecoFriendly,omitempty"`
	GroupSize           int         `json:"groupSize,omitempty" yaml:"groupSize,omitempty"`
	Duration            string      `json:"duration,omitempty" yaml:"duration,omitempty"`
	Interests           []string    `json:"interests,omitempty" yaml:"interests,omitempty"`
	DietaryRestrictions []string    `json:"dietaryRestrictions,omitempty" yaml:"dietaryRestrictions,omitempty"`
}

func (c PlanningConstraints) Validate() error {
	if !c.Budget.Valid() {
		return fmt.Errorf("%w: unknown budget tier %q", ErrValidation, c.Budget)
	}
	if !c.TravelStyle.Valid() {
		return fmt.Errorf("%w: unknown travel style %q", ErrValidation, c.TravelStyle)
	}
	if c.GroupSize < 0 {
		return fmt.Errorf("%w: group size must not be negative", ErrValidation)
	}
	return nil
}
