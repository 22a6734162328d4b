// Package booking implements the multi-turn booking dialogue: pick a
// destination, give a traveller count, get a priced reservation recorded.
package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
)

// Step is the booking dialogue's position.
type Step string

const (
	StepNone                Step = "none"
	StepAwaitingDestination Step = "awaiting_destination"
	StepAwaitingMembers     Step = "awaiting_members"
)

// State is one conversation's booking progress. The zero value is StepNone.
// States are values: transitions return a new State and never mutate the old one.
type State struct {
	step     Step
	selected catalog.Package
}

// Step returns the current step.
func (s State) Step() Step {
	if s.step == "" {
		return StepNone
	}
	return s.step
}

// Active reports whether a booking is in progress.
func (s State) Active() bool {
	return s.Step() != StepNone
}

// SelectedPackage returns the chosen package once a destination has matched.
func (s State) SelectedPackage() (catalog.Package, bool) {
	if s.Step() != StepAwaitingMembers {
		return catalog.Package{}, false
	}
	return s.selected, true
}

func awaitingDestination() State {
	return State{step: StepAwaitingDestination}
}

func awaitingMembers(p catalog.Package) State {
	return State{step: StepAwaitingMembers, selected: p}
}

// Record is a completed booking as written to the ledger.
type Record struct {
	ID          uuid.UUID
	Category    string
	Destination string
	Description string
	Price       int
	Members     int
	TotalPrice  int
	BookedAt    time.Time
}

// Package returns the package snapshot the record was priced from.
func (r Record) Package() catalog.Package {
	return catalog.Package{
		Category:    r.Category,
		Destination: r.Destination,
		Description: r.Description,
		Price:       r.Price,
	}
}
