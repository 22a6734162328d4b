package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/observability"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/textnorm"
)

// ErrInactive is returned by Handle when no booking is in progress.
var ErrInactive = errors.New("no booking in progress")

// Ledger persists completed bookings.
type Ledger interface {
	Append(ctx context.Context, r Record) error
}

const (
	promptDestination = "Sure! Which destination would you like to book?"
	retryDestination  = "Sorry, no package for that destination. Please enter another:"
	promptMembers     = "Great! How many travellers?"
	retryMembers      = "Please enter a valid number of travellers:"
	retrySave         = "Sorry, we couldn't save your booking. Please enter the number of travellers again:"
)

// Outcome is the result of one booking turn.
type Outcome struct {
	Reply string
	// Record is set when the turn completed a booking.
	Record *Record
}

// Completed reports whether the turn finished the booking.
func (o Outcome) Completed() bool {
	return o.Record != nil
}

// Config holds dialogue settings.
type Config struct {
	CurrencySymbol string
}

// Dialogue drives State transitions against a fixed package list.
type Dialogue struct {
	packages []catalog.Package
	ledger   Ledger
	currency string
	logger   *observability.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewDialogue creates a booking dialogue.
func NewDialogue(packages []catalog.Package, ledger Ledger, cfg Config, logger *observability.Logger) *Dialogue {
	if logger == nil {
		logger = observability.Nop()
	}
	currency := cfg.CurrencySymbol
	if currency == "" {
		currency = "₹"
	}
	return &Dialogue{
		packages: packages,
		ledger:   ledger,
		currency: currency,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Start enters the dialogue and asks for a destination.
func (d *Dialogue) Start() (State, string) {
	return awaitingDestination(), promptDestination
}

// Handle advances s with one line of user input.
// A ledger failure leaves s unchanged and is returned alongside a retry reply.
func (d *Dialogue) Handle(ctx context.Context, s State, input string) (State, Outcome, error) {
	text := textnorm.Normalize(input)

	switch s.Step() {
	case StepAwaitingDestination:
		p, ok := d.matchDestination(text)
		if !ok {
			return s, Outcome{Reply: retryDestination}, nil
		}
		d.logger.Debug().Str("destination", p.Destination).Msg("destination selected")
		return awaitingMembers(p), Outcome{Reply: promptMembers}, nil

	case StepAwaitingMembers:
		members, err := strconv.Atoi(text)
		if err != nil {
			return s, Outcome{Reply: retryMembers}, nil
		}
		total, ok := totalPrice(members, s.selected.Price)
		if !ok {
			d.logger.Debug().Str("members", text).Msg("traveller count overflows total price")
			return s, Outcome{Reply: retryMembers}, nil
		}
		next, out, err := d.complete(ctx, s, members, total)
		d.logger.Debug().Bool("completed", out.Completed()).Msg("members step handled")
		return next, out, err

	default:
		return s, Outcome{}, ErrInactive
	}
}

// matchDestination returns the first package, in catalog order, whose
// destination contains text. Blank input never matches.
func (d *Dialogue) matchDestination(text string) (catalog.Package, bool) {
	if text == "" {
		return catalog.Package{}, false
	}
	for _, p := range d.packages {
		if strings.Contains(strings.ToLower(p.Destination), text) {
			return p, true
		}
	}
	return catalog.Package{}, false
}

// totalPrice multiplies members by price and reports false when the
// product does not fit in an int.
func totalPrice(members, price int) (int, bool) {
	if members == 0 || price == 0 {
		return 0, true
	}
	if (members == -1 && price == math.MinInt) || (price == -1 && members == math.MinInt) {
		return 0, false
	}
	total := members * price
	if total/members != price {
		return 0, false
	}
	return total, true
}

func (d *Dialogue) complete(ctx context.Context, s State, members, total int) (State, Outcome, error) {
	p := s.selected
	rec := Record{
		ID:          d.newID(),
		Category:    p.Category,
		Destination: p.Destination,
		Description: p.Description,
		Price:       p.Price,
		Members:     members,
		TotalPrice:  total,
		BookedAt:    d.now().UTC(),
	}

	if err := d.ledger.Append(ctx, rec); err != nil {
		return s, Outcome{Reply: retrySave}, fmt.Errorf("append booking: %w", err)
	}

	d.logger.Info().
		Str("booking_id", rec.ID.String()).
		Str("destination", rec.Destination).
		Int("members", rec.Members).
		Int("total_price", rec.TotalPrice).
		Msg("booking confirmed")

	reply := fmt.Sprintf("Booking confirmed for %d traveller(s) to %s. Total price: %s%d. Thank you!",
		rec.Members, rec.Destination, d.currency, rec.TotalPrice)
	return State{}, Outcome{Reply: reply, Record: &rec}, nil
}
