package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHolderRequired    = errors.New("holder name must not be empty")
	ErrContactRequired   = errors.New("contact must not be empty")
	ErrNegativePartySize = errors.New("party counts cannot be negative")
)

// Reservation is one booked interval on the calendar. A reservation with
// the closure-marker flag set represents a full or partial day closure
// (a holiday) rather than a customer booking.
type Reservation struct {
	id          uuid.UUID
	slot        Slot
	holderName  string
	contact     string
	adults      int
	children    int
	notes       *string
	plan        *string
	isClosure   bool
	closureName *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	slot Slot,
	holderName, contact string,
	adults, children int,
	notes, plan *string,
	isClosure bool,
	closureName *string,
) (*Reservation, error) {
	r := &Reservation{id: uuid.New(), slot: slot}
	if err := r.revise(slot, holderName, contact, adults, children, notes, plan, isClosure, closureName); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructReservation(
	id uuid.UUID,
	slot Slot,
	holderName, contact string,
	adults, children int,
	notes, plan *string,
	isClosure bool,
	closureName *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		slot:        slot,
		holderName:  holderName,
		contact:     contact,
		adults:      adults,
		children:    children,
		notes:       notes,
		plan:        plan,
		isClosure:   isClosure,
		closureName: closureName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Revise replaces the reservation's fields with the effective values of a
// partial update. The caller resolves unset patch fields to the current
// values before calling.
func (r *Reservation) Revise(
	slot Slot,
	holderName, contact string,
	adults, children int,
	notes, plan *string,
	isClosure bool,
	closureName *string,
) error {
	return r.revise(slot, holderName, contact, adults, children, notes, plan, isClosure, closureName)
}

// AbsorbClosure overwrites this closure marker with a newer closure request
// for an overlapping interval, keeping a single closure row per day.
func (r *Reservation) AbsorbClosure(slot Slot, name *string) {
	r.slot = slot
	if name != nil {
		r.closureName = name
	}
}

func (r *Reservation) revise(
	slot Slot,
	holderName, contact string,
	adults, children int,
	notes, plan *string,
	isClosure bool,
	closureName *string,
) error {
	if holderName == "" {
		return ErrHolderRequired
	}
	if contact == "" {
		return ErrContactRequired
	}
	if adults < 0 || children < 0 {
		return ErrNegativePartySize
	}

	r.slot = slot
	r.holderName = holderName
	r.contact = contact
	r.adults = adults
	r.children = children
	r.notes = notes
	r.plan = plan
	r.isClosure = isClosure
	r.closureName = closureName
	if !isClosure {
		r.closureName = nil
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) HolderName() string   { return r.holderName }
func (r *Reservation) Contact() string      { return r.contact }
func (r *Reservation) Adults() int          { return r.adults }
func (r *Reservation) Children() int        { return r.children }
func (r *Reservation) Notes() *string       { return r.notes }
func (r *Reservation) Plan() *string        { return r.plan }
func (r *Reservation) IsClosure() bool      { return r.isClosure }
func (r *Reservation) ClosureName() *string { return r.closureName }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
