package booking

import (
	"math/rand/v2"

	"github.com/KingCastle/Javan/internal/pkg/errs"
)

const (
	MinTicket = 1000
	MaxTicket = 9999
)

var ErrInvalidTicket = errs.New("ticket code must be a 4-digit number")

type Ticket int

func NewTicket(v int) (Ticket, error) {
	if v < MinTicket || v > MaxTicket {
		return 0, ErrInvalidTicket
	}
	return Ticket(v), nil
}

func (t Ticket) Int() int { return int(t) }

type TicketGenerator interface {
	Next() Ticket
}

// Codes are display artifacts, not secrets; uniqueness among active bookings
// of an event is enforced by the store.
type RandomTicketGenerator struct{}

func NewRandomTicketGenerator() *RandomTicketGenerator {
	return &RandomTicketGenerator{}
}

func (g *RandomTicketGenerator) Next() Ticket {
	// #nosec G404 -- non-cryptographic display code
	return Ticket(MinTicket + rand.IntN(MaxTicket-MinTicket+1))
}
