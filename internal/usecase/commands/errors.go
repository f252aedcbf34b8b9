package commands

import "github.com/KingCastle/Javan/internal/pkg/errs"

var (
	ErrEmptyCart         = errs.New("cart is empty")
	ErrEventNotFound     = errs.New("event not found")
	ErrEventExpired      = errs.New("event has already finished")
	ErrCapacityExceeded  = errs.New("event has no seats remaining")
	ErrPayment           = errs.New("payment failed")
	ErrNoChargeOnRecord  = errs.New("booking has no charge on record")
	ErrRefund            = errs.New("refund failed")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrAlreadyRefunded   = errs.New("booking already refunded")
	ErrTicketUnavailable = errs.New("no ticket code available for event")
	ErrPayerNotFound     = errs.New("payer not found")
	ErrInvalidCartItem   = errs.New("invalid cart item")
	ErrDuplicateBooking  = errs.New("booking already recorded for this payment")
	ErrChargeReversed    = errs.New("payment for this request was already refunded")
)
