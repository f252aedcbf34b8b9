package notify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"
)

var (
	ErrUnknownKind    = errs.New("unknown notification kind")
	ErrInvalidPayload = errs.New("invalid notification payload")
	ErrNoRecipients   = errs.New("notification has no recipients")
)

// Composer turns an outbox job into a deliverable message. Admin alerts go to
// the configured admin addresses, everything else to the booking's user.
type Composer struct {
	adminEmails []string
}

func NewComposer(adminEmails []string) *Composer {
	admins := make([]string, 0, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.TrimSpace(e); e != "" {
			admins = append(admins, e)
		}
	}
	return &Composer{adminEmails: admins}
}

func (c *Composer) Compose(job shared.NotificationJob) (Message, error) {
	if !job.Kind.IsValid() {
		return Message{}, errs.Wrapf(ErrUnknownKind, "%s", job.Kind)
	}

	var n shared.BookingNotice
	if err := json.Unmarshal(job.Payload, &n); err != nil {
		return Message{}, errs.Mark(errs.Wrap(err, "decode booking notice"), ErrInvalidPayload)
	}

	var msg Message
	switch job.Kind {
	case shared.NotificationBookingAdminAlert:
		msg = Message{
			To:      c.adminEmails,
			Subject: fmt.Sprintf("New booking: %s", n.EventTitle),
			Body: fmt.Sprintf(
				"%s <%s> booked %d seat(s) for %s.\nTicket: %d\nTotal: %s\nBooking: %s\nCharge: %s\n",
				n.UserName, n.UserEmail, n.Seats, n.EventTitle, n.Ticket, formatMoney(n.TotalCents, n.Currency), n.BookingID, n.ChargeID,
			),
		}
	case shared.NotificationBookingConfirmation:
		msg = Message{
			To:      recipient(n.UserEmail),
			Subject: fmt.Sprintf("Your booking for %s", n.EventTitle),
			Body: fmt.Sprintf(
				"Hi %s,\n\nYou have %d seat(s) for %s on %s.\nYour ticket code is %d.\nAmount paid: %s\n",
				n.UserName, n.Seats, n.EventTitle, n.EventStartAt.Format("Mon 2 Jan 2006 15:04"), n.Ticket, formatMoney(n.TotalCents, n.Currency),
			),
		}
	case shared.NotificationBookingRefundNotice:
		msg = Message{
			To:      recipient(n.UserEmail),
			Subject: fmt.Sprintf("Refund for %s", n.EventTitle),
			Body: fmt.Sprintf(
				"Hi %s,\n\nYour booking for %s (ticket %d) has been cancelled and %s refunded.\nRefund reference: %s\n",
				n.UserName, n.EventTitle, n.Ticket, formatMoney(n.TotalCents, n.Currency), n.RefundID,
			),
		}
	}

	if len(msg.To) == 0 {
		return Message{}, errs.Wrapf(ErrNoRecipients, "%s", job.Kind)
	}
	return msg, nil
}

func recipient(email string) []string {
	if strings.TrimSpace(email) == "" {
		return nil
	}
	return []string{email}
}

func formatMoney(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%s %d.%02d", sign, strings.ToUpper(currency), minor/100, minor%100)
}
