package response

import (
	"github.com/KingCastle/Javan/internal/usecase/commands"
	"github.com/KingCastle/Javan/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserEmail    string  `json:"user_email,omitempty"`
	UserName     string  `json:"user_name,omitempty"`
	EventID      string  `json:"event_id"`
	EventTitle   string  `json:"event_title"`
	EventStartAt int64   `json:"event_start_at,omitempty"`
	Seats        int     `json:"seats"`
	TotalCents   int64   `json:"total_cents"`
	Ticket       int     `json:"ticket"`
	Active       bool    `json:"active"`
	ChargeID     *string `json:"charge_id,omitempty"`
	RefundID     *string `json:"refund_id,omitempty"`
	CreatedAt    int64   `json:"created_at"`
	UpdatedAt    int64   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID.String(),
		UserID:       v.UserID.String(),
		UserEmail:    v.UserEmail,
		UserName:     v.UserName,
		EventID:      v.EventID.String(),
		EventTitle:   v.EventTitle,
		EventStartAt: v.EventStartAt.Unix(),
		Seats:        v.Seats,
		TotalCents:   v.TotalCents,
		Ticket:       v.Ticket,
		Active:       v.Active,
		ChargeID:     v.ChargeID,
		RefundID:     v.RefundID,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

func FromBookResult(r *commands.BookResult) *BookingResponse {
	b := r.Booking
	return &BookingResponse{
		ID:         b.ID().String(),
		UserID:     b.UserID().String(),
		EventID:    b.EventID().String(),
		EventTitle: r.EventTitle,
		Seats:      b.Seats(),
		TotalCents: b.TotalCents(),
		Ticket:     b.Ticket().Int(),
		Active:     b.IsActive(),
		ChargeID:   b.ChargeID(),
		CreatedAt:  b.CreatedAt().Unix(),
		UpdatedAt:  b.UpdatedAt().Unix(),
	}
}

type BookingPageResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"total_pages"`
}

func FromBookingPage(p *queries.BookingPage) *BookingPageResponse {
	items := make([]*BookingResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromBookingView(v)
	}
	return &BookingPageResponse{
		Bookings:   items,
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

type RefundResponse struct {
	BookingID string `json:"booking_id"`
	RefundID  string `json:"refund_id"`
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		BookingID: r.BookingID.String(),
		RefundID:  r.RefundID,
	}
}
