package response

import (
	"github.com/KingCastle/Javan/internal/usecase/commands"
)

type CartResponse struct {
	Empty          bool    `json:"empty"`
	EventID        *string `json:"event_id,omitempty"`
	EventTitle     string  `json:"event_title,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	SubtotalCents  int64   `json:"subtotal_cents"`
}

func FromCartView(v *commands.CartView) *CartResponse {
	if v.Empty {
		return &CartResponse{Empty: true}
	}
	eventID := v.EventID.String()
	return &CartResponse{
		EventID:        &eventID,
		EventTitle:     v.EventTitle,
		Quantity:       v.Quantity,
		UnitPriceCents: v.UnitPriceCents,
		SubtotalCents:  v.SubtotalCents,
	}
}

type CheckoutResponse struct {
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	StartAt        int64  `json:"start_at"`
	FinishAt       int64  `json:"finish_at"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
	SeatsRemaining int    `json:"seats_remaining"`
	Expired        bool   `json:"expired"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		EventID:        r.Event.ID().String(),
		EventTitle:     r.Event.Title(),
		StartAt:        r.Event.StartAt().Unix(),
		FinishAt:       r.Event.FinishAt().Unix(),
		Quantity:       r.Item.Quantity,
		UnitPriceCents: r.Item.UnitPriceCents,
		SubtotalCents:  r.SubtotalCents,
		SeatsRemaining: r.SeatsRemaining,
		Expired:        r.Expired,
	}
}
