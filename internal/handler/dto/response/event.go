package response

import (
	"github.com/KingCastle/Javan/internal/usecase/queries"
)

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Capacity       int    `json:"capacity"`
	PriceCents     int64  `json:"price_cents"`
	StartAt        int64  `json:"start_at"`
	FinishAt       int64  `json:"finish_at"`
	SeatsRemaining int    `json:"seats_remaining"`
	SoldOut        bool   `json:"sold_out"`
	Expired        bool   `json:"expired"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:             v.ID.String(),
		Title:          v.Title,
		Capacity:       v.Capacity,
		PriceCents:     v.PriceCents,
		StartAt:        v.StartAt.Unix(),
		FinishAt:       v.FinishAt.Unix(),
		SeatsRemaining: v.SeatsRemaining,
		SoldOut:        v.SeatsRemaining <= 0,
		Expired:        v.Expired,
	}
}

type EventListResponse struct {
	Events []*EventResponse `json:"events"`
}

func FromEventViews(views []*queries.EventView) *EventListResponse {
	res := make([]*EventResponse, len(views))
	for i, v := range views {
		res[i] = FromEventView(v)
	}
	return &EventListResponse{Events: res}
}
