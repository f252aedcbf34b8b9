package request

import (
	"github.com/KingCastle/Javan/internal/usecase/queries"
)

type BookRequest struct {
	PaymentToken string `json:"payment_token" binding:"required,max=255"`
}

type ListBookingsQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Sort      string `form:"sort" binding:"omitempty,oneof=created_at ticket seats total active"`
	Direction string `form:"direction" binding:"omitempty,oneof=asc desc"`
}

func (q ListBookingsQuery) ToParams() queries.PageParams {
	return queries.PageParams{
		Page:    q.Page,
		SortBy:  q.Sort,
		SortDir: q.Direction,
	}
}
