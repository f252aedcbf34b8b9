package request

import (
	"github.com/google/uuid"
)

type PutCartRequest struct {
	EventID  uuid.UUID `json:"event_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1,max=1000"`
}
