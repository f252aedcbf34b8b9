package api

import (
	"net/http"

	"github.com/KingCastle/Javan/internal/handler/httperr"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/commands"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// First match wins.
var useCaseErrorRules = []httperr.Rule{
	{Target: commands.ErrEmptyCart, Status: http.StatusBadRequest, Message: "Your cart is empty"},
	{Target: commands.ErrInvalidCartItem, Status: http.StatusBadRequest, Message: "Invalid cart item"},
	{Target: queries.ErrInvalidSort, Status: http.StatusBadRequest, Message: "Invalid sort parameters"},
	{Target: queries.ErrInvalidPage, Status: http.StatusBadRequest, Message: "Page out of range"},
	{Target: errs.ErrDomainValidation, Status: http.StatusBadRequest, Message: "Validation failed"},
	{Target: commands.ErrEventNotFound, Status: http.StatusNotFound, Message: "Event not found"},
	{Target: queries.ErrEventNotFound, Status: http.StatusNotFound, Message: "Event not found"},
	{Target: commands.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
	{Target: queries.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
	{Target: commands.ErrPayerNotFound, Status: http.StatusNotFound, Message: "User not found"},
	{Target: queries.ErrBookingAccess, Status: http.StatusForbidden, Message: "Insufficient permissions"},
	{Target: commands.ErrEventExpired, Status: http.StatusGone, Message: "This event has already finished"},
	{Target: commands.ErrCapacityExceeded, Status: http.StatusConflict, Message: "Not enough seats remaining"},
	{Target: commands.ErrNoChargeOnRecord, Status: http.StatusConflict, Message: "Booking has no charge on record"},
	{Target: commands.ErrAlreadyRefunded, Status: http.StatusConflict, Message: "Booking has already been refunded"},
	{Target: commands.ErrDuplicateBooking, Status: http.StatusConflict, Message: "Booking already recorded for this payment"},
	{Target: commands.ErrChargeReversed, Status: http.StatusConflict, Message: "Payment for this request was refunded, retry with a new Idempotency-Key"},
	{Target: commands.ErrPayment, Status: http.StatusPaymentRequired, Message: "Payment failed"},
	{Target: commands.ErrRefund, Status: http.StatusBadGateway, Message: "Refund failed"},
	{Target: commands.ErrTicketUnavailable, Status: http.StatusServiceUnavailable, Message: "No ticket codes available, try again later"},
	{Target: commands.ErrCartUnavailable, Status: http.StatusServiceUnavailable, Message: "Cart is temporarily unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	httperr.AbortWithMapped(c, err, useCaseErrorRules)
}
