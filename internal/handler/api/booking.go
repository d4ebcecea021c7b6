package api

import (
	"net/http"

	reqdto "rental-backoffice/internal/handler/dto/request"
	resdto "rental-backoffice/internal/handler/dto/response"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a vehicle for an inclusive date range. The booking starts as pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Client-chosen UUID; a retry with the same key returns the first booking"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} httperr.Response{data=resdto.BookingCommandResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in := req.ToInput(actor.UserID)
	in.IdempotencyKey = key
	result, err := h.cmds.Create(c.Request.Context(), actor, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if result.Replayed {
		c.Header(headerReplayed, "true")
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	httperr.Success(c, http.StatusCreated, "Booking created", resdto.FromBookingResult(result))
}

// @Summary Reschedule booking
// @Description Move a booking to new dates. The booking itself is ignored when checking availability.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "New dates"
// @Success 200 {object} httperr.Response{data=resdto.BookingCommandResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reschedule [put]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.Reschedule(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Booking rescheduled", resdto.FromBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking and refund according to the notice policy.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response{data=resdto.CancelBookingResponse}
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Booking cancelled", resdto.FromCancelResult(result))
}

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response{data=resdto.BookingCommandResponse}
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, "confirmed", "Booking confirmed")
}

// @Summary Complete booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response{data=resdto.BookingCommandResponse}
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.changeStatus(c, "completed", "Booking completed")
}

// @Summary Mark booking paid
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response{data=resdto.BookingCommandResponse}
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/mark-paid [post]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	h.changeStatus(c, "paid", "Booking marked as paid")
}

func (h *BookingHandler) changeStatus(c *gin.Context, target, message string) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, target)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, message, resdto.FromBookingResult(result))
}

// @Summary Record payment
// @Description Record a payment received for a booking. Completed payments are refundable.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} httperr.Response{data=resdto.PaymentCommandResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.RecordPayment(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusCreated, "Payment recorded", resdto.FromPaymentResult(result))
}

// @Summary Get booking
// @Description Booking details with payments and refunds
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response{data=resdto.BookingResponse}
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Booking retrieved", resdto.FromBookingView(view))
}

// @Summary List bookings by user
// @Description Newest first, paginated with an opaque cursor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} httperr.Response{data=resdto.Page[resdto.BookingListItemResponse]}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users/{id}/bookings [get]
func (h *BookingHandler) ListByUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), actor, userID, &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Bookings retrieved", resdto.FromBookingList(items, next))
}
