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

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} httperr.Response{data=resdto.VehicleResponse}
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
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
	httperr.Success(c, http.StatusOK, "Vehicle retrieved", resdto.FromVehicleView(view))
}

// @Summary Check availability
// @Description Lists active bookings overlapping the inclusive range. Advisory only; create re-checks under lock.
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param pickup_date query string true "YYYY-MM-DD"
// @Param dropoff_date query string true "YYYY-MM-DD"
// @Param exclude_booking_id query string false "Booking to ignore, for reschedules"
// @Success 200 {object} httperr.Response{data=resdto.AvailabilityResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/availability [get]
func (h *VehicleHandler) Availability(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), actor, query.ToRequest(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Availability checked", resdto.FromAvailabilityView(view))
}

// @Summary Change vehicle status
// @Description A vehicle can leave available only with no active bookings from today on.
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.ChangeVehicleStatusRequest true "Target status"
// @Success 200 {object} httperr.Response{data=resdto.VehicleCommandResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{id}/status [patch]
func (h *VehicleHandler) ChangeStatus(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Vehicle status changed", resdto.FromVehicleResult(result))
}
