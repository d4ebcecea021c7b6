package api

import (
	"net/http"

	reqdto "rental-backoffice/internal/handler/dto/request"
	resdto "rental-backoffice/internal/handler/dto/response"
	"rental-backoffice/internal/handler/httperr"
	"rental-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary List audit logs
// @Description Newest first. Admins only.
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param resource query string false "booking, vehicle, payment or user"
// @Param resource_id query string false "Resource ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} httperr.Response{data=resdto.Page[resdto.AuditLogResponse]}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var query reqdto.ListAuditLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	items, next, err := h.q.List(c.Request.Context(), actor, query.ToFilter(), &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Audit logs retrieved", resdto.FromAuditLogs(items, next))
}
