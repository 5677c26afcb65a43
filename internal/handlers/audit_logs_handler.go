package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
}

func NewAuditLogsHandler(store audit.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

// List returns the newest audit entries, optionally for one reservation.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var q dto.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	logs, err := h.store.ListAuditLogs(c.Request.Context(), audit.Filter{
		EntityID: q.ReservationID,
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, "list audit logs", err)
		return
	}

	httpresp.List(c, logs, "Audit logs retrieved successfully")
}
