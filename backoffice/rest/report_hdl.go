package rest

import (
	"net/http"
	"strconv"

	"github.com/procargo/backoffice/backoffice/domain"
)

// GetSummaryReport godoc
// @Summary Summary report
// @Description Order counts by status within the caller's scope and invoice totals.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse[domain.SummaryReport]
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/reports/summary [get]
func (h *Handler) GetSummaryReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := h.Svc.GetSummaryReport(ctx, h.principal(r))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(report))
}

type AuditLogResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
	Action    string      `json:"action"`
	Target    string      `json:"target,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
	IP        string      `json:"ip,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ListAuditLogs godoc
// @Summary List audit logs
// @Tags AuditLogs
// @Produce json
// @Security BearerAuth
// @Param from query int false "Start timestamp in milliseconds"
// @Param to query int false "End timestamp in milliseconds"
// @Param user query string false "Comma separated user ids"
// @Param action query string false "Comma separated actions"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse[PageResponse[AuditLogResponse]]
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/audit-logs [get]
func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := queryObjectIDs(r, "user")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	from, _ := strconv.ParseInt(r.URL.Query().Get("from"), 10, 64)
	to, _ := strconv.ParseInt(r.URL.Query().Get("to"), 10, 64)
	opt := &domain.QueryAuditLogOptions{
		TimestampGTE: from,
		TimestampLTE: to,
		UserIDs:      users,
		Actions:      queryList(r, "action"),
		Pagination:   queryPagination(r),
	}
	if err := h.Svc.QueryAuditLogs(ctx, h.principal(r), opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	items := make([]AuditLogResponse, 0, len(opt.Result))
	for _, l := range opt.Result {
		items = append(items, AuditLogResponse{
			ID:        l.ID.Hex(),
			UserID:    hexOrEmpty(l.UserID),
			Role:      l.Role,
			Action:    l.Action,
			Target:    l.Target,
			RequestID: l.RequestID,
			IP:        l.IP,
			Timestamp: l.Timestamp,
		})
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(newPageResponse(items, opt.Pagination)))
}
