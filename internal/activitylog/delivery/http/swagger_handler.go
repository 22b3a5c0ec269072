package http

// ListActivityLogs godoc
// @Summary List activity logs
// @Description Read the audit trail, newest first
// @Tags ActivityLogs
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Param entityType query string false "PRODUCT or CATEGORY"
// @Success 200 {object} object{success=bool,count=int,data=array}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/activity-logs [get]
func (h *ActivityLogHandler) ListActivityLogsDoc() {}

// GetEntityHistory godoc
// @Summary Activity for one entity
// @Description Read every audit entry recorded for a product or category id
// @Tags ActivityLogs
// @Produce json
// @Param entityId path string true "Entity ID"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} object{success=bool,count=int,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/activity-logs/entity/{entityId} [get]
func (h *ActivityLogHandler) GetEntityHistoryDoc() {}
