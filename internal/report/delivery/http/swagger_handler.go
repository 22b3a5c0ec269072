package http

// GetInventoryReport godoc
// @Summary Inventory report
// @Description Summary totals and per-product valuation. format selects a download instead of the JSON envelope.
// @Tags Reports
// @Produce json
// @Produce text/csv
// @Produce text/html
// @Produce application/pdf
// @Param format query string false "json (default), csv, html or pdf"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reports/inventory [get]
func (h *ReportHandler) GetInventoryReportDoc() {}
