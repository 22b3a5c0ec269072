// Package export renders an inventory report as a downloadable document.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tair/inventory-tracker/internal/report/domain"
)

// Renderer writes a report in one document format
type Renderer interface {
	ContentType() string
	Extension() string
	Render(w io.Writer, report *domain.InventoryReport) error
}

// Format names accepted by ForFormat
const (
	FormatCSV  = "csv"
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// ForFormat returns the renderer for a format name
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return CSV{}, nil
	case FormatHTML, "xls":
		return HTML{}, nil
	case FormatPDF:
		return PDF{}, nil
	}
	return nil, fmt.Errorf("unsupported report format %q", format)
}

// Filename is the download name for a report rendered by r
func Filename(r Renderer, report *domain.InventoryReport) string {
	return fmt.Sprintf("inventory-report-%s.%s", report.GeneratedAt.Format("20060102-150405"), r.Extension())
}

const timestampLayout = "2006-01-02 15:04:05 MST"
