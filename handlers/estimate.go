package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"choicedge/services"
	"choicedge/templates"
)

// HandleHome renders the entry point.
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.HomePage().Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimateSummary renders the detailed estimate page.
func HandleEstimateSummary() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok, err := buildPageData(e)
		if !ok {
			return e.Redirect(http.StatusFound, "/")
		}
		if err != nil {
			log.Printf("estimate_summary: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to render estimate")
		}
		return templates.EstimateSummaryPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimatePrint renders the printer-friendly estimate page.
func HandleEstimatePrint() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok, err := buildPageData(e)
		if !ok {
			return e.Redirect(http.StatusFound, "/")
		}
		if err != nil {
			log.Printf("estimate_print: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to render estimate")
		}
		return templates.EstimatePrintPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimateExportPDF returns a handler that generates and downloads the estimate PDF.
func HandleEstimateExportPDF() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, ok := GetEstimate(e.Request)
		if !ok {
			return e.Redirect(http.StatusFound, "/")
		}

		pdfBytes, err := services.GeneratePDF(services.BuildExportData(doc))
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		return writeAttachment(e, "application/pdf", services.EstimatePDFFilename, pdfBytes)
	}
}

// HandleEstimateExportExcel returns a handler that generates and downloads the estimate workbook.
func HandleEstimateExportExcel() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, ok := GetEstimate(e.Request)
		if !ok {
			return e.Redirect(http.StatusFound, "/")
		}

		xlsxBytes, err := services.GenerateExcel(services.BuildExportData(doc))
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		return writeAttachment(e, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			services.EstimateExcelFilename, xlsxBytes)
	}
}

// buildPageData formats the request's estimate for the page templates.
// ok is false when no estimate was resolved for the request.
func buildPageData(e *core.RequestEvent) (templates.EstimatePageData, bool, error) {
	doc, ok := GetEstimate(e.Request)
	if !ok {
		return templates.EstimatePageData{}, false, nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return templates.EstimatePageData{}, true, fmt.Errorf("encode estimate: %w", err)
	}

	return templates.EstimatePageData{
		ExportData:   services.BuildExportData(doc),
		EstimateJSON: string(raw),
	}, true, nil
}

func writeAttachment(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err := e.Response.Write(body)
	return err
}
