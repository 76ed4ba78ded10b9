package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"choicedge/services"
	"choicedge/testhelpers"
)

func TestHandleHome(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := HandleHome()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "CHOICEDGE INTERIOR DESIGN", "<!DOCTYPE html>")
}

func TestHandleEstimateSummary(t *testing.T) {
	body := testhelpers.WizardJSON(t, testhelpers.SampleWizardState())
	rec := serveWithEstimate(t, HandleEstimateSummary(), jsonRequest("/estimate", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Detailed Estimate",
		"Premium Category",
		"Asha Deshmukh",
		"Civil Lines Residence",
		"Total Carpet Area: 1000 sq.ft.",
		"Living Room",
		"Master Bedroom",
		"Bedroom 2",
		"Bedroom 3",
		"Room Total:",
		"Execution Charges",
		"Design Fee",
		"GST (18%)",
		"Grand Total",
		"Rupees Only/-",
		"NOTE:",
		`action="/estimate/print"`,
		`action="/estimate/export/pdf"`,
		`action="/estimate/export/excel"`,
		`name="estimate"`,
		"Main Branch:",
	)
}

func TestHandleEstimateSummary_ProjectNameFallback(t *testing.T) {
	state := testhelpers.SampleWizardState()
	state.ProjectName = ""
	rec := serveWithEstimate(t, HandleEstimateSummary(), jsonRequest("/estimate", testhelpers.WizardJSON(t, state)))

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "3BHK Project")
}

func TestHandleEstimateSummary_NoInput(t *testing.T) {
	rec := serveWithEstimate(t, HandleEstimateSummary(), jsonRequest("/estimate", ""))

	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Detailed Estimate") {
		t.Error("summary should not render without wizard state")
	}
}

func TestHandleEstimateSummary_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/estimate", nil)
	rec := httptest.NewRecorder()

	if err := HandleEstimateSummary()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}
}

func TestHandleEstimatePrint_ReusesPostedEstimate(t *testing.T) {
	doc := testhelpers.NewTestEstimator(t).Estimate(testhelpers.SampleWizardState().ProjectInput())
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rec := serveWithEstimate(t, HandleEstimatePrint(), formRequest("/estimate/print", url.Values{"estimate": {string(raw)}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"This is a computer-generated estimate.",
		"© Choicedge | All Rights Reserved",
		"window.print()",
		services.FormatINR(doc.GrandTotal),
	)
	if strings.Contains(body, `action="/estimate/export/pdf"`) {
		t.Error("print view should not carry download actions")
	}
}

func TestHandleEstimateExportPDF(t *testing.T) {
	body := testhelpers.WizardJSON(t, testhelpers.SampleWizardState())
	rec := serveWithEstimate(t, HandleEstimateExportPDF(), jsonRequest("/estimate/export/pdf", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, services.EstimatePDFFilename) {
		t.Errorf("Content-Disposition = %q, want filename %s", cd, services.EstimatePDFFilename)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response is not a PDF")
	}
}

func TestHandleEstimateExportExcel(t *testing.T) {
	values := url.Values{"input": {testhelpers.WizardJSON(t, testhelpers.SampleRoomsWizardState())}}
	rec := serveWithEstimate(t, HandleEstimateExportExcel(), formRequest("/estimate/export/excel", values))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, services.EstimateExcelFilename) {
		t.Errorf("Content-Disposition = %q, want filename %s", cd, services.EstimateExcelFilename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Detailed Estimate")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	var found bool
	for _, row := range rows {
		for _, cell := range row {
			if cell == "Living Room" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a 'Living Room' row in the workbook")
	}
}
