package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"choicedge/testhelpers"
)

func runEstimate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewEstimateCommand(testhelpers.NewTestEstimator(t))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writePayload(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "payload.json")
	payload := testhelpers.WizardJSON(t, testhelpers.SampleWizardState())
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	return path
}

func TestEstimateCommand_PDF(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "estimate.pdf")

	stdout, err := runEstimate(t, "--input", writePayload(t, dir), "--out", out)
	if err != nil {
		t.Fatalf("estimate command failed: %v", err)
	}
	if !strings.Contains(stdout, "Estimate for 6 rooms") {
		t.Errorf("unexpected output: %q", stdout)
	}

	body, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Error("output does not start with %PDF- magic bytes")
	}
}

func TestEstimateCommand_Excel(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "estimate.xlsx")

	if _, err := runEstimate(t, "--input", writePayload(t, dir), "--out", out, "--format", "xlsx"); err != nil {
		t.Fatalf("estimate command failed: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("output is not a valid workbook: %v", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("Detailed Estimate"); idx < 0 {
		t.Error("expected a 'Detailed Estimate' sheet")
	}
}

func TestEstimateCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	payload := writePayload(t, dir)

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("  "), 0644); err != nil {
		t.Fatalf("write empty payload: %v", err)
	}

	oversized := filepath.Join(dir, "oversized.json")
	if err := os.WriteFile(oversized, []byte(`{"layoutType":"500bhk","totalCarpetArea":"1000"}`), 0644); err != nil {
		t.Fatalf("write oversized payload: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing input flag", []string{}, "input"},
		{"input not found", []string{"--input", filepath.Join(dir, "missing.json")}, "read input"},
		{"empty payload", []string{"--input", empty}, "no estimate input"},
		{"oversized layout", []string{"--input", oversized}, "out of range"},
		{"bad format", []string{"--input", payload, "--format", "docx"}, "unsupported format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runEstimate(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
