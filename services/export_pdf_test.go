package services

import (
	"bytes"
	"fmt"
	"testing"
)

func TestGeneratePDF_Estimate(t *testing.T) {
	result, err := GeneratePDF(BuildExportData(sampleDocument()))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGeneratePDF_EmptyEstimate(t *testing.T) {
	doc := newTestEstimator(&seqRand{}).Estimate(ProjectInput{})

	result, err := GeneratePDF(BuildExportData(doc))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGeneratePDF_ManyRoomsSpansPages(t *testing.T) {
	rooms := make([]RoomArea, 0, 40)
	for i := 0; i < 40; i++ {
		rooms = append(rooms, RoomArea{Name: fmt.Sprintf("Bedroom %d", i+2), AreaSqFt: dec("120")})
	}
	doc := newTestEstimator(&seqRand{}).Estimate(ProjectInput{
		Layout:   RoomAreasLayout{Rooms: rooms},
		Category: "luxury",
	})

	small, err := GeneratePDF(BuildExportData(sampleDocument()))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	large, err := GeneratePDF(BuildExportData(doc))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(large) <= len(small) {
		t.Errorf("expected the 40-room PDF (%d bytes) to be larger than the sample (%d bytes)", len(large), len(small))
	}
}
