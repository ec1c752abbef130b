package services

import (
	"testing"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
)

type stubTrendPainReader struct {
	records []models.PainRecord
}

func (reader *stubTrendPainReader) ListByPatient(patientID string) ([]models.PainRecord, error) {
	return reader.records, nil
}

type stubTrendResponseReader struct {
	responses []models.AssessmentResponse
}

func (reader *stubTrendResponseReader) ListResponsesByPatient(patientID string) ([]models.AssessmentResponse, error) {
	return reader.responses, nil
}

func TestPainTrendMergesSourcesChronologically(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service := NewStatsService(
		&stubTrendPainReader{records: []models.PainRecord{
			{ID: "r1", Date: base.AddDate(0, 0, 2), PainLevel: 6},
			{ID: "r2", Date: base, PainLevel: 3, Notes: "inicio"},
		}},
		&stubTrendResponseReader{responses: []models.AssessmentResponse{
			{ID: "a1", SubmittedAt: base.AddDate(0, 0, 1), PainLevel: 5, SubmittedBy: models.SubmittedByPatient},
		}},
	)

	points, err := service.PainTrend("patient-1")
	if err != nil {
		t.Fatalf("PainTrend: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].PainLevel != 3 || points[1].PainLevel != 5 || points[2].PainLevel != 6 {
		t.Fatalf("expected chronological order, got %+v", points)
	}
	if points[1].Source != TrendSourceAssessment || points[1].SubmittedBy != models.SubmittedByPatient {
		t.Fatalf("expected assessment point in the middle, got %+v", points[1])
	}
}

func TestPainTrendTiesOrderAssessmentFirst(t *testing.T) {
	when := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service := NewStatsService(
		&stubTrendPainReader{records: []models.PainRecord{
			{ID: "r1", Date: when, PainLevel: 2},
		}},
		&stubTrendResponseReader{responses: []models.AssessmentResponse{
			{ID: "a1", SubmittedAt: when, PainLevel: 8},
		}},
	)

	points, err := service.PainTrend("patient-1")
	if err != nil {
		t.Fatalf("PainTrend: %v", err)
	}
	if points[0].Source != TrendSourceAssessment || points[1].Source != TrendSourceRecord {
		t.Fatalf("expected deterministic tie order, got %q then %q", points[0].Source, points[1].Source)
	}
}

func TestSummaryEmpty(t *testing.T) {
	service := NewStatsService(&stubTrendPainReader{}, &stubTrendResponseReader{})

	summary, err := service.Summary("patient-1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Entries != 0 || summary.Latest != nil {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestSummaryAggregates(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service := NewStatsService(
		&stubTrendPainReader{records: []models.PainRecord{
			{ID: "r1", Date: base, PainLevel: 2},
			{ID: "r2", Date: base.AddDate(0, 0, 1), PainLevel: 4},
		}},
		&stubTrendResponseReader{responses: []models.AssessmentResponse{
			{ID: "a1", SubmittedAt: base.AddDate(0, 0, 2), PainLevel: 9},
		}},
	)

	summary, err := service.Summary("patient-1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Entries != 3 {
		t.Fatalf("expected 3 entries, got %d", summary.Entries)
	}
	if summary.Min != 2 || summary.Max != 9 {
		t.Fatalf("expected min 2 and max 9, got %d and %d", summary.Min, summary.Max)
	}
	if summary.Average != 5.0 {
		t.Fatalf("expected average 5.0, got %f", summary.Average)
	}
	if summary.Latest == nil || summary.Latest.PainLevel != 9 {
		t.Fatalf("expected latest point with level 9, got %+v", summary.Latest)
	}
}
