package services

import (
	"sort"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
)

const (
	TrendSourceRecord     = "record"
	TrendSourceAssessment = "assessment"
)

type TrendPainReader interface {
	ListByPatient(patientID string) ([]models.PainRecord, error)
}

type TrendResponseReader interface {
	ListResponsesByPatient(patientID string) ([]models.AssessmentResponse, error)
}

// StatsService builds the pain-over-time series the client plots, merging
// ad-hoc pain records with answered assessments.
type StatsService struct {
	records   TrendPainReader
	responses TrendResponseReader
}

func NewStatsService(records TrendPainReader, responses TrendResponseReader) *StatsService {
	return &StatsService{records: records, responses: responses}
}

type TrendPoint struct {
	id          string
	Date        time.Time `json:"date"`
	PainLevel   int       `json:"painLevel"`
	Source      string    `json:"source"`
	SubmittedBy string    `json:"submittedBy,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type TrendSummary struct {
	Entries int         `json:"entries"`
	Average float64     `json:"average"`
	Min     int         `json:"min"`
	Max     int         `json:"max"`
	Latest  *TrendPoint `json:"latest,omitempty"`
}

// PainTrend returns the merged series in chronological order, ties broken by
// source and identifier so repeated calls render identically.
func (service *StatsService) PainTrend(patientID string) ([]TrendPoint, error) {
	records, err := service.records.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}
	responses, err := service.responses.ListResponsesByPatient(patientID)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(records)+len(responses))
	for _, record := range records {
		points = append(points, TrendPoint{
			id:        record.ID,
			Date:      record.Date,
			PainLevel: record.PainLevel,
			Source:    TrendSourceRecord,
			Notes:     record.Notes,
		})
	}
	for _, response := range responses {
		points = append(points, TrendPoint{
			id:          response.ID,
			Date:        response.SubmittedAt,
			PainLevel:   response.PainLevel,
			Source:      TrendSourceAssessment,
			SubmittedBy: response.SubmittedBy,
			Notes:       response.Notes,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if !points[i].Date.Equal(points[j].Date) {
			return points[i].Date.Before(points[j].Date)
		}
		if points[i].Source != points[j].Source {
			return points[i].Source < points[j].Source
		}
		return points[i].id < points[j].id
	})

	return points, nil
}

func (service *StatsService) Summary(patientID string) (TrendSummary, error) {
	points, err := service.PainTrend(patientID)
	if err != nil {
		return TrendSummary{}, err
	}
	if len(points) == 0 {
		return TrendSummary{}, nil
	}

	total := 0
	minLevel := points[0].PainLevel
	maxLevel := points[0].PainLevel
	for _, point := range points {
		total += point.PainLevel
		if point.PainLevel < minLevel {
			minLevel = point.PainLevel
		}
		if point.PainLevel > maxLevel {
			maxLevel = point.PainLevel
		}
	}

	latest := points[len(points)-1]
	return TrendSummary{
		Entries: len(points),
		Average: float64(total) / float64(len(points)),
		Min:     minLevel,
		Max:     maxLevel,
		Latest:  &latest,
	}, nil
}
