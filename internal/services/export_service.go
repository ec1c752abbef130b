package services

import "strconv"

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Pain level",
	"Source",
	"Submitted by",
	"Notes",
}

type TrendProvider interface {
	PainTrend(patientID string) ([]TrendPoint, error)
}

// ExportService renders a patient's full pain history for download.
type ExportService struct {
	trend TrendProvider
}

type ExportEntry struct {
	Date        string `json:"date"`
	PainLevel   int    `json:"painLevel"`
	Source      string `json:"source"`
	SubmittedBy string `json:"submittedBy,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type ExportSummary struct {
	TotalEntries int    `json:"totalEntries"`
	HasData      bool   `json:"hasData"`
	DateFrom     string `json:"dateFrom,omitempty"`
	DateTo       string `json:"dateTo,omitempty"`
}

func NewExportService(trend TrendProvider) *ExportService {
	return &ExportService{trend: trend}
}

func (service *ExportService) BuildEntries(patientID string) ([]ExportEntry, error) {
	points, err := service.trend.PainTrend(patientID)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportEntry, 0, len(points))
	for _, point := range points {
		entries = append(entries, ExportEntry{
			Date:        point.Date.Format(exportDateLayout),
			PainLevel:   point.PainLevel,
			Source:      point.Source,
			SubmittedBy: point.SubmittedBy,
			Notes:       point.Notes,
		})
	}
	return entries, nil
}

func (service *ExportService) BuildCSVRows(patientID string) ([][]string, error) {
	entries, err := service.BuildEntries(patientID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Date,
			strconv.Itoa(entry.PainLevel),
			entry.Source,
			entry.SubmittedBy,
			entry.Notes,
		})
	}
	return rows, nil
}

func (service *ExportService) BuildSummary(patientID string) (ExportSummary, error) {
	points, err := service.trend.PainTrend(patientID)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(points) == 0 {
		return ExportSummary{}, nil
	}

	return ExportSummary{
		TotalEntries: len(points),
		HasData:      true,
		DateFrom:     points[0].Date.Format(exportDateLayout),
		DateTo:       points[len(points)-1].Date.Format(exportDateLayout),
	}, nil
}
