// Package export writes the job and interview boards to an Excel workbook.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-board/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	JobsSheet       = "Jobs"
	InterviewsSheet = "Interviews"
)

var (
	jobHeaders       = []any{"ID", "Company", "Position", "Location", "Posted", "Salary", "Requirements", "Description", "Apply at"}
	interviewHeaders = []any{"ID", "Company", "Position", "Shared", "Experience"}
)

// ExportBoard writes jobs and interviews to outputPath, one sheet each, and
// returns the path written. A missing .xlsx extension is added.
func ExportBoard(jobs []types.JobPosting, interviews []types.InterviewExperience, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // nothing to recover once saved

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	if err := f.SetSheetName("Sheet1", JobsSheet); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(InterviewsSheet); err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeJobsSheet(f, jobs); err != nil {
		return "", fmt.Errorf("failed to create jobs sheet: %w", err)
	}
	if err := writeInterviewsSheet(f, interviews); err != nil {
		return "", fmt.Errorf("failed to create interviews sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return outputPath, nil
}

func writeJobsSheet(f *excelize.File, jobs []types.JobPosting) error {
	if err := writeHeader(f, JobsSheet, jobHeaders); err != nil {
		return err
	}
	widths := map[string]float64{"A": 6, "B": 20, "C": 30, "D": 20, "E": 12, "F": 22, "G": 40, "H": 60, "I": 35}
	for col, width := range widths {
		if err := f.SetColWidth(JobsSheet, col, col, width); err != nil {
			return err
		}
	}

	for i, job := range jobs {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{
			job.ID, cellText(job.Company), cellText(job.Position), cellText(job.Location), job.PostedDate,
			cellText(deref(job.Salary)), cellText(strings.Join(job.Requirements, "\n")),
			cellText(job.Description), cellText(deref(job.ApplicationURL)),
		}
		if err := f.SetSheetRow(JobsSheet, cell, &values); err != nil {
			return err
		}

		if job.ApplicationURL != nil {
			link := fmt.Sprintf("I%d", row)
			if err := f.SetCellHyperLink(JobsSheet, link, *job.ApplicationURL, "External"); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeInterviewsSheet(f *excelize.File, interviews []types.InterviewExperience) error {
	if err := writeHeader(f, InterviewsSheet, interviewHeaders); err != nil {
		return err
	}
	widths := map[string]float64{"A": 6, "B": 20, "C": 30, "D": 12, "E": 100}
	for col, width := range widths {
		if err := f.SetColWidth(InterviewsSheet, col, col, width); err != nil {
			return err
		}
	}

	for i, experience := range interviews {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			experience.ID, cellText(experience.Company), cellText(experience.Position),
			experience.Date, cellText(experience.Experience),
		}
		if err := f.SetSheetRow(InterviewsSheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []any) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

// cellText truncates s to the characters a single cell can hold, ending
// with an ellipsis when anything was dropped.
func cellText(s string) string {
	if utf8.RuneCountInString(s) <= excelize.TotalCellChars {
		return s
	}
	runes := []rune(s)
	return string(runes[:excelize.TotalCellChars-1]) + "…"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
