package service

import (
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader is the column layout of the work report export
var csvHeader = []string{
	"Date",
	"Employee Name",
	"Employee Email",
	"Department",
	"Team",
	"Reporting Manager",
	"Task Details",
	"Status",
	"Submitted At (IST)",
	"Last Modified At (IST)",
	"Last Modified By",
}

// ExportCSV streams the requester's visible reports as CSV, one row per
// task. Scope and filters behave exactly like List.
func (s *ReportService) ExportCSV(w io.Writer, requesterEmail string, filter ListReportsFilter) error {
	reports, err := s.repo.Find(s.buildFilter(requesterEmail, filter))
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range reports {
		report := &reports[i]
		for _, task := range report.Tasks {
			row := []string{
				report.Date,
				report.EmployeeName,
				report.EmployeeEmail,
				report.Department,
				report.Team,
				report.ReportingManager,
				task.Details,
				string(task.Status),
				formatIST(report.SubmittedAt),
				formatIST(report.LastModifiedAt),
				report.LastModifiedBy,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
