// Package export renders worker and booking listings as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	WorkersSheet  = "Workers"
	BookingsSheet = "Bookings"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var workerHeaders = []string{
	"ID", "Name", "Passport", "Nationality", "Religion", "Profession", "Marital Status",
	"Age", "Status", "Experience (years)", "Languages", "Skills", "Salary Expectation", "Created At",
}

var bookingHeaders = []string{
	"ID", "Worker ID", "Worker", "Profession", "Nationality", "Full Name", "Phone", "Email",
	"Address", "Status", "Preferred Start", "Contract Duration", "Created At", "Updated At",
}

// WriteWorkers streams workers into a single-sheet workbook written to w.
func WriteWorkers(w io.Writer, workers []domain.Worker) error {
	rows := make([][]interface{}, 0, len(workers))
	for _, wk := range workers {
		rows = append(rows, []interface{}{
			wk.ID, wk.Name, wk.PassportNumber, string(wk.Nationality), optional(wk.Religion),
			string(wk.Profession), optional(wk.MaritalStatus), wk.Age, string(wk.Status),
			wk.ExperienceYears, wk.LanguagesSpoken, wk.Skills, salary(wk.SalaryExpectation),
			wk.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return write(w, WorkersSheet, workerHeaders, rows)
}

func WriteBookings(w io.Writer, bookings []domain.Booking) error {
	rows := make([][]interface{}, 0, len(bookings))
	for _, b := range bookings {
		start := ""
		if b.PreferredStartDate != nil {
			start = b.PreferredStartDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			b.ID, b.WorkerID, b.WorkerName, string(b.WorkerProfession), string(b.WorkerNationality),
			b.FullName, b.PhoneNumber, b.Email, b.Address, string(b.Status), start, b.ContractDuration,
			b.CreatedAt.UTC().Format(time.RFC3339), b.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return write(w, BookingsSheet, bookingHeaders, rows)
}

func write(w io.Writer, sheet string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = excelize.Cell{Value: h, StyleID: headerStyle}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func optional[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func salary(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
