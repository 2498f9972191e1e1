package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is a titled grid of report rows.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]any
}

func VacancySheet(rows []Vacancy) *Sheet {
	s := &Sheet{
		Title:  "Vacancies",
		Header: []string{"PID", "Address", "Price", "Beds", "Occupied", "Vacant"},
	}
	for _, v := range rows {
		s.Rows = append(s.Rows, []any{v.PID, v.Address, v.Price.StringFixed(2), v.Bed, v.CurrentOccupancy, v.VacantBeds})
	}
	return s
}

func LandlordSheet(rows []LandlordTenants) *Sheet {
	s := &Sheet{
		Title:  "Landlords",
		Header: []string{"LLID", "Name", "Tenants"},
	}
	for _, l := range rows {
		s.Rows = append(s.Rows, []any{l.LLID, l.Name, l.TotalTenants})
	}
	return s
}

// WriteTable prints the sheet as a left-aligned text table.
func (s *Sheet) WriteTable(w io.Writer) error {
	widths := make([]int, len(s.Header))
	for i, h := range s.Header {
		widths[i] = len(h)
	}
	cells := make([][]string, len(s.Rows))
	for r, row := range s.Rows {
		cells[r] = make([]string, len(row))
		for i, v := range row {
			cells[r][i] = fmt.Sprint(v)
			if i < len(widths) && len(cells[r][i]) > widths[i] {
				widths[i] = len(cells[r][i])
			}
		}
	}

	line := func(values []string) error {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := line(s.Header); err != nil {
		return err
	}
	for _, row := range cells {
		if err := line(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteXLSX saves the sheet as an Excel workbook with a bold header row.
func (s *Sheet) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), s.Title); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range s.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Title, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Title, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	for r, row := range s.Rows {
		for i, v := range row {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.Title, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
