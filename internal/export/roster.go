package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

const (
	// ContentTypeXLSX is the MIME type of the workbook WriteRoster produces.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	membersSheet   = "Members"
	companiesSheet = "Companies"
	dateLayout     = "2006-01-02"
)

var memberHeader = []string{"Name", "Email", "Role", "Company", "Title", "Location", "LinkedIn", "Active", "Joined"}

var companyHeader = []string{"Company", "One-liner", "Website", "Founders"}

var memberWidths = []float64{24, 32, 10, 24, 24, 18, 36, 8, 12}

var companyWidths = []float64{24, 48, 32, 48}

// RosterFilename is the download name for a batch roster.
func RosterFilename(batch model.Batch) string {
	return fmt.Sprintf("%s-roster.xlsx", batch.Slug)
}

// WriteRoster writes the batch members and companies as an .xlsx workbook.
func WriteRoster(w io.Writer, roster model.Roster) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", membersSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writeHeader(f, membersSheet, memberHeader, memberWidths, headerStyle); err != nil {
		return err
	}

	members := append([]model.User(nil), roster.Members...)
	sort.SliceStable(members, func(i, j int) bool {
		return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
	})

	for i, m := range members {
		company := ""
		if m.CompanyID != nil {
			if c, ok := roster.Companies[*m.CompanyID]; ok {
				company = c.Name
			}
		}
		active := "No"
		if m.IsActive {
			active = "Yes"
		}
		row := []any{
			m.Name,
			m.Email,
			string(m.Role),
			company,
			deref(m.Title),
			deref(m.Location),
			deref(m.LinkedInURL),
			active,
			m.CreatedAt.Format(dateLayout),
		}
		if err := writeRow(f, membersSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(companiesSheet); err != nil {
		return fmt.Errorf("creating companies sheet: %w", err)
	}
	if err := writeHeader(f, companiesSheet, companyHeader, companyWidths, headerStyle); err != nil {
		return err
	}

	companies := make([]model.Company, 0, len(roster.Companies))
	for _, c := range roster.Companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		return strings.ToLower(companies[i].Name) < strings.ToLower(companies[j].Name)
	})

	for i, c := range companies {
		var founders []string
		for _, m := range members {
			if m.CompanyID != nil && *m.CompanyID == c.ID {
				founders = append(founders, m.Name)
			}
		}
		row := []any{c.Name, deref(c.OneLiner), deref(c.Website), strings.Join(founders, ", ")}
		if err := writeRow(f, companiesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   roster.Batch.Name + " roster",
		Creator: "Founder Sprint",
	}); err != nil {
		return fmt.Errorf("setting document properties: %w", err)
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []string, widths []float64, style int) error {
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("converting coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("setting header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("setting header style: %w", err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("converting column number: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header row: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("converting coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
