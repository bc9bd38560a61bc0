package models

import (
	"fmt"
	"io"
	"sort"

	"gorm.io/gorm"
)

/*
Column Mismatch Report Usage:

Compares the live table with the Go model and lists the columns that only
exist on one side. Run it with:

	portfolio migrate --report

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: projects ---
Found 1 model columns missing from the table:
  - how_to_run

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// ColumnReport lists the differences between one table and its model.
type ColumnReport struct {
	Table   string
	Missing []string // mapped by the model, absent from the table
	Unknown []string // present in the table, not mapped by the model
}

func (r ColumnReport) Mismatches() int {
	return len(r.Missing) + len(r.Unknown)
}

// ReportModels builds a ColumnReport for each model.
func ReportModels(db *gorm.DB, models ...any) ([]ColumnReport, error) {
	reports := make([]ColumnReport, 0, len(models))
	for _, model := range models {
		report, err := reportModel(db, model)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func reportModel(db *gorm.DB, model any) (ColumnReport, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return ColumnReport{}, fmt.Errorf("error parsing model %T: %w", model, err)
	}
	report := ColumnReport{Table: stmt.Schema.Table}

	columns, err := TableColumns(db, report.Table)
	if err != nil {
		return ColumnReport{}, err
	}

	tableColumns := make(map[string]bool, len(columns))
	for _, name := range columns {
		tableColumns[name] = true
	}
	modelColumns := make(map[string]bool, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		modelColumns[name] = true
		if !tableColumns[name] {
			report.Missing = append(report.Missing, name)
		}
	}
	for name := range tableColumns {
		if !modelColumns[name] {
			report.Unknown = append(report.Unknown, name)
		}
	}
	sort.Strings(report.Unknown)

	return report, nil
}

// TableColumns lists the columns of table in declaration order. A missing
// table yields an empty list.
func TableColumns(db *gorm.DB, table string) ([]string, error) {
	var columns []string
	err := db.Raw("SELECT name FROM pragma_table_info(?) ORDER BY cid", table).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", table, err)
	}
	return columns, nil
}

// WriteColumnReport prints reports in the human-readable layout shown above.
func WriteColumnReport(w io.Writer, reports []ColumnReport) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	total := 0
	for _, r := range reports {
		fmt.Fprintf(w, "--- Table: %s ---\n", r.Table)
		if r.Mismatches() == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			continue
		}
		if len(r.Missing) > 0 {
			fmt.Fprintf(w, "Found %d model columns missing from the table:\n", len(r.Missing))
			for _, col := range r.Missing {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
		if len(r.Unknown) > 0 {
			fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(r.Unknown))
			for _, col := range r.Unknown {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
		total += r.Mismatches()
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
}
