// Package models defines the request and response shapes of the recon feature.
package models

import (
	"fmt"
	"time"

	"recon-manager/core/reconcile"
	"recon-manager/core/table"
)

// TablePayload is the wire form of a table: ordered column names plus rows
// of cells. Cells are nullable scalars (JSON null, number, or string).
type TablePayload struct {
	Columns []string        `json:"columns"`
	Rows    [][]table.Value `json:"rows"`
}

// ToTable converts the payload into a core table, validating column
// uniqueness and row arity.
func (p TablePayload) ToTable() (*table.Table, error) {
	t, err := table.New(p.Columns)
	if err != nil {
		return nil, err
	}
	for i, row := range p.Rows {
		if err := t.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

// PayloadFromTable converts a core table into its wire form.
func PayloadFromTable(t *table.Table) TablePayload {
	p := TablePayload{Columns: t.Columns()}
	p.Rows = make([][]table.Value, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		src := t.Row(i)
		row := make([]table.Value, len(src))
		copy(row, src)
		p.Rows = append(p.Rows, row)
	}
	return p
}

// KeyColumns carries optional key column overrides. Empty fields fall back
// to the configured defaults.
type KeyColumns struct {
	LeftID     string `json:"left_id"`
	LeftLogin  string `json:"left_login"`
	RightID    string `json:"right_id"`
	RightLogin string `json:"right_login"`
}

// ReconcileRequest is the body of POST /recon/run.
type ReconcileRequest struct {
	Left  TablePayload `json:"left"`
	Right TablePayload `json:"right"`
	Keys  KeyColumns   `json:"keys"`
}

// TablesRequest is the body of POST /recon/tables.
type TablesRequest struct {
	LeftTable  string     `json:"left_table"`
	RightTable string     `json:"right_table"`
	Keys       KeyColumns `json:"keys"`
}

// ExtractsRequest is the body of POST /recon/extracts.
type ExtractsRequest struct {
	LeftObject  string     `json:"left_object"`
	RightObject string     `json:"right_object"`
	Keys        KeyColumns `json:"keys"`
}

// ReconcileReport is the response of every reconcile endpoint.
type ReconcileReport struct {
	Matched        TablePayload      `json:"matched"`
	UnmatchedLeft  TablePayload      `json:"unmatched_left"`
	UnmatchedRight TablePayload      `json:"unmatched_right"`
	Summary        reconcile.Summary `json:"summary"`
}

// ReportFromResult builds the wire report from an engine result.
func ReportFromResult(left, right *table.Table, result *reconcile.Result) *ReconcileReport {
	return &ReconcileReport{
		Matched:        PayloadFromTable(result.Matched),
		UnmatchedLeft:  PayloadFromTable(result.UnmatchedLeft),
		UnmatchedRight: PayloadFromTable(result.UnmatchedRight),
		Summary:        reconcile.Summarize(left, right, result),
	}
}

// ExtractInfo describes one CSV extract object in the bucket.
type ExtractInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}
