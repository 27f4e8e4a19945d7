// Package table provides the in-memory tabular data model used by the
// reconciliation engine.
//
// A Table is an ordered set of named columns plus an ordered sequence of rows.
// Every cell holds a Value, a tagged nullable scalar that is one of
// int, float, string, or null. The tagged representation makes null handling
// and cross-type comparison explicit instead of relying on interface{}
// sentinels.
//
// # Ownership
//
// Tables handed to the reconcile engine are treated as immutable snapshots:
// the engine only ever works on copies produced by Clone or Rename.
// Accessors that return slices document whether the slice is shared.
//
// # CSV
//
// ReadCSV and WriteCSV convert between Tables and CSV documents with a
// header row. On read, empty cells become null and numeric-looking cells
// are parsed into int or float values.
//
// # Usage
//
//	t, _ := table.New([]string{"empid", "devloginname"})
//	_ = t.AppendRow(table.Int(1), table.Str("john"))
//	v, _ := t.Cell(0, "devloginname")
package table
