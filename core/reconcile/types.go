package reconcile

import "recon-manager/core/table"

// Scaffold column names used internally during the join. They are renamed
// over the configured key columns of each side and are stripped again
// before any output is produced.
const (
	comparisonID    = "comparison_id"
	comparisonLogin = "comparison_login"
)

// Keys names the id and login columns on each side of the reconciliation.
// Empty fields fall back to the defaults of DefaultKeys.
type Keys struct {
	// LeftID is the id column of the left table.
	LeftID string
	// LeftLogin is the login-name column of the left table.
	LeftLogin string
	// RightID is the id column of the right table.
	RightID string
	// RightLogin is the login-name column of the right table.
	RightLogin string
}

// DefaultKeys returns the standard column names of the dev and UAT login
// extracts: (empid, devloginname) on the left, (id, uatloginname) on the right.
func DefaultKeys() Keys {
	return Keys{
		LeftID:     "empid",
		LeftLogin:  "devloginname",
		RightID:    "id",
		RightLogin: "uatloginname",
	}
}

// withDefaults fills empty fields from DefaultKeys.
func (k Keys) withDefaults() Keys {
	def := DefaultKeys()
	if k.LeftID == "" {
		k.LeftID = def.LeftID
	}
	if k.LeftLogin == "" {
		k.LeftLogin = def.LeftLogin
	}
	if k.RightID == "" {
		k.RightID = def.RightID
	}
	if k.RightLogin == "" {
		k.RightLogin = def.RightLogin
	}
	return k
}

// Result holds the three output partitions of a reconciliation.
type Result struct {
	// Matched contains one row per matching composite-key pair,
	// shaped to the left table's schema.
	Matched *table.Table

	// UnmatchedLeft contains the left rows whose key has no right-side
	// counterpart, shaped to the left table's schema.
	UnmatchedLeft *table.Table

	// UnmatchedRight contains the right rows whose key has no left-side
	// counterpart, shaped to the right table's schema.
	UnmatchedRight *table.Table
}

// provenance marks where a joined row's key was found.
type provenance int

const (
	provBoth provenance = iota
	provLeftOnly
	provRightOnly
)

// joinedRow is one output row of the outer join. left holds normalized
// left-side cells (nil for right_only rows), right holds normalized
// right-side cells (nil for left_only rows).
type joinedRow struct {
	prov  provenance
	left  []table.Value
	right []table.Value
}
