package reconcile

import "recon-manager/core/table"

// Summary provides aggregate counts for a reconciliation run.
// Matched can exceed LeftRows or RightRows when duplicate keys fan out.
type Summary struct {
	// LeftRows is the row count of the left input.
	LeftRows int `json:"left_rows"`

	// RightRows is the row count of the right input.
	RightRows int `json:"right_rows"`

	// Matched is the number of matched composite-key pairs.
	Matched int `json:"matched"`

	// UnmatchedLeft is the number of left rows with no right counterpart.
	UnmatchedLeft int `json:"unmatched_left"`

	// UnmatchedRight is the number of right rows with no left counterpart.
	UnmatchedRight int `json:"unmatched_right"`
}

// Summarize builds aggregate counts from a reconciliation result.
func Summarize(left, right *table.Table, result *Result) Summary {
	return Summary{
		LeftRows:       left.NumRows(),
		RightRows:      right.NumRows(),
		Matched:        result.Matched.NumRows(),
		UnmatchedLeft:  result.UnmatchedLeft.NumRows(),
		UnmatchedRight: result.UnmatchedRight.NumRows(),
	}
}
