package reconcile

import (
	"math"
	"strconv"

	"recon-manager/core/table"
)

// Reconcile partitions left and right by the composite (id, login) key
// named in keys. It returns the three output tables described in Result,
// or a MissingColumnError when a key column is absent, or an
// UnexpectedError for any other failure. Inputs are never mutated.
func Reconcile(left, right *table.Table, keys Keys) (*Result, error) {
	keys = keys.withDefaults()

	// Validation happens before any join work.
	checks := []struct {
		column string
		t      *table.Table
		side   Side
	}{
		{keys.LeftID, left, SideLeft},
		{keys.LeftLogin, left, SideLeft},
		{keys.RightID, right, SideRight},
		{keys.RightLogin, right, SideRight},
	}
	for _, c := range checks {
		if !c.t.HasColumn(c.column) {
			return nil, &MissingColumnError{Column: c.column, Side: c.side}
		}
	}

	// Step 1: working copies with the key columns renamed to the scaffold
	// names, so the join does not care about the real column names.
	normLeft, err := normalize(left, keys.LeftID, keys.LeftLogin)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}
	normRight, err := normalize(right, keys.RightID, keys.RightLogin)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}

	// Step 2: full outer hash join on the composite key.
	joined := outerJoin(normLeft, normRight)

	// Step 3: partition by provenance marker.
	var matchedRows, leftOnlyRows, rightOnlyRows [][]table.Value
	for _, row := range joined {
		switch row.prov {
		case provBoth:
			matchedRows = append(matchedRows, row.left)
		case provLeftOnly:
			leftOnlyRows = append(leftOnlyRows, row.left)
		case provRightOnly:
			rightOnlyRows = append(rightOnlyRows, row.right)
		}
	}

	// Step 4: reshape each partition back onto its owning side's schema.
	matched, err := reshape(matchedRows, normLeft.Columns(), left.Columns(), keys.LeftID, keys.LeftLogin)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}
	unmatchedLeft, err := reshape(leftOnlyRows, normLeft.Columns(), left.Columns(), keys.LeftID, keys.LeftLogin)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}
	unmatchedRight, err := reshape(rightOnlyRows, normRight.Columns(), right.Columns(), keys.RightID, keys.RightLogin)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}

	return &Result{
		Matched:        matched,
		UnmatchedLeft:  unmatchedLeft,
		UnmatchedRight: unmatchedRight,
	}, nil
}

// normalize returns a copy of t with the id and login columns renamed to
// the scaffold names. All other columns keep their order.
func normalize(t *table.Table, idColumn, loginColumn string) (*table.Table, error) {
	renamed, err := t.Rename(idColumn, comparisonID)
	if err != nil {
		return nil, err
	}
	return renamed.Rename(loginColumn, comparisonLogin)
}

// outerJoin computes the full outer join of the two normalized tables on
// (comparison_id, comparison_login). The right side is the build side, the
// left side probes in input order, so output order is stable for a given
// input. Duplicate keys fan out into the full cartesian product per key
// group. Rows whose id or login is null never match.
func outerJoin(normLeft, normRight *table.Table) []joinedRow {
	leftID, _ := normLeft.ColumnIndex(comparisonID)
	leftLogin, _ := normLeft.ColumnIndex(comparisonLogin)
	rightID, _ := normRight.ColumnIndex(comparisonID)
	rightLogin, _ := normRight.ColumnIndex(comparisonLogin)

	// Build: index right rows by composite key.
	rightByKey := make(map[string][]int, normRight.NumRows())
	for i := 0; i < normRight.NumRows(); i++ {
		row := normRight.Row(i)
		key, ok := compositeKey(row[rightID], row[rightLogin])
		if !ok {
			continue
		}
		rightByKey[key] = append(rightByKey[key], i)
	}

	out := make([]joinedRow, 0, normLeft.NumRows()+normRight.NumRows())
	rightSeen := make([]bool, normRight.NumRows())

	// Probe: left rows in input order.
	for i := 0; i < normLeft.NumRows(); i++ {
		row := normLeft.Row(i)
		key, ok := compositeKey(row[leftID], row[leftLogin])
		var matches []int
		if ok {
			matches = rightByKey[key]
		}
		if len(matches) == 0 {
			out = append(out, joinedRow{prov: provLeftOnly, left: row})
			continue
		}
		for _, j := range matches {
			rightSeen[j] = true
			out = append(out, joinedRow{prov: provBoth, left: row, right: normRight.Row(j)})
		}
	}

	// Right rows whose key was never probed successfully.
	for j := 0; j < normRight.NumRows(); j++ {
		if !rightSeen[j] {
			out = append(out, joinedRow{prov: provRightOnly, right: normRight.Row(j)})
		}
	}

	return out
}

// compositeKey encodes an (id, login) pair into a hashable string key.
// The second return is false when either component is null; such rows
// cannot match anything.
func compositeKey(id, login table.Value) (string, bool) {
	if id.IsNull() || login.IsNull() {
		return "", false
	}
	return keyPart(id) + "\x1f" + keyPart(login), true
}

// keyPart encodes a single key component. The encoding is kind-tagged so
// Int(1) and Str("1") stay distinct, while an integral float collapses to
// the int form so Int(1) and Float(1.0) meet in the same bucket.
// Strings are length-prefixed so embedded separators cannot collide.
func keyPart(v table.Value) string {
	switch v.Kind() {
	case table.KindInt:
		return "i:" + strconv.FormatInt(v.AsInt(), 10)
	case table.KindFloat:
		f := v.AsFloat()
		// The upper bound is exclusive: math.MaxInt64 rounds to 1<<63 as a
		// float64, and int64(1<<63) would overflow.
		if f == math.Trunc(f) && f >= math.MinInt64 && f < 1<<63 {
			return "i:" + strconv.FormatInt(int64(f), 10)
		}
		return "f:" + strconv.FormatFloat(f, 'b', -1, 64)
	default:
		s := v.AsString()
		return "s:" + strconv.Itoa(len(s)) + ":" + s
	}
}

// reshape projects normalized rows back onto the owning side's original
// schema. The owning side's key columns are restored from the scaffold
// columns; any target column with no source value is null-filled; columns
// outside the target schema (scaffolds included) are dropped.
func reshape(rows [][]table.Value, from, target []string, idColumn, loginColumn string) (*table.Table, error) {
	out, err := table.New(target)
	if err != nil {
		return nil, err
	}

	src := make(map[string]int, len(from))
	for i, name := range from {
		src[name] = i
	}

	for _, row := range rows {
		cells := make([]table.Value, len(target))
		for c, name := range target {
			lookup := name
			switch name {
			case idColumn:
				lookup = comparisonID
			case loginColumn:
				lookup = comparisonLogin
			}
			if i, ok := src[lookup]; ok {
				cells[c] = row[i]
			} else {
				cells[c] = table.Null()
			}
		}
		if err := out.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return out, nil
}
