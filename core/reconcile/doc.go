// Package reconcile partitions two tabular record sets by a composite
// (id, login) key into three outputs: rows present on both sides, rows
// present only on the left, and rows present only on the right.
//
// # Architecture
//
// The engine runs four explicit steps:
//
//  1. Validate: the configured id and login columns must exist on their
//     side; a missing column fails fast with MissingColumnError before any
//     join work happens.
//
//  2. Normalize: working copies of both tables are produced with the key
//     columns renamed to the fixed scaffold names comparison_id and
//     comparison_login, so the join is a single generic equality join
//     regardless of each side's real column names.
//
//  3. Outer join: an explicit hash join on the composite key. The right
//     side is indexed by key, the left side probes it, and every joined
//     row carries a provenance marker (both, left_only, right_only).
//     Duplicate keys fan out: k left rows and m right rows sharing a key
//     produce k*m matched rows. Rows whose id or login is null never
//     match anything.
//
//  4. Partition and reshape: joined rows are split by provenance and each
//     partition is projected back onto the original schema of its owning
//     side. The scaffold columns and the marker never leak into outputs;
//     target columns with no source value are null-filled.
//
// # Guarantees
//
// Every left row lands in exactly one of Matched or UnmatchedLeft, every
// right row in exactly one of Matched or UnmatchedRight. Matched and
// UnmatchedLeft carry the left table's schema, UnmatchedRight the right
// table's. Inputs are never mutated.
//
// # Usage Example
//
//	result, err := reconcile.Reconcile(devTable, uatTable, reconcile.DefaultKeys())
//	if err != nil {
//	    var missing *reconcile.MissingColumnError
//	    if errors.As(err, &missing) {
//	        // bad input, fix the column names and retry
//	    }
//	}
//	fmt.Println(result.Matched.NumRows())
package reconcile
