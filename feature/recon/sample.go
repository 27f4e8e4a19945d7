package recon

import "recon-manager/core/table"

// SampleTables returns a small pair of demo extracts with two matching
// logins, two dev-only logins, and two UAT-only logins. Used by the CLI
// --sample mode and by tests.
func SampleTables() (*table.Table, *table.Table) {
	left := table.MustNew([]string{"empid", "devloginname", "appname"})
	mustAppend(left, table.Int(1), table.Str("john"), table.Str("app1"))
	mustAppend(left, table.Int(2), table.Str("jane"), table.Str("app2"))
	mustAppend(left, table.Int(3), table.Str("mike"), table.Str("app3"))
	mustAppend(left, table.Int(4), table.Str("sara"), table.Str("app4"))

	right := table.MustNew([]string{"id", "uatloginname", "idtype"})
	mustAppend(right, table.Int(1), table.Str("john"), table.Str("type1"))
	mustAppend(right, table.Int(2), table.Str("jane"), table.Str("type2"))
	mustAppend(right, table.Int(5), table.Str("tom"), table.Str("type3"))
	mustAppend(right, table.Int(6), table.Str("lisa"), table.Str("type4"))

	return left, right
}

// mustAppend panics on arity mismatch; the sample rows are static.
func mustAppend(t *table.Table, cells ...table.Value) {
	if err := t.AppendRow(cells...); err != nil {
		panic(err)
	}
}
