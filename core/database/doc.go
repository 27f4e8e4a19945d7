// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections for the
// login extract tables, plus SQLite support for in-memory testing.
//
// # Connect
//
// The generic Connect function establishes a connection based on the
// configured driver. Connection establishment is agnostic to the extract
// schema; the recon DB source inspects the actual columns at load time.
//
// # Schema Inspection
//
// GetTableColumns retrieves a table's column definitions in schema order,
// which the recon DB source uses to build a Table schema before scanning rows.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "dev_logins")
package database
