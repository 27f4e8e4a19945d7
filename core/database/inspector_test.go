package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Create a dev-extract shaped table
	err = db.Exec("CREATE TABLE dev_logins (empid INTEGER PRIMARY KEY, devloginname TEXT, appname TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "dev_logins")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	// Column order must match the schema order.
	assert.Equal(t, "empid", columns[0].Field)
	assert.Equal(t, "devloginname", columns[1].Field)
	assert.Equal(t, "appname", columns[2].Field)
	assert.Equal(t, "integer", columns[0].Type)

	// PRAGMA table_info returns empty for a non-existent table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
