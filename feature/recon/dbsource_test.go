package recon

import (
	"context"
	"testing"

	"recon-manager/core/table"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestLoadDBTable(t *testing.T) {
	db, mock := setupMockDB(t)

	schemaRows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("empid", "int", "NO", "PRI", nil, "").
		AddRow("devloginname", "varchar(64)", "YES", "", nil, "").
		AddRow("appname", "varchar(64)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `dev_logins`").WillReturnRows(schemaRows)

	dataRows := sqlmock.NewRows([]string{"empid", "devloginname", "appname"}).
		AddRow(1, "john", "app1").
		AddRow(2, "jane", nil)
	mock.ExpectQuery("SELECT \\* FROM `dev_logins`").WillReturnRows(dataRows)

	tbl, err := LoadDBTable(context.Background(), db, "dev_logins")
	assert.NoError(t, err)
	assert.Equal(t, []string{"empid", "devloginname", "appname"}, tbl.Columns())
	assert.Equal(t, 2, tbl.NumRows())

	v, ok := tbl.Cell(0, "empid")
	assert.True(t, ok)
	assert.Equal(t, table.KindInt, v.Kind())
	assert.Equal(t, int64(1), v.AsInt())

	// SQL NULL becomes a null cell.
	v, ok = tbl.Cell(1, "appname")
	assert.True(t, ok)
	assert.True(t, v.IsNull())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDBTable_MixedCaseColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	schemaRows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("EmpID", "int", "NO", "PRI", nil, "").
		AddRow("DevLoginName", "varchar(64)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `dev_logins`").WillReturnRows(schemaRows)

	dataRows := sqlmock.NewRows([]string{"EmpID", "DevLoginName"}).
		AddRow(7, "amy")
	mock.ExpectQuery("SELECT \\* FROM `dev_logins`").WillReturnRows(dataRows)

	tbl, err := LoadDBTable(context.Background(), db, "dev_logins")
	assert.NoError(t, err)
	assert.Equal(t, []string{"empid", "devloginname"}, tbl.Columns())
	assert.Equal(t, 1, tbl.NumRows())

	// Values land under the lowercased column names instead of null-filling.
	v, ok := tbl.Cell(0, "empid")
	assert.True(t, ok)
	assert.Equal(t, table.KindInt, v.Kind())
	assert.Equal(t, int64(7), v.AsInt())

	v, ok = tbl.Cell(0, "devloginname")
	assert.True(t, ok)
	assert.Equal(t, "amy", v.AsString())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDBTable_MissingTable(t *testing.T) {
	db, mock := setupMockDB(t)

	// No columns back means the table does not exist.
	mock.ExpectQuery("SHOW COLUMNS FROM `nope`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

	tbl, err := LoadDBTable(context.Background(), db, "nope")
	assert.Nil(t, tbl)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestLoadDBTable_NilConnection(t *testing.T) {
	tbl, err := LoadDBTable(context.Background(), nil, "dev_logins")
	assert.Nil(t, tbl)
	assert.Error(t, err)
}
