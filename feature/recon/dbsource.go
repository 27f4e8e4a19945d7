package recon

import (
	"context"
	"fmt"
	"strings"

	"recon-manager/core/database"
	"recon-manager/core/table"

	"gorm.io/gorm"
)

// LoadDBTable reads an entire extract table into a core table. The schema
// order comes from the database (SHOW COLUMNS / PRAGMA), so the resulting
// table is a faithful snapshot of the SQL table regardless of map iteration
// order during scanning.
func LoadDBTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Table, error) {
	if db == nil {
		return nil, fmt.Errorf("no database connection configured")
	}

	columns, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist or has no columns", tableName)
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Field
	}
	out, err := table.New(names)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := db.WithContext(ctx).Table(tableName).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", tableName, err)
	}

	for _, raw := range rows {
		// The map scan keys carry the table's declared case while the
		// inspector lowercases column names; fold the keys to match, or a
		// mixed-case column would silently null-fill.
		byName := make(map[string]any, len(raw))
		for k, v := range raw {
			byName[strings.ToLower(k)] = v
		}

		cells := make([]table.Value, len(names))
		for i, name := range names {
			v, err := table.FromAny(byName[name])
			if err != nil {
				return nil, fmt.Errorf("table %s column %s: %w", tableName, name, err)
			}
			cells[i] = v
		}
		if err := out.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return out, nil
}
