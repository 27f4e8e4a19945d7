package reconcile

// Config holds the default reconciliation settings loaded from the
// environment. Column names left empty fall back to DefaultKeys.
type Config struct {
	// LeftIDColumn is the id column of the left (dev) extract.
	LeftIDColumn string `mapstructure:"left_id_column" default:"empid"`
	// LeftLoginColumn is the login-name column of the left (dev) extract.
	LeftLoginColumn string `mapstructure:"left_login_column" default:"devloginname"`
	// RightIDColumn is the id column of the right (UAT) extract.
	RightIDColumn string `mapstructure:"right_id_column" default:"id"`
	// RightLoginColumn is the login-name column of the right (UAT) extract.
	RightLoginColumn string `mapstructure:"right_login_column" default:"uatloginname"`
	// LeftTable is the default database table holding the dev extract.
	LeftTable string `mapstructure:"left_table" default:"dev_logins"`
	// RightTable is the default database table holding the UAT extract.
	RightTable string `mapstructure:"right_table" default:"uat_logins"`
}

// Keys converts the configured column names into engine Keys.
func (c Config) Keys() Keys {
	return Keys{
		LeftID:     c.LeftIDColumn,
		LeftLogin:  c.LeftLoginColumn,
		RightID:    c.RightIDColumn,
		RightLogin: c.RightLoginColumn,
	}.withDefaults()
}
