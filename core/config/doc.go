// Package config provides configuration management for Recon Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and a local .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the login extract tables
//   - Storage: S3/MinIO credentials and bucket settings for CSV extracts
//   - Log: Logging level and format
//   - Recon: Default key column names and extract table names
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Recon.LeftIDColumn)
package config
