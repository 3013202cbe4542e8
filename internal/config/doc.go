// Package config loads runtime configuration for the NSS portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are parsed as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string     store driver: sqlite, postgres, file, s3 or memory
//	-d string     DSN for the sqlite/postgres drivers
//	-dir string   data directory for the file driver
//	-admin string name stamped on approvals and reviews
//	-l string     log level: debug, info, warn, error
//
// # File schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "nss.db",
//	  "data_dir": "data",
//	  "s3": {"bucket": "nss", "region": "us-east-1", "base_endpoint": "", "access_key": "", "secret_key": "", "prefix": ""},
//	  "admin_name": "admin",
//	  "log": {"level": "info", "format": "text"}
//	}
//
// The YAML form uses the same keys.
package config
