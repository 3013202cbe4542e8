package config

import "fmt"

// Store drivers understood by the store/open package.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverFile     = "file"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the portal.
type Config struct {
	StoreDriver string
	StoreDSN    string
	DataDir     string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3Prefix       string

	AdminName string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with values suitable for a single local user.
func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverSQLite
	c.StoreDSN = "nss.db"
	c.DataDir = "data"
	c.S3Bucket = "nss"
	c.S3Region = "us-east-1"
	c.AdminName = "admin"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverPostgres:
		if c.StoreDSN == "" {
			return fmt.Errorf("store driver %q requires a DSN", c.StoreDriver)
		}
	case DriverFile:
		if c.DataDir == "" {
			return fmt.Errorf("store driver %q requires a data directory", c.StoreDriver)
		}
	case DriverS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("store driver %q requires a bucket", c.StoreDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.AdminName == "" {
		return fmt.Errorf("admin name must not be empty")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the optional config file,
// then flags found in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
