package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/nssportal/internal/flagx"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Empty fields leave the current value alone.
type fileConfig struct {
	StoreDriver string `json:"store_driver" yaml:"store_driver"`
	StoreDSN    string `json:"store_dsn" yaml:"store_dsn"`
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	S3          struct {
		Bucket       string `json:"bucket" yaml:"bucket"`
		Region       string `json:"region" yaml:"region"`
		BaseEndpoint string `json:"base_endpoint" yaml:"base_endpoint"`
		AccessKey    string `json:"access_key" yaml:"access_key"`
		SecretKey    string `json:"secret_key" yaml:"secret_key"`
		Prefix       string `json:"prefix" yaml:"prefix"`
	} `json:"s3" yaml:"s3"`
	AdminName string `json:"admin_name" yaml:"admin_name"`
	Log       struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.StoreDriver, fc.StoreDriver)
	set(&cfg.StoreDSN, fc.StoreDSN)
	set(&cfg.DataDir, fc.DataDir)
	set(&cfg.S3Bucket, fc.S3.Bucket)
	set(&cfg.S3Region, fc.S3.Region)
	set(&cfg.S3BaseEndpoint, fc.S3.BaseEndpoint)
	set(&cfg.S3AccessKey, fc.S3.AccessKey)
	set(&cfg.S3SecretKey, fc.S3.SecretKey)
	set(&cfg.S3Prefix, fc.S3.Prefix)
	set(&cfg.AdminName, fc.AdminName)
	set(&cfg.LogLevel, fc.Log.Level)
	set(&cfg.LogFormat, fc.Log.Format)
}
