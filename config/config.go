package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	ApiPrefix string `yaml:"api_prefix" json:"api_prefix"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type JobConfig struct {
	// RevenueAudit is a cron expression for the inventory revenue audit job.
	// Empty disables the job.
	RevenueAudit string `yaml:"revenue_audit" json:"revenue_audit"`
	// RevenueAuditDays bounds how many recent inventory days the audit rechecks.
	RevenueAuditDays int `yaml:"revenue_audit_days" json:"revenue_audit_days"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
	Jobs     JobConfig `yaml:"jobs" json:"jobs"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "patisserie",
			Location: "Europe/Paris",
			Workdir:  "/var/patisserie",
			Debug:    true,
		},
		Web: WebConfig{
			Host:      "0.0.0.0",
			Port:      8000,
			ApiPrefix: "/api",
		},
		Database: DBConfig{
			Type:   "postgres",
			Host:   "127.0.0.1",
			Port:   5432,
			Name:   "halimou",
			User:   "postgres",
			Passwd: "postgres",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/patisserie/patisserie.log",
		},
		Jobs: JobConfig{
			RevenueAudit:     "0 3 * * *",
			RevenueAuditDays: 31,
		},
	}
}

// LoadConfig reads the yaml configuration file and applies environment
// overrides. A missing file is not an error; defaults are used.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if cfile != "" {
		data, err := os.ReadFile(filepath.Clean(cfile))
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, errors.Wrap(err, "read config file")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "parse config file")
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	setEnvString(&c.Database.Type, "PATISSERIE_DB_TYPE")
	setEnvString(&c.Database.Host, "PATISSERIE_DB_HOST")
	setEnvString(&c.Database.Name, "PATISSERIE_DB_NAME")
	setEnvString(&c.Database.User, "PATISSERIE_DB_USER")
	setEnvString(&c.Database.Passwd, "PATISSERIE_DB_PASSWD")
	setEnvString(&c.Web.Host, "PATISSERIE_WEB_HOST")
	setEnvString(&c.System.Workdir, "PATISSERIE_WORKDIR")
	setEnvString(&c.Logger.Mode, "PATISSERIE_LOGGER_MODE")
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
