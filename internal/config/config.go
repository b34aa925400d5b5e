package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Version   string   `json:"version" mapstructure:"version"`
	SchemaDir string   `json:"schema_dir" mapstructure:"schema_dir"`
	Database  Database `json:"database" mapstructure:"database"`
	Console   Console  `json:"console" mapstructure:"console"`
	Seed      Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Console struct {
	Port           int `json:"port" mapstructure:"port"`
	RowCap         int `json:"row_cap" mapstructure:"row_cap"`
	ConnectTimeout int `json:"connect_timeout" mapstructure:"connect_timeout"` // seconds
}

// Seed carries the record counts for one seeding run plus the generator seed.
// The defaults reproduce the platform's standard demo dataset.
type Seed struct {
	RandomSeed        int64 `json:"random_seed" mapstructure:"random_seed"`
	Admins            int   `json:"admins" mapstructure:"admins"`
	Operators         int   `json:"operators" mapstructure:"operators"`
	Inspectors        int   `json:"inspectors" mapstructure:"inspectors"`
	Passengers        int   `json:"passengers" mapstructure:"passengers"`
	Drivers           int   `json:"drivers" mapstructure:"drivers"`
	VehiclesPerDriver int   `json:"vehicles_per_driver" mapstructure:"vehicles_per_driver"`
	CardsPerOwner     int   `json:"cards_per_owner" mapstructure:"cards_per_owner"`
	Companies         int   `json:"companies" mapstructure:"companies"`
	RepsPerCompany    int   `json:"reps_per_company" mapstructure:"reps_per_company"`
	Rides             int   `json:"rides" mapstructure:"rides"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.SchemaDir == "" {
		cfg.SchemaDir = "db/schema"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "sqlserver"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Console.Port == 0 {
		cfg.Console.Port = 5555
	}
	if cfg.Console.RowCap == 0 {
		cfg.Console.RowCap = 100
	}
	if cfg.Console.ConnectTimeout == 0 {
		cfg.Console.ConnectTimeout = 10
	}

	s := &cfg.Seed
	if s.RandomSeed == 0 {
		s.RandomSeed = 342
	}
	if s.Admins == 0 {
		s.Admins = 5
	}
	if s.Operators == 0 {
		s.Operators = 30
	}
	if s.Inspectors == 0 {
		s.Inspectors = 100
	}
	if s.Passengers == 0 {
		s.Passengers = 300
	}
	if s.Drivers == 0 {
		s.Drivers = 400
	}
	if s.VehiclesPerDriver == 0 {
		s.VehiclesPerDriver = 2
	}
	if s.CardsPerOwner == 0 {
		s.CardsPerOwner = 3
	}
	if s.Companies == 0 {
		s.Companies = 5
	}
	if s.RepsPerCompany == 0 {
		s.RepsPerCompany = 40
	}
	if s.Rides == 0 {
		s.Rides = 10
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"sqlserver", "mssql", "postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}
	return nil
}

// GetDatabaseURL resolves the connection string. An explicit URL in the
// configured environment variable wins; otherwise the string is assembled
// from DB_HOST, DB_NAME and DB_PASS. The login defaults to the database
// name unless DB_USER is set — that mirrors the platform's provisioning,
// where each database is owned by a same-named login.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}

	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	pass := os.Getenv("DB_PASS")
	user := os.Getenv("DB_USER")
	if user == "" {
		user = name
	}

	switch c.Database.Provider {
	case "sqlite", "sqlite3":
		if name == "" {
			return "", fmt.Errorf("DB_NAME not set (path to the sqlite file)")
		}
		return name, nil
	}

	if host == "" || name == "" {
		return "", fmt.Errorf("database URL not found in %s and DB_HOST/DB_NAME are not set", c.Database.URLEnv)
	}

	switch c.Database.Provider {
	case "sqlserver", "mssql":
		u := &url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(user, pass),
			Host:     withDefaultPort(host, "1433"),
			RawQuery: url.Values{"database": {name}, "encrypt": {"true"}, "TrustServerCertificate": {"true"}}.Encode(),
		}
		return u.String(), nil
	case "postgresql", "postgres":
		u := &url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(user, pass),
			Host:     withDefaultPort(host, "5432"),
			Path:     "/" + name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", user, pass, withDefaultPort(host, "3306"), name), nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", c.Database.Provider)
	}
}

func withDefaultPort(host, port string) string {
	if strings.Contains(host, ":") {
		return host
	}
	return host + ":" + port
}

// GetSchemaFiles returns all .sql files in the schema directory, sorted by name.
func (c *Config) GetSchemaFiles() ([]string, error) {
	entries, err := os.ReadDir(c.SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory %s: %w", c.SchemaDir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, filepath.Join(c.SchemaDir, entry.Name()))
		}
	}
	return files, nil
}
