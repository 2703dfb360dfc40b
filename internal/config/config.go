package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration of the battle simulator.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Tracing
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Battle rules
	Battle BattleConfig `yaml:"battle"`

	// Simulation runs
	Simulation SimulationConfig `yaml:"simulation"`

	// Remote renderer
	Spectate SpectateConfig `yaml:"spectate"`

	// YAML file with move/item overrides, empty for none
	DataOverrides string `yaml:"data_overrides"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// TelemetryConfig controls OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"` // OTLP/HTTP URL, empty = OTEL_EXPORTER_OTLP_ENDPOINT
	SampleRatio float64 `yaml:"sample_ratio"`
}

// BattleConfig holds the rules every simulated battle is played with.
type BattleConfig struct {
	VsType             int     `yaml:"vs_type"` // battlers per side on the field, 1..3
	CriticalMultiplier float64 `yaml:"critical_multiplier"`
	Wild               bool    `yaml:"wild"`
	Seed               uint64  `yaml:"seed"`      // 0 = time based
	MaxTurns           int     `yaml:"max_turns"` // draw after this many turns
}

// SimulationConfig controls the simulation driver.
type SimulationConfig struct {
	Runs        int           `yaml:"runs"`
	Parallelism int           `yaml:"parallelism"`
	Scenario    string        `yaml:"scenario"` // YAML parties, empty = load from database
	Timeout     time.Duration `yaml:"timeout"`

	// Trainers whose stored parties fight when Scenario is empty
	AllyTrainer  int  `yaml:"ally_trainer"`
	EnemyTrainer int  `yaml:"enemy_trainer"`
	SaveResults  bool `yaml:"save_results"` // write parties back after the last run
}

// SpectateConfig exposes battles over a websocket for a remote renderer.
type SpectateConfig struct {
	Enabled     bool          `yaml:"enabled"`
	BindAddress string        `yaml:"bind_address"`
	Port        int           `yaml:"port"`
	WriteWait   time.Duration `yaml:"write_wait"`
	SendQueue   int           `yaml:"send_queue"`
}

// Addr returns host:port of the spectate listener.
func (s SpectateConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.BindAddress, s.Port)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "battlecore",
			Password: "battlecore",
			DBName:   "battlecore",
			SSLMode:  "disable",
		},
		Telemetry: TelemetryConfig{
			SampleRatio: 1.0,
		},
		Battle: BattleConfig{
			VsType:             1,
			CriticalMultiplier: 1.5,
			MaxTurns:           200,
		},
		Simulation: SimulationConfig{
			Runs:         1,
			Parallelism:  4,
			Timeout:      time.Minute,
			AllyTrainer:  1,
			EnemyTrainer: 2,
		},
		Spectate: SpectateConfig{
			BindAddress: "127.0.0.1",
			Port:        8088,
			WriteWait:   5 * time.Second,
			SendQueue:   256,
		},
	}
}

// Validate reports the first setting that cannot run a battle.
func (c Config) Validate() error {
	if c.Battle.VsType < 1 || c.Battle.VsType > 3 {
		return fmt.Errorf("battle.vs_type %d out of range 1..3", c.Battle.VsType)
	}
	if c.Battle.CriticalMultiplier < 1 {
		return fmt.Errorf("battle.critical_multiplier %.2f below 1", c.Battle.CriticalMultiplier)
	}
	if c.Battle.MaxTurns <= 0 {
		return fmt.Errorf("battle.max_turns must be positive, got %d", c.Battle.MaxTurns)
	}
	if c.Simulation.Runs <= 0 || c.Simulation.Parallelism <= 0 {
		return fmt.Errorf("simulation.runs and simulation.parallelism must be positive")
	}
	if c.Simulation.Scenario == "" && !c.Database.Enabled {
		return fmt.Errorf("simulation.scenario is empty and the database is disabled: no parties to load")
	}
	return nil
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
