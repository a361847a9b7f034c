package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AnalyzerConfig holds analysis engine settings.
type AnalyzerConfig struct {
	// TopK is the default number of candidates returned per analysis.
	TopK int `yaml:"top_k" env:"ANALYZER_TOP_K" env-default:"15"`
	// MaxMatches caps suffix matches expanded per word class.
	MaxMatches int `yaml:"max_matches" env:"ANALYZER_MAX_MATCHES" env-default:"10"`
	// SuffixTable optionally points at a JSON suffix table on disk; empty
	// means the embedded table.
	SuffixTable string `yaml:"suffix_table" env:"ANALYZER_SUFFIX_TABLE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
