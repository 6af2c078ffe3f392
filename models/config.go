package models

type Config struct {
	AppConf App         `json:"app"`
	DB      DBStruct    `json:"db"`
	Cache   CacheStruct `json:"cache"`
	Sentry  SentryConf  `json:"sentry"`
	Log     LogConf     `json:"log"`
}

type App struct {
	ServerName    string   `json:"serverName"`
	Port          int64    `json:"portRun"`
	Debug         bool     `json:"debug"`
	ReadTimeout   int64    `json:"read_timeout_seconds"`
	WriteTimeout  int64    `json:"write_timeout_seconds"`
	StatsInterval int64    `json:"stats_interval_seconds"`
	Location      string   `json:"location"` // IANA zone used for the same-day cancellation rule
	CORSOrigins   []string `json:"cors_origins"`
}

type DBStruct struct {
	DSN          string `json:"dsn"`
	MaxOpenConns int    `json:"max_open_conns"`
	LogSQL       bool   `json:"log_sql"`
}

// CacheStruct configures the request throttle kept in go-cache.
type CacheStruct struct {
	LessRequestTime LessReq `json:"less_requests_time"`
	CleaningTime    int64   `json:"cleaning_time_seconds"`
	CheckingTIme    int64   `json:"checking_time_seconds"`
	WaitTime        int64   `json:"wait_time_seconds"`
}

type LessReq struct {
	MaxRepeat int64 `json:"max_repeating"`
	Duration  int64 `json:"duration_seconds"`
}

type SentryConf struct {
	DSN         string `json:"dsn"`
	Environment string `json:"environment"`
}

type LogConf struct {
	Level string `json:"level"`
}
