package config

import "time"

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "consent-bridge",
			TokenDuration: time.Hour,
			Operator:      "support",
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:consent-bridge.db?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			NativeAddress:  "http://localhost:8765",
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			DiagnosticsInterval: 15 * time.Minute,
		},
	}
}
