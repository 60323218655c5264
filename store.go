package poquery

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Driver selects the relational store dialect.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
	DriverSQLite   Driver = "sqlite"
)

// StoreConfig describes how to reach the record store. The engine itself
// never opens connections; callers build the handle here (or bring their
// own *gorm.DB) and inject it via NewEngine.
type StoreConfig struct {
	Driver Driver
	DSN    string
	// LogLevel controls gorm's SQL logging; zero value keeps gorm's
	// default (warn).
	LogLevel logger.LogLevel
}

// OpenStore opens a store handle for cfg.
func OpenStore(cfg StoreConfig) (*gorm.DB, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if cfg.LogLevel != 0 {
		gormCfg.Logger = logger.Default.LogMode(cfg.LogLevel)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}

	return db, nil
}

func (c StoreConfig) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres:
		return postgres.Open(c.DSN), nil
	case DriverMySQL:
		return mysql.Open(c.DSN), nil
	case DriverSQLite:
		return sqlite.Open(c.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported store driver '%s'", c.Driver)
	}
}
