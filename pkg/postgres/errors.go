package postgres

import "errors"

var (
	ErrParseConfig     = errors.New("postgres: failed to parse connection config")
	ErrOpenConnection  = errors.New("postgres: failed to open connection")
	ErrSetDialect      = errors.New("postgres migrator: failed to set dialect")
	ErrApplyMigrations = errors.New("postgres migrator: failed to apply migrations")
)
