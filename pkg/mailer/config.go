package mailer

// Config holds mailer behavior settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// DefaultLanguage substitutes for send requests that carry no language.
	DefaultLanguage string `env:"MAILBRIDGE_DEFAULT_LANGUAGE" envDefault:"en"`

	// DisableLogging stops successful sends from being recorded. The zero
	// value keeps history on, so every send outcome stays observable. Failed
	// sends are always recorded; losing failure history is never useful.
	DisableLogging bool `env:"MAILBRIDGE_DISABLE_LOGGING" envDefault:"false"`

	// LogRetentionDays is how long send history is kept before pruning.
	LogRetentionDays int `env:"MAILBRIDGE_LOG_RETENTION_DAYS" envDefault:"30"`

	// DateFormat and TimeFormat render the current_date and current_time
	// site variables, in Go reference-time layout.
	DateFormat string `env:"MAILBRIDGE_DATE_FORMAT" envDefault:"January 2, 2006"`
	TimeFormat string `env:"MAILBRIDGE_TIME_FORMAT" envDefault:"3:04 PM"`
}
