package mailer

// SiteInfo describes the sending site. Its values feed the site variables
// injected into every send.
type SiteInfo interface {
	SiteName() string
	SiteURL() string
	SiteDescription() string
}

// StaticSite is a fixed-value SiteInfo for hosts whose identity does not
// change at runtime.
type StaticSite struct {
	Name        string `env:"MAILBRIDGE_SITE_NAME"`
	URL         string `env:"MAILBRIDGE_SITE_URL"`
	Description string `env:"MAILBRIDGE_SITE_DESCRIPTION"`
}

func (s StaticSite) SiteName() string        { return s.Name }
func (s StaticSite) SiteURL() string         { return s.URL }
func (s StaticSite) SiteDescription() string { return s.Description }
