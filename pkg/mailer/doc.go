// Package mailer orchestrates templated email sends.
//
// A send walks a fixed pipeline: resolve the template for the slug (stored
// rows first, registered defaults as the last tier), check the email type's
// variable contract, determine the recipient, substitute placeholders, and
// hand the finished message to a provider.
//
//	m := mailer.New(resolver, registry, provider, cfg,
//		mailer.WithLogStore(logStore),
//		mailer.WithSiteInfo(mailer.StaticSite{Name: "Acme", URL: "https://acme.example"}),
//		mailer.WithLogger(log),
//	)
//
//	err := m.Send(ctx, mailer.SendParams{
//		Slug: "welcome_email",
//		Variables: placeholder.Vars{
//			"user_name":  "Alice",
//			"user_email": "alice@example.com",
//		},
//	})
//
// # Recipient resolution
//
// An explicit SendParams.To wins; otherwise the "to" variable is used, then
// "user_email". With none of the three present the send fails with
// ErrNoRecipient.
//
// # Site variables
//
// Every send injects site_name, site_url, site_description, current_date,
// and current_time. These overwrite caller-supplied values of the same name,
// so template authors can trust them.
//
// # Send history
//
// With a LogStore configured, every send outcome is recorded: failures
// always, successes unless Config.DisableLogging is set. History
// writes are best effort; a storage problem never changes the outcome of a
// send.
//
// # Providers
//
// The mailer/resend and mailer/smtp subpackages implement Sender for the
// Resend API and plain SMTP. Anything satisfying Sender plugs in the same
// way.
package mailer
