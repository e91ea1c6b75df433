package emailtype

// CoreRegistrar registers the email types MailBridge ships with: a welcome
// email and a generic notification. Hosts include it in the sweep alongside
// their own registrars, or skip it entirely.
func CoreRegistrar() Registrar {
	return RegistrarFunc(func(r *Registry) {
		_ = r.Register("welcome_email", Definition{
			Name:        "Welcome Email",
			Description: "Email sent when a new user registers",
			Variables: []Variable{
				{Key: "user_name", Label: "User name"},
				{Key: "user_email", Label: "User email address"},
				{Key: "site_name", Label: "Site name"},
				{Key: "site_url", Label: "Site URL"},
			},
			Plugin:         "mailbridge",
			DefaultSubject: Text("Welcome {{user_name}}!"),
			DefaultContent: Text("<h1>Welcome to {{site_name}}, {{user_name}}!</h1><p>Thank you for joining us.</p>"),
		})

		_ = r.Register("notification", Definition{
			Name:        "Generic Notification",
			Description: "Generic notification email template",
			Variables: []Variable{
				{Key: "notification_title", Label: "Notification title"},
				{Key: "notification_message", Label: "Notification message"},
				{Key: "notification_date", Label: "Notification date"},
			},
			Plugin:         "mailbridge",
			DefaultSubject: Text("Notification: {{notification_title}}"),
			DefaultContent: Text("<h2>{{notification_title}}</h2><p>{{notification_message}}</p>"),
		})
	})
}
