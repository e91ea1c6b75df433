// Package mailbridge is a transactional email templating library. Plugins
// and application code declare email types with variable contracts and
// default content; site operators override them with stored templates per
// language and variant; sends resolve the best template, substitute
// {{token}} placeholders, and deliver through a pluggable provider.
//
// Minimal setup with registered defaults only:
//
//	bridge, err := mailbridge.New(resendSender,
//		mailbridge.WithSiteInfo(mailbridge.StaticSite{Name: "Acme", URL: "https://acme.example"}),
//		mailbridge.WithLogger(log),
//	)
//	if err != nil { ... }
//
//	err = bridge.Send(ctx, mailbridge.SendParams{
//		Slug: "welcome_email",
//		Variables: mailbridge.Vars{
//			"user_name":  "Alice",
//			"user_email": "alice@example.com",
//		},
//	})
//
// Full setup adds Postgres-backed templates, send history, and a cached
// lookup path:
//
//	pool, _ := postgres.Connect(ctx, dbCfg)
//	_ = postgres.Migrate(ctx, pool, dbCfg, log)
//
//	bridge, err := mailbridge.New(sender,
//		mailbridge.WithConfig(cfg),
//		mailbridge.WithTemplateFinder(postgres.NewTemplateStore(pool)),
//		mailbridge.WithTemplateCache(cache.NewMemory[templates.Template](time.Minute), 0),
//		mailbridge.WithLogStore(postgres.NewLogStore(pool)),
//		mailbridge.WithEmailTypeStore(postgres.NewEmailTypeStore(pool)),
//		mailbridge.WithRegistrars(emailtype.LoadDir(os.DirFS("emailtypes"))),
//	)
//
// Template resolution prefers stored rows over registered defaults, the
// requested language over English, and the requested variant over the
// generic template. See the templates package for the exact tier order.
package mailbridge
