// Package postgres is the storage layer: a pooled pgx connection with
// startup retry, goose-managed schema migrations embedded in the binary, and
// the three stores the library persists through.
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := postgres.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
//	templateStore := postgres.NewTemplateStore(pool)
//	typeStore := postgres.NewEmailTypeStore(pool)
//	logStore := postgres.NewLogStore(pool)
//
// TemplateStore satisfies the resolver's lookup interface and carries the
// admin CRUD. EmailTypeStore holds display snapshots of registered types.
// LogStore is the append-plus-prune send history.
package postgres
