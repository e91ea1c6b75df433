package emailtype_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
	"github.com/madsmiley/mailbridge/pkg/placeholder"
)

type recordingStore struct {
	upserts []string
	fail    map[string]error
}

func (s *recordingStore) UpsertEmailType(_ context.Context, id string, _ emailtype.Definition) error {
	if err, ok := s.fail[id]; ok {
		return err
	}
	s.upserts = append(s.upserts, id)
	return nil
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("empty id rejected", func(t *testing.T) {
		t.Parallel()

		r := emailtype.NewRegistry()
		err := r.Register("", emailtype.Definition{Name: "x"})
		require.ErrorIs(t, err, emailtype.ErrEmptyID)
		require.Zero(t, r.Len())
	})

	t.Run("last registration wins", func(t *testing.T) {
		t.Parallel()

		r := emailtype.NewRegistry()
		require.NoError(t, r.Register("welcome", emailtype.Definition{Name: "first"}))
		require.NoError(t, r.Register("welcome", emailtype.Definition{Name: "second"}))

		def, ok := r.Get("welcome")
		require.True(t, ok)
		require.Equal(t, "second", def.Name)
		require.Equal(t, []string{"welcome"}, r.IDs())
	})

	t.Run("types returns a copy", func(t *testing.T) {
		t.Parallel()

		r := emailtype.NewRegistry()
		require.NoError(t, r.Register("a", emailtype.Definition{Name: "A"}))

		types := r.Types()
		types["a"] = emailtype.Definition{Name: "mutated"}

		def, _ := r.Get("a")
		require.Equal(t, "A", def.Name)
	})
}

func TestRegistry_Sweep(t *testing.T) {
	t.Parallel()

	r := emailtype.NewRegistry()
	r.Sweep(
		emailtype.CoreRegistrar(),
		emailtype.RegistrarFunc(func(r *emailtype.Registry) {
			_ = r.Register("order_shipped", emailtype.Definition{Name: "Order Shipped"})
		}),
		nil, // nil registrars are skipped
	)

	require.Equal(t, []string{"welcome_email", "notification", "order_shipped"}, r.IDs())

	welcome, ok := r.Get("welcome_email")
	require.True(t, ok)
	require.Equal(t, []string{"user_name"}, welcome.MissingVariables(placeholder.Vars{
		"user_email": "a@x.com",
		"site_name":  "Example",
		"site_url":   "https://example.com",
	}))
}

func TestRegistry_SyncToStore(t *testing.T) {
	t.Parallel()

	t.Run("upserts in registration order", func(t *testing.T) {
		t.Parallel()

		r := emailtype.NewRegistry()
		require.NoError(t, r.Register("b", emailtype.Definition{}))
		require.NoError(t, r.Register("a", emailtype.Definition{}))

		store := &recordingStore{}
		require.NoError(t, r.SyncToStore(context.Background(), store))
		require.Equal(t, []string{"b", "a"}, store.upserts)
	})

	t.Run("continues past failures and reports them", func(t *testing.T) {
		t.Parallel()

		r := emailtype.NewRegistry()
		require.NoError(t, r.Register("a", emailtype.Definition{}))
		require.NoError(t, r.Register("b", emailtype.Definition{}))
		require.NoError(t, r.Register("c", emailtype.Definition{}))

		boom := errors.New("boom")
		store := &recordingStore{fail: map[string]error{"b": boom}}

		err := r.SyncToStore(context.Background(), store)
		require.ErrorIs(t, err, boom)
		require.Equal(t, []string{"a", "c"}, store.upserts)
	})
}

func TestDefinition_MissingVariables(t *testing.T) {
	t.Parallel()

	def := emailtype.Definition{Variables: []emailtype.Variable{
		{Key: "user_name", Label: "User name"},
		{Key: "order_id", Label: "Order id"},
	}}

	require.Empty(t, def.MissingVariables(placeholder.Vars{"user_name": "Ana", "order_id": ""}))
	require.Equal(t, []string{"user_name", "order_id"}, def.MissingVariables(nil))
	require.Equal(t, []string{"order_id"}, def.MissingVariables(placeholder.Vars{"user_name": "Ana"}))
}

func TestDefinition_PreviewVars(t *testing.T) {
	t.Parallel()

	def := emailtype.Definition{PreviewValues: map[string]emailtype.DefaultValue{
		"user_name": emailtype.Text("Ana"),
		"greeting": emailtype.PerLanguage{
			{Lang: "en", Text: "Hello"},
			{Lang: "fr", Text: "Bonjour"},
		},
	}}

	vars := def.PreviewVars("fr", "")
	require.Equal(t, "Ana", vars["user_name"])
	require.Equal(t, "Bonjour", vars["greeting"])
}
