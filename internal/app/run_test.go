package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"entrega-tracker/internal/cli"
	"entrega-tracker/internal/config"
	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/logx"
)

type runStubStore struct{}

func (runStubStore) Focus(context.Context) ([]domain.Delivery, error) { return nil, nil }
func (runStubStore) Create(context.Context, domain.NewDelivery) error { return nil }

type runStubSession struct{}

func (runStubSession) CurrentUserID() (int64, error) { return 42, nil }
func (runStubSession) Login(int64) error             { return nil }
func (runStubSession) Logout() error                 { return nil }

type runStubAuth struct{}

func (runStubAuth) Login(context.Context, string, string) (int64, error) { return 42, nil }

func newRunContainer(t *testing.T, cfg *config.Config, out *bytes.Buffer) *dig.Container {
	t.Helper()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(func() logx.Logger { return logx.Nop() }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, c.Provide(func(logger logx.Logger) *cli.App {
		factory := func(int64, string) cli.Workflow { return nil }
		return cli.New(runStubStore{}, runStubSession{}, runStubAuth{}, factory, logger, out, out)
	}))
	return c
}

func TestRun_ExecutesCommandAndReturnsExitCode(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Args = []string{"list"}
	out := &bytes.Buffer{}

	code, err := run(newRunContainer(t, cfg, out))
	require.NoError(t, err)
	require.Zero(t, code)
	require.Contains(t, out.String(), "no deliveries")
}

func TestRun_UnknownCommandExitCode(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Args = []string{"frobnicate"}
	out := &bytes.Buffer{}

	code, err := run(newRunContainer(t, cfg, out))
	require.NoError(t, err)
	require.Equal(t, 2, code)
}

func TestRun_WithDebugServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Args = []string{"logout"}
	cfg.Debug.Addr = "127.0.0.1:0"
	out := &bytes.Buffer{}

	code, err := run(newRunContainer(t, cfg, out))
	require.NoError(t, err)
	require.Zero(t, code)
	require.Contains(t, out.String(), "logged out")
}

func TestRun_MissingDependencyFails(t *testing.T) {
	t.Parallel()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))

	_, err := run(c)
	require.Error(t, err)
}
