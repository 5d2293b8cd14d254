package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"entrega-tracker/internal/capture"
	"entrega-tracker/internal/cli"
	"entrega-tracker/internal/config"
	"entrega-tracker/internal/gateway/deliveryapi"
	"entrega-tracker/internal/gateway/geocode"
	"entrega-tracker/internal/logx"
	"entrega-tracker/internal/metrics"
	"entrega-tracker/internal/session"
	"entrega-tracker/internal/store"
	"entrega-tracker/internal/workflow/confirm"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	newHTTPClient func(time.Duration, logx.Logger) *http.Client
	logFatalf     func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		newHTTPClient: newHTTPClient,
		logFatalf:     log.Fatalf,
	}
}

// WithHTTPClient sets the outbound HTTP client constructor
func (b *ContainerBuilder) WithHTTPClient(fn func(time.Duration, logx.Logger) *http.Client) *ContainerBuilder {
	if fn != nil {
		b.newHTTPClient = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerSession(container); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := registerGateways(container, b.newHTTPClient); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerServices(container); err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}
	if err := registerCLI(container); err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

// counters bundles the named Prometheus counters the providers consume.
type counters struct {
	dig.In

	GatewayRetries        prometheus.Counter `name:"gateway_retries"`
	GeocodeFailures       prometheus.Counter `name:"geocode_failures"`
	StoreReloads          prometheus.Counter `name:"store_reloads"`
	ConfirmationsRejected prometheus.Counter `name:"confirmations_rejected"`
}

func registerCore(container *dig.Container, ctx context.Context) error {
	if err := provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	); err != nil {
		return err
	}
	return provideCounters(container)
}

func provideCounters(container *dig.Container) error {
	named := []struct {
		name string
		ctor func() prometheus.Counter
	}{
		{"gateway_retries", metrics.NewGatewayRetriesTotal},
		{"geocode_failures", metrics.NewGeocodeFailuresTotal},
		{"store_reloads", metrics.NewStoreReloadsTotal},
		{"confirmations_rejected", metrics.NewConfirmationsRejectedTotal},
	}
	for _, c := range named {
		ctor := c.ctor
		provider := func() prometheus.Counter { return registerCounter(ctor()) }
		if err := container.Provide(provider, dig.Name(c.name)); err != nil {
			return fmt.Errorf("provide counter %s: %w", c.name, err)
		}
	}
	return nil
}

// registerCounter puts a counter on the default registry, reusing the
// existing collector when a container was already built in this process.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing
		}
	}
	return c
}

func registerSession(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) session.Store {
			return session.NewFileStore(cfg.Session.File)
		},
		session.New,
	)
}

func registerGateways(container *dig.Container, newClient func(time.Duration, logx.Logger) *http.Client) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) *deliveryapi.Client {
			return deliveryapi.NewClient(cfg.API.BaseURL, newClient(cfg.API.Timeout, logger), logger)
		},
		func(next *deliveryapi.Client, cfg *config.Config, logger logx.Logger, cs counters) *deliveryapi.RetryingClient {
			return deliveryapi.NewRetryingClient(next, logger, cs.GatewayRetries, deliveryapi.RetryConfig{
				MaxAttempts: cfg.API.Retry.MaxAttempts,
				BaseDelay:   cfg.API.Retry.BaseDelay,
				MaxDelay:    cfg.API.Retry.MaxDelay,
			})
		},
		func(cfg *config.Config, logger logx.Logger, cs counters) *geocode.Client {
			return geocode.NewClient(
				cfg.Geocode.BaseURL,
				cfg.Geocode.Key,
				newClient(cfg.Geocode.Timeout, logger),
				logger,
				cs.GeocodeFailures,
			)
		},
	)
}

func registerServices(container *dig.Container) error {
	return provideAll(container,
		func(
			gw *deliveryapi.RetryingClient,
			sess *session.Context,
			cfg *config.Config,
			logger logx.Logger,
			cs counters,
		) *store.Store {
			return store.New(gw, sess, cfg.API.Timeout, logger, cs.StoreReloads)
		},
		func(
			gw *deliveryapi.RetryingClient,
			resolver *geocode.Client,
			st *store.Store,
			cfg *config.Config,
			logger logx.Logger,
			cs counters,
		) cli.WorkflowFactory {
			return func(deliveryID int64, photoSource string) cli.Workflow {
				camera := capture.NewFileCamera(photoSource, logger)
				return confirm.New(deliveryID, gw, resolver, camera, st, cfg.API.Timeout, logger, cs.ConfirmationsRejected)
			}
		},
	)
}

func registerCLI(container *dig.Container) error {
	return provideAll(container,
		func(
			st *store.Store,
			sess *session.Context,
			gw *deliveryapi.RetryingClient,
			factory cli.WorkflowFactory,
			logger logx.Logger,
		) *cli.App {
			return cli.New(st, sess, gw, factory, logger, os.Stdout, os.Stderr)
		},
	)
}

func newHTTPClient(timeout time.Duration, logger logx.Logger) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: metrics.InstrumentedTransport(http.DefaultTransport, logger),
	}
}
