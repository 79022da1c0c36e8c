package facade

import (
	"time"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/config"
	"github.com/calegray/facade/internal/store"
)

type options struct {
	dbPath         string
	st             store.Store
	tables         config.Tables
	appToken       string
	adapterTimeout time.Duration
	syncTimeout    time.Duration
	concurrency    int
	endpoint       string
}

func defaultOptions() options {
	return options{
		dbPath: "facade.db",
		tables: config.DefaultTables(),
	}
}

// Option configures a Service.
type Option func(*options)

// WithDBPath sets the SQLite database path. Ignored when WithStore is given.
func WithDBPath(path string) Option {
	return func(o *options) { o.dbPath = path }
}

// WithStore uses an existing store instead of opening one. The caller
// retains ownership; Close will not close it.
func WithStore(s store.Store) Option {
	return func(o *options) { o.st = s }
}

// WithTables overrides the weight, keyword, and cost tables.
func WithTables(t config.Tables) Option {
	return func(o *options) { o.tables = t }
}

// WithAppToken sets the open-data API token for higher rate limits.
func WithAppToken(token string) Option {
	return func(o *options) { o.appToken = token }
}

// WithTimeouts sets the per-adapter and whole-sync deadlines.
func WithTimeouts(adapterTimeout, syncTimeout time.Duration) Option {
	return func(o *options) {
		o.adapterTimeout = adapterTimeout
		o.syncTimeout = syncTimeout
	}
}

// WithConcurrency bounds simultaneous adapter fetches. 0 means unbounded.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithEndpoint overrides the adapters' base URL, mainly for tests.
func WithEndpoint(url string) Option {
	return func(o *options) { o.endpoint = url }
}

func (o options) adapterConfig() adapter.Config {
	return adapter.Config{AppToken: o.appToken, Endpoint: o.endpoint}
}
