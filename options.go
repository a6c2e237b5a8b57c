package tonapi

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/tonapi/client-go/internal/throttle"
)

// Network selects which TON network the client talks to.
type Network string

const (
	// Mainnet is the production TON network.
	Mainnet Network = "mainnet"
	// Testnet is the TON test network.
	Testnet Network = "testnet"
)

const (
	mainnetBaseURL = "https://tonapi.io/"
	testnetBaseURL = "https://testnet.tonapi.io/"
)

// baseURL returns the upstream base URL for the network. Exactly one base
// URL is active for the lifetime of a client.
func (n Network) baseURL() string {
	if n == Testnet {
		return testnetBaseURL
	}
	return mainnetBaseURL
}

// clientConfig holds configuration for the client.
type clientConfig struct {
	network     Network
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	maxRetries  int
	retryDelay  time.Duration
	logger      *slog.Logger
	tracer      trace.Tracer
	insecureTLS bool
	throttle    *throttle.Config
}

// Option configures the client.
type Option func(*clientConfig)

// WithNetwork selects the TON network. Default: Mainnet.
func WithNetwork(network Network) Option {
	return func(c *clientConfig) {
		c.network = network
	}
}

// WithTestnet points the client at the TON test network.
func WithTestnet() Option {
	return func(c *clientConfig) {
		c.network = Testnet
	}
}

// WithBaseURL overrides the upstream base URL. The URL must end with a
// slash. Intended for tests and self-hosted gateways.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the total number of attempts for rate-limited calls.
// Only HTTP 429 responses are retried. Default: 3.
func WithMaxRetries(n int) Option {
	return func(c *clientConfig) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the pause between rate-limited attempts.
// Default: 1 second.
func WithRetryDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = d
	}
}

// WithLogger sets the logger used for rate-limit retry warnings.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithTracer sets the tracer used to record one span per API call.
// Default: a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *clientConfig) {
		c.tracer = tracer
	}
}

// WithInsecureTLS disables TLS certificate verification. The upstream
// API presents a valid certificate; only enable this behind intercepting
// proxies or in controlled test environments.
func WithInsecureTLS() Option {
	return func(c *clientConfig) {
		c.insecureTLS = true
	}
}

// WithRateLimit paces outbound requests with a client-side token bucket
// so fewer calls hit the server-side 429 limit.
func WithRateLimit(rps, burst int) Option {
	return func(c *clientConfig) {
		c.throttle = &throttle.Config{RPS: rps, Burst: burst}
	}
}

// queryConfig holds optional query parameters shared by list and history
// methods. Parameters are included in a request only when set.
type queryConfig struct {
	limit             int
	offset            int
	hasOffset         bool
	beforeLT          int64
	afterLT           int64
	acceptLanguage    string
	subjectOnly       bool
	startDate         int64
	endDate           int64
	collection        string
	indirectOwnership bool
	period            int
}

// QueryOption narrows list and history queries. Each method documents the
// options it honors; unrelated options are ignored.
type QueryOption func(*queryConfig)

func newQueryConfig(defaultLimit int, opts []QueryOption) *queryConfig {
	cfg := &queryConfig{
		limit:          defaultLimit,
		acceptLanguage: "en",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLimit caps the number of returned items.
func WithLimit(limit int) QueryOption {
	return func(c *queryConfig) {
		c.limit = limit
	}
}

// WithOffset skips the first offset items.
func WithOffset(offset int) QueryOption {
	return func(c *queryConfig) {
		c.offset = offset
		c.hasOffset = true
	}
}

// WithBeforeLT returns only entries with a logical time below lt.
// Omit to get the most recent entries.
func WithBeforeLT(lt int64) QueryOption {
	return func(c *queryConfig) {
		c.beforeLT = lt
	}
}

// WithAfterLT returns only entries with a logical time above lt.
func WithAfterLT(lt int64) QueryOption {
	return func(c *queryConfig) {
		c.afterLT = lt
	}
}

// WithAcceptLanguage sets the Accept-Language header for localized
// action descriptions. Default: "en".
func WithAcceptLanguage(lang string) QueryOption {
	return func(c *queryConfig) {
		c.acceptLanguage = lang
	}
}

// WithSubjectOnly filters actions with the account as the subject.
func WithSubjectOnly() QueryOption {
	return func(c *queryConfig) {
		c.subjectOnly = true
	}
}

// WithStartDate bounds history queries from below (unix seconds).
func WithStartDate(ts int64) QueryOption {
	return func(c *queryConfig) {
		c.startDate = ts
	}
}

// WithEndDate bounds history queries from above (unix seconds).
func WithEndDate(ts int64) QueryOption {
	return func(c *queryConfig) {
		c.endDate = ts
	}
}

// WithCollection filters NFT items by collection address.
func WithCollection(collection string) QueryOption {
	return func(c *queryConfig) {
		c.collection = collection
	}
}

// WithIndirectOwnership includes NFT items held by selling contracts on
// the owner's behalf.
func WithIndirectOwnership(enabled bool) QueryOption {
	return func(c *queryConfig) {
		c.indirectOwnership = enabled
	}
}

// WithPeriod sets the number of days before expiration for DNS queries.
func WithPeriod(days int) QueryOption {
	return func(c *queryConfig) {
		c.period = days
	}
}

// historyQuery builds the shared query parameters of event and transfer
// history methods. Optional filters are omitted when unset.
func (c *queryConfig) historyQuery() url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.limit))
	if c.beforeLT > 0 {
		query.Set("before_lt", strconv.FormatInt(c.beforeLT, 10))
	}
	if c.subjectOnly {
		query.Set("subject_only", "true")
	}
	if c.startDate > 0 {
		query.Set("start_date", strconv.FormatInt(c.startDate, 10))
	}
	if c.endDate > 0 {
		query.Set("end_date", strconv.FormatInt(c.endDate, 10))
	}
	return query
}

// languageHeader carries the Accept-Language preference for methods that
// localize action descriptions.
func (c *queryConfig) languageHeader() http.Header {
	return http.Header{"Accept-Language": []string{c.acceptLanguage}}
}
