package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/log"
	redigo "github.com/gomodule/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hitbadge/hitbadge/core"
	handler "github.com/hitbadge/hitbadge/handler/http"
	"github.com/hitbadge/hitbadge/platform/cache"
	"github.com/hitbadge/hitbadge/platform/limiter"
	"github.com/hitbadge/hitbadge/platform/metrics"
	"github.com/hitbadge/hitbadge/platform/redis"
	"github.com/hitbadge/hitbadge/service/counter"
	"github.com/hitbadge/hitbadge/service/theme"
)

// Logging and telemetry identifiers.
const (
	component        = "badge-http"
	namespaceCache   = "cache"
	namespaceService = "service"
	subsystemHit     = "hit"
	serviceRenders   = "renders"
	storeCache       = "redis"
)

// Versions.
const (
	versionCurrent = "0.1"
)

// Supported store types.
const (
	storeMemory   = "memory"
	storePostgres = "postgres"
	storeRedis    = "redis"
)

// Prefixes.
const (
	prefixRateLimiter = "ratelimiter:badge:"
)

// Timeouts.
const (
	defaultReadTimeout     = 2 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultWriteTimeout    = 3 * time.Second
)

// Buildtime vars.
var (
	revision = "0000000-dev"
)

func main() {
	var (
		begin = time.Now()

		flushInterval = flag.Duration("flush.interval", 2*time.Second, "Interval at which dirty counts are persisted, 0 persists inline")
		formatDefault = flag.String("format.default", "svg", "Image format served when none is requested")
		lengthMin     = flag.Uint("length.min", 0, "Minimum number of digits rendered")
		listenAddr    = flag.String("listen.addr", ":8084", "HTTP bind address for main API")
		pixelated     = flag.Bool("pixelated", false, "Render vector badges with nearest-neighbour scaling")
		postgresURL   = flag.String("postgres.url", "", "Postgres URL to connect to")
		rateLimit     = flag.Int64("rate.limit", 600, "Requests allowed per client per window, 0 disables limiting")
		redisAddr     = flag.String("redis.addr", "", "Redis address to connect to, empty disables Redis")
		retryBudget   = flag.Int("retry.budget", 8, "Consecutive store failures tolerated before errors surface")
		store         = flag.String("store", storePostgres, "Store type used for counts")
		telemetryAddr = flag.String("telemetry.addr", ":9000", "HTTP bind address where prometheus telemetry is exposed")
		themeDefault  = flag.String("theme.default", theme.BuiltinName, "Theme used when none is requested or known")
		themesDir     = flag.String("themes.dir", "", "Directory holding additional theme assets")
	)
	flag.Parse()

	// Setup logging.
	logger := log.With(
		log.NewJSONLogger(log.NewSyncWriter(os.Stdout)),
		"caller", log.Caller(3),
		"component", component,
		"revision", revision,
	)

	hostname, err := os.Hostname()
	if err != nil {
		logger.Log("err", err, "lifecycle", "abort")
		os.Exit(1)
	}

	logger = log.With(logger, "host", hostname)

	// Setup instrumentation.
	go func(addr string) {
		logger.Log(
			"duration", time.Since(begin).Nanoseconds(),
			"lifecycle", "start",
			"listen", addr,
			"sub", "telemetry",
		)

		http.Handle("/metrics", promhttp.Handler())

		err := http.ListenAndServe(addr, nil)
		if err != nil {
			logger.Log("err", err, "lifecycle", "abort", "sub", "telemetry")
			os.Exit(1)
		}
	}(*telemetryAddr)

	serviceFieldKeys := []string{
		metrics.FieldComponent,
		metrics.FieldMethod,
		metrics.FieldService,
		metrics.FieldStore,
	}

	serviceErrCount, serviceOpCount, serviceOpLatency := metrics.KeyMetrics(
		namespaceService,
		serviceFieldKeys...,
	)

	cacheFieldKeys := []string{
		metrics.FieldComponent,
		metrics.FieldMethod,
		metrics.FieldService,
		metrics.FieldStore,
	}

	cacheErrCount, cacheOpCount, cacheOpLatency := metrics.KeyMetrics(
		namespaceCache,
		cacheFieldKeys...,
	)

	cacheHitCount := kitprometheus.NewCounterFrom(prometheus.CounterOpts{
		Namespace: namespaceCache,
		Subsystem: subsystemHit,
		Name:      "count",
		Help:      "Number of cache hits",
	}, cacheFieldKeys)

	// Setup clients.
	var (
		pgClient  *sqlx.DB
		redisPool *redigo.Pool
	)

	if *redisAddr != "" {
		redisPool = redis.Pool(*redisAddr, "")
	}

	// Setup services.
	var counters counter.Service

	switch *store {
	case storeMemory:
		counters = counter.CacheService(counter.MemStore(), counter.CacheOptions{
			FlushInterval: *flushInterval,
			RetryBudget:   *retryBudget,
		})
	case storePostgres:
		pgClient, err = sqlx.Connect("postgres", *postgresURL)
		if err != nil {
			logger.Log("err", err, "lifecycle", "abort")
			os.Exit(1)
		}

		counters = counter.CacheService(counter.PostgresStore(pgClient), counter.CacheOptions{
			FlushInterval: *flushInterval,
			RetryBudget:   *retryBudget,
		})
	case storeRedis:
		if redisPool == nil {
			logger.Log(
				"err", "Redis store requires redis.addr",
				"lifecycle", "abort",
			)
			os.Exit(1)
		}

		counters = counter.RedisService(redisPool)
	default:
		logger.Log(
			"err", fmt.Sprintf("Store type '%s' not supported", *store),
			"lifecycle", "abort",
		)
		os.Exit(1)
	}

	counters = counter.InstrumentServiceMiddleware(
		component,
		*store,
		serviceErrCount,
		serviceOpCount,
		serviceOpLatency,
	)(counters)
	counters = counter.LogServiceMiddleware(logger, *store)(counters)

	// Setup themes.
	ts := []*theme.Theme{theme.Builtin()}

	if *themesDir != "" {
		loaded, err := theme.LoadDir(*themesDir)
		if err != nil {
			logger.Log("err", err, "lifecycle", "abort")
			os.Exit(1)
		}

		ts = append(ts, loaded...)
	}

	themes, err := theme.NewRegistry(*themeDefault, ts...)
	if err != nil {
		logger.Log("err", err, "lifecycle", "abort")
		os.Exit(1)
	}

	logger.Log(
		"lifecycle", "start",
		"sub", "themes",
		"themes", strings.Join(themes.Names(), ","),
	)

	// Setup caches.
	var renders cache.ByteService

	if redisPool != nil {
		renders = cache.RedisByteService(redisPool)
		renders = cache.InstrumentByteServiceMiddleware(
			component,
			serviceRenders,
			storeCache,
			cacheErrCount,
			cacheHitCount,
			cacheOpCount,
			cacheOpLatency,
		)(renders)
	} else {
		renders = cache.NopByteService()
	}

	badgeGet := core.BadgeGet(counters, themes, renders, core.BadgeConfig{
		Format:    *formatDefault,
		MinLength: *lengthMin,
		Pixelated: *pixelated,
	})

	// Setup middlewares.
	withBadge := handler.Chain(
		handler.CtxPrepare(versionCurrent),
		handler.Log(logger),
		handler.Instrument(component),
		handler.SecureHeaders(),
		handler.DebugHeaders(revision, hostname),
		handler.CORS(),
		handler.Gzip(),
	)

	if redisPool != nil && *rateLimit > 0 {
		rateLimiter := limiter.Redis(redisPool, prefixRateLimiter)

		withBadge = handler.Chain(
			withBadge,
			handler.RateLimit(rateLimiter, *rateLimit),
		)
	}

	// Setup router.
	router := mux.NewRouter().StrictSlash(true)

	router.Methods("GET").Path(`/health-61200110143511667`).Name("healthcheck").HandlerFunc(
		handler.Wrap(
			handler.CtxPrepare(versionCurrent),
			handler.Health(pgClient, redisPool),
		),
	)

	router.Methods("GET").Path(`/status`).Name("status").HandlerFunc(
		handler.Wrap(
			handler.CtxPrepare(versionCurrent),
			handler.Status(),
		),
	)

	router.Methods("GET").Path(`/{key:[A-Za-z0-9._~-]+}`).Name("badgeGet").HandlerFunc(
		handler.Wrap(
			withBadge,
			handler.BadgeGet(badgeGet),
		),
	)

	// Setup server.
	server := &http.Server{
		Addr:         *listenAddr,
		Handler:      router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	go func() {
		logger.Log(
			"duration", time.Since(begin).Nanoseconds(),
			"lifecycle", "start",
			"listen", *listenAddr,
			"sub", "api",
		)

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Log("err", err, "lifecycle", "abort", "sub", "api")
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log("err", err, "lifecycle", "stop", "sub", "api")
	}

	// Persist every dirty count before exit.
	if err := counters.Close(); err != nil {
		logger.Log("err", err, "lifecycle", "stop", "sub", "counter")
	}

	logger.Log(
		"duration", time.Since(begin).Nanoseconds(),
		"lifecycle", "stop",
	)
}
