package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/chronicle"
	"github.com/totegamma/chronicle/core"
	"github.com/totegamma/chronicle/x/blog"
	"github.com/totegamma/chronicle/x/character"
	"github.com/totegamma/chronicle/x/region"
	"github.com/totegamma/chronicle/x/worldmap"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Chronicle %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	config := defaultConfig()
	configPath := os.Getenv("CHRONICLE_CONFIG")
	if configPath == "" {
		configPath = "/etc/chronicle/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	chronicleConfig := core.SetupConfig(config.Chronicle)

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "chronicle/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/api/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "chronicle",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return c.Path()
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/api/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.Server.CorsOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", chronicleConfig.MaxUploadSize+(1<<20))))

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.Post{},
		&core.Character{},
		&core.WorldMap{},
		&core.Region{},
	)
	if err != nil {
		panic("failed to migrate schema")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	blogService := chronicle.SetupBlogService(db, mc)
	blogHandler := blog.NewHandler(blogService)

	characterService := chronicle.SetupCharacterService(db, mc)
	characterHandler := character.NewHandler(characterService)

	mapService := chronicle.SetupMapService(db, rdb, mc, chronicleConfig)
	mapHandler := worldmap.NewHandler(mapService)

	regionService := chronicle.SetupRegionService(db, rdb, mc)
	regionHandler := region.NewHandler(regionService)

	socketHandler := chronicle.SetupSocketHandler(rdb)

	// blog
	e.GET("/blog", blogHandler.List)
	e.POST("/blog", blogHandler.Create)
	e.PUT("/blog/:id", blogHandler.Update)
	e.DELETE("/blog/:id", blogHandler.Delete)

	// character
	e.GET("/characters", characterHandler.List)
	e.POST("/characters", characterHandler.Create)
	e.PUT("/characters/:id", characterHandler.Update)
	e.DELETE("/characters/:id", characterHandler.Delete)

	// map
	e.GET("/maps", mapHandler.List)
	e.POST("/maps", mapHandler.Create)
	e.GET("/maps/:id", mapHandler.Get)
	e.PUT("/maps/:id", mapHandler.Update)
	e.DELETE("/maps/:id", mapHandler.Delete)

	// region
	e.GET("/map_regions", regionHandler.List)
	e.POST("/map_regions", regionHandler.Create)
	e.GET("/map_regions/:id", regionHandler.Get)
	e.PUT("/map_regions/:id", regionHandler.Update)
	e.DELETE("/map_regions/:id", regionHandler.Delete)

	// socket
	e.GET("/socket", socketHandler.Connect)

	// uploads
	uploads := e.Group(chronicleConfig.UploadPrefix, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	})
	uploads.Static("/", chronicleConfig.UploadDir)

	e.GET("/api/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.PingContext(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, core.Health{Status: "error", Error: err.Error()})
		}

		return c.JSON(http.StatusOK, core.Health{Status: "ok"})
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chronicle_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	var socketConnectionMetrics = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chronicle_socket_connections",
			Help: "socket connections",
		},
	)
	prometheus.MustRegister(socketConnectionMetrics)

	counters := map[string]func(context.Context) (int64, error){
		"post":      blogService.Count,
		"character": characterService.Count,
		"map":       mapService.Count,
		"region":    regionService.Count,
	}

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for name, count := range counters {
				n, err := count(ctx)
				if err != nil {
					slog.Error(fmt.Sprintf("failed to count %s: %v", name, err))
					continue
				}
				resourceCountMetrics.WithLabelValues(name).Set(float64(n))
			}
			cancel()

			socketConnectionMetrics.Set(float64(socketHandler.CurrentConnectionCount()))
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(":" + config.Server.Port))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
