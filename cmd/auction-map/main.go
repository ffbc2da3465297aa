package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gyeongmae/auction-map/internal/pkg/application/auctions"
	"github.com/gyeongmae/auction-map/internal/pkg/application/events"
	"github.com/gyeongmae/auction-map/internal/pkg/application/generator"
	"github.com/gyeongmae/auction-map/internal/pkg/application/territory"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/logging"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/metrics"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/repositories/database"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/router"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/tracing"
	"github.com/gyeongmae/auction-map/internal/pkg/presentation/api"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v2"
)

const serviceName string = "auction-map"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	configurationFile
	propertiesFile
	dbType
	generateCount
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress:     "0.0.0.0",
		servicePort:       "8080",
		configurationFile: "/opt/auction-map/config/config.yaml",
		propertiesFile:    "",
		dbType:            "sqlite",
		generateCount:     "",
	}
}

type appConfig struct {
	Territory     territory.Config `yaml:"territory"`
	Generator     generator.Config `yaml:"generator"`
	events.Config `yaml:",inline"`
}

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	ctx, flags := parseExternalConfig(ctx, defaultFlags())

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	cfg, err := loadAppConfig(logger, flags[configurationFile])
	exitIf(err, logger, "could not load configuration file")

	repo, err := newStorage(logger, flags)
	exitIf(err, logger, "could not create or connect to database")

	m := metrics.New()

	err = seedStorage(ctx, repo, cfg, flags, m)
	exitIf(err, logger, "failed to seed storage")

	r := createAppAndSetupRouter(ctx, repo, cfg, m)

	address := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info().Str("address", address).Msg("starting to listen for connections")

	server := &http.Server{
		Addr:              address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	err = server.ListenAndServe()
	exitIf(err, logger, "failed to start request router")
}

func createAppAndSetupRouter(ctx context.Context, repo database.PropertyRepository, cfg *appConfig, m *metrics.Metrics) *chi.Mux {
	svc := auctions.New(repo)
	analyzer := territory.NewAnalyzer(cfg.Territory)
	sender := events.New(&cfg.Config)

	r := router.New(serviceName, m.Middleware)
	return api.RegisterHandlers(ctx, r, svc, analyzer, sender, m)
}

func newStorage(logger zerolog.Logger, flags flagMap) (database.PropertyRepository, error) {
	switch flags[dbType] {
	case "sqlite":
		return database.New(database.NewSQLiteConnector(logger))
	case "postgres":
		return database.New(database.NewPostgreSQLConnector(logger, database.LoadConfigFromEnv()))
	}

	return nil, fmt.Errorf("unsupported database type %q", flags[dbType])
}

func seedStorage(ctx context.Context, repo database.PropertyRepository, cfg *appConfig, flags flagMap, m *metrics.Metrics) error {
	logger := logging.GetLoggerFromContext(ctx)

	if path := flags[propertiesFile]; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open properties file: %w", err)
		}
		defer f.Close()

		added, err := repo.Seed(ctx, f)
		if err != nil {
			return fmt.Errorf("could not seed properties from %s: %w", path, err)
		}

		m.SeededPropertiesTotal.WithLabelValues("csv").Add(float64(added))
		logger.Info().Int("count", added).Str("file", path).Msg("seeded properties from file")
	}

	count := cfg.Generator.Count
	if s := flags[generateCount]; s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid number of properties to generate: %w", err)
		}
		count = n
	}

	if count < 0 {
		return nil
	}

	added, err := repo.SeedProperties(ctx, generator.New(cfg.Generator).Generate(count))
	if err != nil {
		return fmt.Errorf("could not seed generated properties: %w", err)
	}

	m.SeededPropertiesTotal.WithLabelValues("generator").Add(float64(added))
	logger.Info().Int("count", added).Msg("seeded generated properties")

	return nil
}

func loadAppConfig(logger zerolog.Logger, path string) (*appConfig, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("file", path).Msg("configuration file not found, using defaults")
		return &appConfig{Territory: territory.DefaultConfig()}, nil
	}
	if err != nil {
		return nil, err
	}

	return parseExternalConfigFile(f)
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	cfg.Territory = cfg.Territory.WithDefaults()

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	logger := logging.GetLoggerFromContext(ctx)

	// A missing .env file is not an error, the process environment still applies
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("loaded environment from .env")
	}

	// Allow environment variables to override certain defaults
	envOrDef := func(key, def string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return def
	}

	flags[listenAddress] = envOrDef("LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef("SERVICE_PORT", flags[servicePort])
	flags[configurationFile] = envOrDef("CONFIG_FILE", flags[configurationFile])
	flags[propertiesFile] = envOrDef("PROPERTIES_FILE", flags[propertiesFile])
	flags[dbType] = envOrDef("DATABASE_TYPE", flags[dbType])
	flags[generateCount] = envOrDef("GENERATE_COUNT", flags[generateCount])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "auction map configuration file", apply(configurationFile))
	flag.Func("properties", "csv file with properties to seed storage with", apply(propertiesFile))
	flag.Func("db", "database type, sqlite or postgres", apply(dbType))
	flag.Func("generate", "number of dummy properties to generate, negative to disable", apply(generateCount))
	flag.Parse()

	return ctx, flags
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}
