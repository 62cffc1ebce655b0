package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cafebazaar/pairwise/internal/core"
	"github.com/cafebazaar/pairwise/internal/engine"

	"github.com/go-redis/redis"
	"github.com/pkg/profile"

	memoryBackend "github.com/cafebazaar/pairwise/internal/backend/memory"
	redisBackend "github.com/cafebazaar/pairwise/internal/backend/redis"
	staticCluster "github.com/cafebazaar/pairwise/internal/cluster/static"
	redisTransport "github.com/cafebazaar/pairwise/internal/transport/redis"
	"github.com/cafebazaar/pairwise/pkg/pairwise"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start Server",
	Run:   serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("redisListenPort", 6380, "port of the redis protocol listener")
	serveCmd.Flags().String("backend", "memory", "session storage: memory or redis")
	serveCmd.Flags().String("staticDiscovery", "", "comma separated redis addresses")
}

func serve(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)
	configureLoggingOrPanic(config)

	if config.Profiling {
		defer profile.Start(profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	backend := configureBackendOrPanic(config)
	svc := getService(backend, config)

	server := redisTransport.New(svc, config.RedisListenPort)
	startServerOrPanic(server)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	shutdownServerOrPanic(server)
	if err := svc.Close(); err != nil {
		log.WithError(err).Error("failed to close service")
	}
}

func loadConfigOrPanic(cmd *cobra.Command) *Config {
	config, err := LoadConfig(cmd, envPrefix)
	if err != nil {
		log.WithError(err).Panic("Failed to load configurations")
	}
	return config
}

func configureLoggingOrPanic(config *Config) {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		panicWithError(err, "invalid log level: %v", config.LogLevel)
	}

	log.SetLevel(level)
}

func configureBackendOrPanic(config *Config) pairwise.Backend {
	if config.StaticDiscovery != "" {
		return configureStaticDiscoveryClusterOrPanic(config)
	}

	switch config.Backend {
	case "memory":
		return memoryBackend.New("memory")

	case "redis":
		log.Panic("backend redis requires staticDiscovery")
		return nil

	default:
		log.Panicf("unknown backend: %v", config.Backend)
		return nil
	}
}

func configureStaticDiscoveryClusterOrPanic(config *Config) pairwise.Backend {
	if config.Backend != "redis" {
		log.Panicf("backend %v cannot be used with staticDiscovery, use redis", config.Backend)
	}

	hosts := strings.Split(config.StaticDiscovery, ",")
	var nodes []pairwise.Backend

	for _, host := range hosts {
		if strings.TrimSpace(host) == "" {
			continue
		}

		nodes = append(nodes, connectToHostOrPanic(config, strings.TrimSpace(host)))
	}

	if len(nodes) == 0 {
		log.Panicf("staticDiscovery lists no hosts: %q", config.StaticDiscovery)
	}

	return staticCluster.New(nodes)
}

func connectToHostOrPanic(config *Config, host string) pairwise.Backend {
	switch config.Backend {
	case "redis":
		return connectToRedisOrPanic(config, host)

	default:
		log.Panicf("unknown backend: %v", config.Backend)
		return nil
	}
}

func connectToRedisOrPanic(config *Config, host string) pairwise.Backend {
	client := redis.NewClient(&redis.Options{Addr: host})
	if err := client.Ping().Err(); err != nil {
		panicWithError(err, "failed to connect to redis at %v", host)
	}

	return redisBackend.New(client, host, redisBackend.WithExpiration(config.SessionExpiration))
}

func getService(backend pairwise.Backend, config *Config) pairwise.Service {
	options := []core.Option{
		core.WithCandidateValidation(config.ValidateCandidates),
	}

	if config.MaxCandidates > 0 {
		options = append(options, core.WithMaxCandidates(config.MaxCandidates))
	}

	return core.New(engine.New(), backend, options...)
}

func startServerOrPanic(server pairwise.Server) {
	err := server.Start()
	if err != nil {
		panicWithError(err, "failed to start server")
	}
}

func shutdownServerOrPanic(server pairwise.Server) {
	if err := server.Close(); err != nil {
		panicWithError(err, "failed to close server")
	}
}

func panicWithError(err error, format string, args ...interface{}) {
	log.WithError(err).Panicf(format, args...)
}
