package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-dashboard/api"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/dataset"
	"github.com/bitmark-inc/covid-dashboard/external/jhu"
	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

var (
	server       *api.Server
	metricCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("datasource.confirmed", jhu.DefaultConfirmedURL)
	viper.SetDefault("datasource.deaths", jhu.DefaultDeathsURL)
	viper.SetDefault("datasource.recovered", jhu.DefaultRecoveredURL)
	viper.SetDefault("datasource.iso", jhu.DefaultISOURL)
	viper.SetDefault("i18n.dir", "i18n")

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func loadRegions() *region.Registry {
	var extra []region.Region
	if file := viper.GetString("regions.file"); file != "" {
		regions, err := region.LoadFile(file)
		if err != nil {
			log.Panicf("load regions from %s with error: %s", file, err)
		}
		extra = regions
	}

	registry, err := region.NewRegistry(extra...)
	if err != nil {
		log.Panic(err)
	}
	return registry
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if metricCloser != nil {
			if err := metricCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle(viper.GetString("i18n.dir"))
	log.WithField("prefix", "init").Info("Loaded i18n bundle")

	var scope tally.Scope
	scope, metricCloser = tally.NewRootScope(tally.ScopeOptions{
		Prefix: "covid",
	}, time.Second)

	httpClient := &http.Client{
		Timeout: viper.GetDuration("http.timeout"),
	}

	sources := dashboard.Sources{
		Confirmed: viper.GetString("datasource.confirmed"),
		Deaths:    viper.GetString("datasource.deaths"),
		Recovered: viper.GetString("datasource.recovered"),
		ISO:       viper.GetString("datasource.iso"),
	}

	loader := dataset.NewLoader(jhu.New(httpClient), sources.ISO, scope)
	registry := loadRegions()
	log.WithField("prefix", "init").Infof("Loaded %d regions", len(registry.List()))

	// Init http server
	server = api.NewServer(dashboard.New(loader, sources, registry))
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
