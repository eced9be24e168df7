package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/dataset"
	"github.com/bitmark-inc/covid-dashboard/external/jhu"
	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
)

type Cron interface {
	Run(ctx context.Context) error
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

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
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("datasource.confirmed", jhu.DefaultConfirmedURL)
	viper.SetDefault("datasource.deaths", jhu.DefaultDeathsURL)
	viper.SetDefault("datasource.recovered", jhu.DefaultRecoveredURL)
	viper.SetDefault("datasource.iso", jhu.DefaultISOURL)

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

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	initialCtx, cancelInitialization := context.WithTimeout(context.Background(), defaultTimeout)
	err = mongoClient.Connect(initialCtx)
	cancelInitialization()
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	if err := indexer.IndexSnapshotCollection(); nil != err {
		log.WithField("prefix", logPrefix).Errorf("index snapshot collection with error: %s", err)
	}
	_ = indexer.Close()

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)
	defer mStore.Close()

	if err := mStore.Ping(); nil != err {
		log.Panicf("ping mongo database with error: %s", err)
	}

	sources := dashboard.Sources{
		Confirmed: viper.GetString("datasource.confirmed"),
		Deaths:    viper.GetString("datasource.deaths"),
		Recovered: viper.GetString("datasource.recovered"),
		ISO:       viper.GetString("datasource.iso"),
	}

	httpClient := &http.Client{
		Timeout: viper.GetDuration("http.timeout"),
	}

	var extra []region.Region
	if file := viper.GetString("regions.file"); file != "" {
		if extra, err = region.LoadFile(file); nil != err {
			log.Panicf("load regions from %s with error: %s", file, err)
		}
	}

	registry, err := region.NewRegistry(extra...)
	if nil != err {
		log.Panic(err)
	}

	// every region shares one loader so each feed is downloaded once
	d := dashboard.New(dataset.NewLoader(jhu.New(httpClient), sources.ISO, nil), sources, registry)

	crawlers := make([]Cron, 0)
	for _, r := range registry.List() {
		crawlers = append(crawlers, newCrawler(r.ID, mStore, d))
	}

	if failed := runCrawlers(context.Background(), crawlers); failed > 0 {
		// deferred calls do not run after Fatal
		mStore.Close()
		log.WithFields(log.Fields{"prefix": logPrefix, "failed": failed}).Fatal("crawler finished with errors")
	}
}

// runCrawlers runs every crawler and returns how many failed
func runCrawlers(ctx context.Context, crawlers []Cron) int {
	failed := 0
	for _, c := range crawlers {
		if err := c.Run(ctx); nil != err {
			failed++
		}
	}
	return failed
}
