package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	defer indexer.Close()

	indexer.IndexAll()
}
