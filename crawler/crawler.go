package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/series"
	"github.com/bitmark-inc/covid-dashboard/store"
)

type snapshotCrawler struct {
	archive   store.SnapshotArchive
	dashboard dashboard.Dashboard
	region    string
}

// Run archives the latest snapshot of the region
func (c snapshotCrawler) Run(ctx context.Context) error {
	snapshot, err := c.dashboard.Snapshot(ctx, c.region, series.SortCountry, false)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "region": c.region, "error": err}).Error("derive snapshot")
		return err
	}

	if err := c.archive.ReplaceSnapshot(ctx, c.region, *snapshot); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "region": c.region, "error": err}).Error("archive snapshot")
		return err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"region": c.region,
		"date":   snapshot.Date.Format("2006-01-02"),
		"rows":   len(snapshot.Rows),
	}).Info("snapshot archived")
	return nil
}

// newCrawler - new crawler archiving the snapshot of one region
func newCrawler(region string, archive store.SnapshotArchive, d dashboard.Dashboard) Cron {
	return &snapshotCrawler{
		archive:   archive,
		dashboard: d,
		region:    region,
	}
}
