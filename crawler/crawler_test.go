package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/api/mocks"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
)

type archiveStub struct {
	region   string
	snapshot schema.Snapshot
	err      error
}

func (a *archiveStub) ReplaceSnapshot(ctx context.Context, region string, snapshot schema.Snapshot) error {
	a.region = region
	a.snapshot = snapshot
	return a.err
}

func (a *archiveStub) LatestSnapshot(ctx context.Context, region string) (*schema.Snapshot, error) {
	return &a.snapshot, nil
}

func TestCrawlerArchivesSnapshot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	snapshot := &schema.Snapshot{
		Date: time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
		Rows: []schema.SnapshotRow{{Country: "Brazil"}},
	}

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().Snapshot(gomock.Any(), "south-america", series.SortCountry, false).Return(snapshot, nil).Times(1)

	archive := &archiveStub{}
	err := newCrawler("south-america", archive, d).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "south-america", archive.region)
	assert.Equal(t, *snapshot, archive.snapshot)
}

func TestCrawlerStopsOnDatasetError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().Snapshot(gomock.Any(), "world", series.SortCountry, false).Return(nil, errors.New("feed down")).Times(1)

	archive := &archiveStub{}
	err := newCrawler("world", archive, d).Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, archive.region, "nothing should be archived")
}

func TestCrawlerReportsArchiveError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().Snapshot(gomock.Any(), "world", series.SortCountry, false).Return(&schema.Snapshot{}, nil).Times(1)

	err := newCrawler("world", &archiveStub{err: errors.New("write fail")}, d).Run(context.Background())
	assert.EqualError(t, err, "write fail")
}

func TestRunCrawlersCountsFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().Snapshot(gomock.Any(), "world", series.SortCountry, false).Return(&schema.Snapshot{}, nil).Times(1)
	d.EXPECT().Snapshot(gomock.Any(), "south-america", series.SortCountry, false).Return(nil, errors.New("feed down")).Times(1)

	failed := runCrawlers(context.Background(), []Cron{
		newCrawler("world", &archiveStub{}, d),
		newCrawler("south-america", &archiveStub{}, d),
	})
	assert.Equal(t, 1, failed)

	assert.Equal(t, 0, runCrawlers(context.Background(), nil))
}
