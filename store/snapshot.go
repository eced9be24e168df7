package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const reportDateLayout = "2006-01-02"

var (
	ErrNoSnapshot     = fmt.Errorf("no snapshot archived")
	ErrSnapshotFetch  = fmt.Errorf("fetch snapshot fail")
	ErrSnapshotDecode = fmt.Errorf("decode snapshot fail")
)

// SnapshotArchive keeps the latest snapshot table of every region
type SnapshotArchive interface {
	ReplaceSnapshot(ctx context.Context, region string, snapshot schema.Snapshot) error
	LatestSnapshot(ctx context.Context, region string) (*schema.Snapshot, error)
}

// ReplaceSnapshot upserts one document per country of the snapshot date
func (m *mongoDB) ReplaceSnapshot(ctx context.Context, region string, snapshot schema.Snapshot) error {
	if len(snapshot.Rows) <= 0 {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "region": region}).Debug("no snapshot row to update")
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.SnapshotCollection)
	reportDate := snapshot.Date.UTC().Format(reportDateLayout)
	now := time.Now().UTC().Unix()

	for _, row := range snapshot.Rows {
		filter := bson.M{"region": region, "report_date": reportDate, "country": row.Country}
		replacement := schema.SnapshotRecord{
			Region:      region,
			ReportDate:  reportDate,
			ReportTime:  snapshot.Date.UTC().Unix(),
			UpdateTime:  now,
			SnapshotRow: row,
		}

		opts := options.Replace().SetUpsert(true)
		if _, err := c.ReplaceOne(ctx, filter, replacement, opts); nil != err {
			if errs, hasErr := err.(mongo.WriteException); hasErr {
				if 1 == len(errs.WriteErrors) && DuplicateKeyCode == errs.WriteErrors[0].Code {
					log.WithFields(log.Fields{"prefix": mongoLogPrefix, "country": row.Country}).Warnf("snapshot update with error: %s", err)
					continue
				}
			}
			log.WithFields(log.Fields{"prefix": mongoLogPrefix, "region": region, "country": row.Country}).Errorf("replace snapshot row with error: %s", err)
			return err
		}
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "region": region, "date": reportDate, "records": len(snapshot.Rows)}).Debug("snapshot archived")
	return nil
}

// LatestSnapshot returns the rows of the newest archived report date of a region
func (m *mongoDB) LatestSnapshot(ctx context.Context, region string) (*schema.Snapshot, error) {
	c := m.client.Database(m.database).Collection(schema.SnapshotCollection)

	var latest schema.SnapshotRecord
	opts := options.FindOne().SetSort(bson.M{"report_ts": -1})
	if err := c.FindOne(ctx, bson.M{"region": region}, opts).Decode(&latest); nil != err {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoSnapshot
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "region": region}).Errorf("find latest snapshot with error: %s", err)
		return nil, ErrSnapshotFetch
	}

	cur, err := c.Find(ctx,
		bson.M{"region": region, "report_date": latest.ReportDate},
		options.Find().SetSort(bson.M{"country": 1}))
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "region": region}).Errorf("find snapshot rows with error: %s", err)
		return nil, ErrSnapshotFetch
	}
	defer cur.Close(ctx)

	snapshot := schema.Snapshot{
		Date: time.Unix(latest.ReportTime, 0).UTC(),
		Rows: make([]schema.SnapshotRow, 0),
	}
	for cur.Next(ctx) {
		var record schema.SnapshotRecord
		if err := cur.Decode(&record); nil != err {
			return nil, ErrSnapshotDecode
		}
		snapshot.Rows = append(snapshot.Rows, record.SnapshotRow)
	}

	if err := cur.Err(); nil != err {
		return nil, ErrSnapshotFetch
	}

	return &snapshot, nil
}
