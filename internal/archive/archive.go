package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/candles"
	"github.com/STTM-NSU/forex-cli/internal/logger"
	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	_createCandles = `CREATE TABLE IF NOT EXISTS fx_candles (
		instrument  TEXT      NOT NULL,
		granularity TEXT      NOT NULL,
		ts          TIMESTAMP NOT NULL,
		open        NUMERIC   NOT NULL,
		high        NUMERIC   NOT NULL,
		low         NUMERIC   NOT NULL,
		close       NUMERIC   NOT NULL,
		volume      BIGINT    NOT NULL,
		PRIMARY KEY (instrument, granularity, ts)
	)`
	_upsertCandle = `INSERT INTO fx_candles (instrument, granularity, ts, open, high, low, close, volume)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (instrument, granularity, ts) DO UPDATE
			SET open = EXCLUDED.open,
				high = EXCLUDED.high,
				low = EXCLUDED.low,
				close = EXCLUDED.close,
				volume = EXCLUDED.volume`
	_queryCandles = "SELECT instrument, granularity, ts, open, high, low, close, volume FROM fx_candles WHERE instrument = $1 AND granularity = $2 ORDER BY ts"
)

// Store keeps normalized candles in postgres, one row per
// (instrument, granularity, ts).
type Store struct {
	db     *sqlx.DB
	logger logger.Logger
}

func NewStore(db *sqlx.DB, logger logger.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, _createCandles); err != nil {
		return fmt.Errorf("%w: can't create fx_candles", err)
	}
	return nil
}

// Save upserts every row of t in one transaction and returns the number of
// rows written. Nothing is written if any row fails.
func (s *Store) Save(ctx context.Context, instrument, granularity string, t candles.Table) (int, error) {
	records, err := toArchived(instrument, granularity, t)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: can't begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range records {
		if _, err := tx.ExecContext(ctx, _upsertCandle,
			c.Instrument,
			c.Granularity,
			c.Ts,
			c.Open,
			c.High,
			c.Low,
			c.Close,
			c.Volume,
		); err != nil {
			return 0, fmt.Errorf("%w: can't upsert candle %s %s %s", err, instrument, granularity, c.Ts)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: can't commit candles", err)
	}

	s.logger.Infof("archived %d %s %s candles", len(records), instrument, granularity)
	return len(records), nil
}

func (s *Store) Load(ctx context.Context, instrument, granularity string) ([]model.ArchivedCandle, error) {
	var out []model.ArchivedCandle
	if err := s.db.SelectContext(ctx, &out, _queryCandles, instrument, granularity); err != nil {
		return nil, fmt.Errorf("%w: can't load candles %s %s", err, instrument, granularity)
	}
	return out, nil
}

func toArchived(instrument, granularity string, t candles.Table) ([]model.ArchivedCandle, error) {
	out := make([]model.ArchivedCandle, 0, t.Len())
	for i, r := range t.Rows {
		ts, err := time.Parse(candles.TimeLayout, r.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d", err, i)
		}

		var prices [4]decimal.Decimal
		for j, v := range []string{r.Open, r.High, r.Low, r.Close} {
			if prices[j], err = decimal.NewFromString(v); err != nil {
				return nil, fmt.Errorf("%w: row %d column %s", err, i, candles.Header[j+1])
			}
		}

		out = append(out, model.ArchivedCandle{
			Instrument:  instrument,
			Granularity: granularity,
			Ts:          ts,
			Open:        prices[0],
			High:        prices[1],
			Low:         prices[2],
			Close:       prices[3],
			Volume:      r.Volume,
		})
	}
	return out, nil
}
