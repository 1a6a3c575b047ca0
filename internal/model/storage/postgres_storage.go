package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/entity/user"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

// snapshotName is the fixed key every user's budget blob is stored under.
const snapshotName = "financeData"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int64) (user.Record, error) {
	query := psql.Select("current_month").
		From("users").
		Where(sq.Eq{"id": id})

	var res user.Record
	var current string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, nil
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	res.SetCurrentMonth(month.ID(current))
	return res, nil
}

func (s *PostgresStorage) SaveUserByID(ctx context.Context, id int64, rec user.Record) error {
	current := rec.CurrentMonthOrDefault("")
	query := psql.Insert("users").
		Columns("id", "current_month", "updated_at").
		Values(id, current.String(), time.Now()).
		Suffix("ON CONFLICT(id) DO UPDATE SET current_month = ?, updated_at = ?",
			current.String(), time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save user")
}

func (s *PostgresStorage) GetSnapshot(ctx context.Context, userID int64) ([]byte, error) {
	query := psql.Select("payload").
		From("snapshots").
		Where(sq.Eq{"user_id": userID, "name": snapshotName})

	var payload []byte
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get snapshot")
	}
	return payload, nil
}

// SaveSnapshot overwrites the user's whole budget blob. There are no
// partial updates, so a plain upsert is the entire write path.
func (s *PostgresStorage) SaveSnapshot(ctx context.Context, userID int64, payload []byte) error {
	query := psql.Insert("snapshots").
		Columns("user_id", "name", "payload", "updated_at").
		Values(userID, snapshotName, payload, time.Now()).
		Suffix("ON CONFLICT(user_id, name) DO UPDATE SET payload = ?, updated_at = ?",
			payload, time.Now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save snapshot")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			log.Println("error when transaction rollback", txErr)
		}
	}()

	if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "save snapshot")
	}
	return tx.Commit()
}
