package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	UserRepository    UserRepository
	PaymentRepository PaymentRepository
	APIKeyRepository  APIKeyRepository

	db *DB
}

// NewStorages connects to the database named by cfg.DB.DSN, optionally
// applies migrations and constructs all repositories.
//
// postgres:// and postgresql:// DSNs use pgx; sqlite://, file: and :memory:
// DSNs use SQLite.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch driverFromDSN(cfg.DB.DSN) {
	case driverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case driverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if cfg.DB.Migrate {
		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PaymentRepository: NewPaymentRepository(db, log),
		APIKeyRepository:  NewAPIKeyRepository(db, log),
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const (
	driverUnknown  = ""
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

func driverFromDSN(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return driverPostgres
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return driverSQLite
	default:
		return driverUnknown
	}
}
