package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./postgres.go -destination=./mocks/postgres_mock.go -package=mocks

//nolint:revive
import (
	"catering/config"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Transactor runs a unit of work against the primary.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Connection holds the read replica and the primary used for writes.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  connect(config, "read", config.DB.Postgres.Read.Username, config.DB.Postgres.Read.Password, config.DB.Postgres.Read.Host, config.DB.Postgres.Read.Port, config.DB.Postgres.Read.Name, config.DB.Postgres.Read.SSLMode),
		Write: connect(config, "write", config.DB.Postgres.Write.Username, config.DB.Postgres.Write.Password, config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port, config.DB.Postgres.Write.Name, config.DB.Postgres.Write.SSLMode),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Failed to connect to postgres after all retries")
	}

	return conn
}

// WithTx runs fn inside a write transaction, rolling back when fn fails.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// DSN builds the connection url for the write database, used by migrations.
func DSN(config *config.Config) string {
	write := config.DB.Postgres.Write

	return descriptor(write.Username, write.Password, write.Host, write.Port, databaseName(config, write.Name), write.SSLMode)
}

func databaseName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

func descriptor(username, password, host, port, dbName, sslMode string) string {
	dsn := url.URL{
		Scheme: driverName,
		User:   url.UserPassword(username, password),
		Host:   net.JoinHostPort(host, port),
		Path:   dbName,
	}

	if sslMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {sslMode}}.Encode()
	}

	return dsn.String()
}

func connect(config *config.Config, name, username, password, host, port, baseName, sslMode string) *sqlx.DB {
	dbName := databaseName(config, baseName)
	dsn := descriptor(username, password, host, port, dbName, sslMode)

	maxRetry := max(config.DB.Postgres.MaxRetry, 1)
	waitTime := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			log.Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(waitTime)
	}

	return nil
}
