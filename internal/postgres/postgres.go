package postgres

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Config describes the archive database. Every field comes from a POSTGRES_*
// variable and falls back to a local development default.
type Config struct {
	Host           string
	Port           string
	Username       string
	Password       string
	DBName         string
	SSLMode        string
	ConnectTimeout int // seconds
}

func NewConfigFromEnv() *Config {
	timeout, _ := strconv.Atoi(os.Getenv("POSTGRES_CONNECT_TIMEOUT"))
	return &Config{
		Host:           os.Getenv("POSTGRES_HOST"),
		Port:           os.Getenv("POSTGRES_PORT"),
		Username:       os.Getenv("POSTGRES_USERNAME"),
		Password:       os.Getenv("POSTGRES_PASSWORD"),
		DBName:         os.Getenv("POSTGRES_DB_NAME"),
		SSLMode:        os.Getenv("POSTGRES_SSL_MODE"),
		ConnectTimeout: timeout,
	}
}

func (c *Config) Setup() *Config {
	const (
		defaultHost           = "localhost"
		defaultPort           = "5432"
		defaultUsername       = "postgres"
		defaultPassword       = "postgres"
		defaultDBName         = "postgres"
		defaultSSLMode        = "disable"
		defaultConnectTimeout = 5
	)

	c.Host = cmp.Or(c.Host, defaultHost)
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 {
		c.Port = defaultPort
	}
	c.Username = cmp.Or(c.Username, defaultUsername)
	c.Password = cmp.Or(c.Password, defaultPassword)
	c.DBName = cmp.Or(c.DBName, defaultDBName)
	c.SSLMode = cmp.Or(c.SSLMode, defaultSSLMode)
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}

	return c
}

// String is the lib/pq key/value DSN.
func (c *Config) String() string {
	return c.dsn(c.Password)
}

// Redacted is String with the password masked, for logs.
func (c *Config) Redacted() string {
	if c.Password == "" {
		return c.dsn("")
	}
	return c.dsn("***")
}

func (c *Config) dsn(password string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=%s connect_timeout=%d",
		c.Host, c.Port, c.Username, c.DBName, password, c.SSLMode, c.ConnectTimeout,
	)
}

// NewDB connects and pings the database. The CLI archives one batch per run,
// so the pool stays small and idle connections are dropped quickly.
func NewDB(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.String())
	if err != nil {
		return nil, fmt.Errorf("%w: can't connect to postgres at %s:%s", err, cfg.Host, cfg.Port)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxIdleTime(30 * time.Second)

	return db, nil
}
