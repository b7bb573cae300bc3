package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// DB wraps a pgx connection with metadata.
type DB struct {
	Conn       *pgx.Conn
	connString string
	user       string
	host       string
	port       string
	database   string
}

// Connect establishes a PostgreSQL connection from a URI string with a
// 10-second timeout.
func Connect(uri string) (*DB, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid URI: %w", err)
	}

	port := parsed.Port()
	if port == "" {
		port = "5432"
	}

	// Ensure sslmode is set if not already present
	q := parsed.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "prefer")
		parsed.RawQuery = q.Encode()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, parsed.String())
	if err != nil {
		return nil, err
	}

	return &DB{
		Conn:       conn,
		connString: parsed.String(),
		user:       parsed.User.Username(),
		host:       parsed.Hostname(),
		port:       port,
		database:   strings.TrimPrefix(parsed.Path, "/"),
	}, nil
}

// Close closes the database connection.
func (d *DB) Close() {
	if d.Conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		d.Conn.Close(ctx)
	}
}

// IsConnected checks if the connection is alive.
func (d *DB) IsConnected() bool {
	if d.Conn == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return d.Conn.Ping(ctx) == nil
}

// ConnInfo returns a display-safe connection string (no password).
func (d *DB) ConnInfo() string {
	return fmt.Sprintf("postgres://%s@%s:%s/%s", d.user, d.host, d.port, d.database)
}
