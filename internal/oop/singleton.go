package oop

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// DatabaseConnection is a process-wide handle to an in-memory SQLite
// database. Obtain it with Database.
type DatabaseConnection struct {
	ConnectionString string

	mu sync.Mutex
	db *sql.DB
}

var (
	dbOnce     sync.Once
	dbInstance *DatabaseConnection
)

// Database returns the single shared connection, creating it on first use.
func Database() *DatabaseConnection {
	dbOnce.Do(func() {
		dbInstance = &DatabaseConnection{ConnectionString: ":memory:"}
	})
	return dbInstance
}

func (c *DatabaseConnection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db != nil
}

// Connect opens the database and creates the people table. Calling it on
// an open connection is a no-op.
func (c *DatabaseConnection) Connect(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return "Connected to database", nil
	}

	db, err := sql.Open("sqlite", c.ConnectionString)
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	// every pooled connection to :memory: would otherwise see its own database
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return "", fmt.Errorf("ping database: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS people (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age  INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return "", fmt.Errorf("create schema: %w", err)
	}
	c.db = db
	return "Connected to database", nil
}

func (c *DatabaseConnection) Disconnect() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return "Disconnected from database", nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return "", err
	}
	return "Disconnected from database", nil
}

func (c *DatabaseConnection) conn() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil, fmt.Errorf("database is not connected")
	}
	return c.db, nil
}

// SavePerson upserts p keyed by its ID.
func (c *DatabaseConnection) SavePerson(ctx context.Context, p *Person) error {
	db, err := c.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO people (id, name, age) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, age = excluded.age`,
		p.ID.String(), p.Name, p.Age)
	return err
}

// Adults returns, ordered by name, those people among ids who are 18 or
// over.
func (c *DatabaseConnection) Adults(ctx context.Context, ids ...string) ([]string, error) {
	db, err := c.conn()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT name FROM people WHERE age >= 18 AND id IN (?` +
		strings.Repeat(", ?", len(ids)-1) + `) ORDER BY name`
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
