// Package instruments maintains a local copy of the Dhan instrument master
// so symbol searches never hit the broker API.
package instruments

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// Store persists the instrument master in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the instrument database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// initSchema creates all required tables and indexes.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS instruments (
		security_id      TEXT NOT NULL,
		exchange_segment TEXT NOT NULL,
		trading_symbol   TEXT NOT NULL,
		symbol_name      TEXT NOT NULL,
		custom_symbol    TEXT NOT NULL,
		instrument_type  TEXT NOT NULL,
		lot_size         INTEGER NOT NULL DEFAULT 0,
		expiry_date      TEXT,
		strike_price     REAL,
		option_type      TEXT,
		tick_size        REAL,
		PRIMARY KEY (exchange_segment, security_id)
	);

	CREATE INDEX IF NOT EXISTS idx_instruments_symbol_name
		ON instruments(symbol_name);
	CREATE INDEX IF NOT EXISTS idx_instruments_trading_symbol
		ON instruments(trading_symbol);

	CREATE TABLE IF NOT EXISTS master_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the whole instrument master in one transaction and stamps
// the load time.
func (s *Store) Replace(ctx context.Context, rows []models.Instrument) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM instruments`); err != nil {
		return fmt.Errorf("clearing instruments: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO instruments
		(security_id, exchange_segment, trading_symbol, symbol_name, custom_symbol,
		 instrument_type, lot_size, expiry_date, strike_price, option_type, tick_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx,
			r.SecurityID, r.ExchangeSegment,
			strings.ToLower(r.TradingSymbol), strings.ToLower(r.SymbolName), strings.ToLower(r.CustomSymbol),
			r.InstrumentType, r.LotSize, r.ExpiryDate, r.StrikePrice, r.OptionType, r.TickSize,
		); err != nil {
			return fmt.Errorf("inserting instrument %s: %w", r.SecurityID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO master_meta (key, value) VALUES ('loaded_at', ?)`,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("stamping load time: %w", err)
	}

	return tx.Commit()
}

// LoadedAt returns when the master was last replaced, if ever.
func (s *Store) LoadedAt(ctx context.Context) (time.Time, bool) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM master_meta WHERE key = 'loaded_at'`).Scan(&value)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Count returns the number of instruments loaded.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM instruments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting instruments: %w", err)
	}
	return n, nil
}

// Query scopes an instrument search.
type Query struct {
	Text            string
	ExchangeSegment models.ExchangeSegment
	InstrumentType  string
	Limit           int
}

// Search matches instruments by case-insensitive substring on symbol name,
// trading symbol or display symbol, with optional segment/type filters.
func (s *Store) Search(ctx context.Context, q Query) ([]models.Instrument, error) {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return nil, &models.ValidationError{Field: "query", Message: "search query is required"}
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT security_id, exchange_segment, trading_symbol, symbol_name, custom_symbol,
		       instrument_type, lot_size, expiry_date, strike_price, option_type, tick_size
		FROM instruments
		WHERE (symbol_name LIKE ? OR trading_symbol LIKE ? OR custom_symbol LIKE ?)`
	pattern := "%" + text + "%"
	args := []interface{}{pattern, pattern, pattern}

	if q.ExchangeSegment != "" {
		query += ` AND exchange_segment = ?`
		args = append(args, string(q.ExchangeSegment))
	}
	if q.InstrumentType != "" {
		query += ` AND instrument_type = ?`
		args = append(args, q.InstrumentType)
	}
	query += ` ORDER BY LENGTH(trading_symbol), trading_symbol LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching instruments: %w", err)
	}
	defer rows.Close()

	var result []models.Instrument
	for rows.Next() {
		var inst models.Instrument
		var expiry, optionType sql.NullString
		var strike, tick sql.NullFloat64
		if err := rows.Scan(
			&inst.SecurityID, &inst.ExchangeSegment, &inst.TradingSymbol,
			&inst.SymbolName, &inst.CustomSymbol, &inst.InstrumentType,
			&inst.LotSize, &expiry, &strike, &optionType, &tick,
		); err != nil {
			return nil, fmt.Errorf("scanning instrument: %w", err)
		}
		inst.ExpiryDate = expiry.String
		inst.OptionType = optionType.String
		inst.StrikePrice = strike.Float64
		inst.TickSize = tick.Float64
		result = append(result, inst)
	}
	return result, rows.Err()
}
