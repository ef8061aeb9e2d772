// Package store keeps saved documents in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jmoiron/sqlx"

	"invoicegen/m/domain"
)

// ErrNotFound is returned when no document has the requested id.
var ErrNotFound = errors.New("document not found")

// savedAtLayout is fixed width so the column sorts chronologically.
const savedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Filter narrows List. Zero values match everything.
type Filter struct {
	Type   domain.DocumentType
	Search string
}

// Store persists documents. Each write is a single statement, so a failed
// write leaves existing rows untouched.
type Store struct {
	db   *sqlx.DB
	node *snowflake.Node
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used for saved-at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store over a migrated database. nodeID distinguishes id
// generators when several processes share one database file.
func New(db *sqlx.DB, nodeID int64, opts ...Option) (*Store, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}
	s := &Store{db: db, node: node, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type documentRow struct {
	ID           int64   `db:"id"`
	Type         string  `db:"type"`
	Number       string  `db:"number"`
	Counterparty string  `db:"counterparty"`
	GrandTotal   float64 `db:"grand_total"`
	SavedAt      string  `db:"saved_at"`
	Payload      string  `db:"payload"`
}

func (r documentRow) saved() (domain.SavedDocument, error) {
	var doc domain.Document
	if err := json.Unmarshal([]byte(r.Payload), &doc); err != nil {
		return domain.SavedDocument{}, fmt.Errorf("decode document %d: %w", r.ID, err)
	}
	savedAt, err := time.Parse(savedAtLayout, r.SavedAt)
	if err != nil {
		return domain.SavedDocument{}, fmt.Errorf("decode document %d saved_at: %w", r.ID, err)
	}
	return domain.SavedDocument{ID: snowflake.ID(r.ID), SavedAt: savedAt, Document: doc}, nil
}

// Save stores doc under a new id and returns it with its id and saved-at
// time.
func (s *Store) Save(ctx context.Context, doc domain.Document) (domain.SavedDocument, error) {
	if !slices.Contains(domain.DocumentTypes, doc.Type) {
		return domain.SavedDocument{}, fmt.Errorf("%w: %q", domain.ErrInvalidDocumentType, doc.Type)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return domain.SavedDocument{}, fmt.Errorf("encode document: %w", err)
	}

	saved := domain.SavedDocument{
		ID:       s.node.Generate(),
		SavedAt:  s.now().UTC(),
		Document: doc,
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, type, number, counterparty, grand_total, saved_at, payload) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		saved.ID.Int64(), string(doc.Type), doc.Number, doc.Counterparty.Name, doc.Totals.GrandTotal,
		saved.SavedAt.Format(savedAtLayout), string(payload))
	if err != nil {
		return domain.SavedDocument{}, fmt.Errorf("save document: %w", err)
	}
	return saved, nil
}

// Get returns the document with the given id.
func (s *Store) Get(ctx context.Context, id snowflake.ID) (domain.SavedDocument, error) {
	var row documentRow
	err := s.db.GetContext(ctx, &row,
		`SELECT id, type, number, counterparty, grand_total, saved_at, payload FROM documents WHERE id = ?`, id.Int64())
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SavedDocument{}, ErrNotFound
	}
	if err != nil {
		return domain.SavedDocument{}, fmt.Errorf("get document %s: %w", id, err)
	}
	return row.saved()
}

// List returns matching documents, most recently saved first. Search matches
// the document number or counterparty name, ignoring case.
func (s *Store) List(ctx context.Context, f Filter) ([]domain.SavedDocument, error) {
	var (
		args    []any
		clauses []string
	)
	if f.Type != "" {
		args = append(args, string(f.Type))
		clauses = append(clauses, "type = ?")
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		args = append(args, like, like)
		clauses = append(clauses, `(LOWER(number) LIKE ? ESCAPE '\' OR LOWER(counterparty) LIKE ? ESCAPE '\')`)
	}

	query := `SELECT id, type, number, counterparty, grand_total, saved_at, payload FROM documents`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY saved_at DESC, id DESC"

	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	docs := make([]domain.SavedDocument, 0, len(rows))
	for _, row := range rows {
		doc, err := row.saved()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Delete removes the document with the given id.
func (s *Store) Delete(ctx context.Context, id snowflake.ID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id.Int64())
	if err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts returns the number of saved documents per type.
func (s *Store) Counts(ctx context.Context) (domain.Stats, error) {
	var rows []struct {
		Type  string `db:"type"`
		Count int    `db:"n"`
	}
	if err := s.db.SelectContext(ctx, &rows, `SELECT type, COUNT(*) AS n FROM documents GROUP BY type`); err != nil {
		return domain.Stats{}, fmt.Errorf("count documents: %w", err)
	}
	var stats domain.Stats
	for _, r := range rows {
		switch domain.DocumentType(r.Type) {
		case domain.PurchaseOrder:
			stats.PurchaseOrders = r.Count
		case domain.Invoice:
			stats.Invoices = r.Count
		case domain.Receipt:
			stats.Receipts = r.Count
		}
	}
	return stats, nil
}

// Empty reports whether no documents are stored.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM documents`); err != nil {
		return false, fmt.Errorf("count documents: %w", err)
	}
	return n == 0, nil
}
