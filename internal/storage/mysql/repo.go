package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wanderlens/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

// jsonCol marshals a nested value for a JSON column; nil slices become [].
func jsonCol(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// Repo is the MySQL catalog. It serves domain.Catalog for the API and
// domain.CatalogWriter for the ingestor.
type Repo struct{ db *sql.DB }

var (
	_ domain.Catalog       = (*Repo)(nil)
	_ domain.CatalogWriter = (*Repo)(nil)
)

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertBundle(ctx context.Context, d domain.Destination, position int, b domain.Bundle, raw []byte) error {
	flight, err := jsonCol(b.Flight)
	if err != nil {
		return err
	}
	stay, err := jsonCol(b.Stay)
	if err != nil {
		return err
	}
	acts, err := jsonCol(b.Activities)
	if err != nil {
		return err
	}
	badges, err := jsonCol(b.Badges)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertBundleSQL,
		b.ID,
		string(d),
		position,
		b.Title,
		b.PricePP,
		b.Dates.Start,
		b.Dates.End,
		flight,
		stay,
		acts,
		valStr(b.EcoNote),
		valStr(b.VisaNote),
		valStr(b.SurgeNote),
		badges,
		valJSON(raw),
	)
	return err
}

// PruneGroup deletes the destination's bundles that are not in keep.
func (r *Repo) PruneGroup(ctx context.Context, d domain.Destination, keep []string) error {
	if len(keep) == 0 {
		return fmt.Errorf("%w: refusing to prune %s to nothing", domain.ErrValidation, d)
	}
	args := make([]any, 0, len(keep)+1)
	args = append(args, string(d))
	for _, id := range keep {
		args = append(args, id)
	}
	q := pruneGroupPrefix + "(" + strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",") + ")"
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, d domain.Destination, status int, reason string) error {
	if len(reason) > 255 {
		reason = reason[:255]
	}
	_, err := r.db.ExecContext(ctx, insertMissSQL, string(d), status, reason)
	return err
}

func (r *Repo) Group(ctx context.Context, d domain.Destination) ([]domain.Bundle, error) {
	out, err := r.list(ctx, groupSQL, string(d))
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("destination %q: %w", d, domain.ErrNotFound)
	}
	return out, nil
}

func (r *Repo) Bundle(ctx context.Context, id string) (domain.Bundle, error) {
	b, err := scanBundle(r.db.QueryRowContext(ctx, bundleSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Bundle{}, fmt.Errorf("bundle %q: %w", id, domain.ErrNotFound)
		}
		return domain.Bundle{}, err
	}
	return b, nil
}

func (r *Repo) All(ctx context.Context) ([]domain.Bundle, error) {
	return r.list(ctx, allSQL)
}

func (r *Repo) list(ctx context.Context, q string, args ...any) ([]domain.Bundle, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Bundle{}
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBundle(s scanner) (domain.Bundle, error) {
	var b domain.Bundle
	var flight, stay, acts, badges []byte
	var eco, visa, surge sql.NullString
	if err := s.Scan(
		&b.ID,
		&b.Title,
		&b.PricePP,
		&b.Dates.Start, &b.Dates.End,
		&flight, &stay, &acts,
		&eco, &visa, &surge,
		&badges,
	); err != nil {
		return domain.Bundle{}, err
	}
	for _, col := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"flight", flight, &b.Flight},
		{"stay", stay, &b.Stay},
		{"activities", acts, &b.Activities},
		{"badges", badges, &b.Badges},
	} {
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return domain.Bundle{}, fmt.Errorf("bundle %s: decode %s: %w", b.ID, col.name, err)
		}
	}
	if len(b.Badges) == 0 {
		b.Badges = nil
	}
	if b.Activities == nil {
		b.Activities = []domain.Activity{}
	}
	b.EcoNote, b.VisaNote, b.SurgeNote = eco.String, visa.String, surge.String
	return b, nil
}
