package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/neon-law-foundation/notation/pkg/jsonfield"
	"github.com/neon-law-foundation/notation/pkg/ports"
)

// NotationRecord is one stored notation. JSON columns hold raw JSON text;
// empty columns are stored as NULL and skip validation.
type NotationRecord struct {
	Code             string
	Title            string
	Flow             string
	Alignment        string
	DocumentMappings string
	Changelog        string
}

func (r NotationRecord) fields() []ports.Validatable {
	var fields []ports.Validatable
	add := func(kind jsonfield.Kind, text string) {
		if text != "" {
			fields = append(fields, jsonfield.Field{Kind: kind, Text: text})
		}
	}
	add(jsonfield.KindQuestionMap, r.Flow)
	add(jsonfield.KindQuestionMap, r.Alignment)
	add(jsonfield.KindDocumentMappings, r.DocumentMappings)
	add(jsonfield.KindChangelog, r.Changelog)
	return fields
}

func nullable(text string) sql.NullString {
	return sql.NullString{String: text, Valid: text != ""}
}

// SaveNotation inserts rec in a transaction. The JSON columns are checked with
// jsonfield.Guard before the transaction opens, so text Postgres would refuse as
// JSONB still surfaces as a *jsonfield.CommitError and nothing is written.
func (r *Registry) SaveNotation(ctx context.Context, rec NotationRecord) (int64, error) {
	if err := jsonfield.Guard(rec.fields()...); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin notation write: %w", err)
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO notations (code, title, flow, alignment, document_mappings, changelog) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		rec.Code, rec.Title,
		nullable(rec.Flow), nullable(rec.Alignment), nullable(rec.DocumentMappings), nullable(rec.Changelog),
	).Scan(&id)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("insert notation: %w", err), tx.Rollback())
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit notation: %w", err)
	}
	return id, nil
}
