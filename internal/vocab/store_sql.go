package vocab

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists vocabularies in the shared DB, words as JSON in a TEXT
// column. Works against both sqlite and postgres schemas.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Put(ctx context.Context, v Vocabulary) error {
	if err := Validate(v); err != nil {
		return err
	}
	wj, err := json.Marshal(v.Words)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, `INSERT INTO vocabularies (name,words_json,created_at,updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (name) DO UPDATE SET words_json=EXCLUDED.words_json, updated_at=EXCLUDED.updated_at`,
		v.Name, string(wj), now, now)
	return err
}

func (s *SQLStore) Get(ctx context.Context, name string) (Vocabulary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name,words_json,created_at,updated_at FROM vocabularies WHERE name=$1`, name)
	var v Vocabulary
	var wj string
	var created, updated int64
	if err := row.Scan(&v.Name, &wj, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vocabulary{}, ErrNotFound
		}
		return Vocabulary{}, err
	}
	if err := json.Unmarshal([]byte(wj), &v.Words); err != nil {
		return Vocabulary{}, err
	}
	v.CreatedAt = time.Unix(created, 0)
	v.UpdatedAt = time.Unix(updated, 0)
	return v, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name,words_json,created_at,updated_at FROM vocabularies ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var name, wj string
		var created, updated int64
		if err := rows.Scan(&name, &wj, &created, &updated); err != nil {
			return nil, err
		}
		var words []Word
		if err := json.Unmarshal([]byte(wj), &words); err != nil {
			return nil, err
		}
		out = append(out, Info{
			Name:      name,
			WordCount: len(words),
			CreatedAt: time.Unix(created, 0),
			UpdatedAt: time.Unix(updated, 0),
		})
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vocabularies WHERE name=$1`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
