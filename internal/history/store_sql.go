package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// Add stores a record. The ID is derived from the timestamp like the rest of
// the app's identifiers; a nanosecond suffix keeps rapid sessions distinct.
func (s *SQLStore) Add(ctx context.Context, r Record) (Record, error) {
	now := time.Now()
	if r.ID == "" {
		r.ID = fmt.Sprintf("%s-%09d", now.Format("20060102150405"), now.Nanosecond())
	}
	r.CreatedAt = now

	wj, err := json.Marshal(r.WrongWords)
	if err != nil {
		return Record{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO history
		(id,mode,vocabulary_name,total,correct_count,score,duration_sec,wrong_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.Mode, r.VocabularyName, r.Total, r.CorrectCount, r.Score,
		r.DurationSec, string(wj), now.Unix())
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *SQLStore) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
		id,mode,vocabulary_name,total,correct_count,score,duration_sec,wrong_json,created_at
		FROM history ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		id,mode,vocabulary_name,total,correct_count,score,duration_sec,wrong_json,created_at
		FROM history WHERE id=$1`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return r, err
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	return err
}

func (s *SQLStore) Stats(ctx context.Context) (Stats, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		COUNT(*), COALESCE(SUM(total),0), COALESCE(SUM(correct_count),0),
		COALESCE(AVG(score),0), COALESCE(MAX(score),0) FROM history`)
	var st Stats
	if err := row.Scan(&st.Sessions, &st.TotalWords, &st.TotalCorrect, &st.AverageScore, &st.BestScore); err != nil {
		return Stats{}, err
	}
	return st, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	var wj string
	var created int64
	if err := row.Scan(&r.ID, &r.Mode, &r.VocabularyName, &r.Total, &r.CorrectCount,
		&r.Score, &r.DurationSec, &wj, &created); err != nil {
		return Record{}, err
	}
	if wj != "" && wj != "null" {
		if err := json.Unmarshal([]byte(wj), &r.WrongWords); err != nil {
			return Record{}, err
		}
	}
	r.CreatedAt = time.Unix(created, 0)
	return r, nil
}
