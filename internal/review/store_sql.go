package review

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/wordwise-app/wordwise/internal/vocab"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Add(ctx context.Context, en, cn, userAnswer string) error {
	en = strings.TrimSpace(en)
	if en == "" {
		return errors.New("english word required")
	}
	key := strings.ToLower(en)
	now := time.Now().Unix()

	row := s.db.QueryRowContext(ctx,
		`SELECT count,answers_json FROM wrong_answers WHERE en_key=$1`, key)
	var count int
	var aj string
	err := row.Scan(&count, &aj)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		answers, _ := json.Marshal(appendAnswer(nil, userAnswer))
		_, err = s.db.ExecContext(ctx, `INSERT INTO wrong_answers
			(en_key,en,cn,count,answers_json,mastered,first_wrong_at,last_wrong_at)
			VALUES ($1,$2,$3,1,$4,0,$5,$5)`,
			key, en, cn, string(answers), now)
		return err
	case err != nil:
		return err
	}

	var recent []string
	if aj != "" {
		_ = json.Unmarshal([]byte(aj), &recent)
	}
	answers, _ := json.Marshal(appendAnswer(recent, userAnswer))
	_, err = s.db.ExecContext(ctx, `UPDATE wrong_answers
		SET count=$1, answers_json=$2, cn=$3, mastered=0, last_wrong_at=$4
		WHERE en_key=$5`,
		count+1, string(answers), cn, now, key)
	return err
}

func (s *SQLStore) List(ctx context.Context, includeMastered bool) ([]Entry, error) {
	q := `SELECT en,cn,count,answers_json,mastered,first_wrong_at,last_wrong_at
		FROM wrong_answers`
	if !includeMastered {
		q += ` WHERE mastered=0`
	}
	q += ` ORDER BY count DESC, last_wrong_at DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var aj string
		var mastered int
		var first, last int64
		if err := rows.Scan(&e.En, &e.Cn, &e.Count, &aj, &mastered, &first, &last); err != nil {
			return nil, err
		}
		if aj != "" && aj != "null" {
			_ = json.Unmarshal([]byte(aj), &e.LastAnswers)
		}
		e.Mastered = mastered != 0
		e.FirstWrongAt = time.Unix(first, 0)
		e.LastWrongAt = time.Unix(last, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) MarkMastered(ctx context.Context, en string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE wrong_answers SET mastered=1 WHERE en_key=$1`, strings.ToLower(strings.TrimSpace(en)))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, en string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM wrong_answers WHERE en_key=$1`, strings.ToLower(strings.TrimSpace(en)))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Words(ctx context.Context) ([]vocab.Word, error) {
	entries, err := s.List(ctx, false)
	if err != nil {
		return nil, err
	}
	words := make([]vocab.Word, 0, len(entries))
	for _, e := range entries {
		words = append(words, vocab.Word{En: e.En, Cn: e.Cn})
	}
	return words, nil
}
