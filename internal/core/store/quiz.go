package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pokeknower/pokeknower/internal/core"
)

// InsertQuizScore records one finished quiz round. player may be empty for
// anonymous rounds.
func (s *Store) InsertQuizScore(ctx context.Context, score core.QuizScore) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}
	if score.TotalQuestions < 1 {
		return 0, errors.New("quiz score needs a positive question count")
	}
	if score.Score < 0 || score.Score > score.TotalQuestions {
		return 0, fmt.Errorf("quiz score %d is out of range for %d questions", score.Score, score.TotalQuestions)
	}

	createdAt := score.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO quiz_scores (player, score, total_questions, created_at)
		VALUES (?, ?, ?, ?)
	`, nullString(score.Player), score.Score, score.TotalQuestions, createdAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("insert quiz score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert quiz score: %w", err)
	}
	return id, nil
}

// Leaderboard returns the best rounds ranked by score ratio, newest first
// among ties.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]core.QuizScore, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}
	if limit < 1 {
		limit = 20
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, player, score, total_questions, created_at
		FROM quiz_scores
		WHERE player IS NOT NULL AND player != ''
		ORDER BY (score * 100.0 / total_questions) DESC, created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	var scores []core.QuizScore
	for rows.Next() {
		var (
			entry     core.QuizScore
			player    sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&entry.ID, &player, &entry.Score, &entry.TotalQuestions, &createdAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entry.Player = player.String
		entry.CreatedAt = time.Unix(createdAt, 0).UTC()
		scores = append(scores, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard rows: %w", err)
	}

	return scores, nil
}
