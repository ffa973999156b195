// Package sqlite persists participant responses in a local SQLite
// database. The store lives under the user's home directory so
// responses accumulate across sessions without any server.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
)

var _ driven.ResponseStore = (*Store)(nil)

// Store is a SQLite-backed response store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the response database in dataDir.
// If dataDir is empty, defaults to ~/.deckhand/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".deckhand", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "responses.db")

	// WAL mode so a guide render can read while a presentation writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SavePollAnswer records one poll selection.
func (s *Store) SavePollAnswer(ctx context.Context, answer domain.PollAnswer) error {
	var correct sql.NullBool
	if answer.Correct != nil {
		correct = sql.NullBool{Bool: *answer.Correct, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll_answers (id, session_id, slide_id, option_index, option_text, correct, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, answer.ID, answer.SessionID, answer.SlideID, answer.OptionIndex,
		answer.OptionText, correct, answer.AnsweredAt.UTC())

	if err != nil {
		return fmt.Errorf("saving poll answer: %w", err)
	}
	return nil
}

// SaveReflection records one submitted reflection.
func (s *Store) SaveReflection(ctx context.Context, reflection domain.Reflection) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reflections (id, session_id, slide_id, prompt, text, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, reflection.ID, reflection.SessionID, reflection.SlideID,
		reflection.Prompt, reflection.Text, reflection.SubmittedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving reflection: %w", err)
	}
	return nil
}

// ListPollAnswers returns the poll answers for a session, oldest first.
func (s *Store) ListPollAnswers(ctx context.Context, sessionID string) ([]domain.PollAnswer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, slide_id, option_index, option_text, correct, answered_at
		FROM poll_answers
		WHERE session_id = ?
		ORDER BY answered_at, id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying poll answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.PollAnswer //nolint:prealloc // size unknown from query
	for rows.Next() {
		var answer domain.PollAnswer
		var correct sql.NullBool
		var answeredAt sql.NullTime
		if err := rows.Scan(&answer.ID, &answer.SessionID, &answer.SlideID,
			&answer.OptionIndex, &answer.OptionText, &correct, &answeredAt); err != nil {
			return nil, fmt.Errorf("scanning poll answer: %w", err)
		}
		if correct.Valid {
			v := correct.Bool
			answer.Correct = &v
		}
		if answeredAt.Valid {
			answer.AnsweredAt = answeredAt.Time
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating poll answers: %w", err)
	}

	return answers, nil
}

// ListReflections returns the reflections for a session, oldest first.
func (s *Store) ListReflections(ctx context.Context, sessionID string) ([]domain.Reflection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, slide_id, prompt, text, submitted_at
		FROM reflections
		WHERE session_id = ?
		ORDER BY submitted_at, id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying reflections: %w", err)
	}
	defer rows.Close()

	var reflections []domain.Reflection //nolint:prealloc // size unknown from query
	for rows.Next() {
		var reflection domain.Reflection
		var submittedAt sql.NullTime
		if err := rows.Scan(&reflection.ID, &reflection.SessionID, &reflection.SlideID,
			&reflection.Prompt, &reflection.Text, &submittedAt); err != nil {
			return nil, fmt.Errorf("scanning reflection: %w", err)
		}
		if submittedAt.Valid {
			reflection.SubmittedAt = submittedAt.Time
		}
		reflections = append(reflections, reflection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reflections: %w", err)
	}

	return reflections, nil
}

// Sessions summarises all recorded sessions, newest first.
func (s *Store) Sessions(ctx context.Context) ([]domain.SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id,
		       MIN(first_seen)                 AS started_at,
		       SUM(poll_answers)               AS poll_answers,
		       SUM(poll_correct)               AS poll_correct,
		       SUM(reflections)                AS reflections
		FROM (
			SELECT session_id,
			       MIN(answered_at)                          AS first_seen,
			       COUNT(*)                                  AS poll_answers,
			       COALESCE(SUM(correct = 1), 0)             AS poll_correct,
			       0                                         AS reflections
			FROM poll_answers
			GROUP BY session_id
			UNION ALL
			SELECT session_id, MIN(submitted_at), 0, 0, COUNT(*)
			FROM reflections
			GROUP BY session_id
		)
		GROUP BY session_id
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SessionSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var summary domain.SessionSummary
		var startedAt sql.NullTime
		if err := rows.Scan(&summary.SessionID, &startedAt, &summary.PollAnswers,
			&summary.PollCorrect, &summary.Reflections); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if startedAt.Valid {
			summary.StartedAt = startedAt.Time
		}
		sessions = append(sessions, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}
