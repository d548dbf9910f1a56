package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/nell/careintake/internal/form"
)

// SubmissionRepo persists completed intake submissions.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

func (r *SubmissionRepo) Insert(ctx context.Context, s form.Submission) error {
	supportTypes, err := json.Marshal(s.SupportTypes)
	if err != nil {
		return fmt.Errorf("encode support types: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO submissions(
	 id, child_name, age, diagnosis, school_type, support_types,
	 frequency, requirements, parent_name, email, phone, received_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		s.ID, s.ChildName, s.Age, s.Diagnosis, s.SchoolType, string(supportTypes),
		s.Frequency, s.Requirements, s.ParentName, s.Email, s.Phone, s.ReceivedAt)
	return err
}

func (r *SubmissionRepo) Get(ctx context.Context, id string) (*form.Submission, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, child_name, age, diagnosis, school_type, support_types,
	       frequency, requirements, parent_name, email, phone, received_at
	FROM submissions WHERE id = ?`, id)
	s, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SubmissionRepo) List(ctx context.Context) ([]form.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, child_name, age, diagnosis, school_type, support_types,
	       frequency, requirements, parent_name, email, phone, received_at
	FROM submissions ORDER BY received_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []form.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*form.Submission, error) {
	var s form.Submission
	var supportTypes string
	if err := row.Scan(&s.ID, &s.ChildName, &s.Age, &s.Diagnosis, &s.SchoolType,
		&supportTypes, &s.Frequency, &s.Requirements, &s.ParentName, &s.Email,
		&s.Phone, &s.ReceivedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(supportTypes), &s.SupportTypes); err != nil {
		return nil, fmt.Errorf("decode support types: %w", err)
	}
	return &s, nil
}
