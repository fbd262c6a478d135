package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"devevents/internal/domain"
)

// pgUniqueViolation is the SQLSTATE the repositories translate into conflict errors.
const pgUniqueViolation = "23505"

const registrationColumns = `id, event_id, user_id, user_email, user_name, status, checked_in_at, checked_in_by, created_at, updated_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create relies on the (event_id, user_id) unique constraint; there is no read before the insert.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, user_id, user_email, user_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.EventID, reg.UserID, reg.UserEmail, reg.UserName, string(reg.Status), reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ExistsForEventAndUser(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE event_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

// MarkCheckedIn only matches rows still in the registered state, so two concurrent
// scans of one ticket cannot both succeed.
func (r *registrationRepository) MarkCheckedIn(ctx context.Context, id, verifierID string, at time.Time) (*domain.Registration, error) {
	query := `
		UPDATE registrations
		SET status = $2, checked_in_at = $3, checked_in_by = $4, updated_at = $3
		WHERE id = $1 AND status = $5
		RETURNING ` + registrationColumns
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query,
		id, string(domain.RegistrationStatusCheckedIn), at, verifierID, string(domain.RegistrationStatusRegistered),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func scanRegistration(s rowScanner) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var status string
	var checkedInAt sql.NullTime
	var checkedInBy sql.NullString
	err := s.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.UserEmail, &reg.UserName, &status,
		&checkedInAt, &checkedInBy, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reg.Status = domain.RegistrationStatus(status)
	if checkedInAt.Valid {
		reg.CheckedInAt = &checkedInAt.Time
	}
	if checkedInBy.Valid {
		reg.CheckedInBy = &checkedInBy.String
	}
	return reg, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
