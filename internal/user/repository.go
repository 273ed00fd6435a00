package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrSlotNotFound = errors.New("slot not found")
)

const userColumns = `id, name, email, password_hash, role, status, photo, skills,
	feedback, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash, photo, role string) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, photo, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var user User
	err := r.db.GetContext(ctx, &user, query, name, email, passwordHash, photo, role)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]User, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var users []User
	err := r.db.SelectContext(ctx, &users, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) SetApplicationPending(ctx context.Context, id int, skills []string) (*User, error) {
	query := `
		UPDATE users
		SET status = 'pending', skills = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user User
	err := r.db.GetContext(ctx, &user, query, id, pq.StringArray(skills))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ApproveTrainer promotes a pending applicant; the WHERE guard keeps the
// transition one-way.
func (r *repository) ApproveTrainer(ctx context.Context, id int) (*User, error) {
	query := `
		UPDATE users
		SET role = 'trainer', status = 'active', feedback = '', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + userColumns

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) RejectTrainer(ctx context.Context, id int, feedback string) (*User, error) {
	query := `
		UPDATE users
		SET status = 'rejected', feedback = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + userColumns

	var user User
	err := r.db.GetContext(ctx, &user, query, id, feedback)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) CreateSlot(ctx context.Context, trainerID int, req CreateSlotRequest) (*TrainerSlot, error) {
	query := `
		INSERT INTO trainer_slots (trainer_id, slot_name, day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, trainer_id, slot_name, day, start_time, end_time, created_at
	`

	var slot TrainerSlot
	err := r.db.GetContext(ctx, &slot, query,
		trainerID, req.SlotName, req.Day, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) ListSlotsByTrainer(ctx context.Context, trainerID int) ([]TrainerSlot, error) {
	query := `
		SELECT id, trainer_id, slot_name, day, start_time, end_time, created_at
		FROM trainer_slots
		WHERE trainer_id = $1
		ORDER BY created_at DESC
	`

	var slots []TrainerSlot
	err := r.db.SelectContext(ctx, &slots, query, trainerID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetSlotByID(ctx context.Context, id int) (*TrainerSlot, error) {
	query := `
		SELECT id, trainer_id, slot_name, day, start_time, end_time, created_at
		FROM trainer_slots
		WHERE id = $1
	`

	var slot TrainerSlot
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	return &slot, nil
}

func (r *repository) DeleteSlot(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainer_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
