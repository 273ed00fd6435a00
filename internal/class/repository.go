package class

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrClassNotFound       = errors.New("class not found")
	ErrClassFull           = errors.New("class is fully booked")
	ErrCapacityBelowBooked = errors.New("max capacity below booked count")
)

const classColumns = `id, name, description, image, trainer_name, trainer_email,
	price_cents, currency, max_capacity, booked_count, difficulty, category,
	active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	query := `
		INSERT INTO classes (name, description, image, trainer_name, trainer_email,
			price_cents, currency, max_capacity, difficulty, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + classColumns

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}

	var class Class
	err := r.db.GetContext(ctx, &class, query,
		req.Name, req.Description, req.Image, req.TrainerName, req.TrainerEmail,
		req.PriceCents, currency, req.MaxCapacity, difficulty, req.Category,
	)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	var class Class
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	return &class, nil
}

// List builds the WHERE and ORDER BY clauses from the filter. Sort keys are
// whitelisted; everything else is parameterized.
func (r *repository) List(ctx context.Context, filter ListFilter) ([]Class, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "active = TRUE")
	}
	if filter.Category != "" {
		addCondition("category = $%d", filter.Category)
	}
	if filter.Difficulty != "" {
		addCondition("difficulty = $%d", filter.Difficulty)
	}
	if filter.TrainerEmail != "" {
		addCondition("trainer_email = $%d", filter.TrainerEmail)
	}
	if filter.Search != "" {
		addCondition("name ILIKE '%%' || $%d || '%%'", filter.Search)
	}

	query := `SELECT ` + classColumns + ` FROM classes`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch filter.SortBy {
	case "price_asc":
		query += " ORDER BY price_cents ASC"
	case "price_desc":
		query += " ORDER BY price_cents DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var classes []Class
	err := r.db.SelectContext(ctx, &classes, query, args...)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateClassRequest) (*Class, error) {
	query := `
		UPDATE classes
		SET name = $1, description = $2, image = $3, price_cents = $4,
			max_capacity = $5, difficulty = $6, category = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + classColumns

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}

	var class Class
	err := r.db.GetContext(ctx, &class, query,
		req.Name, req.Description, req.Image, req.PriceCents,
		req.MaxCapacity, difficulty, req.Category, id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		// Lowering max_capacity below booked_count trips the table's
		// capacity check constraint.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23514" {
			return nil, ErrCapacityBelowBooked
		}
		return nil, err
	}

	return &class, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE classes SET active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}

// IncrementBooked is a single-row atomic update; the counter can never pass
// max_capacity even when two confirmations race past the service-level check.
func (r *repository) IncrementBooked(ctx context.Context, id int) (*Class, error) {
	query := `
		UPDATE classes
		SET booked_count = booked_count + 1, updated_at = NOW()
		WHERE id = $1 AND booked_count < max_capacity
		RETURNING ` + classColumns

	var class Class
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassFull
		}
		return nil, err
	}

	return &class, nil
}
