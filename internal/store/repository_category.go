package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/jackc/pgerrcode"
)

const (
	createCategory = `INSERT INTO categories (name, description)
    VALUES ($1, $2)
    RETURNING id, name, description, created_at;`

	getCategory = `SELECT id, name, description, created_at
    FROM categories
    WHERE id = $1;`

	listCategories = `SELECT id, name, description, created_at
    FROM categories
    ORDER BY name;`

	updateCategory = `UPDATE categories
    SET name = $2, description = $3
    WHERE id = $1
    RETURNING id, name, description, created_at;`

	deleteCategory = `DELETE FROM categories WHERE id = $1;`
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory, category.Name, category.Description)
	if err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error saving category")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrDuplicateName
		}
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	row := r.db.QueryRowContext(ctx, getCategory, id)
	if err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}

		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("error scanning category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error scanning category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCategory, category.ID, category.Name, category.Description)
	if err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrDuplicateName
		}

		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error updating category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategory, id)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrEntityInUse
		}

		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("error deleting category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
