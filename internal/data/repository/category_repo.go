package repository

import (
	"context"
	"fmt"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (cr *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (category_name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id_category
	`

	err := cr.db.QueryRow(ctx, query,
		category.CategoryName,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.IDCategory)

	if err != nil {
		cr.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("category_name", category.CategoryName),
		)
		return fmt.Errorf("create category %s: %w", category.CategoryName, err)
	}

	return nil
}

func (cr *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		SELECT id_category, category_name, created_at, updated_at
		FROM categories
		WHERE id_category = $1
	`

	var category entity.Category
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&category.IDCategory,
		&category.CategoryName,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("id_category", id),
		)
		return nil, fmt.Errorf("find category by id %d: %w", id, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	query := `
		SELECT id_category, category_name, created_at, updated_at
		FROM categories
		WHERE category_name = $1
	`

	var category entity.Category
	err := cr.db.QueryRow(ctx, query, name).Scan(
		&category.IDCategory,
		&category.CategoryName,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by name",
			zap.Error(err),
			zap.String("category_name", name),
		)
		return nil, fmt.Errorf("find category by name %s: %w", name, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id_category, category_name, created_at, updated_at
		FROM categories
		ORDER BY id_category
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to get all categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.IDCategory,
			&category.CategoryName,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate categories rows: %w", err)
	}

	return categories, nil
}

func (cr *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET category_name = $2, updated_at = $3
		WHERE id_category = $1
	`

	result, err := cr.db.Exec(ctx, query,
		category.IDCategory,
		category.CategoryName,
		category.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to update category",
			zap.Error(err),
			zap.Int64("id_category", category.IDCategory),
		)
		return fmt.Errorf("update category %d: %w", category.IDCategory, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %d not found", category.IDCategory)
	}

	return nil
}

func (cr *categoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id_category = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete category",
			zap.Error(err),
			zap.Int64("id_category", id),
		)
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %d not found", id)
	}

	return nil
}
