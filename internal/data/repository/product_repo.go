package repository

import (
	"context"
	"fmt"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (product_name, price, stock, description, id_category,
		                      image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_product
	`

	err := pr.db.QueryRow(ctx, query,
		product.ProductName,
		product.Price,
		product.Stock,
		product.Description,
		product.IDCategory,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.IDProduct)

	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("product_name", product.ProductName),
		)
		return fmt.Errorf("create product %s: %w", product.ProductName, err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT p.id_product, p.product_name, p.price, p.stock, p.description,
		       p.id_category, p.image_url, p.created_at, p.updated_at, c.category_name
		FROM products p
		LEFT JOIN categories c ON c.id_category = p.id_category
		WHERE p.id_product = $1
	`

	var product entity.Product
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&product.IDProduct,
		&product.ProductName,
		&product.Price,
		&product.Stock,
		&product.Description,
		&product.IDCategory,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.CategoryName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("id_product", id),
		)
		return nil, fmt.Errorf("find product by id %d: %w", id, err)
	}

	return &product, nil
}

func (pr *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		SELECT id_product, product_name, price, stock, description,
		       id_category, image_url, created_at, updated_at
		FROM products
		WHERE product_name = $1
	`

	var product entity.Product
	err := pr.db.QueryRow(ctx, query, name).Scan(
		&product.IDProduct,
		&product.ProductName,
		&product.Price,
		&product.Stock,
		&product.Description,
		&product.IDCategory,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by name",
			zap.Error(err),
			zap.String("product_name", name),
		)
		return nil, fmt.Errorf("find product by name %s: %w", name, err)
	}

	return &product, nil
}

func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT p.id_product, p.product_name, p.price, p.stock, p.description,
		       p.id_category, p.image_url, p.created_at, p.updated_at, c.category_name
		FROM products p
		LEFT JOIN categories c ON c.id_category = p.id_category
		ORDER BY p.id_product
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.IDProduct,
			&product.ProductName,
			&product.Price,
			&product.Stock,
			&product.Description,
			&product.IDCategory,
			&product.ImageURL,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.CategoryName,
		)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

func (pr *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET product_name = $2, price = $3, stock = $4, description = $5,
		    id_category = $6, image_url = $7, updated_at = $8
		WHERE id_product = $1
	`

	result, err := pr.db.Exec(ctx, query,
		product.IDProduct,
		product.ProductName,
		product.Price,
		product.Stock,
		product.Description,
		product.IDCategory,
		product.ImageURL,
		product.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("id_product", product.IDProduct),
		)
		return fmt.Errorf("update product %d: %w", product.IDProduct, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", product.IDProduct)
	}

	return nil
}

func (pr *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id_product = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("id_product", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", id)
	}

	return nil
}
