package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/internal/domain/repository"
)

var _ repository.RegionRepository = (*RegionRepo)(nil)

// RegionRepo implementación del puerto RegionRepository sobre PostgreSQL.
type RegionRepo struct {
	q Querier
}

// NewRegionRepository construye el adaptador de persistencia para regiones.
func NewRegionRepository(q Querier) *RegionRepo {
	return &RegionRepo{q: q}
}

// Create persiste una región nueva.
func (r *RegionRepo) Create(ctx context.Context, region *entity.Region) error {
	query := `
		INSERT INTO regions (id, name, delivery_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		region.ID, region.Name, region.DeliveryFee, region.CreatedAt, region.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert region: %w", err)
	}
	return nil
}

// GetByID obtiene una región por ID.
func (r *RegionRepo) GetByID(ctx context.Context, id string) (*entity.Region, error) {
	query := `SELECT id, name, delivery_fee, created_at, updated_at FROM regions WHERE id = $1`
	var reg entity.Region
	err := r.q.QueryRow(ctx, query, id).Scan(&reg.ID, &reg.Name, &reg.DeliveryFee, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &reg, nil
}

// Update actualiza una región.
func (r *RegionRepo) Update(ctx context.Context, region *entity.Region) error {
	query := `UPDATE regions SET name = $2, delivery_fee = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, region.ID, region.Name, region.DeliveryFee, region.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update region: %w", err)
	}
	return nil
}

// List lista todas las regiones ordenadas por nombre.
func (r *RegionRepo) List(ctx context.Context) ([]*entity.Region, error) {
	query := `SELECT id, name, delivery_fee, created_at, updated_at FROM regions ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Region
	for rows.Next() {
		var reg entity.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.DeliveryFee, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}

// Delete elimina una región. Con clientes o pedidos asociados devuelve ErrConflict (FK).
func (r *RegionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM regions WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete region: %w", err)
	}
	return nil
}
