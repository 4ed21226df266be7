package repositories

import (
	"context"
	"database/sql"
	"errors"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
)

// CatalogRepository reads and maintains the catalog rows the settlement
// engine prices against: products, equipment, and trips.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, category, price_cents, sale_price_cents,
		       sale_start_date, sale_end_date, stock_quantity, active
		FROM products
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.SalePrice,
		&p.SaleStartDate, &p.SaleEndDate, &p.StockQuantity, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, domain.NotFoundError{Resource: "product"}
	}
	if err != nil {
		return models.Product{}, domain.StorageError{Op: "product lookup", Err: err}
	}
	return p, nil
}

func (r CatalogRepository) GetEquipment(ctx context.Context, id int64) (models.Equipment, error) {
	var e models.Equipment
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, daily_rate_cents, status
		FROM equipment
		WHERE id = ?
	`, id).Scan(&e.ID, &e.Name, &e.DailyRate, &e.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, domain.NotFoundError{Resource: "equipment"}
	}
	if err != nil {
		return models.Equipment{}, domain.StorageError{Op: "equipment lookup", Err: err}
	}
	return e, nil
}

func (r CatalogRepository) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	var t models.Trip
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, price_cents, active
		FROM trips
		WHERE id = ?
	`, id).Scan(&t.ID, &t.Name, &t.Price, &t.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.StorageError{Op: "trip lookup", Err: err}
	}
	return t, nil
}

func (r CatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, category, price_cents, sale_price_cents,
		       sale_start_date, sale_end_date, stock_quantity, active
		FROM products
		ORDER BY category, name
	`)
	if err != nil {
		return nil, domain.StorageError{Op: "product list", Err: err}
	}
	defer rows.Close()

	out := make([]models.Product, 0, 64)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.SalePrice,
			&p.SaleStartDate, &p.SaleEndDate, &p.StockQuantity, &p.Active); err != nil {
			return nil, domain.StorageError{Op: "product scan", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "product list", Err: err}
	}
	return out, nil
}

func (r CatalogRepository) CreateProduct(ctx context.Context, p models.Product) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO products (name, category, price_cents, sale_price_cents,
		                      sale_start_date, sale_end_date, stock_quantity, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Category, p.Price, p.SalePrice, p.SaleStartDate, p.SaleEndDate, p.StockQuantity, p.Active)
	if err != nil {
		return 0, domain.StorageError{Op: "product insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StorageError{Op: "product insert", Err: err}
	}
	return id, nil
}

func (r CatalogRepository) UpdateProduct(ctx context.Context, p models.Product) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE products
		SET name = ?, category = ?, price_cents = ?, sale_price_cents = ?,
		    sale_start_date = ?, sale_end_date = ?, stock_quantity = ?, active = ?
		WHERE id = ?
	`, p.Name, p.Category, p.Price, p.SalePrice, p.SaleStartDate, p.SaleEndDate, p.StockQuantity, p.Active, p.ID)
	if err != nil {
		return domain.StorageError{Op: "product update", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}

func (r CatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return domain.StorageError{Op: "product delete", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}

func (r CatalogRepository) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, daily_rate_cents, status
		FROM equipment
		ORDER BY name
	`)
	if err != nil {
		return nil, domain.StorageError{Op: "equipment list", Err: err}
	}
	defer rows.Close()

	out := make([]models.Equipment, 0, 32)
	for rows.Next() {
		var e models.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.DailyRate, &e.Status); err != nil {
			return nil, domain.StorageError{Op: "equipment scan", Err: err}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "equipment list", Err: err}
	}
	return out, nil
}

func (r CatalogRepository) CreateEquipment(ctx context.Context, e models.Equipment) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO equipment (name, daily_rate_cents, status) VALUES (?, ?, ?)
	`, e.Name, e.DailyRate, e.Status)
	if err != nil {
		return 0, domain.StorageError{Op: "equipment insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StorageError{Op: "equipment insert", Err: err}
	}
	return id, nil
}

func (r CatalogRepository) UpdateEquipment(ctx context.Context, e models.Equipment) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE equipment SET name = ?, daily_rate_cents = ?, status = ? WHERE id = ?
	`, e.Name, e.DailyRate, e.Status, e.ID)
	if err != nil {
		return domain.StorageError{Op: "equipment update", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "equipment"}
	}
	return nil
}

func (r CatalogRepository) DeleteEquipment(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return domain.StorageError{Op: "equipment delete", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "equipment"}
	}
	return nil
}

func (r CatalogRepository) ListTrips(ctx context.Context) ([]models.Trip, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, price_cents, active
		FROM trips
		ORDER BY name
	`)
	if err != nil {
		return nil, domain.StorageError{Op: "trip list", Err: err}
	}
	defer rows.Close()

	out := make([]models.Trip, 0, 32)
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.Active); err != nil {
			return nil, domain.StorageError{Op: "trip scan", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "trip list", Err: err}
	}
	return out, nil
}

func (r CatalogRepository) CreateTrip(ctx context.Context, t models.Trip) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO trips (name, price_cents, active) VALUES (?, ?, ?)
	`, t.Name, t.Price, t.Active)
	if err != nil {
		return 0, domain.StorageError{Op: "trip insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StorageError{Op: "trip insert", Err: err}
	}
	return id, nil
}

func (r CatalogRepository) UpdateTrip(ctx context.Context, t models.Trip) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE trips SET name = ?, price_cents = ?, active = ? WHERE id = ?
	`, t.Name, t.Price, t.Active, t.ID)
	if err != nil {
		return domain.StorageError{Op: "trip update", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r CatalogRepository) DeleteTrip(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return domain.StorageError{Op: "trip delete", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
