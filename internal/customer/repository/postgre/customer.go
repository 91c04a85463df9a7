package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/huandu/go-sqlbuilder"

	repo "support-router/internal/customer/repository"
	"support-router/internal/model"
)

const customerColumns = `id, name, email, phone, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (model.Customer, error) {
	var c model.Customer
	var status string
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &status, &c.CreatedAt, &c.UpdatedAt)
	c.Status = model.CustomerStatus(status)
	return c, err
}

// GetCustomer returns the zero value when no row matches.
func (r *implRepository) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCustomer"), err)
		return model.Customer{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCustomers returns customers ordered by id, optionally filtered by status.
func (r *implRepository) ListCustomers(ctx context.Context, opt repo.ListCustomersOptions) ([]model.Customer, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "name", "email", "phone", "status", "created_at", "updated_at")
	sb.From("customers")
	if opt.Status != "" {
		sb.Where(sb.Equal("status", opt.Status))
	}
	sb.OrderBy("id").Asc()
	sb.Limit(opt.Limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCustomers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCustomers"), err)
			return nil, repo.ErrFailedToList
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCustomers"), err)
		return nil, repo.ErrFailedToList
	}
	return customers, nil
}

// UpdateCustomer applies only the provided columns and reads the row back.
// Returns the zero value when no row matches.
func (r *implRepository) UpdateCustomer(ctx context.Context, opt repo.UpdateCustomerOptions) (model.Customer, error) {
	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("customers")

	// fixed column order keeps the generated statement stable
	var assignments []string
	for _, field := range model.CustomerFields {
		if v, ok := opt.Fields[field]; ok {
			assignments = append(assignments, sb.Assign(field, v))
		}
	}
	assignments = append(assignments, sb.Assign("updated_at", time.Now().UTC()))
	sb.Set(assignments...)
	sb.Where(sb.Equal("id", opt.ID))

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCustomer"), err)
		return model.Customer{}, repo.ErrFailedToUpdate
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return model.Customer{}, nil
	}

	return r.GetCustomer(ctx, opt.ID)
}
