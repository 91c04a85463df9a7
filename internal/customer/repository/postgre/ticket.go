package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "support-router/internal/customer/repository"
	"support-router/internal/model"
	"support-router/pkg/postgres"
)

const ticketColumns = `id, customer_id, issue, status, priority, created_at`

func scanTicket(row rowScanner) (model.Ticket, error) {
	var t model.Ticket
	var status, priority string
	err := row.Scan(&t.ID, &t.CustomerID, &t.Issue, &status, &priority, &t.CreatedAt)
	t.Status = model.TicketStatus(status)
	t.Priority = model.Priority(priority)
	return t, err
}

// CreateTicket locks the customer row FOR SHARE and inserts the ticket in the same
// transaction, so a concurrent delete cannot slip between check and insert.
func (r *implRepository) CreateTicket(ctx context.Context, opt repo.CreateTicketOptions) (model.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTicket"), err)
		return model.Ticket{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const lockQuery = `SELECT id FROM customers WHERE id = $1 FOR SHARE`
	var id int64
	if err := tx.QueryRowContext(ctx, lockQuery, opt.CustomerID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Ticket{}, repo.ErrCustomerMissing
		}
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("CreateTicket"), err)
		return model.Ticket{}, repo.ErrFailedToInsert
	}

	const insertQuery = `
		INSERT INTO tickets (customer_id, issue, status, priority, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + ticketColumns

	t, err := scanTicket(tx.QueryRowContext(ctx, insertQuery,
		opt.CustomerID, opt.Issue, string(model.TicketStatusOpen), string(opt.Priority)))
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return model.Ticket{}, repo.ErrCustomerMissing
		}
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateTicket"), err)
		return model.Ticket{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTicket"), err)
		return model.Ticket{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// ListTickets returns the customer's tickets newest first with id as tie-break.
func (r *implRepository) ListTickets(ctx context.Context, customerID int64) ([]model.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTickets"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTickets"), err)
			return nil, repo.ErrFailedToList
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTickets"), err)
		return nil, repo.ErrFailedToList
	}
	return tickets, nil
}
