package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &productRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

// Products with recorded movements must survive deletion attempts: the ledger
// references the product with a restricting foreign key, so the delete raises
// an FK violation instead of cascading through the movement history.
func TestDeleteProduct_WithMovementHistory(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.DeleteProduct(context.Background(), 1)
	if !errors.Is(err, ErrEntityInUse) {
		t.Fatalf("expected ErrEntityInUse, got %v", err)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProduct(context.Background(), 99)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteProduct(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
