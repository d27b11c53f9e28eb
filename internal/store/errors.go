package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCategoryNotFound is returned when a category lookup, update, or
	// delete targets an ID that does not exist.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrSupplierNotFound is returned when a supplier lookup, update, or
	// delete targets an ID that does not exist.
	ErrSupplierNotFound = errors.New("supplier was not found")

	// ErrProductNotFound is returned when a product lookup, update, or delete
	// targets an ID that does not exist.
	ErrProductNotFound = errors.New("product was not found")

	// ErrDuplicateName is returned when an insert or update violates a unique
	// name/SKU constraint on a catalog table.
	ErrDuplicateName = errors.New("name already exists")

	// ErrReferenceNotFound is returned when an insert or update references a
	// category or supplier that does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced entity was not found")

	// ErrEntityInUse is returned when a delete is rejected because other rows
	// still reference the target (foreign key restriction).
	ErrEntityInUse = errors.New("entity is referenced by other records")

	// ErrInsufficientStock is returned when an outbound stock movement asks
	// for more units than the product currently has on hand.
	ErrInsufficientStock = errors.New("insufficient stock for outbound movement")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
