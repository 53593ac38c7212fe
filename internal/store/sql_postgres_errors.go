package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells [DB.WithTx] whether a failed transaction may be
// run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports connection loss (class 08), transaction rollbacks
// (class 40) and "cannot connect now" as retryable. Everything else,
// including errors that are not from PostgreSQL, is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports SQLSTATE 23505; with the users table that means
// a taken user name or e-mail.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
