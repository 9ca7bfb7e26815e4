package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)

// Constraint names generated by the initial schema
const (
	fkCareLogsUser = "care_logs_user_id_fkey"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTx = "failed to begin care transaction"
)
