package database

const (
	// DefaultMinConnections is kept warm even when the service is idle
	DefaultMinConnections = 2

	// ApplicationName shows up in pg_stat_activity for every pooled connection
	ApplicationName             = "geoquest"
	runtimeParamApplicationName = "application_name"
)

const (
	migrationsDir = "migrations"
	gooseDialect  = "postgres"
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
