package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	pkgLogger "github.com/sjperalta/gestor-negocios-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// IsPostgresURL reports whether the URL targets PostgreSQL. Anything else is treated as a SQLite path.
func IsPostgresURL(databaseURL string) bool {
	return strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://")
}

// Connect opens the connection pool for the ledger store
func Connect(databaseURL string, production bool) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Warn
	if !production {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(
		logLevel,
		200*time.Millisecond,
	)

	postgresURL := IsPostgresURL(databaseURL)

	var dialector gorm.Dialector
	if postgresURL {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(sqliteDSN(databaseURL))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            postgresURL,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	if postgresURL {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	} else {
		// SQLite serializes writers; one connection avoids "database is locked"
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.RefreshToken{},
		&models.Business{},
		&models.Membership{},
		&models.Client{},
		&models.Transaction{},
		&models.Debt{},
		&models.Installment{},
		&models.Notification{},
		&models.AuditLog{},
	}
}

func sqliteDSN(databaseURL string) string {
	dsn := strings.TrimPrefix(databaseURL, "sqlite://")
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
