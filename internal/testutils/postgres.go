package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/naming-go/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration provisions a postgres for tests: an external
// one when TEST_DB_DSN is set, otherwise a throwaway container. The
// returned gorm handle is also installed as the global db.DB.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB := openAndMigrate(dsn)
		return gormDB, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "naming",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/naming?sslmode=disable", host, port.Port())
	waitForDB(dsn)

	gormDB := openAndMigrate(dsn)
	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return gormDB, cleanup
}

func waitForDB(dsn string) {
	var err error
	for i := 0; i < 10; i++ {
		var sqlDB *sql.DB
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			_ = sqlDB.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}

func openAndMigrate(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	db.InitWithGormDB(gormDB)

	if err := gormDB.Exec(`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('submitter', 'reviewer', 'admin'); EXCEPTION WHEN duplicate_object THEN null; END $$;`).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	if err := gormDB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_form_configurations_active
		ON form_configurations (is_active) WHERE is_active AND deleted_at IS NULL`).Error; err != nil {
		log.Fatal(err)
	}
	return gormDB
}

// TruncateAll clears every table between test cases.
func TruncateAll(gormDB *gorm.DB) {
	gormDB.Exec("TRUNCATE users, form_configurations, naming_requests, approved_names, request_audits RESTART IDENTITY CASCADE")
}
