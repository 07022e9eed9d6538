package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for all entities, then applies idempotent SQL patches that GORM cannot
// express — in particular the partial unique indexes that back the lifecycle
// invariants at the storage layer.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Classificacao{},
		&model.Produto{},
		&model.UnidadeSaude{},
		&model.Setor{},
		&model.Tombamento{},
		&model.Alocacao{},
		&model.Transferencia{},
		&model.Manutencao{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches creates the partial unique indexes enforcing:
//   - one active allocation per asset,
//   - one open maintenance per asset,
//   - one active asset per patrimony tag.
//
// Services check these invariants before writing; the indexes are the second
// line of defense when two requests race on the same asset. Every statement
// is IF NOT EXISTS, so re-running on an already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_alocacao_ativa_por_tombamento
		    ON alocacoes (tombamento_id)
		    WHERE ativo = true`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_manutencao_aberta_por_tombamento
		    ON manutencoes (tombamento_id)
		    WHERE ativo = true AND data_retorno IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tombamento_numero_ativo
		    ON tombamentos (numero)
		    WHERE ativo = true`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

// RunMigrations applies the schema and patches for integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Classificacao{},
		&model.Produto{},
		&model.UnidadeSaude{},
		&model.Setor{},
		&model.Tombamento{},
		&model.Alocacao{},
		&model.Transferencia{},
		&model.Manutencao{},
	); err != nil {
		return err
	}
	return applySchemaPatches(db)
}
