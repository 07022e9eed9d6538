package model

import (
	"time"

	"github.com/google/uuid"
)

// Manutencao records an asset removed for external service. The record is
// open while DataRetorno is null; an open record keeps the asset in status
// manutencao. At most one open Manutencao may exist per Tombamento
// (partial unique index, see infra.NewDatabase).
type Manutencao struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TombamentoID uuid.UUID `gorm:"type:uuid;not null;index"`
	DataRetirada time.Time `gorm:"type:date;not null"`
	Motivo       string    `gorm:"not null"`
	Responsavel  *string
	DataRetorno  *time.Time `gorm:"type:date"`
	Version      int        `gorm:"not null;default:0"`
	Ativo        bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time

	Tombamento *Tombamento `gorm:"foreignKey:TombamentoID"`
}

func (Manutencao) TableName() string { return "manutencoes" }

// Aberta reports whether the record still holds the asset in maintenance.
func (m *Manutencao) Aberta() bool {
	return m.Ativo && m.DataRetorno == nil
}
