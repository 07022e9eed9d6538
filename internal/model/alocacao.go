package model

import (
	"time"

	"github.com/google/uuid"
)

// Alocacao places an asset in custody at a health unit. While Ativo it is
// the asset's current location; at most one active Alocacao may exist per
// Tombamento (enforced by a partial unique index, see infra.NewDatabase).
// Soft-deleting an Alocacao is the deallocate operation and reverts the
// asset to disponivel.
type Alocacao struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TombamentoID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UnidadeSaudeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SetorID            *uuid.UUID `gorm:"type:uuid;index"`
	ResponsavelUnidade string     `gorm:"not null"`
	DataAlocacao       time.Time  `gorm:"type:date;not null"`
	Termo              *string
	Responsavel        *string
	Fotos              Fotos `gorm:"type:jsonb"`
	Version            int   `gorm:"not null;default:0"`
	Ativo              bool  `gorm:"not null;default:true"`
	CreatedAt          time.Time

	Tombamento   *Tombamento   `gorm:"foreignKey:TombamentoID"`
	UnidadeSaude *UnidadeSaude `gorm:"foreignKey:UnidadeSaudeID"`
	Setor        *Setor        `gorm:"foreignKey:SetorID"`
}

func (Alocacao) TableName() string { return "alocacoes" }
