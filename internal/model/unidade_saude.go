package model

import (
	"time"

	"github.com/google/uuid"
)

// UnidadeSaude is a physical site (health unit) that can hold allocated
// assets.
type UnidadeSaude struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null;index"`
	Endereco  *string
	Version   int  `gorm:"not null;default:0"`
	Ativo     bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (UnidadeSaude) TableName() string { return "unidades_saude" }

// Setor is a sub-location inside a UnidadeSaude (recepção, farmácia, …).
type Setor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome           string    `gorm:"not null;index"`
	UnidadeSaudeID *uuid.UUID `gorm:"type:uuid;index"`
	Version        int        `gorm:"not null;default:0"`
	Ativo          bool       `gorm:"not null;default:true"`
	CreatedAt      time.Time

	UnidadeSaude *UnidadeSaude `gorm:"foreignKey:UnidadeSaudeID"`
}

func (Setor) TableName() string { return "setores" }
