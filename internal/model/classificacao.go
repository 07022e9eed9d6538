package model

import (
	"time"

	"github.com/google/uuid"
)

// Classificacao groups products into equipment classes (informática,
// mobiliário, equipamento médico, …). Master data only.
type Classificacao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null;index"`
	Version   int       `gorm:"not null;default:0"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Classificacao) TableName() string { return "classificacoes" }
