package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Funcionário. Senha guarda apenas o hash bcrypt.
type Employee struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:200;not null" json:"nome"`
	Email string `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Senha string `gorm:"size:255;not null" json:"-"`
	Cpf   string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Role  Role   `gorm:"column:perfil;size:20;not null" json:"perfil"`

	ValorHora           *decimal.Decimal `gorm:"column:valor_hora;type:numeric(12,2)" json:"valorHora"`
	QtdHorasTrabalhoDia *float32         `gorm:"column:qtd_horas_trabalho_dia" json:"qtdHorasTrabalhoDia"`
	QtdHorasAlmoco      *float32         `gorm:"column:qtd_horas_almoco" json:"qtdHorasAlmoco"`

	// A FK (ON DELETE CASCADE) é declarada em Company.Employees
	CompanyID uint `gorm:"column:empresa_id;not null;index" json:"empresaId"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"dataCriacao"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao" json:"dataAtualizacao"`
}

func (Employee) TableName() string {
	return "funcionario"
}
