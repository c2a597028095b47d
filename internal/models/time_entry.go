package models

import "time"

// Lançamento de ponto. A remoção do funcionário é bloqueada enquanto houver lançamentos.
type TimeEntry struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Data        time.Time     `gorm:"not null;index" json:"data"`
	Tipo        TimeEntryType `gorm:"size:30;not null" json:"tipo"`
	Descricao   string        `gorm:"size:255" json:"descricao"`
	Localizacao string        `gorm:"size:255" json:"localizacao"`

	EmployeeID uint     `gorm:"column:funcionario_id;not null;index" json:"funcionarioId"`
	Employee   Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"dataCriacao"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao" json:"dataAtualizacao"`
}

func (TimeEntry) TableName() string {
	return "lancamento"
}
