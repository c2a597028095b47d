package models

import "time"

// Empresa. O CNPJ é único no banco; os funcionários são removidos em cascata junto com a empresa.
type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RazaoSocial string `gorm:"column:razao_social;size:200;not null" json:"razaoSocial"`
	Cnpj        string `gorm:"size:14;uniqueIndex;not null" json:"cnpj"`

	Employees []Employee `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"dataCriacao"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao" json:"dataAtualizacao"`
}

func (Company) TableName() string {
	return "empresa"
}
