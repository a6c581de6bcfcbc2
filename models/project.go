package models

import (
	"golang.org/x/text/unicode/norm"
)

// Project is a unit of work with a single manager and zero or more staffed employees
type Project struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"nombre" gorm:"column:nombre;size:50;not null;uniqueIndex" validate:"min=3,max=50,letters"`
	Description string  `json:"descripcion" gorm:"column:descripcion;size:100;not null" validate:"min=10,max=100,letters"`
	Budget      float64 `json:"presupuesto" gorm:"column:presupuesto;not null" validate:"gt=0"`
	Status      Status  `json:"estado" gorm:"column:estado;type:varchar(10);not null" validate:"oneof=Activo Inactivo"`
	ManagerID   uint    `json:"gerente_id" gorm:"column:gerente_id;not null;index"`

	// Relations
	Manager Employee `json:"-" gorm:"foreignKey:ManagerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "proyecto"
}

// Normalize puts text fields in NFC form and rounds the budget to cents
func (p *Project) Normalize() {
	p.Name = norm.NFC.String(p.Name)
	p.Description = norm.NFC.String(p.Description)
	p.Budget = RoundMoney(p.Budget)
}

// Validate checks field lengths, character classes, budget and status
func (p Project) Validate() error {
	return validateStruct(p)
}

// Prepare normalizes p and validates the result.
// A field error reports the value as received, before rounding.
func (p *Project) Prepare() error {
	raw := *p
	p.Normalize()
	return withReceivedValue(p.Validate(), raw)
}
