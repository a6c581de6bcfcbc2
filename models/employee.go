package models

import (
	"golang.org/x/text/unicode/norm"
)

// Employee represents a staff member that can be assigned to projects or manage them
type Employee struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"nombre" gorm:"column:nombre;size:50;not null" validate:"min=3,max=50,letters"`
	Specialty string  `json:"especialidad" gorm:"column:especialidad;size:50;not null" validate:"min=3,max=50,letters"`
	Salary    float64 `json:"salario" gorm:"column:salario;not null" validate:"gt=0"`
	Status    Status  `json:"estado" gorm:"column:estado;type:varchar(10);not null" validate:"oneof=Activo Inactivo"`
}

// TableName sets the table name for Employee model
func (Employee) TableName() string {
	return "empleado"
}

// Normalize puts text fields in NFC form and rounds the salary to cents
func (e *Employee) Normalize() {
	e.Name = norm.NFC.String(e.Name)
	e.Specialty = norm.NFC.String(e.Specialty)
	e.Salary = RoundMoney(e.Salary)
}

// Validate checks field lengths, character classes, salary and status
func (e Employee) Validate() error {
	return validateStruct(e)
}

// Prepare normalizes e and validates the result.
// A field error reports the value as received, before rounding.
func (e *Employee) Prepare() error {
	raw := *e
	e.Normalize()
	return withReceivedValue(e.Validate(), raw)
}
