package models

import (
	"github.com/proyectos-api/apperror"
)

// Status represents whether an employee or project is active
type Status string

const (
	StatusActive   Status = "Activo"
	StatusInactive Status = "Inactivo"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// ParseStatus converts a raw filter or payload value into a Status
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !status.Valid() {
		return "", apperror.Validation("estado", raw, "estado must be one of: Activo, Inactivo")
	}
	return status, nil
}
