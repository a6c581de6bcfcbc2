package models

// Assignment links an employee to a project they are staffed on.
// The (employee, project) pair is the primary key, so a pair exists at most once.
type Assignment struct {
	EmployeeID uint `json:"empleado_id" gorm:"column:empleado_id;primaryKey;autoIncrement:false"`
	ProjectID  uint `json:"proyecto_id" gorm:"column:proyecto_id;primaryKey;autoIncrement:false"`

	// Relations
	Employee Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" validate:"-"`
	Project  Project  `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName sets the table name for Assignment model
func (Assignment) TableName() string {
	return "empleado_proyecto"
}
