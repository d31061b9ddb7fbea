package entities

import (
	"github.com/google/uuid"
)

type PersonalGoal struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EmployeeID uuid.UUID `gorm:"index:idx_goal_employee_period,unique" json:"employee_id"`
	Year       int       `gorm:"index:idx_goal_employee_period,unique" json:"year"`
	Month      int       `gorm:"index:idx_goal_employee_period,unique" json:"month"`
	SalesGoal  float64   `gorm:"default:0" json:"sales_goal"`
	DrinksGoal int       `gorm:"default:0" json:"drinks_goal"`
	CatchGoal  int       `gorm:"default:0" json:"catch_goal"`

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
	Timestamp
}
