package employee

import "time"

type Employee struct {
	ID          int64     `gorm:"primaryKey"`
	OwnerUserID int64     `gorm:"column:owner_user_id;not null;uniqueIndex:idx_employees_owner_email"`
	Name        string    `gorm:"column:name;not null"`
	Email       string    `gorm:"column:email;not null;uniqueIndex:idx_employees_owner_email"`
	Department  string    `gorm:"column:department;not null"`
	Designation string    `gorm:"column:designation;not null"`
	Salary      int64     `gorm:"column:salary;not null"`
	JoiningDate time.Time `gorm:"column:joining_date;type:date"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
