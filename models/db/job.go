package dbmodels

import (
	"github.com/lib/pq"
	"hireflow-backend/models"
)

type Job struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	Performance Performance `gorm:"embedded;embeddedPrefix:performance_"`
	Energy      Energy      `gorm:"embedded;embeddedPrefix:energy_"`
	Culture     Culture     `gorm:"embedded;embeddedPrefix:culture_"`
	// Формируется из ID при создании, пользователем не редактируется
	ApplicationLink string `gorm:"type:varchar(512)"`
	Status          models.JobStatus `gorm:"type:varchar(50);index"`
}

type Performance struct {
	Experience string
	Deliveries string
	Skills     pq.StringArray `gorm:"type:text[]"`
}

type Energy struct {
	Availability string
	Deadlines    string
	Pressure     string
}

type Culture struct {
	LegalValues pq.StringArray `gorm:"type:text[]"`
}

type JobFilter struct {
	Status models.JobStatus `json:"status"` // точное совпадение статуса
	Search string           `json:"search"` // подстрока в названии/описании, без учёта регистра
}
