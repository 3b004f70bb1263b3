package dbmodels

import (
	"time"

	"hireflow-backend/models"
)

type Candidate struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);index"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	Name        string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(255)"`
	ResumeURL   string `gorm:"type:varchar(512)"` // локатор от хранилища резюме, не интерпретируется
	CulturalFit CulturalFit            `gorm:"embedded;embeddedPrefix:cultural_fit_"`
	Status      models.CandidateStatus `gorm:"type:varchar(50);index"`
	FitScore    FitScore               `gorm:"embedded;embeddedPrefix:fit_"`
}

type CulturalFit struct {
	Performance string
	Energy      string
	Culture     string
}

// FitScore хранится прямо на кандидате, перерасчёт перезаписывает прошлый снимок.
// Пустой CalculatedAt означает, что оценка ещё не рассчитывалась.
type FitScore struct {
	TechnicalScore  int
	CulturalScore   int
	BehavioralScore int
	OverallScore    int
	AIAnalysis      string    `gorm:"column:ai_analysis"`
	CalculatedAt    time.Time `gorm:"column:calculated_at"`
}

func (f FitScore) IsCalculated() bool {
	return !f.CalculatedAt.IsZero()
}

type CandidateFilter struct {
	JobID  string                 `json:"job_id"` // обязателен, выборка всегда в рамках одной вакансии
	Status models.CandidateStatus `json:"status"`
}
