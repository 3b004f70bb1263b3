package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"hireflow-backend/models"
)

type Interview struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);index"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	JobID       string     `gorm:"type:varchar(36);index"`
	Job         *Job       `gorm:"foreignKey:JobID"`
	Type        models.InterviewType   `gorm:"type:varchar(100)"`
	Date        time.Time              // время начала интервью
	Duration    string                 `gorm:"type:varchar(100)"`
	Interviewer string                 `gorm:"type:varchar(255)"`
	Status      models.InterviewStatus `gorm:"type:varchar(50);index"`
	Notes       string
	Score       *int // 0-10, опционально
	Feedback    Feedback `gorm:"embedded;embeddedPrefix:feedback_"`
}

// Feedback заполняется частично на любом статусе, жёстких требований нет.
type Feedback struct {
	TechnicalSkills     *int
	Communication       *int
	ProblemSolving      *int
	CulturalFit         *int
	Experience          *int
	Overall             *int
	Strengths           pq.StringArray `gorm:"type:text[]"`
	AreasForImprovement pq.StringArray `gorm:"type:text[]"`
	Recommendation      models.Recommendation `gorm:"type:varchar(50)"`
	NextSteps           string
}

type InterviewFilter struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
}
