package candidateapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hireflow-backend/models"
	apimodels "hireflow-backend/models/api"
	dbmodels "hireflow-backend/models/db"
)

type CandidateData struct {
	JobID       string      `json:"job_id"` // вакансия, на которую подаётся отклик
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	CulturalFit CulturalFit `json:"cultural_fit"`
}

type CulturalFit struct {
	Performance string `json:"performance"`
	Energy      string `json:"energy"`
	Culture     string `json:"culture"`
}

func (c CandidateData) Validate() error {
	if c.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if c.Name == "" {
		return errors.New("не указано имя кандидата")
	}
	if c.Email == "" {
		return errors.New("не указан email кандидата")
	}
	if c.Phone == "" {
		return errors.New("не указан телефон кандидата")
	}
	if c.CulturalFit.Performance == "" {
		return errors.New("не заполнена самооценка по блоку performance")
	}
	if c.CulturalFit.Energy == "" {
		return errors.New("не заполнена самооценка по блоку energy")
	}
	if c.CulturalFit.Culture == "" {
		return errors.New("не заполнена самооценка по блоку culture")
	}
	return nil
}

type FitScoreView struct {
	TechnicalScore  int       `json:"technical_score"`
	CulturalScore   int       `json:"cultural_score"`
	BehavioralScore int       `json:"behavioral_score"`
	OverallScore    int       `json:"overall_score"`
	AIAnalysis      string    `json:"ai_analysis"`
	CalculatedAt    time.Time `json:"calculated_at"`
}

type CandidateView struct {
	CandidateData
	ID        string                 `json:"id"`
	ResumeURL string                 `json:"resume_url"`
	Status    models.CandidateStatus `json:"status"`
	FitScore  *FitScoreView          `json:"fit_score,omitempty"` // nil, пока оценка не рассчитана
	CreatedAt time.Time              `json:"created_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		CandidateData: CandidateData{
			JobID: rec.JobID,
			Name:  rec.Name,
			Email: rec.Email,
			Phone: rec.Phone,
			CulturalFit: CulturalFit{
				Performance: rec.CulturalFit.Performance,
				Energy:      rec.CulturalFit.Energy,
				Culture:     rec.CulturalFit.Culture,
			},
		},
		ID:        rec.ID,
		ResumeURL: rec.ResumeURL,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
	if rec.FitScore.IsCalculated() {
		result.FitScore = &FitScoreView{
			TechnicalScore:  rec.FitScore.TechnicalScore,
			CulturalScore:   rec.FitScore.CulturalScore,
			BehavioralScore: rec.FitScore.BehavioralScore,
			OverallScore:    rec.FitScore.OverallScore,
			AIAnalysis:      rec.FitScore.AIAnalysis,
			CalculatedAt:    rec.FitScore.CalculatedAt,
		}
	}
	return result
}

type CandidateListRequest struct {
	apimodels.Pagination
	Filter dbmodels.CandidateFilter `json:"filter"`
}

func (r CandidateListRequest) Validate() error {
	if r.Filter.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if r.Filter.Status != "" {
		if err := r.Filter.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type CandidateStatusChange struct {
	Status models.CandidateStatus `json:"status"`
}

func (r CandidateStatusChange) Validate() error {
	return r.Status.Validate()
}
