package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hireflow-backend/models"
	dbmodels "hireflow-backend/models/db"
)

type InterviewData struct {
	CandidateID string               `json:"candidate_id"`
	JobID       string               `json:"job_id"`
	Type        models.InterviewType `json:"type"`
	Date        time.Time            `json:"date"`
	Duration    string               `json:"duration"`
	Interviewer string               `json:"interviewer"`
	Notes       string               `json:"notes"`
}

func (i InterviewData) Validate() error {
	if i.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	if i.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if err := i.Type.Validate(); err != nil {
		return err
	}
	if i.Date.IsZero() {
		return errors.New("не указана дата интервью")
	}
	return nil
}

// InterviewUpdate - частичное обновление, записываются только переданные поля.
type InterviewUpdate struct {
	Status      *models.InterviewStatus `json:"status,omitempty"`
	Date        *time.Time              `json:"date,omitempty"`
	Duration    *string                 `json:"duration,omitempty"`
	Interviewer *string                 `json:"interviewer,omitempty"`
	Notes       *string                 `json:"notes,omitempty"`
	Score       *int                    `json:"score,omitempty"`
	Feedback    *FeedbackData           `json:"feedback,omitempty"`
}

func (i InterviewUpdate) Validate() error {
	if i.Status != nil {
		if err := i.Status.Validate(); err != nil {
			return err
		}
	}
	if i.Score != nil && (*i.Score < 0 || *i.Score > 10) {
		return errors.New("оценка должна быть в диапазоне от 0 до 10")
	}
	if i.Feedback != nil {
		if err := i.Feedback.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type FeedbackData struct {
	TechnicalSkills     *int                  `json:"technical_skills,omitempty"`
	Communication       *int                  `json:"communication,omitempty"`
	ProblemSolving      *int                  `json:"problem_solving,omitempty"`
	CulturalFit         *int                  `json:"cultural_fit,omitempty"`
	Experience          *int                  `json:"experience,omitempty"`
	Overall             *int                  `json:"overall,omitempty"`
	Strengths           []string              `json:"strengths"`
	AreasForImprovement []string              `json:"areas_for_improvement"`
	Recommendation      models.Recommendation `json:"recommendation"`
	NextSteps           string                `json:"next_steps"`
}

func (f FeedbackData) Validate() error {
	for _, score := range []*int{f.TechnicalSkills, f.Communication, f.ProblemSolving, f.CulturalFit, f.Experience, f.Overall} {
		if score != nil && (*score < 0 || *score > 10) {
			return errors.New("оценки обратной связи должны быть в диапазоне от 0 до 10")
		}
	}
	if f.Recommendation != "" {
		if err := f.Recommendation.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type InterviewView struct {
	InterviewData
	ID       string                 `json:"id"`
	Status   models.InterviewStatus `json:"status"`
	Score    *int                   `json:"score,omitempty"`
	Feedback FeedbackData           `json:"feedback"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		InterviewData: InterviewData{
			CandidateID: rec.CandidateID,
			JobID:       rec.JobID,
			Type:        rec.Type,
			Date:        rec.Date,
			Duration:    rec.Duration,
			Interviewer: rec.Interviewer,
			Notes:       rec.Notes,
		},
		ID:     rec.ID,
		Status: rec.Status,
		Score:  rec.Score,
		Feedback: FeedbackData{
			TechnicalSkills:     rec.Feedback.TechnicalSkills,
			Communication:       rec.Feedback.Communication,
			ProblemSolving:      rec.Feedback.ProblemSolving,
			CulturalFit:         rec.Feedback.CulturalFit,
			Experience:          rec.Feedback.Experience,
			Overall:             rec.Feedback.Overall,
			Strengths:           rec.Feedback.Strengths,
			AreasForImprovement: rec.Feedback.AreasForImprovement,
			Recommendation:      rec.Feedback.Recommendation,
			NextSteps:           rec.Feedback.NextSteps,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type InterviewListRequest struct {
	Filter dbmodels.InterviewFilter `json:"filter"`
}

func (r InterviewListRequest) Validate() error {
	if r.Filter.CandidateID == "" && r.Filter.JobID == "" {
		return errors.New("не указан идентификатор кандидата или вакансии")
	}
	return nil
}
