package interviewhandler

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"hireflow-backend/db"
	candidatestore "hireflow-backend/lib/candidate/store"
	interviewstore "hireflow-backend/lib/interview/store"
	"hireflow-backend/models"
	interviewapimodels "hireflow-backend/models/api/interview"
	dbmodels "hireflow-backend/models/db"
)

type Provider interface {
	Create(data interviewapimodels.InterviewData) (id string, err error)
	GetByID(id string) (item interviewapimodels.InterviewView, err error)
	Update(id string, data interviewapimodels.InterviewUpdate) error
	Delete(id string) error
	List(filter dbmodels.InterviewFilter) (list []interviewapimodels.InterviewView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          interviewstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          interviewstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Create(data interviewapimodels.InterviewData) (id string, err error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", models.ErrNotFound
	}
	if candidate.JobID != data.JobID {
		return "", models.ErrJobMismatch
	}
	rec := dbmodels.Interview{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		CandidateID: data.CandidateID,
		JobID:       data.JobID,
		Type:        data.Type,
		Date:        data.Date,
		Duration:    data.Duration,
		Interviewer: data.Interviewer,
		Notes:       data.Notes,
		// интервью создаётся запланированным, обратная связь пустая
		Status: models.InterviewStatusScheduled,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("candidate_id", data.CandidateID).
		Info("создано интервью")
	return id, nil
}

func (i impl) GetByID(id string) (interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, models.ErrNotFound
	}
	return interviewapimodels.InterviewConvert(*rec), nil
}

// Update записывает только переданные поля, остальные не трогает.
// Статус "rescheduled" терминальный: перенесённое интервью оформляется
// новой записью, а не возвратом в "scheduled".
func (i impl) Update(id string, data interviewapimodels.InterviewUpdate) error {
	if data.Status != nil {
		if err := data.Status.Validate(); err != nil {
			return err
		}
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	updMap := buildUpdateMap(data)
	return i.store.Update(id, updMap)
}

func buildUpdateMap(data interviewapimodels.InterviewUpdate) map[string]interface{} {
	updMap := map[string]interface{}{}
	if data.Status != nil {
		updMap["status"] = *data.Status
	}
	if data.Date != nil {
		updMap["date"] = *data.Date
	}
	if data.Duration != nil {
		updMap["duration"] = *data.Duration
	}
	if data.Interviewer != nil {
		updMap["interviewer"] = *data.Interviewer
	}
	if data.Notes != nil {
		updMap["notes"] = *data.Notes
	}
	if data.Score != nil {
		updMap["score"] = *data.Score
	}
	if data.Feedback != nil {
		fb := data.Feedback
		updMap["feedback_technical_skills"] = fb.TechnicalSkills
		updMap["feedback_communication"] = fb.Communication
		updMap["feedback_problem_solving"] = fb.ProblemSolving
		updMap["feedback_cultural_fit"] = fb.CulturalFit
		updMap["feedback_experience"] = fb.Experience
		updMap["feedback_overall"] = fb.Overall
		updMap["feedback_strengths"] = pqStringArray(fb.Strengths)
		updMap["feedback_areas_for_improvement"] = pqStringArray(fb.AreasForImprovement)
		updMap["feedback_recommendation"] = fb.Recommendation
		updMap["feedback_next_steps"] = fb.NextSteps
	}
	return updMap
}

func pqStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	return i.store.Delete(id)
}

func (i impl) List(filter dbmodels.InterviewFilter) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.InterviewConvert(rec))
	}
	return result, nil
}
