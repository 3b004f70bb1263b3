package candidatehandler

import (
	"bytes"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"hireflow-backend/db"
	candidatestore "hireflow-backend/lib/candidate/store"
	xlsexport "hireflow-backend/lib/export/xls"
	jobstore "hireflow-backend/lib/job/store"
	"hireflow-backend/models"
	candidateapimodels "hireflow-backend/models/api/candidate"
	dbmodels "hireflow-backend/models/db"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData, resumeURL string) (id string, err error)
	GetByID(id string) (item candidateapimodels.CandidateView, err error)
	UpdateStatus(id string, status models.CandidateStatus) error
	Delete(id string) error
	List(filter dbmodels.CandidateFilter, page, pageSize int) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	ExportByJob(jobID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    candidatestore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    candidatestore.Provider
	jobStore jobstore.Provider
}

func (i impl) Create(data candidateapimodels.CandidateData, resumeURL string) (id string, err error) {
	// вакансия должна существовать на момент создания отклика
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		return "", err
	}
	if job == nil {
		return "", models.ErrNotFound
	}
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		JobID:     data.JobID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		ResumeURL: resumeURL,
		CulturalFit: dbmodels.CulturalFit{
			Performance: data.CulturalFit.Performance,
			Energy:      data.CulturalFit.Energy,
			Culture:     data.CulturalFit.Culture,
		},
		Status: models.CandidateStatusNew,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("job_id", data.JobID).
		Info("создан отклик кандидата")
	return id, nil
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, models.ErrNotFound
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

// UpdateStatus принимает любой из трёх допустимых статусов,
// порядок переходов не навязывается. Повторная установка
// текущего статуса ошибкой не считается.
func (i impl) UpdateStatus(id string, status models.CandidateStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if rec.Status == status {
		return nil
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	return i.store.Update(id, updMap)
}

// Delete удаляет кандидата независимо от вакансии.
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

func (i impl) List(filter dbmodels.CandidateFilter, page, pageSize int) ([]candidateapimodels.CandidateView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ExportByJob(jobID string) (*bytes.Buffer, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.ErrNotFound
	}
	list, err := i.store.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportCandidateList(*job, list)
}
