package jobhandler

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hireflow-backend/config"
	"hireflow-backend/db"
	candidatestore "hireflow-backend/lib/candidate/store"
	jobstore "hireflow-backend/lib/job/store"
	"hireflow-backend/models"
	jobapimodels "hireflow-backend/models/api/job"
	dbmodels "hireflow-backend/models/db"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, err error)
	GetByID(id string) (item jobapimodels.JobView, err error)
	GetPublished(id string) (item jobapimodels.JobView, err error)
	Update(id string, data jobapimodels.JobData) error
	StatusChange(id string, status models.JobStatus) error
	Delete(id string) error
	List(filter dbmodels.JobFilter, page, pageSize int) (list []jobapimodels.JobView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (id string, err error) {
	recID := uuid.NewString()
	rec := dbmodels.Job{
		BaseModel:   dbmodels.BaseModel{ID: recID},
		Title:       data.Title,
		Description: data.Description,
		Performance: dbmodels.Performance{
			Experience: data.Performance.Experience,
			Deliveries: data.Performance.Deliveries,
			Skills:     data.Performance.Skills,
		},
		Energy: dbmodels.Energy{
			Availability: data.Energy.Availability,
			Deadlines:    data.Energy.Deadlines,
			Pressure:     data.Energy.Pressure,
		},
		Culture: dbmodels.Culture{
			LegalValues: data.Culture.LegalValues,
		},
		ApplicationLink: buildApplicationLink(recID),
		Status:          models.JobStatusDraft,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		Info("создана вакансия")
	return id, nil
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, models.ErrNotFound
	}
	return jobapimodels.JobConvert(*rec), nil
}

// GetPublished отдаёт вакансию для публичной страницы отклика,
// черновики и закрытые вакансии наружу не видны.
func (i impl) GetPublished(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil || rec.Status != models.JobStatusPublished {
		return jobapimodels.JobView{}, models.ErrNotFound
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) Update(id string, data jobapimodels.JobData) error {
	updMap := map[string]interface{}{
		"title":                  data.Title,
		"description":            data.Description,
		"performance_experience": data.Performance.Experience,
		"performance_deliveries": data.Performance.Deliveries,
		"performance_skills":     data.Performance.Skills,
		"energy_availability":    data.Energy.Availability,
		"energy_deadlines":       data.Energy.Deadlines,
		"energy_pressure":        data.Energy.Pressure,
		"culture_legal_values":   data.Culture.LegalValues,
	}
	return i.store.Update(id, updMap)
}

func (i impl) StatusChange(id string, status models.JobStatus) error {
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

// Delete удаляет вакансию без кандидатов.
// Проверка зависимостей и удаление выполняются в одной транзакции,
// чтобы кандидат не мог появиться между проверкой и удалением.
func (i impl) Delete(id string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return deleteWithGuard(jobstore.NewInstance(tx), candidatestore.NewInstance(tx), id)
	})
}

func deleteWithGuard(store jobstore.Provider, candidateStore candidatestore.Provider, id string) error {
	rec, err := store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	count, err := candidateStore.CountByJob(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrHasDependents
	}
	return store.Delete(id)
}

func (i impl) List(filter dbmodels.JobFilter, page, pageSize int) ([]jobapimodels.JobView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, rowCount, nil
}

func buildApplicationLink(id string) string {
	return fmt.Sprintf("%s/apply/%s", config.Conf.App.PublicURL, id)
}
