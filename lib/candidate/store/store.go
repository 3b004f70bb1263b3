package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hireflow-backend/models"
	dbmodels "hireflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	CountByJob(jobID string) (count int64, err error)
	ListCount(filter dbmodels.CandidateFilter) (count int64, err error)
	List(filter dbmodels.CandidateFilter, page, pageSize int) (list []dbmodels.Candidate, err error)
	ListByJob(jobID string) (list []dbmodels.Candidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	// вакансия кандидата фиксируется при создании
	delete(updMap, "job_id")
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) CountByJob(jobID string) (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.Candidate{}).
		Where("job_id = ?", jobID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) ListCount(filter dbmodels.CandidateFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Candidate{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(filter dbmodels.CandidateFilter, page, pageSize int) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(dbmodels.Candidate{})
	i.addFilter(tx, filter)
	tx.Order("candidates.created_at desc")
	i.setPage(tx, page, pageSize)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJob(jobID string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Where("job_id = ?", jobID).
		Order("candidates.created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CandidateFilter) {
	tx = tx.Where("job_id = ?", filter.JobID)
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
}

func (i impl) setPage(tx *gorm.DB, page, pageSize int) {
	offset := (page - 1) * pageSize
	tx.Limit(pageSize).Offset(offset)
}
