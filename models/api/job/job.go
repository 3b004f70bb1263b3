package jobapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hireflow-backend/models"
	apimodels "hireflow-backend/models/api"
	dbmodels "hireflow-backend/models/db"
)

type JobData struct {
	Title       string      `json:"title"`       // название позиции
	Description string      `json:"description"` // описание позиции
	Performance Performance `json:"performance"`
	Energy      Energy      `json:"energy"`
	Culture     Culture     `json:"culture"`
}

type Performance struct {
	Experience string   `json:"experience"`
	Deliveries string   `json:"deliveries"`
	Skills     []string `json:"skills"`
}

type Energy struct {
	Availability string `json:"availability"`
	Deadlines    string `json:"deadlines"`
	Pressure     string `json:"pressure"`
}

type Culture struct {
	LegalValues []string `json:"legal_values"`
}

func (j JobData) Validate() error {
	if j.Title == "" {
		return errors.New("не указано название позиции")
	}
	if j.Description == "" {
		return errors.New("не указано описание позиции")
	}
	return nil
}

type JobView struct {
	JobData
	ID              string           `json:"id"`
	ApplicationLink string           `json:"application_link"`
	Status          models.JobStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		JobData: JobData{
			Title:       rec.Title,
			Description: rec.Description,
			Performance: Performance{
				Experience: rec.Performance.Experience,
				Deliveries: rec.Performance.Deliveries,
				Skills:     rec.Performance.Skills,
			},
			Energy: Energy{
				Availability: rec.Energy.Availability,
				Deadlines:    rec.Energy.Deadlines,
				Pressure:     rec.Energy.Pressure,
			},
			Culture: Culture{
				LegalValues: rec.Culture.LegalValues,
			},
		},
		ID:              rec.ID,
		ApplicationLink: rec.ApplicationLink,
		Status:          rec.Status,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

type JobListRequest struct {
	apimodels.Pagination
	Filter dbmodels.JobFilter `json:"filter"`
}

func (r JobListRequest) Validate() error {
	if r.Filter.Status != "" {
		if err := r.Filter.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type JobStatusChange struct {
	Status models.JobStatus `json:"status"`
}

func (r JobStatusChange) Validate() error {
	return r.Status.Validate()
}
