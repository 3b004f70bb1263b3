package candidatehandler

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hireflow-backend/models"
	candidateapimodels "hireflow-backend/models/api/candidate"
	dbmodels "hireflow-backend/models/db"
)

type candidateStoreFake struct {
	recs    map[string]*dbmodels.Candidate
	updMaps map[string]map[string]interface{}
}

func newCandidateStoreFake(recs ...dbmodels.Candidate) *candidateStoreFake {
	fake := &candidateStoreFake{
		recs:    map[string]*dbmodels.Candidate{},
		updMaps: map[string]map[string]interface{}{},
	}
	for i := range recs {
		fake.recs[recs[i].ID] = &recs[i]
	}
	return fake
}

func (f *candidateStoreFake) Create(rec dbmodels.Candidate) (string, error) {
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *candidateStoreFake) GetByID(id string) (*dbmodels.Candidate, error) {
	return f.recs[id], nil
}

func (f *candidateStoreFake) Update(id string, updMap map[string]interface{}) error {
	if f.recs[id] == nil {
		return models.ErrNotFound
	}
	f.updMaps[id] = updMap
	if status, ok := updMap["status"]; ok {
		f.recs[id].Status = status.(models.CandidateStatus)
	}
	return nil
}

func (f *candidateStoreFake) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *candidateStoreFake) CountByJob(jobID string) (int64, error) {
	count := int64(0)
	for _, rec := range f.recs {
		if rec.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (f *candidateStoreFake) ListCount(filter dbmodels.CandidateFilter) (int64, error) {
	return int64(len(f.filtered(filter))), nil
}

func (f *candidateStoreFake) List(filter dbmodels.CandidateFilter, page, pageSize int) ([]dbmodels.Candidate, error) {
	list := f.filtered(filter)
	offset := (page - 1) * pageSize
	if offset >= len(list) {
		return []dbmodels.Candidate{}, nil
	}
	end := offset + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

// filtered повторяет семантику стора: выборка в рамках вакансии,
// опционально статус, порядок created_at desc.
func (f *candidateStoreFake) filtered(filter dbmodels.CandidateFilter) []dbmodels.Candidate {
	list := []dbmodels.Candidate{}
	for _, rec := range f.recs {
		if rec.JobID != filter.JobID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, *rec)
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list
}

func (f *candidateStoreFake) ListByJob(jobID string) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	for _, rec := range f.recs {
		if rec.JobID == jobID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type jobStoreFake struct {
	recs map[string]*dbmodels.Job
}

func (f jobStoreFake) Create(rec dbmodels.Job) (string, error)    { return rec.ID, nil }
func (f jobStoreFake) GetByID(id string) (*dbmodels.Job, error)   { return f.recs[id], nil }
func (f jobStoreFake) Update(id string, _ map[string]interface{}) error { return nil }
func (f jobStoreFake) Delete(id string) error                     { return nil }
func (f jobStoreFake) ListCount(filter dbmodels.JobFilter) (int64, error) {
	return int64(len(f.recs)), nil
}
func (f jobStoreFake) List(filter dbmodels.JobFilter, page, pageSize int) ([]dbmodels.Job, error) {
	return nil, nil
}

func testCandidate(id, jobID string, status models.CandidateStatus) dbmodels.Candidate {
	return dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: id},
		JobID:     jobID,
		Name:      "Иван Иванов",
		Email:     "ivanov@example.com",
		Phone:     "+79990000000",
		Status:    status,
	}
}

func TestCandidateHandler(t *testing.T) {
	jobs := jobStoreFake{recs: map[string]*dbmodels.Job{
		"j1": {BaseModel: dbmodels.BaseModel{ID: "j1"}, Status: models.JobStatusPublished},
	}}

	t.Run(`create requires existing job`, func(t *testing.T) {
		handler := impl{store: newCandidateStoreFake(), jobStore: jobs}
		_, err := handler.Create(candidateapimodels.CandidateData{JobID: "nope", Name: "Иван"}, "")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`create starts in status new`, func(t *testing.T) {
		store := newCandidateStoreFake()
		handler := impl{store: store, jobStore: jobs}
		id, err := handler.Create(candidateapimodels.CandidateData{
			JobID: "j1",
			Name:  "Иван Иванов",
			Email: "ivanov@example.com",
			Phone: "+79990000000",
		}, "http://storage/resume.pdf")
		require.Nil(t, err)
		rec := store.recs[id]
		require.NotNil(t, rec)
		require.Equal(t, models.CandidateStatusNew, rec.Status)
		require.Equal(t, "http://storage/resume.pdf", rec.ResumeURL)
		require.True(t, rec.FitScore.CalculatedAt.IsZero())
	})

	t.Run(`status change rejects unknown status and keeps record`, func(t *testing.T) {
		store := newCandidateStoreFake(testCandidate("c1", "j1", models.CandidateStatusNew))
		handler := impl{store: store, jobStore: jobs}
		err := handler.UpdateStatus("c1", models.CandidateStatus("hired"))
		require.True(t, errors.Is(err, models.ErrInvalidStatus))
		require.Equal(t, models.CandidateStatusNew, store.recs["c1"].Status)
		require.Empty(t, store.updMaps)
	})

	t.Run(`status change of missing candidate`, func(t *testing.T) {
		handler := impl{store: newCandidateStoreFake(), jobStore: jobs}
		err := handler.UpdateStatus("nope", models.CandidateStatusReviewed)
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`status change applied, repeat is no-op`, func(t *testing.T) {
		store := newCandidateStoreFake(testCandidate("c1", "j1", models.CandidateStatusNew))
		handler := impl{store: store, jobStore: jobs}
		err := handler.UpdateStatus("c1", models.CandidateStatusSentToManager)
		require.Nil(t, err)
		require.Equal(t, models.CandidateStatusSentToManager, store.recs["c1"].Status)

		store.updMaps = map[string]map[string]interface{}{}
		err = handler.UpdateStatus("c1", models.CandidateStatusSentToManager)
		require.Nil(t, err)
		require.Empty(t, store.updMaps)
	})

	t.Run(`delete leaves job untouched`, func(t *testing.T) {
		store := newCandidateStoreFake(testCandidate("c1", "j1", models.CandidateStatusNew))
		handler := impl{store: store, jobStore: jobs}
		err := handler.Delete("c1")
		require.Nil(t, err)
		require.Nil(t, store.recs["c1"])
		require.NotNil(t, jobs.recs["j1"])
	})
}

func TestCandidateList(t *testing.T) {
	jobs := jobStoreFake{recs: map[string]*dbmodels.Job{
		"j1": {BaseModel: dbmodels.BaseModel{ID: "j1"}},
	}}
	baseTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newCandidateStoreFake()
	for i := 0; i < 25; i++ {
		status := models.CandidateStatusNew
		if i%5 == 0 {
			status = models.CandidateStatusReviewed
		}
		rec := testCandidate(fmt.Sprintf("c%02d", i), "j1", status)
		rec.CreatedAt = baseTime.Add(time.Duration(i) * time.Hour)
		store.recs[rec.ID] = &rec
	}
	// кандидат другой вакансии в выборку не попадает
	foreign := testCandidate("x1", "j2", models.CandidateStatusNew)
	store.recs[foreign.ID] = &foreign
	handler := impl{store: store, jobStore: jobs}

	t.Run(`scoped to job, newest first`, func(t *testing.T) {
		list, rowCount, err := handler.List(dbmodels.CandidateFilter{JobID: "j1"}, 1, 10)
		require.Nil(t, err)
		require.Equal(t, int64(25), rowCount)
		require.Len(t, list, 10)
		require.Equal(t, "c24", list[0].ID)
		require.Equal(t, "c15", list[9].ID)
	})

	t.Run(`last page holds the remainder`, func(t *testing.T) {
		list, rowCount, err := handler.List(dbmodels.CandidateFilter{JobID: "j1"}, 3, 10)
		require.Nil(t, err)
		require.Equal(t, int64(25), rowCount)
		require.Len(t, list, 5)
		require.Equal(t, "c00", list[4].ID)
	})

	t.Run(`page beyond range is empty, total kept`, func(t *testing.T) {
		list, rowCount, err := handler.List(dbmodels.CandidateFilter{JobID: "j1"}, 4, 10)
		require.Nil(t, err)
		require.Equal(t, int64(25), rowCount)
		require.Empty(t, list)
	})

	t.Run(`status filter narrows the job scope`, func(t *testing.T) {
		list, rowCount, err := handler.List(dbmodels.CandidateFilter{
			JobID:  "j1",
			Status: models.CandidateStatusReviewed,
		}, 1, 10)
		require.Nil(t, err)
		require.Equal(t, int64(5), rowCount)
		require.Len(t, list, 5)
		for _, item := range list {
			require.Equal(t, models.CandidateStatusReviewed, item.Status)
		}
	})
}
