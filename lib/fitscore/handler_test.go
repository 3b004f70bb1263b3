package fitscorehandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hireflow-backend/config"
	"hireflow-backend/models"
	dbmodels "hireflow-backend/models/db"
)

type candidateStoreFake struct {
	recs    map[string]*dbmodels.Candidate
	updMaps map[string]map[string]interface{}
}

func (f *candidateStoreFake) Create(rec dbmodels.Candidate) (string, error) { return rec.ID, nil }
func (f *candidateStoreFake) GetByID(id string) (*dbmodels.Candidate, error) {
	return f.recs[id], nil
}
func (f *candidateStoreFake) Update(id string, updMap map[string]interface{}) error {
	if f.updMaps == nil {
		f.updMaps = map[string]map[string]interface{}{}
	}
	f.updMaps[id] = updMap
	return nil
}
func (f *candidateStoreFake) Delete(id string) error                 { return nil }
func (f *candidateStoreFake) CountByJob(jobID string) (int64, error) { return 0, nil }
func (f *candidateStoreFake) ListCount(filter dbmodels.CandidateFilter) (int64, error) {
	return 0, nil
}
func (f *candidateStoreFake) List(filter dbmodels.CandidateFilter, page, pageSize int) ([]dbmodels.Candidate, error) {
	return nil, nil
}
func (f *candidateStoreFake) ListByJob(jobID string) ([]dbmodels.Candidate, error) {
	return nil, nil
}

type jobStoreFake struct {
	recs map[string]*dbmodels.Job
}

func (f jobStoreFake) Create(rec dbmodels.Job) (string, error)          { return rec.ID, nil }
func (f jobStoreFake) GetByID(id string) (*dbmodels.Job, error)         { return f.recs[id], nil }
func (f jobStoreFake) Update(id string, _ map[string]interface{}) error { return nil }
func (f jobStoreFake) Delete(id string) error                           { return nil }
func (f jobStoreFake) ListCount(filter dbmodels.JobFilter) (int64, error) {
	return 0, nil
}
func (f jobStoreFake) List(filter dbmodels.JobFilter, page, pageSize int) ([]dbmodels.Job, error) {
	return nil, nil
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		sum      int
		expected int
	}{
		{sum: 210, expected: 70},  // 70.0
		{sum: 211, expected: 70},  // 70.33
		{sum: 212, expected: 71},  // 70.67
		{sum: 213, expected: 71},  // 71.0
		{sum: 299, expected: 100}, // 99.67
		{sum: 300, expected: 100},
		{sum: 0, expected: 0},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, roundHalfUp(c.sum), "sum=%d", c.sum)
	}
}

func TestScoreComponents(t *testing.T) {
	candidate := dbmodels.Candidate{
		CulturalFit: dbmodels.CulturalFit{
			Performance: "Пять лет пишу сервисы на Go, PostgreSQL и Kafka",
			Energy:      "Готов работать в сжатые сроки",
			Culture:     "Ценю открытость и ответственность",
		},
	}
	job := dbmodels.Job{
		Performance: dbmodels.Performance{
			Experience: "От трёх лет разработки на Go",
			Skills:     []string{"Go", "PostgreSQL"},
		},
	}
	for i := 0; i < 50; i++ {
		technical, cultural, behavioral := scoreComponents(candidate, job)
		for _, score := range []int{technical, cultural, behavioral} {
			require.GreaterOrEqual(t, score, 70)
			require.LessOrEqual(t, score, 100)
		}
	}
}

func TestCalculate(t *testing.T) {
	config.Conf = &config.Configuration{}

	job := &dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "j1"}, Title: "Go разработчик"}
	candidate := &dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: "c1"},
		JobID:     "j1",
		Name:      "Иван Иванов",
	}
	jobs := jobStoreFake{recs: map[string]*dbmodels.Job{"j1": job}}

	t.Run(`candidate not found`, func(t *testing.T) {
		handler := impl{candidateStore: &candidateStoreFake{}, jobStore: jobs}
		_, err := handler.Calculate("nope", "j1")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`job not found`, func(t *testing.T) {
		handler := impl{
			candidateStore: &candidateStoreFake{recs: map[string]*dbmodels.Candidate{"c1": candidate}},
			jobStore:       jobs,
		}
		_, err := handler.Calculate("c1", "nope")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`candidate of another job`, func(t *testing.T) {
		other := &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "c2"}, JobID: "j2"}
		handler := impl{
			candidateStore: &candidateStoreFake{recs: map[string]*dbmodels.Candidate{"c2": other}},
			jobStore:       jobs,
		}
		_, err := handler.Calculate("c2", "j1")
		require.True(t, errors.Is(err, models.ErrJobMismatch))
	})

	t.Run(`calculation persists full snapshot`, func(t *testing.T) {
		store := &candidateStoreFake{recs: map[string]*dbmodels.Candidate{"c1": candidate}}
		handler := impl{candidateStore: store, jobStore: jobs}
		result, err := handler.Calculate("c1", "j1")
		require.Nil(t, err)

		require.GreaterOrEqual(t, result.TechnicalScore, 70)
		require.LessOrEqual(t, result.TechnicalScore, 100)
		require.Equal(t,
			roundHalfUp(result.TechnicalScore+result.CulturalScore+result.BehavioralScore),
			result.OverallScore)
		require.NotEmpty(t, result.AIAnalysis)
		require.False(t, result.CalculatedAt.IsZero())

		updMap := store.updMaps["c1"]
		require.NotNil(t, updMap)
		require.Equal(t, result.TechnicalScore, updMap["fit_technical_score"])
		require.Equal(t, result.CulturalScore, updMap["fit_cultural_score"])
		require.Equal(t, result.BehavioralScore, updMap["fit_behavioral_score"])
		require.Equal(t, result.OverallScore, updMap["fit_overall_score"])
		require.Equal(t, result.AIAnalysis, updMap["fit_ai_analysis"])
		require.Equal(t, result.CalculatedAt, updMap["fit_calculated_at"])
	})

	t.Run(`recalculation overwrites previous snapshot`, func(t *testing.T) {
		store := &candidateStoreFake{recs: map[string]*dbmodels.Candidate{"c1": candidate}}
		handler := impl{candidateStore: store, jobStore: jobs}
		first, err := handler.Calculate("c1", "j1")
		require.Nil(t, err)
		second, err := handler.Calculate("c1", "j1")
		require.Nil(t, err)
		require.False(t, second.CalculatedAt.Before(first.CalculatedAt))
		require.Equal(t, second.OverallScore, store.updMaps["c1"]["fit_overall_score"])
	})
}
