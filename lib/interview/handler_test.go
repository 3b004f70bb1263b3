package interviewhandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hireflow-backend/models"
	interviewapimodels "hireflow-backend/models/api/interview"
	dbmodels "hireflow-backend/models/db"
)

type interviewStoreFake struct {
	recs    map[string]*dbmodels.Interview
	updMaps map[string]map[string]interface{}
}

func newInterviewStoreFake(recs ...dbmodels.Interview) *interviewStoreFake {
	fake := &interviewStoreFake{
		recs:    map[string]*dbmodels.Interview{},
		updMaps: map[string]map[string]interface{}{},
	}
	for i := range recs {
		fake.recs[recs[i].ID] = &recs[i]
	}
	return fake
}

func (f *interviewStoreFake) Create(rec dbmodels.Interview) (string, error) {
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *interviewStoreFake) GetByID(id string) (*dbmodels.Interview, error) {
	return f.recs[id], nil
}

func (f *interviewStoreFake) Update(id string, updMap map[string]interface{}) error {
	f.updMaps[id] = updMap
	return nil
}

func (f *interviewStoreFake) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *interviewStoreFake) List(filter dbmodels.InterviewFilter) ([]dbmodels.Interview, error) {
	list := make([]dbmodels.Interview, 0, len(f.recs))
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

type candidateStoreFake struct {
	recs map[string]*dbmodels.Candidate
}

func (f candidateStoreFake) Create(rec dbmodels.Candidate) (string, error) { return rec.ID, nil }
func (f candidateStoreFake) GetByID(id string) (*dbmodels.Candidate, error) {
	return f.recs[id], nil
}
func (f candidateStoreFake) Update(id string, _ map[string]interface{}) error { return nil }
func (f candidateStoreFake) Delete(id string) error                           { return nil }
func (f candidateStoreFake) CountByJob(jobID string) (int64, error)           { return 0, nil }
func (f candidateStoreFake) ListCount(filter dbmodels.CandidateFilter) (int64, error) {
	return 0, nil
}
func (f candidateStoreFake) List(filter dbmodels.CandidateFilter, page, pageSize int) ([]dbmodels.Candidate, error) {
	return nil, nil
}
func (f candidateStoreFake) ListByJob(jobID string) ([]dbmodels.Candidate, error) { return nil, nil }

func TestInterviewHandler(t *testing.T) {
	candidates := candidateStoreFake{recs: map[string]*dbmodels.Candidate{
		"c1": {BaseModel: dbmodels.BaseModel{ID: "c1"}, JobID: "j1"},
	}}

	t.Run(`create requires existing candidate`, func(t *testing.T) {
		handler := impl{store: newInterviewStoreFake(), candidateStore: candidates}
		_, err := handler.Create(interviewapimodels.InterviewData{
			CandidateID: "nope",
			JobID:       "j1",
			Type:        models.InterviewTypeTechnical,
			Date:        time.Now(),
		})
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`create rejects candidate of another job`, func(t *testing.T) {
		handler := impl{store: newInterviewStoreFake(), candidateStore: candidates}
		_, err := handler.Create(interviewapimodels.InterviewData{
			CandidateID: "c1",
			JobID:       "j2",
			Type:        models.InterviewTypeTechnical,
			Date:        time.Now(),
		})
		require.True(t, errors.Is(err, models.ErrJobMismatch))
	})

	t.Run(`create starts scheduled`, func(t *testing.T) {
		store := newInterviewStoreFake()
		handler := impl{store: store, candidateStore: candidates}
		id, err := handler.Create(interviewapimodels.InterviewData{
			CandidateID: "c1",
			JobID:       "j1",
			Type:        models.InterviewTypePhoneScreen,
			Date:        time.Now().Add(24 * time.Hour),
			Duration:    "45 минут",
			Interviewer: "Мария",
		})
		require.Nil(t, err)
		rec := store.recs[id]
		require.NotNil(t, rec)
		require.Equal(t, models.InterviewStatusScheduled, rec.Status)
		require.Nil(t, rec.Score)
	})

	t.Run(`update writes only sent fields`, func(t *testing.T) {
		status := models.InterviewStatusCompleted
		score := 8
		updMap := buildUpdateMap(interviewapimodels.InterviewUpdate{
			Status: &status,
			Score:  &score,
		})
		require.Equal(t, map[string]interface{}{
			"status": models.InterviewStatusCompleted,
			"score":  8,
		}, updMap)
	})

	t.Run(`update with feedback writes feedback block`, func(t *testing.T) {
		overall := 9
		updMap := buildUpdateMap(interviewapimodels.InterviewUpdate{
			Feedback: &interviewapimodels.FeedbackData{
				Overall:        &overall,
				Strengths:      []string{"алгоритмы", "коммуникация"},
				Recommendation: models.RecommendationYes,
			},
		})
		require.Equal(t, &overall, updMap["feedback_overall"])
		require.Equal(t, models.RecommendationYes, updMap["feedback_recommendation"])
		require.Len(t, updMap["feedback_strengths"], 2)
	})

	t.Run(`update rejects unknown status and keeps record`, func(t *testing.T) {
		store := newInterviewStoreFake(dbmodels.Interview{
			BaseModel:   dbmodels.BaseModel{ID: "i1"},
			CandidateID: "c1",
			JobID:       "j1",
			Status:      models.InterviewStatusScheduled,
		})
		handler := impl{store: store, candidateStore: candidates}
		status := models.InterviewStatus("postponed")
		err := handler.Update("i1", interviewapimodels.InterviewUpdate{Status: &status})
		require.True(t, errors.Is(err, models.ErrInvalidStatus))
		require.Equal(t, models.InterviewStatusScheduled, store.recs["i1"].Status)
		require.Empty(t, store.updMaps)
	})

	t.Run(`update of missing interview`, func(t *testing.T) {
		handler := impl{store: newInterviewStoreFake(), candidateStore: candidates}
		err := handler.Update("nope", interviewapimodels.InterviewUpdate{})
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}
