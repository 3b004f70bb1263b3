package fitscorehandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"hireflow-backend/config"
	"hireflow-backend/db"
	yagptclient "hireflow-backend/lib/ai/yagpt-client"
	candidatestore "hireflow-backend/lib/candidate/store"
	jobstore "hireflow-backend/lib/job/store"
	"hireflow-backend/models"
	candidateapimodels "hireflow-backend/models/api/candidate"
	dbmodels "hireflow-backend/models/db"
)

type Provider interface {
	Calculate(candidateID, jobID string) (result candidateapimodels.FitScoreView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
}

// Calculate считает компонентные оценки, сводит их в общий балл и
// перезаписывает прошлый снимок оценки на кандидате (история не хранится).
func (i impl) Calculate(candidateID, jobID string) (candidateapimodels.FitScoreView, error) {
	logger := log.
		WithField("candidate_id", candidateID).
		WithField("job_id", jobID)
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return candidateapimodels.FitScoreView{}, err
	}
	if candidate == nil {
		return candidateapimodels.FitScoreView{}, models.ErrNotFound
	}
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return candidateapimodels.FitScoreView{}, err
	}
	if job == nil {
		return candidateapimodels.FitScoreView{}, models.ErrNotFound
	}
	if candidate.JobID != job.ID {
		return candidateapimodels.FitScoreView{}, models.ErrJobMismatch
	}

	technical, cultural, behavioral := scoreComponents(*candidate, *job)
	overall := roundHalfUp(technical + cultural + behavioral)

	analysis := i.buildAnalysis(*candidate, *job, technical, cultural, behavioral, overall)
	calculatedAt := time.Now()

	updMap := map[string]interface{}{
		"fit_technical_score":  technical,
		"fit_cultural_score":   cultural,
		"fit_behavioral_score": behavioral,
		"fit_overall_score":    overall,
		"fit_ai_analysis":      analysis,
		"fit_calculated_at":    calculatedAt,
	}
	if err = i.candidateStore.Update(candidateID, updMap); err != nil {
		return candidateapimodels.FitScoreView{}, err
	}
	logger.
		WithField("overall_score", overall).
		Info("оценка соответствия рассчитана")
	return candidateapimodels.FitScoreView{
		TechnicalScore:  technical,
		CulturalScore:   cultural,
		BehavioralScore: behavioral,
		OverallScore:    overall,
		AIAnalysis:      analysis,
		CalculatedAt:    calculatedAt,
	}, nil
}

// roundHalfUp сводит сумму трёх компонент в общий балл:
// round((t + c + b) / 3) с округлением половины вверх.
// Контракт агрегации фиксированный и не зависит от способа
// получения компонентных оценок.
func roundHalfUp(sum int) int {
	return (sum*2 + 3) / 6
}

func (i impl) buildAnalysis(candidate dbmodels.Candidate, job dbmodels.Job, technical, cultural, behavioral, overall int) string {
	text := fmt.Sprintf(
		"Кандидат %s по вакансии %q: техническое соответствие %d, культурное %d, поведенческое %d, итог %d из 100.",
		candidate.Name, job.Title, technical, cultural, behavioral, overall)
	if config.Conf.YandexGPT.IAMToken == "" {
		return text
	}
	generated, err := yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(
			"Ты - рекрутер. Кратко резюмируй соответствие кандидата вакансии по предоставленным оценкам.",
			fmt.Sprintf("%s Самооценка кандидата: производительность %q, энергия %q, культура %q.",
				text, candidate.CulturalFit.Performance, candidate.CulturalFit.Energy, candidate.CulturalFit.Culture))
	if err != nil {
		log.
			WithField("candidate_id", candidate.ID).
			WithError(err).
			Error("ошибка генерации анализа через YandexGPT, используется локальное описание")
		return text
	}
	return generated
}
