package fitscorehandler

import (
	"math/rand"
	"strings"

	dbmodels "hireflow-backend/models/db"
)

// scoreComponents выдаёт три компонентные оценки в диапазоне [0,100].
// Эвристика: базовая полоса 70-100 со сдвигом за пересечение ключевых слов
// анкеты кандидата с требованиями вакансии и случайным разбросом.
// Оценка намеренно недетерминированная, повторный расчёт может дать
// другие значения. Замена на детерминированный или модельный скоринг
// не затрагивает контракт агрегации и хранения.
func scoreComponents(candidate dbmodels.Candidate, job dbmodels.Job) (technical, cultural, behavioral int) {
	technical = bandedScore(overlapRatio(
		candidate.CulturalFit.Performance,
		strings.Join(append([]string{job.Performance.Experience}, job.Performance.Skills...), " ")))
	cultural = bandedScore(overlapRatio(
		candidate.CulturalFit.Culture,
		strings.Join(job.Culture.LegalValues, " ")))
	behavioral = bandedScore(overlapRatio(
		candidate.CulturalFit.Energy+" "+candidate.CulturalFit.Performance,
		job.Energy.Availability+" "+job.Energy.Deadlines+" "+job.Energy.Pressure))
	return technical, cultural, behavioral
}

// bandedScore переводит долю пересечения [0,1] в балл 70-100:
// до 20 пунктов за пересечение и до 10 пунктов случайного разброса.
func bandedScore(ratio float64) int {
	score := 70 + int(ratio*20) + rand.Intn(11)
	if score > 100 {
		score = 100
	}
	return score
}

// overlapRatio - доля слов требований, встречающихся в тексте кандидата.
func overlapRatio(candidateText, jobText string) float64 {
	jobWords := tokenize(jobText)
	if len(jobWords) == 0 {
		return 0
	}
	candidateWords := map[string]bool{}
	for _, word := range tokenize(candidateText) {
		candidateWords[word] = true
	}
	matched := 0
	for _, word := range jobWords {
		if candidateWords[word] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobWords))
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	result := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.Trim(field, ".,;:!?()\"'")
		if len(word) > 2 {
			result = append(result, word)
		}
	}
	return result
}
