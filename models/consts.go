package models

import "github.com/pkg/errors"

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

// Validate проверяет значение статуса вакансии.
// Переходы между статусами свободные, порядок не навязывается.
func (s JobStatus) Validate() error {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed:
		return nil
	}
	return errors.Wrapf(ErrInvalidStatus, "неизвестный статус вакансии: %v", s)
}

type CandidateStatus string

const (
	CandidateStatusNew           CandidateStatus = "new"
	CandidateStatusReviewed      CandidateStatus = "reviewed"
	CandidateStatusSentToManager CandidateStatus = "sent_to_manager"
)

func (s CandidateStatus) Validate() error {
	switch s {
	case CandidateStatusNew, CandidateStatusReviewed, CandidateStatusSentToManager:
		return nil
	}
	return errors.Wrapf(ErrInvalidStatus, "неизвестный статус кандидата: %v", s)
}

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
	InterviewStatusNoShow      InterviewStatus = "no-show"
)

func (s InterviewStatus) Validate() error {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled,
		InterviewStatusRescheduled, InterviewStatusNoShow:
		return nil
	}
	return errors.Wrapf(ErrInvalidStatus, "неизвестный статус интервью: %v", s)
}

type InterviewType string

const (
	InterviewTypeTechnical   InterviewType = "Technical Interview"
	InterviewTypeCulturalFit InterviewType = "Cultural Fit Interview"
	InterviewTypeBehavioral  InterviewType = "Behavioral Interview"
	InterviewTypeFinalRound  InterviewType = "Final Round Interview"
	InterviewTypePhoneScreen InterviewType = "Phone Screen"
	InterviewTypeTakeHome    InterviewType = "Take-Home Assignment Review"
	InterviewTypeReference   InterviewType = "Reference Check"
	InterviewTypeOther       InterviewType = "Other"
)

func (t InterviewType) Validate() error {
	switch t {
	case InterviewTypeTechnical, InterviewTypeCulturalFit, InterviewTypeBehavioral,
		InterviewTypeFinalRound, InterviewTypePhoneScreen, InterviewTypeTakeHome,
		InterviewTypeReference, InterviewTypeOther:
		return nil
	}
	return errors.Errorf("неизвестный тип интервью: %v", t)
}

type Recommendation string

const (
	RecommendationStrongYes Recommendation = "strong_yes"
	RecommendationYes       Recommendation = "yes"
	RecommendationMaybe     Recommendation = "maybe"
	RecommendationNo        Recommendation = "no"
	RecommendationStrongNo  Recommendation = "strong_no"
)

func (r Recommendation) Validate() error {
	switch r {
	case RecommendationStrongYes, RecommendationYes, RecommendationMaybe,
		RecommendationNo, RecommendationStrongNo:
		return nil
	}
	return errors.Errorf("неизвестная рекомендация: %v", r)
}
