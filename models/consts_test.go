package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run(`job statuses`, func(t *testing.T) {
		for _, status := range []JobStatus{JobStatusDraft, JobStatusPublished, JobStatusClosed} {
			require.Nil(t, status.Validate())
		}
		err := JobStatus("archived").Validate()
		require.True(t, errors.Is(err, ErrInvalidStatus))
	})

	t.Run(`candidate statuses`, func(t *testing.T) {
		for _, status := range []CandidateStatus{CandidateStatusNew, CandidateStatusReviewed, CandidateStatusSentToManager} {
			require.Nil(t, status.Validate())
		}
		err := CandidateStatus("hired").Validate()
		require.True(t, errors.Is(err, ErrInvalidStatus))
	})

	t.Run(`interview statuses`, func(t *testing.T) {
		for _, status := range []InterviewStatus{
			InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled,
			InterviewStatusRescheduled, InterviewStatusNoShow,
		} {
			require.Nil(t, status.Validate())
		}
		err := InterviewStatus("done").Validate()
		require.True(t, errors.Is(err, ErrInvalidStatus))
	})

	t.Run(`interview types`, func(t *testing.T) {
		require.Nil(t, InterviewTypeTechnical.Validate())
		require.Nil(t, InterviewTypeTakeHome.Validate())
		require.NotNil(t, InterviewType("Coffee Chat").Validate())
	})

	t.Run(`recommendations`, func(t *testing.T) {
		require.Nil(t, RecommendationStrongYes.Validate())
		require.Nil(t, RecommendationMaybe.Validate())
		require.NotNil(t, Recommendation("never").Validate())
	})
}
