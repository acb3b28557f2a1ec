package service

import (
	"context"
	"testing"

	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillFixture() (*SkillService, *fakeAssessmentStorage) {
	assessments := &fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}
	players := newFakePlayerStorage(
		&entity.Player{ID: "player-1", SquadID: strptr("squad-1")},
		&entity.Player{ID: "player-free"},
	)
	coaches := newFakeCoachStorage(&entity.Coach{ID: "coach-1", SquadID: strptr("squad-1")})
	authorizer := NewSquadAuthorizer(coaches, newFakePlanStorage())
	return NewSkillService(assessments, players, authorizer, newTestLogger()), assessments
}

func TestRecordAssessment(t *testing.T) {
	svc, assessments := newSkillFixture()

	recorded, err := svc.RecordAssessment(context.Background(), "coach-1", "player-1", "Passing", 4, "good hands")
	require.NoError(t, err)
	assert.Equal(t, 4, recorded.SkillLevel)
	assert.Len(t, assessments.byPlayer["player-1"], 1)

	// history is append-only
	_, err = svc.RecordAssessment(context.Background(), "coach-1", "player-1", "Passing", 5, "")
	require.NoError(t, err)
	assert.Len(t, assessments.byPlayer["player-1"], 2)
}

func TestRecordAssessmentValidation(t *testing.T) {
	svc, _ := newSkillFixture()

	_, err := svc.RecordAssessment(context.Background(), "coach-1", "player-1", "Scrummaging", 4, "")
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = svc.RecordAssessment(context.Background(), "coach-1", "player-1", "Passing", 0, "")
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = svc.RecordAssessment(context.Background(), "coach-1", "player-1", "Passing", 6, "")
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = svc.RecordAssessment(context.Background(), "coach-1", "player-free", "Passing", 3, "")
	assert.ErrorIs(t, err, errorz.ErrValidation, "unassigned players cannot be assessed")

	_, err = svc.RecordAssessment(context.Background(), "coach-1", "ghost", "Passing", 3, "")
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestRecordAssessmentForbidden(t *testing.T) {
	assessments := &fakeAssessmentStorage{byPlayer: map[string][]entity.SkillAssessment{}}
	players := newFakePlayerStorage(&entity.Player{ID: "player-1", SquadID: strptr("squad-1")})
	coaches := newFakeCoachStorage(&entity.Coach{ID: "coach-2", SquadID: strptr("squad-2")})
	authorizer := NewSquadAuthorizer(coaches, newFakePlanStorage())
	svc := NewSkillService(assessments, players, authorizer, newTestLogger())

	_, err := svc.RecordAssessment(context.Background(), "coach-2", "player-1", "Passing", 3, "")
	assert.ErrorIs(t, err, errorz.ErrForbidden)
}
