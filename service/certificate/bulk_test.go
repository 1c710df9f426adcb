package certificate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/eventcore/model"
)

func TestService__BulkIssue__Partitions_Outcomes(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	s.regRepo.FindAttendedRegistrationsFunc = func(
		ctx context.Context, eventID int64,
	) ([]model.Registration, error) {
		return []model.Registration{
			{ID: 31, EventID: 11, UserID: 21, Attended: true},
			{ID: 32, EventID: 11, UserID: 22, Attended: true},
			{ID: 33, EventID: 11, UserID: 23, Attended: true},
		}, nil
	}

	// user 22 already has a certificate, user 23 was deleted
	s.certRepo.FindCertificateFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullCertificate, error) {
		if userID == 22 {
			return model.NullCertificate{Valid: true, Certificate: model.Certificate{
				ID:      52,
				EventID: 11,
				UserID:  22,
			}}, nil
		}
		return model.NullCertificate{}, nil
	}
	s.userRepo.FindUserFunc = func(ctx context.Context, userID int64) (model.NullUser, error) {
		if userID == 23 {
			return model.NullUser{}, nil
		}
		return model.NullUser{Valid: true, User: model.User{ID: userID, Name: "Nguyen Van A"}}, nil
	}
	s.regRepo.FindRegistrationByEventUserFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullRegistration, error) {
		return model.NullRegistration{Valid: true, Registration: model.Registration{
			EventID:  eventID,
			UserID:   userID,
			Attended: true,
		}}, nil
	}

	result, err := s.svc.BulkIssue(newContext(), 11, model.EnvAdmin())
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(result.Issued))
	assert.Equal(t, int64(21), result.Issued[0].UserID)

	assert.Equal(t, 1, len(result.Skipped))
	assert.Equal(t, int64(22), result.Skipped[0].UserID)

	assert.Equal(t, 1, len(result.Failed))
	assert.Equal(t, int64(23), result.Failed[0].UserID)
	assert.Equal(t, ErrUserNotFound.Error(), result.Failed[0].Reason)
}

func TestService__BulkIssue__Failure_Does_Not_Abort(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	s.regRepo.FindAttendedRegistrationsFunc = func(
		ctx context.Context, eventID int64,
	) ([]model.Registration, error) {
		return []model.Registration{
			{ID: 31, EventID: 11, UserID: 23, Attended: true},
			{ID: 32, EventID: 11, UserID: 21, Attended: true},
		}, nil
	}

	// the first participant fails, the second must still be issued
	s.userRepo.FindUserFunc = func(ctx context.Context, userID int64) (model.NullUser, error) {
		if userID == 23 {
			return model.NullUser{}, nil
		}
		return model.NullUser{Valid: true, User: model.User{ID: userID}}, nil
	}

	result, err := s.svc.BulkIssue(newContext(), 11, model.EnvAdmin())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(result.Failed))
	assert.Equal(t, 1, len(result.Issued))
	assert.Equal(t, int64(21), result.Issued[0].UserID)
}

func TestService__BulkIssue__Event_Not_Found(t *testing.T) {
	s := newServiceTest()
	s.eventRepo.FindEventFunc = func(ctx context.Context, eventID int64) (model.NullEvent, error) {
		return model.NullEvent{}, nil
	}

	_, err := s.svc.BulkIssue(newContext(), 11, model.EnvAdmin())
	assert.Equal(t, ErrEventNotFound, err)
}

func TestService__BulkIssue__No_Attendees(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()
	s.regRepo.FindAttendedRegistrationsFunc = func(
		ctx context.Context, eventID int64,
	) ([]model.Registration, error) {
		return nil, nil
	}

	result, err := s.svc.BulkIssue(newContext(), 11, model.EnvAdmin())
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(result.Issued))
	assert.Equal(t, 0, len(result.Skipped))
	assert.Equal(t, 0, len(result.Failed))
}
