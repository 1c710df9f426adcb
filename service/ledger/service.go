package ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/monitoring"
	"github.com/campushub/eventcore/pkg/otellib"
	"github.com/campushub/eventcore/repository"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService manages events and their registration ledger. The stored
// registered count of an event is recomputed from the registration rows
// inside the same transaction as every mutation, under the event row
// lock, so a successful response always reflects the mutation.
type IService interface {
	CreateEvent(ctx context.Context, input EventInput, actor model.Actor) (model.Event, error)
	GetEvent(ctx context.Context, eventID int64) (model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	DeleteEvent(ctx context.Context, eventID int64) error

	Register(ctx context.Context, eventID int64, userID int64, formData []byte) (model.Registration, error)
	UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus, actor model.Actor) (model.Registration, error)
	MarkAttendance(ctx context.Context, registrationID int64, attended bool, actor model.Actor) (model.Registration, error)
	Unregister(ctx context.Context, registrationID int64) error

	ListRegistrations(ctx context.Context, eventID int64) ([]model.Registration, error)
	Recount(ctx context.Context, eventID int64) (int64, error)
}

// EventInput ...
type EventInput struct {
	Title            string
	Description      string
	StartDate        time.Time
	EndDate          time.Time
	MaxParticipants  int64
	Status           model.EventStatus
	RequiresApproval bool
}

// ErrEventNotFound ...
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound ...
var ErrUserNotFound = errors.New("user not found")

// ErrRegistrationNotFound ...
var ErrRegistrationNotFound = errors.New("registration not found")

// ErrDuplicateRegistration ...
var ErrDuplicateRegistration = errors.New("user already registered for this event")

// ErrRegistrationNotApproved ...
var ErrRegistrationNotApproved = errors.New("registration is not approved")

// Service ...
type Service struct {
	provider  repository.Provider
	eventRepo repository.Event
	userRepo  repository.User
	regRepo   repository.Registration
	certRepo  repository.Certificate
	nowFn     func() time.Time
}

// NewService ...
func NewService(
	provider repository.Provider,
	eventRepo repository.Event,
	userRepo repository.User,
	regRepo repository.Registration,
	certRepo repository.Certificate,
) *Service {
	return &Service{
		provider:  provider,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		regRepo:   regRepo,
		certRepo:  certRepo,
		nowFn:     time.Now,
	}
}

// recount recomputes the registered count from the approved registration
// rows and stores it on the event. Must be called inside a transaction
// holding the event row lock.
func (s *Service) recount(ctx context.Context, eventID int64) (int64, error) {
	count, err := s.regRepo.CountApprovedRegistrations(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if err := s.eventRepo.UpdateRegisteredCount(ctx, eventID, count); err != nil {
		return 0, err
	}
	monitoring.RegisteredCountRecounts.Inc()
	return count, nil
}

// lockRegistration locks the event row of a registration and then
// re-reads the registration with a locking read. The first read only
// discovers the event, the locking re-read observes rows committed
// after the transaction snapshot. Locks are taken in event,
// registration order, the same order as Register and recount.
func (s *Service) lockRegistration(ctx context.Context, registrationID int64) (model.Registration, error) {
	nullReg, err := s.regRepo.FindRegistration(ctx, registrationID)
	if err != nil {
		return model.Registration{}, err
	}
	if !nullReg.Valid {
		return model.Registration{}, ErrRegistrationNotFound
	}

	nullEvent, err := s.eventRepo.LockEvent(ctx, nullReg.Registration.EventID)
	if err != nil {
		return model.Registration{}, err
	}
	if !nullEvent.Valid {
		return model.Registration{}, ErrEventNotFound
	}

	nullReg, err = s.regRepo.LockRegistration(ctx, registrationID)
	if err != nil {
		return model.Registration{}, err
	}
	if !nullReg.Valid {
		return model.Registration{}, ErrRegistrationNotFound
	}
	return nullReg.Registration, nil
}

// CreateEvent ...
func (s *Service) CreateEvent(ctx context.Context, input EventInput, actor model.Actor) (model.Event, error) {
	now := s.nowFn()
	event := model.Event{
		Title:            input.Title,
		Description:      input.Description,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		MaxParticipants:  input.MaxParticipants,
		Status:           input.Status,
		RequiresApproval: input.RequiresApproval,
		CreatedBy:        actor.NullUserID(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if event.Status == 0 {
		event.Status = model.EventStatusDraft
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.eventRepo.InsertEvent(ctx, event)
		if err != nil {
			return err
		}
		event.ID = id
		return nil
	})
	if err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// GetEvent ...
func (s *Service) GetEvent(ctx context.Context, eventID int64) (model.Event, error) {
	ctx = s.provider.Readonly(ctx)
	nullEvent, err := s.eventRepo.FindEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}
	if !nullEvent.Valid {
		return model.Event{}, ErrEventNotFound
	}
	return nullEvent.Event, nil
}

// ListEvents ...
func (s *Service) ListEvents(ctx context.Context) ([]model.Event, error) {
	ctx = s.provider.Readonly(ctx)
	return s.eventRepo.FindEvents(ctx)
}

// DeleteEvent deletes an event together with its registrations and
// certificates.
func (s *Service) DeleteEvent(ctx context.Context, eventID int64) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		nullEvent, err := s.eventRepo.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !nullEvent.Valid {
			return ErrEventNotFound
		}

		if err := s.certRepo.DeleteCertificatesByEvent(ctx, eventID); err != nil {
			return err
		}
		if err := s.regRepo.DeleteRegistrationsByEvent(ctx, eventID); err != nil {
			return err
		}

		_, err = s.eventRepo.DeleteEvent(ctx, eventID)
		return err
	})
}

// Register ...
func (s *Service) Register(
	ctx context.Context, eventID int64, userID int64, formData []byte,
) (model.Registration, error) {
	now := s.nowFn()
	reg := model.Registration{
		EventID:   eventID,
		UserID:    userID,
		Status:    model.RegistrationStatusPending,
		FormData:  formData,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullEvent, err := s.eventRepo.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !nullEvent.Valid {
			return ErrEventNotFound
		}

		nullUser, err := s.userRepo.FindUser(ctx, userID)
		if err != nil {
			return err
		}
		if !nullUser.Valid {
			return ErrUserNotFound
		}

		if !nullEvent.Event.RequiresApproval {
			reg.Status = model.RegistrationStatusApproved
			reg.ApprovedAt = sql.NullTime{Valid: true, Time: now}
		}

		id, err := s.regRepo.InsertRegistration(ctx, reg)
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrDuplicateRegistration
		}
		if err != nil {
			return err
		}
		reg.ID = id

		count, err := s.recount(ctx, eventID)
		if err != nil {
			return err
		}
		otellib.Extract(ctx).Info("registration created",
			zap.Int64("event_id", eventID),
			zap.Int64("user_id", userID),
			zap.Int64("registered_count", count),
		)
		return nil
	})
	monitoring.RegistrationMutations.WithLabelValues("register", monitoring.ResultLabel(err)).Inc()
	if err != nil {
		return model.Registration{}, err
	}
	return reg, nil
}

// UpdateStatus ...
func (s *Service) UpdateStatus(
	ctx context.Context, registrationID int64, status model.RegistrationStatus, actor model.Actor,
) (model.Registration, error) {
	var updated model.Registration

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		reg, err := s.lockRegistration(ctx, registrationID)
		if err != nil {
			return err
		}

		if reg.Status == status {
			// no transition, the stored count is already correct
			updated = reg
			return nil
		}

		reg.Status = status
		if status == model.RegistrationStatusApproved {
			reg.ApprovedBy = actor.NullUserID()
			reg.ApprovedAt = sql.NullTime{Valid: true, Time: s.nowFn()}
		}
		if err := s.regRepo.UpdateRegistrationStatus(ctx, reg); err != nil {
			return err
		}

		if _, err := s.recount(ctx, reg.EventID); err != nil {
			return err
		}
		updated = reg
		return nil
	})
	monitoring.RegistrationMutations.WithLabelValues("update_status", monitoring.ResultLabel(err)).Inc()
	if err != nil {
		return model.Registration{}, err
	}
	return updated, nil
}

// MarkAttendance ...
func (s *Service) MarkAttendance(
	ctx context.Context, registrationID int64, attended bool, actor model.Actor,
) (model.Registration, error) {
	var updated model.Registration

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullReg, err := s.regRepo.LockRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		if !nullReg.Valid {
			return ErrRegistrationNotFound
		}
		reg := nullReg.Registration

		if reg.Status != model.RegistrationStatusApproved {
			return ErrRegistrationNotApproved
		}

		reg.Attended = attended
		reg.AttendanceMarkedBy = actor.NullUserID()
		reg.AttendanceMarkedAt = sql.NullTime{Valid: true, Time: s.nowFn()}
		if err := s.regRepo.UpdateRegistrationAttendance(ctx, reg); err != nil {
			return err
		}
		updated = reg
		return nil
	})
	monitoring.RegistrationMutations.WithLabelValues("mark_attendance", monitoring.ResultLabel(err)).Inc()
	if err != nil {
		return model.Registration{}, err
	}
	return updated, nil
}

// Unregister ...
func (s *Service) Unregister(ctx context.Context, registrationID int64) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		reg, err := s.lockRegistration(ctx, registrationID)
		if err != nil {
			return err
		}

		affected, err := s.regRepo.DeleteRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRegistrationNotFound
		}

		_, err = s.recount(ctx, reg.EventID)
		return err
	})
	monitoring.RegistrationMutations.WithLabelValues("unregister", monitoring.ResultLabel(err)).Inc()
	return err
}

// ListRegistrations ...
func (s *Service) ListRegistrations(ctx context.Context, eventID int64) ([]model.Registration, error) {
	ctx = s.provider.Readonly(ctx)
	nullEvent, err := s.eventRepo.FindEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !nullEvent.Valid {
		return nil, ErrEventNotFound
	}
	return s.regRepo.FindRegistrationsByEvent(ctx, eventID)
}

// Recount recomputes and stores the registered count of an event on
// demand, repairing drift caused by writes outside the ledger.
func (s *Service) Recount(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullEvent, err := s.eventRepo.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !nullEvent.Valid {
			return ErrEventNotFound
		}
		count, err = s.recount(ctx, eventID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
