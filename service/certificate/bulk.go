package certificate

import (
	"context"

	"github.com/campushub/eventcore/model"
)

// BulkItemError ...
type BulkItemError struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// BulkResult partitions a bulk issuance into the three possible
// per-participant outcomes.
type BulkResult struct {
	Issued  []model.Certificate `json:"success"`
	Skipped []model.Certificate `json:"skipped"`
	Failed  []BulkItemError     `json:"failed"`
}

// BulkIssue issues certificates for every attended registration of an
// event. Each participant is processed independently, a failure for one
// never aborts the rest.
func (s *Service) BulkIssue(
	ctx context.Context, eventID int64, issuedBy model.Actor,
) (BulkResult, error) {
	readonlyCtx := s.provider.Readonly(ctx)

	nullEvent, err := s.eventRepo.FindEvent(readonlyCtx, eventID)
	if err != nil {
		return BulkResult{}, err
	}
	if !nullEvent.Valid {
		return BulkResult{}, ErrEventNotFound
	}

	regs, err := s.regRepo.FindAttendedRegistrations(readonlyCtx, eventID)
	if err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	for _, reg := range regs {
		issueResult, err := s.Issue(ctx, eventID, reg.UserID, issuedBy)
		if err != nil {
			result.Failed = append(result.Failed, BulkItemError{
				UserID: reg.UserID,
				Reason: err.Error(),
			})
			continue
		}
		if issueResult.AlreadyIssued {
			result.Skipped = append(result.Skipped, issueResult.Certificate)
			continue
		}
		result.Issued = append(result.Issued, issueResult.Certificate)
	}
	return result, nil
}
