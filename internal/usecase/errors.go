package usecase

import (
	"context"
	"errors"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidStage    = errors.New("invalid stage")
	ErrAlreadyApplied  = errors.New("already applied to this job")
	ErrProviderReply   = errors.New("unexpected reply from recommendation provider")
)

func requireAuth(sess session.Session) error {
	if !sess.Authenticated {
		return ErrUnauthenticated
	}
	return nil
}

func requireAdmin(sess session.Session) error {
	if err := requireAuth(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// canViewApplicant: admin dan evaluator boleh melihat semua pelamar,
// kandidat hanya lamarannya sendiri.
func canViewApplicant(ctx context.Context, applicants applicantFinder, sess session.Session, applicantID string) error {
	if err := requireAuth(sess); err != nil {
		return err
	}
	if sess.HasRole(session.RoleAdmin, session.RoleEvaluator) {
		return nil
	}
	applicant, err := applicants.FindByID(ctx, applicantID)
	if err != nil {
		return err
	}
	if applicant.User.ID != sess.UserID {
		return ErrForbidden
	}
	return nil
}
