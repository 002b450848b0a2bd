package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/response"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/service"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type applicantStore interface {
	Create(ctx context.Context, in repository.NewApplicant) (*dto.ApplicantDTO, error)
	FindByID(ctx context.Context, id string) (*dto.ApplicantDTO, error)
	ExistsForUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	UpdateStage(ctx context.Context, id string, stage model.Stage) error
	ListByJob(ctx context.Context, jobID string, page, pageSize int) ([]dto.ApplicantDTO, *response.Pagination, error)
}

type historyStore interface {
	Create(ctx context.Context, applicantID string, stage model.Stage) (*dto.HistoryCandidateDTO, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]dto.HistoryCandidateDTO, error)
}

type referralStore interface {
	FindByCode(ctx context.Context, code string) (*dto.ReferralDTO, error)
	FindOwnerID(ctx context.Context, code string) (*uuid.UUID, error)
}

type jobFinder interface {
	FindByID(ctx context.Context, id string) (*dto.JobDTO, error)
}

type ApplicantUsecase struct {
	applicants applicantStore
	history    historyStore
	referrals  referralStore
	jobs       jobFinder
	notifier   service.Notifier
	log        logrus.FieldLogger
}

func NewApplicantUsecase(applicants applicantStore, history historyStore, referrals referralStore, jobs jobFinder, notifier service.Notifier, log logrus.FieldLogger) *ApplicantUsecase {
	return &ApplicantUsecase{
		applicants: applicants,
		history:    history,
		referrals:  referrals,
		jobs:       jobs,
		notifier:   notifier,
		log:        log,
	}
}

// FindReferral mengembalikan nil tanpa error kalau kode tidak dikenal.
func (uc *ApplicantUsecase) FindReferral(ctx context.Context, code string) (*dto.ReferralDTO, error) {
	return uc.referrals.FindByCode(ctx, code)
}

func (uc *ApplicantUsecase) Apply(ctx context.Context, sess session.Session, req dto.ApplyRequest) (*dto.ApplicantDTO, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	if req.JobID == uuid.Nil {
		return nil, fmt.Errorf("%w: job_id is required", ErrInvalidInput)
	}

	job, err := uc.jobs.FindByID(ctx, req.JobID.String())
	if err != nil {
		return nil, err
	}
	if !job.IsPublished {
		return nil, fmt.Errorf("%w: job is not open for applications", ErrInvalidInput)
	}

	exists, err := uc.applicants.ExistsForUserAndJob(ctx, sess.UserID, job.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	in := repository.NewApplicant{UserID: sess.UserID, JobID: job.ID}
	if code := strings.TrimSpace(req.ReferralCode); code != "" {
		owner, err := uc.referrals.FindOwnerID(ctx, code)
		if err != nil {
			return nil, err
		}
		// kode yang tidak dikenal atau milik pelamar sendiri diabaikan
		if owner != nil && *owner != sess.UserID {
			in.ReferredByID = owner
			in.ReferralCode = code
		}
	}

	applicant, err := uc.applicants.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.history.Create(ctx, applicant.ID.String(), model.StageApplication); err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"applicant_id": applicant.ID,
		"job_id":       job.ID,
		"referred":     in.ReferredByID != nil,
	}).Info("applicant created")
	return applicant, nil
}

func (uc *ApplicantUsecase) MoveStage(ctx context.Context, sess session.Session, applicantID, stage string) (*dto.ApplicantDTO, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	st := model.Stage(strings.ToUpper(strings.TrimSpace(stage)))
	if !st.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}

	if err := uc.applicants.UpdateStage(ctx, applicantID, st); err != nil {
		return nil, err
	}
	if _, err := uc.history.Create(ctx, applicantID, st); err != nil {
		return nil, err
	}
	applicant, err := uc.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	uc.notifyStage(ctx, sess, applicant)
	return applicant, nil
}

func (uc *ApplicantUsecase) notifyStage(ctx context.Context, sess session.Session, a *dto.ApplicantDTO) {
	if uc.notifier == nil {
		return
	}
	msg := fmt.Sprintf("Update kandidat\nNama: %s\nPosisi: %s\nStage: %s\nOleh: %s",
		a.User.Name, a.Job.Title, a.Stage, sess.Name)
	if err := uc.notifier.SendGroupMessage(ctx, msg); err != nil {
		uc.log.WithError(err).WithField("applicant_id", a.ID).Warn("stage notification failed")
	}
}

// History hanya boleh dilihat admin, evaluator, atau kandidat pemiliknya.
func (uc *ApplicantUsecase) History(ctx context.Context, sess session.Session, applicantID string) ([]dto.HistoryCandidateDTO, error) {
	if err := canViewApplicant(ctx, uc.applicants, sess, applicantID); err != nil {
		return nil, err
	}
	return uc.history.ListByApplicant(ctx, applicantID)
}

func (uc *ApplicantUsecase) ListByJob(ctx context.Context, sess session.Session, jobID string, page, pageSize int) ([]dto.ApplicantDTO, *response.Pagination, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, nil, err
	}
	return uc.applicants.ListByJob(ctx, jobID, page, pageSize)
}
