package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/google/uuid"
)

const clockLayout = "15:04"

type interviewStore interface {
	FindByApplicant(ctx context.Context, applicantID string) ([]dto.ScheduleInterviewDTO, error)
	Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleInterviewDTO, error)
}

type hiredStore interface {
	FindByApplicant(ctx context.Context, applicantID string) ([]dto.ScheduleHiredDTO, error)
	Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleHiredDTO, error)
}

type scheduleTimeStore interface {
	Create(ctx context.Context, req dto.CreateScheduleTimeRequest) (*dto.ScheduleTimeDTO, error)
	ListByLocation(ctx context.Context, locationID string, from time.Time) ([]dto.ScheduleTimeDTO, error)
	Delete(ctx context.Context, id string) error
}

type locationFinder interface {
	FindByID(ctx context.Context, id string) (*dto.LocationDTO, error)
}

type applicantFinder interface {
	FindByID(ctx context.Context, id string) (*dto.ApplicantDTO, error)
}

type ScheduleUsecase struct {
	interviews interviewStore
	hired      hiredStore
	times      scheduleTimeStore
	applicants applicantFinder
	locations  locationFinder
	now        func() time.Time
}

func NewScheduleUsecase(interviews interviewStore, hired hiredStore, times scheduleTimeStore, applicants applicantFinder, locations locationFinder) *ScheduleUsecase {
	return &ScheduleUsecase{
		interviews: interviews,
		hired:      hired,
		times:      times,
		applicants: applicants,
		locations:  locations,
		now:        time.Now,
	}
}

func (uc *ScheduleUsecase) ListInterviews(ctx context.Context, sess session.Session, applicantID string) ([]dto.ScheduleInterviewDTO, error) {
	if err := canViewApplicant(ctx, uc.applicants, sess, applicantID); err != nil {
		return nil, err
	}
	return uc.interviews.FindByApplicant(ctx, applicantID)
}

func (uc *ScheduleUsecase) CreateInterview(ctx context.Context, sess session.Session, req dto.CreateScheduleRequest) (*dto.ScheduleInterviewDTO, error) {
	if err := uc.prepareSchedule(ctx, sess, &req); err != nil {
		return nil, err
	}
	return uc.interviews.Create(ctx, req)
}

func (uc *ScheduleUsecase) ListHired(ctx context.Context, sess session.Session, applicantID string) ([]dto.ScheduleHiredDTO, error) {
	if err := canViewApplicant(ctx, uc.applicants, sess, applicantID); err != nil {
		return nil, err
	}
	return uc.hired.FindByApplicant(ctx, applicantID)
}

func (uc *ScheduleUsecase) CreateHired(ctx context.Context, sess session.Session, req dto.CreateScheduleRequest) (*dto.ScheduleHiredDTO, error) {
	if err := uc.prepareSchedule(ctx, sess, &req); err != nil {
		return nil, err
	}
	req.MeetingLink = ""
	return uc.hired.Create(ctx, req)
}

func (uc *ScheduleUsecase) prepareSchedule(ctx context.Context, sess session.Session, req *dto.CreateScheduleRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	switch {
	case req.ApplicantID == uuid.Nil:
		return fmt.Errorf("%w: applicant_id is required", ErrInvalidInput)
	case req.LocationID == uuid.Nil:
		return fmt.Errorf("%w: location_id is required", ErrInvalidInput)
	case req.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	start, err := normalizeClock(req.StartTime)
	if err != nil {
		return err
	}
	req.StartTime = start
	req.MeetingLink = strings.TrimSpace(req.MeetingLink)
	req.Notes = strings.TrimSpace(req.Notes)

	if _, err := uc.applicants.FindByID(ctx, req.ApplicantID.String()); err != nil {
		return err
	}
	if _, err := uc.locations.FindByID(ctx, req.LocationID.String()); err != nil {
		return err
	}
	return nil
}

// ListTimes slot yang tanggalnya hari ini atau sesudahnya.
func (uc *ScheduleUsecase) ListTimes(ctx context.Context, sess session.Session, locationID string) ([]dto.ScheduleTimeDTO, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return uc.times.ListByLocation(ctx, locationID, today)
}

func (uc *ScheduleUsecase) CreateTime(ctx context.Context, sess session.Session, req dto.CreateScheduleTimeRequest) (*dto.ScheduleTimeDTO, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if req.LocationID == uuid.Nil {
		return nil, fmt.Errorf("%w: location_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	start, err := normalizeClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	// HH:MM berurutan secara leksikal
	if end <= start {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	req.StartTime, req.EndTime = start, end

	if _, err := uc.locations.FindByID(ctx, req.LocationID.String()); err != nil {
		return nil, err
	}
	return uc.times.Create(ctx, req)
}

func (uc *ScheduleUsecase) DeleteTime(ctx context.Context, sess session.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return uc.times.Delete(ctx, id)
}

// normalizeClock menerima "9:05" atau "09:05" dan mengembalikan "09:05".
func normalizeClock(s string) (string, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, s)
	}
	return t.Format(clockLayout), nil
}
