package usecase

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
)

var mbtiPattern = regexp.MustCompile(`^[EI][SN][TF][JP](-[AT])?$`)

type mbtiStore interface {
	FindByApplicant(ctx context.Context, applicantID string) (*dto.MbtiTestDTO, error)
	Create(ctx context.Context, applicantID string, result, link string) (*dto.MbtiTestDTO, error)
}

type MbtiUsecase struct {
	tests      mbtiStore
	applicants applicantFinder
}

func NewMbtiUsecase(tests mbtiStore, applicants applicantFinder) *MbtiUsecase {
	return &MbtiUsecase{tests: tests, applicants: applicants}
}

func (uc *MbtiUsecase) Get(ctx context.Context, sess session.Session, applicantID string) (*dto.MbtiTestDTO, error) {
	if err := uc.authorize(ctx, sess, applicantID); err != nil {
		return nil, err
	}
	return uc.tests.FindByApplicant(ctx, applicantID)
}

// Record hasil kosong dengan link berarti tes baru dikirim ke kandidat.
func (uc *MbtiUsecase) Record(ctx context.Context, sess session.Session, applicantID string, req dto.RecordMbtiRequest) (*dto.MbtiTestDTO, error) {
	if err := uc.authorize(ctx, sess, applicantID); err != nil {
		return nil, err
	}

	result := strings.ToUpper(strings.TrimSpace(req.Result))
	link := strings.TrimSpace(req.Link)
	if result == "" && link == "" {
		return nil, fmt.Errorf("%w: result or link is required", ErrInvalidInput)
	}
	if result != "" && !mbtiPattern.MatchString(result) {
		return nil, fmt.Errorf("%w: %q is not an MBTI type", ErrInvalidInput, req.Result)
	}
	if link != "" {
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: link must be an http(s) URL", ErrInvalidInput)
		}
	}
	return uc.tests.Create(ctx, applicantID, result, link)
}

func (uc *MbtiUsecase) authorize(ctx context.Context, sess session.Session, applicantID string) error {
	if err := requireAuth(sess); err != nil {
		return err
	}
	applicant, err := uc.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return err
	}
	if sess.HasRole(session.RoleAdmin, session.RoleEvaluator) || applicant.User.ID == sess.UserID {
		return nil
	}
	return ErrForbidden
}
