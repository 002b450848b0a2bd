package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/response"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/google/uuid"
)

var (
	adminID     = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	candidateID = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	evaluatorID = uuid.MustParse("00000000-0000-0000-0000-00000000000e")

	adminSession     = session.New(adminID.String(), "Admin OSS", session.RoleAdmin)
	candidateSession = session.New(candidateID.String(), "Budi", session.RoleCandidate)
	evaluatorSession = session.New(evaluatorID.String(), "Sari", session.RoleEvaluator)
)

var errBoom = errors.New("boom")

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeEmbedder struct {
	vec   []float32
	err   error
	calls []string
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.calls = append(f.calls, text)
	return f.vec, f.err
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) SendGroupMessage(_ context.Context, message string) error {
	f.messages = append(f.messages, message)
	return f.err
}

type fakeApplicants struct {
	rows    map[string]*dto.ApplicantDTO
	created []repository.NewApplicant
	exists  bool
}

func newFakeApplicants(rows ...*dto.ApplicantDTO) *fakeApplicants {
	f := &fakeApplicants{rows: map[string]*dto.ApplicantDTO{}}
	for _, r := range rows {
		f.rows[r.ID.String()] = r
	}
	return f
}

func (f *fakeApplicants) Create(_ context.Context, in repository.NewApplicant) (*dto.ApplicantDTO, error) {
	f.created = append(f.created, in)
	a := &dto.ApplicantDTO{
		ID:           uuid.New(),
		Stage:        string(model.StageApplication),
		ReferredByID: in.ReferredByID,
		ReferralCode: in.ReferralCode,
		User:         dto.UserDTO{ID: in.UserID},
		Job:          dto.JobDTO{ID: in.JobID},
	}
	f.rows[a.ID.String()] = a
	return a, nil
}

func (f *fakeApplicants) FindByID(_ context.Context, id string) (*dto.ApplicantDTO, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeApplicants) ExistsForUserAndJob(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return f.exists, nil
}

func (f *fakeApplicants) UpdateStage(_ context.Context, id string, stage model.Stage) error {
	a, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Stage = string(stage)
	return nil
}

func (f *fakeApplicants) ListByJob(_ context.Context, _ string, page, pageSize int) ([]dto.ApplicantDTO, *response.Pagination, error) {
	out := []dto.ApplicantDTO{}
	for _, a := range f.rows {
		out = append(out, *a)
	}
	return out, response.NewPagination(page, pageSize, int64(len(out)), len(out)), nil
}

type fakeHistory struct {
	entries []dto.HistoryCandidateDTO
}

func (f *fakeHistory) Create(_ context.Context, applicantID string, stage model.Stage) (*dto.HistoryCandidateDTO, error) {
	h := dto.HistoryCandidateDTO{
		ID:          uuid.New(),
		ApplicantID: uuid.MustParse(applicantID),
		Stage:       string(stage),
		CreatedAt:   time.Now(),
	}
	f.entries = append(f.entries, h)
	return &h, nil
}

func (f *fakeHistory) ListByApplicant(_ context.Context, applicantID string) ([]dto.HistoryCandidateDTO, error) {
	out := []dto.HistoryCandidateDTO{}
	for _, h := range f.entries {
		if h.ApplicantID.String() == applicantID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeReferrals struct {
	owners map[string]uuid.UUID
}

func (f *fakeReferrals) FindByCode(_ context.Context, code string) (*dto.ReferralDTO, error) {
	if _, ok := f.owners[code]; !ok {
		return nil, nil
	}
	return &dto.ReferralDTO{Name: "Budi", Code: code, Email: "budi@example.com"}, nil
}

func (f *fakeReferrals) FindOwnerID(_ context.Context, code string) (*uuid.UUID, error) {
	id, ok := f.owners[code]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

type fakeJobs struct {
	rows    map[string]*dto.JobDTO
	created []repository.NewJob
	count   int64
	similar []dto.SimilarJobDTO
	taken   map[string]bool
	tried   []string
}

func newFakeJobs(rows ...*dto.JobDTO) *fakeJobs {
	f := &fakeJobs{rows: map[string]*dto.JobDTO{}}
	for _, r := range rows {
		f.rows[r.ID.String()] = r
	}
	return f
}

func (f *fakeJobs) Create(_ context.Context, in repository.NewJob) (*dto.JobDTO, error) {
	f.tried = append(f.tried, in.JobCode)
	if f.taken[in.JobCode] {
		return nil, repository.ErrDuplicate
	}
	f.created = append(f.created, in)
	j := &dto.JobDTO{ID: uuid.New(), JobCode: in.JobCode, Title: in.Title, Skills: in.Skills}
	f.rows[j.ID.String()] = j
	return j, nil
}

func (f *fakeJobs) FindByID(_ context.Context, id string) (*dto.JobDTO, error) {
	j, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobs) CountAll(context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeJobs) ListPublished(context.Context) ([]dto.JobDTO, error) {
	out := []dto.JobDTO{}
	for _, j := range f.rows {
		if j.IsPublished {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobs) SearchSimilar(context.Context, []float32, int) ([]dto.SimilarJobDTO, error) {
	return f.similar, nil
}

type fakeLocations struct {
	rows map[uuid.UUID]dto.LocationDTO
}

func (f *fakeLocations) FindByID(_ context.Context, id string) (*dto.LocationDTO, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	l, ok := f.rows[parsed]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}
