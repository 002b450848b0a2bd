package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/service"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/sirupsen/logrus"
)

const maxJobCodeAttempts = 5

type jobStore interface {
	Create(ctx context.Context, in repository.NewJob) (*dto.JobDTO, error)
	FindByID(ctx context.Context, id string) (*dto.JobDTO, error)
	CountAll(ctx context.Context) (int64, error)
	ListPublished(ctx context.Context) ([]dto.JobDTO, error)
}

type JobUsecase struct {
	jobs     jobStore
	embedder service.Embedder
	log      logrus.FieldLogger
}

// NewJobUsecase embedder boleh nil, lowongan disimpan tanpa embedding.
func NewJobUsecase(jobs jobStore, embedder service.Embedder, log logrus.FieldLogger) *JobUsecase {
	return &JobUsecase{jobs: jobs, embedder: embedder, log: log}
}

func (uc *JobUsecase) Create(ctx context.Context, sess session.Session, req dto.CreateJobRequest) (*dto.JobDTO, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if err := validateJob(title, req); err != nil {
		return nil, err
	}

	skills := make([]string, 0, len(req.Skills))
	for _, s := range req.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	in := repository.NewJob{
		Title:       title,
		JobRole:     strings.TrimSpace(req.JobRole),
		Description: req.Description,
		Skills:      skills,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		LocationID:  req.LocationID,
		IsPublished: req.IsPublished,
		Embedding:   uc.embed(ctx, title, req.Description),
	}

	// job_code unik. Kode yang sudah dipakai admin lain dicoba dengan nomor berikutnya.
	var job *dto.JobDTO
	for attempt := 0; ; attempt++ {
		count, err := uc.jobs.CountAll(ctx)
		if err != nil {
			return nil, err
		}
		in.JobCode = util.GenerateJobCode(title, int(count)+1+attempt)
		job, err = uc.jobs.Create(ctx, in)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt+1 >= maxJobCodeAttempts {
			return nil, err
		}
		uc.log.WithField("job_code", in.JobCode).Warn("job code taken, retrying")
	}
	uc.log.WithFields(logrus.Fields{"job_id": job.ID, "job_code": job.JobCode}).Info("job created")
	return job, nil
}

func validateJob(title string, req dto.CreateJobRequest) error {
	fields := map[string]string{}
	switch {
	case title == "":
		fields["title"] = "wajib diisi"
	case strings.IndexFunc(title, unicode.IsLetter) < 0:
		fields["title"] = "harus mengandung huruf"
	}
	if req.SalaryMin != nil && *req.SalaryMin < 0 {
		fields["salary_min"] = "tidak boleh negatif"
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		fields["salary_max"] = "harus lebih besar dari salary_min"
	}
	if len(fields) > 0 {
		return util.NewFormError("data lowongan tidak valid", fields)
	}
	return nil
}

// embed gagal embedding tidak membatalkan pembuatan lowongan.
func (uc *JobUsecase) embed(ctx context.Context, title, description string) []float32 {
	if uc.embedder == nil {
		return nil
	}
	text := title + "\n" + util.StripHTML(description)
	emb, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		uc.log.WithError(err).Warn("job embedding failed, saving without embedding")
		return nil
	}
	return emb
}

func (uc *JobUsecase) Get(ctx context.Context, id string) (*dto.JobDTO, error) {
	return uc.jobs.FindByID(ctx, id)
}

func (uc *JobUsecase) ListPublished(ctx context.Context) ([]dto.JobDTO, error) {
	return uc.jobs.ListPublished(ctx)
}
