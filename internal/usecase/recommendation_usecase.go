package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const similarJobLimit = 3

type similarJobSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, topK int) ([]dto.SimilarJobDTO, error)
}

type RecommendationUsecase struct {
	llm      service.TextGenerator
	embedder service.Embedder
	jobs     similarJobSearcher
	log      logrus.FieldLogger
}

// NewRecommendationUsecase embedder dan jobs boleh nil, konteks lowongan
// serupa hanya ditambahkan kalau keduanya tersedia.
func NewRecommendationUsecase(llm service.TextGenerator, embedder service.Embedder, jobs similarJobSearcher, log logrus.FieldLogger) *RecommendationUsecase {
	return &RecommendationUsecase{llm: llm, embedder: embedder, jobs: jobs, log: log}
}

func (uc *RecommendationUsecase) JobRoles(ctx context.Context, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	prompt := fmt.Sprintf(`You help a recruitment team in Indonesia write job postings.
Suggest up to 8 job roles that fit the job title below.
%s
Job title: %s

Return ONLY a JSON array of strings, for example ["Backend Engineer","API Developer"].`,
		uc.similarContext(ctx, title), title)

	return uc.ask(ctx, prompt, "roles")
}

func (uc *RecommendationUsecase) Skills(ctx context.Context, title, role string) ([]string, error) {
	title = strings.TrimSpace(title)
	role = strings.TrimSpace(role)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if role == "" {
		role = title
	}

	prompt := fmt.Sprintf(`You help a recruitment team in Indonesia write job postings.
Suggest up to 12 concrete skills a candidate needs for the position below.
%s
Job title: %s
Job role: %s

Return ONLY a JSON array of strings, for example ["Go","PostgreSQL","REST API"].`,
		uc.similarContext(ctx, title+" "+role), title, role)

	return uc.ask(ctx, prompt, "skills")
}

func (uc *RecommendationUsecase) ask(ctx context.Context, prompt, key string) ([]string, error) {
	text, err := uc.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	items, ok := parseStringList(text, key)
	if !ok {
		uc.log.WithField("reply", text).Warn("recommendation reply is not a JSON array")
		return nil, ErrProviderReply
	}
	return items, nil
}

// similarContext judul lowongan yang mirip untuk memperkaya prompt. Gagal
// mengambil konteks tidak menggagalkan rekomendasi.
func (uc *RecommendationUsecase) similarContext(ctx context.Context, text string) string {
	if uc.embedder == nil || uc.jobs == nil {
		return ""
	}
	emb, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		uc.log.WithError(err).Warn("embedding for recommendation context failed")
		return ""
	}
	jobs, err := uc.jobs.SearchSimilar(ctx, emb, similarJobLimit)
	if err != nil {
		uc.log.WithError(err).Warn("similar job search failed")
		return ""
	}
	if len(jobs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Existing positions in this company for reference:\n")
	for _, j := range jobs {
		fmt.Fprintf(&b, "- %s (%s)\n", j.Title, j.JobRole)
	}
	return b.String()
}

// parseStringList membaca array string dari balasan LLM. Balasan boleh
// dibungkus code fence atau berupa object dengan field key.
func parseStringList(text, key string) ([]string, bool) {
	raw := stripCodeFence(text)

	var arr gjson.Result
	switch {
	case !gjson.Valid(raw):
		start, end := strings.Index(raw, "["), strings.LastIndex(raw, "]")
		if start < 0 || end <= start || !gjson.Valid(raw[start:end+1]) {
			return nil, false
		}
		arr = gjson.Parse(raw[start : end+1])
	default:
		arr = gjson.Parse(raw)
		if arr.IsObject() {
			arr = arr.Get(key)
		}
	}
	if !arr.IsArray() {
		return nil, false
	}

	out := []string{}
	seen := map[string]struct{}{}
	for _, v := range arr.Array() {
		s := strings.TrimSpace(v.String())
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out, true
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.Index(s, "\n"); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
