package usecase

import (
	"context"
	"testing"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		ok    bool
	}{
		{"plain array", `["Go", "SQL"]`, []string{"Go", "SQL"}, true},
		{"fenced", "```json\n[\"Go\",\"Docker\"]\n```", []string{"Go", "Docker"}, true},
		{"object with key", `{"skills":["Go"]}`, []string{"Go"}, true},
		{"prose around array", `Berikut: ["Go","Redis"] semoga membantu`, []string{"Go", "Redis"}, true},
		{"dedupe and trim", `[" Go ","go","","SQL"]`, []string{"Go", "SQL"}, true},
		{"empty array", `[]`, []string{}, true},
		{"not json", `I cannot help`, nil, false},
		{"object without key", `{"roles":["x"]}`, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseStringList(tt.input, "skills")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommendationUsecase_JobRoles(t *testing.T) {
	log, _ := test.NewNullLogger()
	llm := &fakeGenerator{reply: `["Backend Engineer","Backend Engineer","API Developer"]`}
	uc := NewRecommendationUsecase(llm, nil, nil, log)

	roles, err := uc.JobRoles(context.Background(), "  Software Engineer ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Engineer", "API Developer"}, roles)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Job title: Software Engineer")
	assert.NotContains(t, llm.prompts[0], "Existing positions")
}

func TestRecommendationUsecase_EmptyTitle(t *testing.T) {
	log, _ := test.NewNullLogger()
	llm := &fakeGenerator{}
	uc := NewRecommendationUsecase(llm, nil, nil, log)

	_, err := uc.JobRoles(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = uc.Skills(context.Background(), "", "Backend")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, llm.prompts)
}

func TestRecommendationUsecase_SkillsWithSimilarJobs(t *testing.T) {
	log, _ := test.NewNullLogger()
	llm := &fakeGenerator{reply: `{"skills":["Go","PostgreSQL"]}`}
	emb := &fakeEmbedder{vec: []float32{0.1, 0.2}}
	jobs := newFakeJobs()
	jobs.similar = []dto.SimilarJobDTO{{Title: "Backend Developer", JobRole: "Backend"}}
	uc := NewRecommendationUsecase(llm, emb, jobs, log)

	skills, err := uc.Skills(context.Background(), "Software Engineer", "Backend")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, skills)
	assert.Contains(t, llm.prompts[0], "- Backend Developer (Backend)")
	assert.Contains(t, llm.prompts[0], "Job role: Backend")
}

func TestRecommendationUsecase_EmbeddingFailureIsNotFatal(t *testing.T) {
	log, hook := test.NewNullLogger()
	llm := &fakeGenerator{reply: `["Go"]`}
	uc := NewRecommendationUsecase(llm, &fakeEmbedder{err: errBoom}, newFakeJobs(), log)

	skills, err := uc.Skills(context.Background(), "Software Engineer", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, skills)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRecommendationUsecase_ProviderErrors(t *testing.T) {
	log, _ := test.NewNullLogger()

	uc := NewRecommendationUsecase(&fakeGenerator{err: errBoom}, nil, nil, log)
	_, err := uc.JobRoles(context.Background(), "Designer")
	assert.ErrorIs(t, err, errBoom)

	uc = NewRecommendationUsecase(&fakeGenerator{reply: "maaf"}, nil, nil, log)
	_, err = uc.JobRoles(context.Background(), "Designer")
	assert.ErrorIs(t, err, ErrProviderReply)
}
