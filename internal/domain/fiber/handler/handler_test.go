package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationRoutes(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.call(t, http.MethodPost, "/api/recommendation/job-role", map[string]string{"title": "Software Engineer"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Backend Engineer", body.Get("data.roles.0").String())
	assert.Len(t, body.Get("data.roles").Array(), 2)

	code, body = env.call(t, http.MethodPost, "/api/recommendation/skill", map[string]string{"title": "Software Engineer", "job_role": "Backend"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Get("data.skills").IsArray())

	code, _ = env.call(t, http.MethodPost, "/api/recommendation/job-role", map[string]string{"title": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestReferralRoute(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.call(t, http.MethodGet, "/api/referral/BUDI01", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Budi", body.Get("data.name").String())
	assert.Equal(t, "budi@example.com", body.Get("data.email").String())
	assert.False(t, body.Get("data.id").Exists())

	code, _ = env.call(t, http.MethodGet, "/api/referral/NOPE", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestApplyAndMoveStage(t *testing.T) {
	env := newTestEnv(t)
	friend := model.User{Name: "Wayan", Email: "wayan@example.com", Role: model.RoleCandidate}
	require.NoError(t, env.db.Create(&friend).Error)

	code, _ := env.call(t, http.MethodPost, "/api/applicants", map[string]any{"job_id": env.openJob.ID}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := env.call(t, http.MethodPost, "/api/applicants", map[string]any{"job_id": env.openJob.ID, "referral_code": "BUDI01"}, &friend)
	require.Equal(t, http.StatusCreated, code, body.Raw)
	assert.Equal(t, "APPLICATION", body.Get("data.stage").String())
	assert.Equal(t, env.candidate.ID.String(), body.Get("data.referred_by_id").String())
	applicantID := body.Get("data.id").String()

	code, _ = env.call(t, http.MethodPost, "/api/applicants", map[string]any{"job_id": env.openJob.ID}, &friend)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = env.call(t, http.MethodPatch, "/api/applicants/"+applicantID+"/stage", map[string]string{"stage": "SCREENING"}, &friend)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = env.call(t, http.MethodPatch, "/api/applicants/"+applicantID+"/stage", map[string]string{"stage": "NOPE"}, &env.admin)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = env.call(t, http.MethodPatch, "/api/applicants/"+applicantID+"/stage", map[string]string{"stage": "screening"}, &env.admin)
	require.Equal(t, http.StatusOK, code, body.Raw)
	assert.Equal(t, "SCREENING", body.Get("data.stage").String())
	assert.Len(t, env.notifier.messages, 1)

	code, body = env.call(t, http.MethodGet, "/api/applicants/"+applicantID+"/history", nil, &friend)
	require.Equal(t, http.StatusOK, code)
	stages := body.Get("data.#.stage").Array()
	require.Len(t, stages, 2)
	assert.Equal(t, "APPLICATION", stages[0].String())
	assert.Equal(t, "SCREENING", stages[1].String())

	code, _ = env.call(t, http.MethodPatch, "/api/applicants/"+uuid.NewString()+"/stage", map[string]string{"stage": "HIRED"}, &env.admin)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListApplicantsByJob(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.call(t, http.MethodGet, "/api/jobs/"+env.job.ID.String()+"/applicants?page=1&page_size=5", nil, &env.admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Get("data").Array(), 1)
	assert.Equal(t, int64(1), body.Get("pagination.total_items").Int())

	code, _ = env.call(t, http.MethodGet, "/api/jobs/"+env.job.ID.String()+"/applicants", nil, &env.candidate)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestScheduleRoutes(t *testing.T) {
	env := newTestEnv(t)
	applicantPath := "/api/applicants/" + env.applicant.ID.String()

	code, body := env.call(t, http.MethodGet, applicantPath+"/schedule-interviews", nil, &env.candidate)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Get("data").Array())

	for _, d := range []int{3, 10} {
		code, body = env.call(t, http.MethodPost, "/api/schedule-interviews", map[string]any{
			"applicant_id": env.applicant.ID,
			"location_id":  env.location.ID,
			"date":         time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC),
			"start_time":   "10:00",
		}, &env.admin)
		require.Equal(t, http.StatusCreated, code, body.Raw)
	}

	code, body = env.call(t, http.MethodGet, applicantPath+"/schedule-interviews", nil, &env.candidate)
	require.Equal(t, http.StatusOK, code)
	dates := body.Get("data.#.date").Array()
	require.Len(t, dates, 2)
	assert.True(t, dates[0].Time().After(dates[1].Time()))
	assert.Equal(t, "Kantor Denpasar", body.Get("data.0.location.name").String())

	code, body = env.call(t, http.MethodGet, "/api/applicants/"+uuid.NewString()+"/schedule-interviews", nil, &env.admin)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Get("data").Array())

	stranger := model.User{Base: model.Base{ID: uuid.New()}, Name: "Lain", Role: model.RoleCandidate}
	for _, path := range []string{applicantPath + "/schedule-interviews", applicantPath + "/schedule-hired"} {
		code, _ = env.call(t, http.MethodGet, path, nil, &stranger)
		assert.Equal(t, http.StatusForbidden, code, path)
	}
	code, _ = env.call(t, http.MethodGet, applicantPath+"/schedule-interviews", nil, &env.evaluator)
	assert.Equal(t, http.StatusOK, code)

	code, _ = env.call(t, http.MethodPost, "/api/schedule-hired", map[string]any{
		"applicant_id": env.applicant.ID,
		"location_id":  env.location.ID,
		"date":         time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		"start_time":   "08:00",
	}, &env.admin)
	assert.Equal(t, http.StatusCreated, code)

	code, body = env.call(t, http.MethodGet, applicantPath+"/schedule-hired", nil, &env.admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Get("data").Array(), 1)
}

func TestScheduleTimeDeleteTwice(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.call(t, http.MethodPost, "/api/schedule-times", map[string]any{
		"location_id": env.location.ID,
		"date":        time.Now().AddDate(0, 0, 7).UTC().Truncate(24 * time.Hour),
		"start_time":  "09:00",
		"end_time":    "10:00",
	}, &env.admin)
	require.Equal(t, http.StatusCreated, code, body.Raw)
	slotID := body.Get("data.id").String()

	code, body = env.call(t, http.MethodGet, "/api/locations/"+env.location.ID.String()+"/schedule-times", nil, &env.candidate)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Get("data").Array(), 1)

	code, _ = env.call(t, http.MethodDelete, "/api/schedule-times/"+slotID, nil, &env.admin)
	assert.Equal(t, http.StatusOK, code)
	code, _ = env.call(t, http.MethodDelete, "/api/schedule-times/"+slotID, nil, &env.admin)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEvaluatorReviewRoutes(t *testing.T) {
	env := newTestEnv(t)
	question := model.Question{Text: "Kemampuan komunikasi", Kind: model.QuestionScale, Position: 1}
	require.NoError(t, env.db.Create(&question).Error)
	assignment := model.EvaluatorAssignment{ApplicantID: env.applicant.ID, EvaluatorID: env.evaluator.ID, LinkToken: "tok-1"}
	require.NoError(t, env.db.Omit("Applicant", "Evaluator").Create(&assignment).Error)
	path := "/api/assignments/" + assignment.ID.String() + "/reviews"

	answers := map[string]any{"answers": []map[string]any{{"question_id": question.ID, "score": 4}}}
	code, _ := env.call(t, http.MethodPost, path, answers, &env.admin)
	assert.Equal(t, http.StatusForbidden, code)

	code, body := env.call(t, http.MethodPost, path, answers, &env.evaluator)
	require.Equal(t, http.StatusOK, code, body.Raw)

	answers = map[string]any{"answers": []map[string]any{{"question_id": question.ID, "score": 5}}}
	code, body = env.call(t, http.MethodPost, path, answers, &env.evaluator)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Get("data").Array(), 1)
	assert.Equal(t, int64(5), body.Get("data.0.score").Int())

	code, _ = env.call(t, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestConversationRoutes(t *testing.T) {
	env := newTestEnv(t)
	conv := model.Conversation{ApplicantID: env.applicant.ID, Title: "Interview Budi"}
	require.NoError(t, env.db.Omit("Applicant").Create(&conv).Error)
	for _, u := range []model.User{env.candidate, env.admin} {
		p := model.ConversationParticipant{ConversationID: conv.ID, UserID: u.ID}
		require.NoError(t, env.db.Omit("User").Create(&p).Error)
	}
	path := "/api/conversations/" + conv.ID.String()

	code, body := env.call(t, http.MethodPost, path+"/messages", map[string]string{"body": "Halo kak"}, &env.candidate)
	require.Equal(t, http.StatusCreated, code, body.Raw)
	assert.Equal(t, "Budi", body.Get("data.sender.name").String())

	code, body = env.call(t, http.MethodGet, path, nil, &env.admin)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Halo kak", body.Get("data.messages.0.body").String())

	code, foreign := env.call(t, http.MethodGet, path, nil, &env.evaluator)
	assert.Equal(t, http.StatusForbidden, code)
	code, unknown := env.call(t, http.MethodGet, "/api/conversations/"+uuid.NewString(), nil, &env.evaluator)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, foreign.Get("message").String(), unknown.Get("message").String())

	code, body = env.call(t, http.MethodGet, "/api/conversations", nil, &env.candidate)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Get("data").Array(), 1)
}

func TestMbtiRoutes(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/applicants/" + env.applicant.ID.String() + "/mbti"

	code, _ := env.call(t, http.MethodGet, path, nil, &env.candidate)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = env.call(t, http.MethodPost, path, map[string]string{"result": "XYZW"}, &env.candidate)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := env.call(t, http.MethodPost, path, map[string]string{"result": "enfp"}, &env.candidate)
	require.Equal(t, http.StatusCreated, code, body.Raw)

	code, body = env.call(t, http.MethodGet, path, nil, &env.admin)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ENFP", body.Get("data.result").String())
	assert.True(t, body.Get("data.is_completed").Bool())
}

func TestJobRoutes(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.call(t, http.MethodPost, "/api/jobs", map[string]any{
		"title":        "Software Engineer",
		"job_role":     "Backend",
		"skills":       []string{"Go", "PostgreSQL"},
		"salary_min":   5000000,
		"salary_max":   8000000,
		"is_published": true,
	}, &env.admin)
	require.Equal(t, http.StatusCreated, code, body.Raw)
	assert.Equal(t, "DESAINJOB-SOF-0003", body.Get("data.job_code").String())
	jobID := body.Get("data.id").String()

	code, body = env.call(t, http.MethodGet, "/api/jobs/"+jobID, nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Rp 5.000.000 - Rp 8.000.000", body.Get("data.salary").String())

	code, _ = env.call(t, http.MethodGet, "/api/jobs/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = env.call(t, http.MethodPost, "/api/jobs", map[string]any{"title": "Designer"}, &env.candidate)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = env.call(t, http.MethodPost, "/api/jobs", map[string]any{"title": "  "}, &env.admin)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "wajib diisi", body.Get("details.title").String())

	code, body = env.call(t, http.MethodGet, "/api/jobs", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Get("data").Array(), 3)
}

func TestJobCreateAfterDeletedJob(t *testing.T) {
	env := newTestEnv(t)

	// jumlah lowongan turun setelah penghapusan, nomor urut berikutnya sudah terpakai
	taken := model.Job{JobCode: "DESAINJOB-QUA-0003", Title: "Quality Analyst"}
	require.NoError(t, env.db.Omit("Location").Create(&taken).Error)
	require.NoError(t, env.db.Delete(&model.Job{}, "id = ?", env.openJob.ID).Error)

	code, body := env.call(t, http.MethodPost, "/api/jobs", map[string]any{"title": "Quality Assurance"}, &env.admin)
	require.Equal(t, http.StatusCreated, code, body.Raw)
	assert.Equal(t, "DESAINJOB-QUA-0004", body.Get("data.job_code").String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
	assert.Equal(t, http.StatusConflict, statusOf(repository.ErrDuplicate))
}
