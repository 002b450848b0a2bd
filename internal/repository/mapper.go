package repository

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
)

func toUserDTO(u model.User) dto.UserDTO {
	out := dto.UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
	if u.ReferralCode != nil {
		out.ReferralCode = *u.ReferralCode
	}
	return out
}

func toLocationDTO(l model.Location) dto.LocationDTO {
	return dto.LocationDTO{
		ID:      l.ID,
		Name:    l.Name,
		Address: l.Address,
		MapsURL: l.MapsURL,
	}
}

func toJobDTO(j model.Job) dto.JobDTO {
	skills := []string(j.Skills)
	if skills == nil {
		skills = []string{}
	}
	return dto.JobDTO{
		ID:          j.ID,
		JobCode:     j.JobCode,
		Title:       j.Title,
		JobRole:     j.JobRole,
		Description: j.Description,
		Skills:      skills,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		Salary:      util.FormatSalaryRange(j.SalaryMin, j.SalaryMax),
		LocationID:  j.LocationID,
		IsPublished: j.IsPublished,
		CreatedAt:   j.CreatedAt,
	}
}

func toApplicantDTO(a model.Applicant) dto.ApplicantDTO {
	return dto.ApplicantDTO{
		ID:           a.ID,
		Stage:        string(a.Stage),
		ReferredByID: a.ReferredByID,
		ReferralCode: a.ReferralCode,
		User:         toUserDTO(a.User),
		Job:          toJobDTO(a.Job),
		CreatedAt:    a.CreatedAt,
	}
}

func toHistoryDTO(h model.HistoryCandidate) dto.HistoryCandidateDTO {
	return dto.HistoryCandidateDTO{
		ID:          h.ID,
		ApplicantID: h.ApplicantID,
		Stage:       string(h.Stage),
		CreatedAt:   h.CreatedAt,
	}
}

func toScheduleInterviewDTO(s model.ScheduleInterview) dto.ScheduleInterviewDTO {
	return dto.ScheduleInterviewDTO{
		ID:          s.ID,
		ApplicantID: s.ApplicantID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		MeetingLink: s.MeetingLink,
		Notes:       s.Notes,
		Location:    toLocationDTO(s.Location),
	}
}

func toScheduleHiredDTO(s model.ScheduleHired) dto.ScheduleHiredDTO {
	return dto.ScheduleHiredDTO{
		ID:          s.ID,
		ApplicantID: s.ApplicantID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		Notes:       s.Notes,
		Location:    toLocationDTO(s.Location),
	}
}

func toScheduleTimeDTO(s model.ScheduleTime) dto.ScheduleTimeDTO {
	return dto.ScheduleTimeDTO{
		ID:         s.ID,
		LocationID: s.LocationID,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

func toReviewDTO(r model.EvaluatorReview) dto.EvaluatorReviewDTO {
	return dto.EvaluatorReviewDTO{
		ID:           r.ID,
		AssignmentID: r.AssignmentID,
		Question: dto.QuestionDTO{
			ID:       r.Question.ID,
			Text:     r.Question.Text,
			Kind:     string(r.Question.Kind),
			Position: r.Question.Position,
		},
		Score:     r.Score,
		Answer:    r.Answer,
		UpdatedAt: r.UpdatedAt,
	}
}

func toMessageDTO(m model.Message) dto.MessageDTO {
	return dto.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         toUserDTO(m.Sender),
		Body:           m.Body,
		CreatedAt:      m.CreatedAt,
	}
}

func toConversationDTO(c model.Conversation) dto.ConversationDTO {
	out := dto.ConversationDTO{
		ID:           c.ID,
		Title:        c.Title,
		Applicant:    toApplicantDTO(c.Applicant),
		Participants: make([]dto.UserDTO, 0, len(c.Participants)),
		Messages:     make([]dto.MessageDTO, 0, len(c.Messages)),
		UpdatedAt:    c.UpdatedAt,
	}
	for _, p := range c.Participants {
		out.Participants = append(out.Participants, toUserDTO(p.User))
	}
	for _, m := range c.Messages {
		out.Messages = append(out.Messages, toMessageDTO(m))
	}
	return out
}

func toMbtiDTO(m model.MbtiTest) dto.MbtiTestDTO {
	return dto.MbtiTestDTO{
		ID:          m.ID,
		ApplicantID: m.ApplicantID,
		Result:      m.Result,
		Link:        m.Link,
		IsCompleted: m.IsCompleted,
		CreatedAt:   m.CreatedAt,
	}
}
