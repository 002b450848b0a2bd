package model

// All daftar model untuk AutoMigrate, urut sesuai dependensi foreign key.
func All() []any {
	return []any{
		&User{},
		&Location{},
		&Job{},
		&Applicant{},
		&HistoryCandidate{},
		&ScheduleInterview{},
		&ScheduleHired{},
		&ScheduleTime{},
		&Question{},
		&EvaluatorAssignment{},
		&EvaluatorReview{},
		&Conversation{},
		&ConversationParticipant{},
		&Message{},
		&MbtiTest{},
	}
}
