package dto

type JobRoleRecommendationRequest struct {
	Title string `json:"title"`
}

type SkillRecommendationRequest struct {
	Title   string `json:"title"`
	JobRole string `json:"job_role"`
}

type JobRoleRecommendationResponse struct {
	Roles []string `json:"roles"`
}

type SkillRecommendationResponse struct {
	Skills []string `json:"skills"`
}
