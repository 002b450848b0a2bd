package session

import (
	"strings"

	"github.com/google/uuid"
)

const (
	RoleAdmin     = "ADMIN"
	RoleEvaluator = "EVALUATOR"
	RoleCandidate = "CANDIDATE"
)

// Session identitas pengguna dari penyedia auth eksternal. Selalu diteruskan
// sebagai parameter ke usecase, tidak pernah dibaca dari variabel global.
type Session struct {
	UserID        uuid.UUID
	Name          string
	Role          string
	Authenticated bool
}

// New membangun Session dari nilai mentah. User id kosong atau tidak valid
// menghasilkan session anonim.
func New(userID, name, role string) Session {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil || id == uuid.Nil {
		return Session{}
	}
	return Session{
		UserID:        id,
		Name:          strings.TrimSpace(name),
		Role:          strings.ToUpper(strings.TrimSpace(role)),
		Authenticated: true,
	}
}

func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}

func (s Session) HasRole(roles ...string) bool {
	if !s.Authenticated {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
