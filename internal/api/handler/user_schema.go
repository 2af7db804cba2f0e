package handler

import (
	"fmt"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
	"github.com/littlelemon/restaurant-system/internal/core/ports"
)

// --- Request types ---

type signupRequest struct {
	Username string `json:"username" form:"username" validate:"required,username"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Email    string `json:"email"    form:"email"    validate:"omitempty,email"`
}

type userUpdateRequest struct {
	Username string   `json:"username" validate:"required,username"`
	Email    string   `json:"email"    validate:"omitempty,email"`
	Password string   `json:"password" validate:"omitempty,min=8"`
	Groups   []string `json:"groups"   validate:"omitempty,dive,required,max=150"`
}

func (r userUpdateRequest) toInput() ports.UserUpdateInput {
	return ports.UserUpdateInput{Username: r.Username, Email: r.Email, Password: r.Password, Groups: r.Groups}
}

type userPatchRequest struct {
	Username *string   `json:"username" validate:"omitempty,username"`
	Email    *string   `json:"email"    validate:"omitnil,email_or_blank"`
	Password *string   `json:"password" validate:"omitempty,min=8"`
	Groups   *[]string `json:"groups"   validate:"omitempty,dive,required,max=150"`
}

func (r userPatchRequest) toPatch() ports.UserPatch {
	return ports.UserPatch{Username: r.Username, Email: r.Email, Password: r.Password, Groups: r.Groups}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// --- Response types ---

type userResponse struct {
	ID       int64    `json:"id"`
	URL      string   `json:"url"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`
}

type tokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// toUserResponse renders u with an absolute detail URL rooted at baseURL.
func toUserResponse(baseURL string, u *domain.User) userResponse {
	groups := u.Groups
	if groups == nil {
		groups = []string{}
	}
	return userResponse{
		ID:       u.ID,
		URL:      fmt.Sprintf("%s/auth/users/%d/", baseURL, u.ID),
		Username: u.Username,
		Email:    u.Email,
		Groups:   groups,
	}
}

func toUserResponses(baseURL string, users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(baseURL, u))
	}
	return out
}
