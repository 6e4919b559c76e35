package models

type LoginRequest struct {
	PayRollNumber int    `json:"payRollNumber"`
	Password      string `json:"password"`
}

type LoginResponse struct {
	Success      *bool  `json:"success,omitempty"`
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Rejected reports whether the server answered with an explicit
// success=false.
func (r *LoginResponse) Rejected() bool {
	return r.Success != nil && !*r.Success
}

type LogoutResponse struct {
	Message string `json:"message"`
}
