package web

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status"`
}

// UserResponse summarizes the logged in user
type UserResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	HouseID   *int   `json:"house_id,omitempty"`
	Magical   bool   `json:"magical"`
	Quidditch bool   `json:"quidditch"`
}

// SessionResponse describes the session of the caller.
// Callers without a session get no CSRF token.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	CSRFToken     string        `json:"csrf_token,omitempty"`
	User          *UserResponse `json:"user,omitempty"`
}
