package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIHandler defines the JSON endpoints
type APIHandler interface {
	Health(ctx *gin.Context)
	Session(ctx *gin.Context)
}

type apiHandler struct{}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler() APIHandler {
	return &apiHandler{}
}

// Health handles GET /healthz
func (handler *apiHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Session handles GET /api/v1/session
func (handler *apiHandler) Session(ctx *gin.Context) {
	var response SessionResponse
	if session := CurrentSession(ctx); session != nil {
		response.CSRFToken = session.CSRFToken
	}
	if user := CurrentUser(ctx); user != nil {
		response.Authenticated = true
		response.User = &UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Name:      user.Name,
			HouseID:   user.HouseID,
			Magical:   user.Magical,
			Quidditch: user.Quidditch,
		}
	}
	ctx.JSON(http.StatusOK, response)
}
