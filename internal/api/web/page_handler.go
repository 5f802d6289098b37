package web

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PageHandler defines the public pages
type PageHandler interface {
	Index(ctx *gin.Context)
}

type pageHandler struct {
	houseService      houses.HouseService
	enrollmentService enrollments.EnrollmentService
	logger            logger.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(houseService houses.HouseService, enrollmentService enrollments.EnrollmentService, logger logger.Logger) PageHandler {
	return &pageHandler{
		houseService:      houseService,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Index handles GET /. Logged in users see their house and classes.
func (handler *pageHandler) Index(ctx *gin.Context) {
	page := view.IndexPage{Page: NewPage(ctx, "Home")}

	if user := page.User; user != nil {
		if user.HouseID != nil {
			house, err := handler.houseService.GetByID(ctx.Request.Context(), *user.HouseID)
			switch {
			case err == nil:
				page.House = house.Name
			case !errors.Is(err, houses.ErrHouseNotFound):
				handler.logger.Error("Failed to load house: ", err)
			}
		}

		transcript, err := handler.enrollmentService.Transcript(ctx.Request.Context(), user.ID)
		if err != nil {
			handler.logger.Error("Failed to load enrollments: ", err)
		}
		for _, e := range transcript {
			row := view.Enrollment{Grade: e.Grade}
			if e.Course != nil {
				row.Course = e.Course.Name
			}
			page.Enrollments = append(page.Enrollments, row)
		}
	}

	ctx.HTML(http.StatusOK, view.TemplateIndex, page)
}
