package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxdocs-api/internal/application/ports"
	profileDB "taxdocs-api/internal/infrastructure/db/postgres/profile"
	"taxdocs-api/internal/infrastructure/jwt"
	"taxdocs-api/internal/interface/api/rest/dto/profile"
	"taxdocs-api/internal/interface/api/rest/middleware"
	"taxdocs-api/internal/interface/api/rest/validator"
)

type ProfileController struct {
	profileService ports.ProfileService
	logger         *zap.Logger
}

func NewProfileController(
	r *gin.Engine,
	profileService ports.ProfileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ProfileController {
	pc := &ProfileController{
		profileService: profileService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteProfile, auth, pc.GetProfileHandler)
	r.POST(RouteProfile, auth, pc.CreateProfileHandler)
	r.PATCH(RouteProfile, auth, pc.UpdateProfileHandler)
	r.DELETE(RouteProfile, auth, pc.DeleteProfileHandler)

	return pc
}

func (pc *ProfileController) GetProfileHandler(c *gin.Context) {
	uuid, _, ok := identity(c)
	if !ok {
		return
	}

	p, err := pc.profileService.FindProfile(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a profile"},
		)
		pc.logger.Error("FindProfile() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "profile not found"},
		)
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseProfile(*p))
}

func (pc *ProfileController) CreateProfileHandler(c *gin.Context) {
	uuid, _, ok := identity(c)
	if !ok {
		return
	}

	var req profile.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateProfile(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	created, err := pc.profileService.CreateProfile(c.Request.Context(), uuid, profile.ToDomainProfile(req))
	if err != nil {
		if errors.Is(err, profileDB.ErrProfileAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a profile"},
		)
		pc.logger.Error("CreateProfile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, profile.ToResponseProfile(*created))
}

func (pc *ProfileController) UpdateProfileHandler(c *gin.Context) {
	uuid, _, ok := identity(c)
	if !ok {
		return
	}

	var req profile.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateProfileUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.profileService.UpdateProfile(c.Request.Context(), uuid, profile.ToDomainUpdate(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a profile"},
		)
		pc.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "profile not found"},
		)
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseProfile(*p))
}

func (pc *ProfileController) DeleteProfileHandler(c *gin.Context) {
	uuid, _, ok := identity(c)
	if !ok {
		return
	}

	p, err := pc.profileService.DeleteProfile(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a profile"},
		)
		pc.logger.Error("DeleteProfile() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "profile not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}
