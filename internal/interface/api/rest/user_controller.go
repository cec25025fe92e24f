package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxdocs-api/internal/application/ports"
	"taxdocs-api/internal/infrastructure/jwt"
	"taxdocs-api/internal/interface/api/rest/dto/user"
	"taxdocs-api/internal/interface/api/rest/middleware"
	"taxdocs-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsersMe, middleware.AuthMiddleware(jwtService), uc.GetMeHandler)
	r.DELETE(RouteUsersMe, middleware.AuthMiddleware(jwtService), uc.DeleteMeHandler)

	return uc
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteMeHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), uuid); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a user"},
		)
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
