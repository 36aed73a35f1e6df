// File: internal/user/handler.go
package user

import (
	"errors"

	"hospital_jobs_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WrongCredentialsMessage is the single message used for both an unknown
// email and a wrong password, so the endpoint does not reveal which one it
// was. Only the dedicated email-check endpoint discloses existence.
const WrongCredentialsMessage = "Wrong email/password"

// Handler holds dependencies for user endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the user and auth routes under the /api group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/signup", h.signup)
	router.POST("/authenticate", h.authenticate)
	router.POST("/emailalreadyregistered", h.emailAlreadyRegistered)
	router.POST("/getuser", h.getUser)
	router.POST("/forgotpassword", h.forgotPassword)
	router.POST("/updatepassword", h.updatePassword)
	router.POST("/updateprofile", h.updateProfile)
}

func bindJSON(c *gin.Context, logger *zap.Logger, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Invalid request body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}

func (h *Handler) signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondEmpty(c)
}

func (h *Handler) authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	usr, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailNotFound) || errors.Is(err, ErrWrongCredentials) {
			common.RespondMessage(c, WrongCredentialsMessage)
			return
		}
		common.RespondWithError(c, err)
		return
	}
	// Clients expect the matching record wrapped in an array.
	common.RespondData(c, []Response{ToResponse(usr)})
}

func (h *Handler) emailAlreadyRegistered(c *gin.Context) {
	var req EmailCheckRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	exists, err := h.service.ExistsByEmail(c.Request.Context(), req.Email)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if exists {
		common.RespondMessage(c, "Email already exists")
		return
	}
	common.RespondEmpty(c)
}

func (h *Handler) getUser(c *gin.Context) {
	var req GetUserRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid user ID format."))
		return
	}
	usr, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondMessage(c, "Cannot find the User")
			return
		}
		common.RespondWithError(c, err)
		return
	}
	common.RespondData(c, ToResponse(usr))
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondMessage(c, "Password reset requested")
}

func (h *Handler) updatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid user ID format."))
		return
	}
	if err := h.service.UpdatePassword(c.Request.Context(), id, req.Password); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondMessage(c, "Password updated successfully")
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid user ID format."))
		return
	}
	if err := h.service.UpdateProfile(c.Request.Context(), id, req.Title, req.Qualification); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondMessage(c, "Profile updated successfully")
}
