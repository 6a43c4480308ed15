// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/response"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Age      int    `json:"age" validate:"gte=0"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Age      *int    `json:"age" validate:"omitempty,gte=0"`
	Password *string `json:"password"`
}

// --- Response DTOs ---

// userResponse is the public shape of a user. The password hash is never
// serialized.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Role  string `json:"role"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
		Role:  user.Role.String(),
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authResponse{
		User:  toUserResponse(output.User),
		Token: output.Token,
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authResponse{
		User:  toUserResponse(output.User),
		Token: output.Token,
	}, "Login successful")
}

// ListUsers handles the admin-only user listing, with optional exact role and
// minimum age filters from the query string.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var filter repository.ListFilter

	if roleParam := c.QueryParam("role"); roleParam != "" {
		role := entity.Role(roleParam)
		if !role.IsValid() {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Unknown role filter")
		}
		filter.Role = &role
	}

	if minAgeParam := c.QueryParam("minAge"); minAgeParam != "" {
		minAge, err := strconv.Atoi(minAgeParam)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "minAge must be a number")
		}
		filter.MinAge = &minAge
	}

	users, err := h.uc.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]userResponse, 0, len(users))
	for _, user := range users {
		list = append(list, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, list, "Users retrieved successfully")
}

// GetUser handles the lookup of a single user by ID, permitted to admins and
// the user themselves.
func (h *UserHandler) GetUser(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
	}

	user, err := h.uc.GetUser(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// UpdateUser handles a partial update of a user record.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), caller, id, &usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "User updated",
		"user": map[string]string{
			"id":    user.ID.String(),
			"name":  user.Name,
			"email": user.Email,
		},
	}, "User updated successfully")
}

// DeleteUser handles the admin-only removal of a user.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
