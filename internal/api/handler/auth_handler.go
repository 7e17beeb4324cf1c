package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/passaqui/passaqui-api/internal/api/metrics"
	"github.com/passaqui/passaqui-api/internal/core/domain"
	"github.com/passaqui/passaqui-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeInvalidPayload).Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeInvalidPayload).Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Location:  req.Location,
		Status:    domain.Status(req.Status),
		Reason:    req.Reason,
		Password:  req.Password,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupOutcome(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		Message: "Compte créé avec succès",
		UserID:  id,
	})
}

// Login verifies credentials and returns the public user profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Connexion réussie",
		User: loginUserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	})
}

func signupOutcome(err error) string {
	if errors.Is(err, domain.ErrEmailTaken) {
		return metrics.OutcomeDuplicateEmail
	}
	return metrics.OutcomeError
}

func loginOutcome(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return metrics.OutcomeInvalidCredentials
	}
	return metrics.OutcomeError
}
