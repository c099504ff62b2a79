package handler

import (
	"log/slog"
	"net/http"

	"macts/internal/delivery/http/response"
	"macts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// studentRequest is the payload for registering or updating a student record.
type studentRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName" validate:"required"`
	TUPTID     string `json:"tuptId" validate:"required"`
	Course     string `json:"course" validate:"required"`
	Section    string `json:"section" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	PhotoURL   string `json:"photoUrl" validate:"omitempty,url"`
	TagValue   string `json:"tagValue"`
}

func (r *studentRequest) toInput() *usecase.StudentInput {
	return &usecase.StudentInput{
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		TUPTID:     r.TUPTID,
		Course:     r.Course,
		Section:    r.Section,
		Email:      r.Email,
		PhotoURL:   r.PhotoURL,
		TagValue:   r.TagValue,
	}
}

// deviceRequest is the payload for registering or updating a device.
type deviceRequest struct {
	Brand             string `json:"device_brand" validate:"required"`
	SerialNumber      string `json:"device_serialNumber" validate:"required"`
	RegistrationToken string `json:"deviceRegistration" validate:"required"`
	FCMToken          string `json:"fcm_token"`
}

func (r *deviceRequest) toInput() *usecase.DeviceInput {
	return &usecase.DeviceInput{
		Brand:             r.Brand,
		SerialNumber:      r.SerialNumber,
		RegistrationToken: r.RegistrationToken,
		FCMToken:          r.FCMToken,
	}
}

// RegistryHandlerParams holds dependencies for RegistryHandler, injected by Fx.
type RegistryHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
	Logger     *slog.Logger
}

// RegistryHandler serves the student info and device registration screens.
type RegistryHandler struct {
	registryUC usecase.RegistryUsecase
	logger     *slog.Logger
}

// NewRegistryHandler is the constructor for RegistryHandler
func NewRegistryHandler(params RegistryHandlerParams) *RegistryHandler {
	return &RegistryHandler{
		registryUC: params.RegistryUC,
		logger:     params.Logger,
	}
}

// GetStudent returns the authenticated user's student record.
func (h *RegistryHandler) GetStudent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.registryUC.GetStudentInfo(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Student info retrieved")
}

// RegisterStudent creates a student record for the authenticated user.
func (h *RegistryHandler) RegisterStudent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.registryUC.RegisterStudent(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile, "Student registered")
}

// UpdateStudent replaces the mutable fields of the authenticated user's
// student record.
func (h *RegistryHandler) UpdateStudent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.registryUC.UpdateStudent(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Student info updated")
}

// GetDevice returns the authenticated user's registered device.
func (h *RegistryHandler) GetDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	device, err := h.registryUC.GetDevice(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved")
}

// RegisterDevice enrolls a device for the authenticated user.
func (h *RegistryHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.registryUC.RegisterDevice(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}

// UpdateDevice replaces the mutable fields of the authenticated user's
// device registration.
func (h *RegistryHandler) UpdateDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.registryUC.UpdateDevice(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated")
}

// RegistrationQR renders the authenticated user's device registration token
// as a QR code PNG.
func (h *RegistryHandler) RegistrationQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	png, err := h.registryUC.RegistrationQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
