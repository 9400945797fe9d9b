package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laborercms/laborer-api/internal/api/metrics"
	"github.com/laborercms/laborer-api/internal/core/domain"
	"github.com/laborercms/laborer-api/internal/core/ports"
)

const msgLaborerNotFound = "Laborer not found"

// LaborerHandler handles HTTP requests for laborer records.
type LaborerHandler struct {
	service ports.LaborerService
}

func NewLaborerHandler(service ports.LaborerService) *LaborerHandler {
	return &LaborerHandler{service: service}
}

// List handles GET /laborers.
//
// @Summary      List all laborers
// @Tags         laborers
// @Produce      json
// @Success      200  {array}   laborerSummaryResponse
// @Failure      500  {object}  errorResponse
// @Router       /laborers [get]
func (h *LaborerHandler) List(c echo.Context) error {
	summaries, err := h.service.ListLaborers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(summaries))
}

// Get handles GET /laborers/:id.
//
// @Summary      Get a laborer by id
// @Tags         laborers
// @Produce      json
// @Param        id   path      string  true  "Laborer id"
// @Success      200  {object}  laborerResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /laborers/{id} [get]
func (h *LaborerHandler) Get(c echo.Context) error {
	laborer, err := h.service.GetLaborer(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrLaborerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgLaborerNotFound})
		}
		return err
	}
	return c.JSON(http.StatusOK, toLaborerResponse(laborer))
}

// Create handles POST /laborers.
//
// @Summary      Create a new laborer
// @Tags         laborers
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName  formData  string  true   "First name"
// @Param        lastName   formData  string  true   "Last name"
// @Param        email      formData  string  true   "Email address (unique)"
// @Param        hireDate   formData  string  true   "Hire date (ISO 8601)"
// @Param        role       formData  string  true   "Role"  Enums(user, admin, supervisor)
// @Param        picture    formData  file    false  "Profile picture"
// @Success      201  {object}  laborerResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /laborers [post]
func (h *LaborerHandler) Create(c echo.Context) error {
	var req createLaborerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	picture, closePicture, err := formPicture(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid picture upload"})
	}
	defer closePicture()

	created, err := h.service.CreateLaborer(c.Request().Context(), toCreateInput(req, picture))
	if err != nil {
		return writeLaborerError(c, err)
	}

	metrics.LaborersCreatedTotal.WithLabelValues(string(created.Role)).Inc()
	if picture != nil {
		metrics.PicturesStoredTotal.Inc()
	}
	return c.JSON(http.StatusCreated, toLaborerResponse(created))
}

// Update handles PUT /laborers/:id.
//
// @Summary      Update an existing laborer
// @Tags         laborers
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      string  true   "Laborer id"
// @Param        firstName  formData  string  false  "First name"
// @Param        lastName   formData  string  false  "Last name"
// @Param        email      formData  string  false  "Email address (unique)"
// @Param        hireDate   formData  string  false  "Hire date (ISO 8601)"
// @Param        role       formData  string  false  "Role"  Enums(user, admin, supervisor)
// @Param        picture    formData  file    false  "Replacement profile picture"
// @Success      200  {object}  laborerResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /laborers/{id} [put]
func (h *LaborerHandler) Update(c echo.Context) error {
	var req updateLaborerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	picture, closePicture, err := formPicture(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid picture upload"})
	}
	defer closePicture()

	updated, err := h.service.UpdateLaborer(c.Request().Context(), c.Param("id"), toUpdateInput(req, picture))
	if err != nil {
		return writeLaborerError(c, err)
	}

	metrics.LaborersUpdatedTotal.Inc()
	if picture != nil {
		metrics.PicturesStoredTotal.Inc()
	}
	return c.JSON(http.StatusOK, toLaborerResponse(updated))
}

// formPicture extracts the optional picture upload from the multipart form.
// The returned close func is always safe to defer.
func formPicture(c echo.Context) (*ports.PictureUpload, func(), error) {
	noop := func() {}

	file, err := c.FormFile("picture")
	if err != nil {
		// No picture part in the form: the upload is optional.
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, noop, err
	}
	return &ports.PictureUpload{Content: src, Filename: file.Filename}, func() { src.Close() }, nil
}

// writeLaborerError maps domain errors to their HTTP responses; anything
// unexpected is handed to the central error handler as a 500.
func writeLaborerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrLaborerNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: msgLaborerNotFound})
	case errors.Is(err, domain.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrDuplicateEmail.Error()})
	case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidHireDate):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return err
}
