package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborercms/laborer-api/internal/core/domain"
	"github.com/laborercms/laborer-api/internal/core/ports"
)

type stubLaborerService struct {
	listFn   func(ctx context.Context) ([]domain.LaborerSummary, error)
	getFn    func(ctx context.Context, id string) (*domain.Laborer, error)
	createFn func(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error)
}

func (s *stubLaborerService) ListLaborers(ctx context.Context) ([]domain.LaborerSummary, error) {
	return s.listFn(ctx)
}

func (s *stubLaborerService) GetLaborer(ctx context.Context, id string) (*domain.Laborer, error) {
	return s.getFn(ctx, id)
}

func (s *stubLaborerService) CreateLaborer(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
	return s.createFn(ctx, input)
}

func (s *stubLaborerService) UpdateLaborer(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error) {
	return s.updateFn(ctx, id, input)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// multipartBody builds a multipart form with the given fields and an
// optional picture part.
func multipartBody(t *testing.T, fields map[string]string, pictureName string, pictureContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if pictureName != "" {
		part, err := w.CreateFormFile("picture", pictureName)
		require.NoError(t, err)
		_, err = part.Write(pictureContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func sampleLaborer() *domain.Laborer {
	return &domain.Laborer{
		ID:        "c7e9f9d6-6f0a-4f55-a0d1-2f3a9b8c7d6e",
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@laborer.com",
		HireDate:  time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
		Role:      domain.RoleAdmin,
		Picture:   "/uploads/abc.png",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestLaborerHandler_List_OmitsPicture(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		listFn: func(ctx context.Context) ([]domain.LaborerSummary, error) {
			return []domain.LaborerSummary{{
				ID:        "id-1",
				FirstName: "Jane",
				LastName:  "Smith",
				HireDate:  time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
				Email:     "jane.smith@laborer.com",
				Role:      domain.RoleAdmin,
			}}, nil
		},
	}
	h := NewLaborerHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/laborers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "id-1", item["id"])
	assert.Equal(t, "Jane", item["firstName"])
	assert.Equal(t, "admin", item["role"])
	// The list projection never exposes the picture, even when the record has one.
	_, hasPicture := item["picture"]
	assert.False(t, hasPicture, "list item must not contain a picture field")
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestLaborerHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		getFn: func(ctx context.Context, id string) (*domain.Laborer, error) {
			require.Equal(t, "id-1", id)
			return sampleLaborer(), nil
		},
	}
	h := NewLaborerHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/laborers/id-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/laborers/:id")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane", resp["firstName"])
	assert.Equal(t, "/uploads/abc.png", resp["picture"])
	hireDate, _ := resp["hireDate"].(string)
	assert.True(t, len(hireDate) >= 10 && hireDate[:10] == "2023-02-20", "hireDate %q must start with the calendar date", hireDate)
}

func TestLaborerHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		getFn: func(ctx context.Context, id string) (*domain.Laborer, error) {
			return nil, domain.ErrLaborerNotFound
		},
	}
	h := NewLaborerHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/laborers/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/laborers/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Laborer not found"}`, rec.Body.String())
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func validCreateFields() map[string]string {
	return map[string]string{
		"firstName": "Jane",
		"lastName":  "Smith",
		"email":     "jane.smith@laborer.com",
		"hireDate":  "2023-02-20",
		"role":      "admin",
	}
}

func TestLaborerHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		createFn: func(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
			require.Equal(t, "Jane", input.FirstName)
			require.Equal(t, "admin", input.Role)
			require.Nil(t, input.Picture)
			return sampleLaborer(), nil
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, validCreateFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/laborers", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "admin", resp["role"])
}

func TestLaborerHandler_Create_WithPicture(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		createFn: func(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
			require.NotNil(t, input.Picture)
			assert.Equal(t, "face.png", input.Picture.Filename)
			content, err := io.ReadAll(input.Picture.Content)
			require.NoError(t, err)
			assert.Equal(t, []byte("fake-image-bytes"), content)
			return sampleLaborer(), nil
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, validCreateFields(), "face.png", []byte("fake-image-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/laborers", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLaborerHandler_Create_MissingRequiredField(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		createFn: func(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewLaborerHandler(stub)

	fields := validCreateFields()
	delete(fields, "email")
	body, contentType := multipartBody(t, fields, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/laborers", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email is required")
}

func TestLaborerHandler_Create_RejectsUnknownRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		createFn: func(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
			t.Fatal("service must not be called for an invalid role")
			return nil, nil
		},
	}
	h := NewLaborerHandler(stub)

	fields := validCreateFields()
	fields["role"] = "manager"
	body, contentType := multipartBody(t, fields, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/laborers", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "role must be one of")
}

func TestLaborerHandler_Create_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		createFn: func(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, validCreateFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/laborers", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unique")
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestLaborerHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error) {
			require.Equal(t, "id-1", id)
			require.Equal(t, "Janet", input.FirstName)
			require.Empty(t, input.Email)
			updated := sampleLaborer()
			updated.FirstName = "Janet"
			return updated, nil
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"firstName": "Janet"}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/laborers/id-1", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/laborers/:id")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Janet", resp["firstName"])
}

func TestLaborerHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error) {
			return nil, domain.ErrLaborerNotFound
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"firstName": "Janet"}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/laborers/missing", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/laborers/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Laborer not found"}`, rec.Body.String())
}

func TestLaborerHandler_Update_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"email": "taken@laborer.com"}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/laborers/id-1", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/laborers/:id")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unique")
}

func TestLaborerHandler_Update_InvalidEmailFormat(t *testing.T) {
	e := newTestEcho()
	stub := &stubLaborerService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewLaborerHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"email": "not-an-email"}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/laborers/id-1", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/laborers/:id")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid email")
}
