package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sombateka/internal/adapter/api"
	"sombateka/internal/domain/entity"
	"sombateka/internal/usecase"
	"sombateka/pkg/errors"
)

type stubRequestRepo struct {
	created    []*entity.Request
	failCreate bool
}

func (s *stubRequestRepo) Create(ctx context.Context, request *entity.Request) error {
	if s.failCreate {
		return errors.Internal("Failed to create request", nil)
	}
	if request.ID == "" {
		request.ID = "req-1"
	}
	s.created = append(s.created, request)
	return nil
}

func (s *stubRequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	return nil, errors.NotFound("Request", nil)
}

func (s *stubRequestRepo) List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	return nil, 0, nil
}

func (s *stubRequestRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubRequestRepo) Promote(ctx context.Context, id string) (*entity.Product, error) {
	return nil, errors.Conflict("Request already approved or removed", nil)
}

func (s *stubRequestRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.created)), nil
}

type stubSellerRepo struct{}

func (s *stubSellerRepo) Create(ctx context.Context, seller *entity.Seller) error { return nil }
func (s *stubSellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	return nil, errors.NotFound("Seller", nil)
}
func (s *stubSellerRepo) GetByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	return nil, errors.NotFound("Seller", nil)
}
func (s *stubSellerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Seller, int64, error) {
	return nil, 0, nil
}
func (s *stubSellerRepo) Update(ctx context.Context, seller *entity.Seller) error { return nil }
func (s *stubSellerRepo) Delete(ctx context.Context, id string) error             { return nil }
func (s *stubSellerRepo) Count(ctx context.Context) (int64, error)                { return 0, nil }
func (s *stubSellerRepo) CountByActivationStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func newSubmissionServer(repo *stubRequestRepo) *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()

	requestUseCase := usecase.NewRequestUseCase(repo, &stubSellerRepo{})
	h := NewRequestHandler(requestUseCase)
	e.POST("/v1/requests", h.Submit)

	return e
}

const validSubmission = `{
	"name": "Frigo 200L",
	"category": "electromenager",
	"city": "Brazzaville",
	"price": 120000,
	"description": "Très bon état",
	"images": ["https://example.com/frigo.jpg"],
	"submitter_name": "Armand",
	"submitter_phone": "+242069876543"
}`

func TestSubmitCreatesRequest(t *testing.T) {
	repo := &stubRequestRepo{}
	e := newSubmissionServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(validSubmission))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Frigo 200L")
	assert.Contains(t, rec.Body.String(), "payment_key")
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Armand", repo.created[0].SubmitterName)
}

func TestSubmitRejectsNonJSONBody(t *testing.T) {
	contentTypes := []string{
		echo.MIMETextPlain,
		"application/jsonx",
		"application/x-www-form-urlencoded",
		"",
	}

	for _, contentType := range contentTypes {
		repo := &stubRequestRepo{}
		e := newSubmissionServer(repo)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader("name=Frigo"))
		if contentType != "" {
			req.Header.Set(echo.HeaderContentType, contentType)
		}
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code, "Content-Type %q", contentType)
		// The store must not be touched.
		assert.Empty(t, repo.created, "Content-Type %q", contentType)
	}
}

func TestSubmitAcceptsJSONWithCharset(t *testing.T) {
	repo := &stubRequestRepo{}
	e := newSubmissionServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(validSubmission))
	req.Header.Set(echo.HeaderContentType, "application/json; charset=utf-8")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, repo.created, 1)
}

func TestSubmitRejectsOtherMethods(t *testing.T) {
	repo := &stubRequestRepo{}
	e := newSubmissionServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	repo := &stubRequestRepo{}
	e := newSubmissionServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{"name": "Frigo 200L"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}

func TestSubmitSurfacesBackendFailure(t *testing.T) {
	repo := &stubRequestRepo{failCreate: true}
	e := newSubmissionServer(repo)

	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(validSubmission))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
