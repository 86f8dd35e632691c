package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	professionalRepo "expertbridge/database/repository/professional"
	"expertbridge/handlers"
	"expertbridge/models"
	subscriptionSvc "expertbridge/services/subscription"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// emptyProfessionalRepo serves an empty directory.
type emptyProfessionalRepo struct{}

func (r *emptyProfessionalRepo) Create(p *models.Professional) error { return nil }
func (r *emptyProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	return nil, nil
}
func (r *emptyProfessionalRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Professional, error) {
	return nil, nil
}
func (r *emptyProfessionalRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Professional, error) {
	return nil, nil
}
func (r *emptyProfessionalRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }
func (r *emptyProfessionalRepo) Delete(id string) error                               { return nil }
func (r *emptyProfessionalRepo) IncrementAnalytics(id string, profileViews, contactClicks int64) error {
	return nil
}
func (r *emptyProfessionalRepo) Search(criteria professionalRepo.SearchCriteria) ([]models.Professional, int64, error) {
	return []models.Professional{}, 0, nil
}
func (r *emptyProfessionalRepo) ListByVerificationStatus(status string, page, limit int64) ([]models.Professional, int64, error) {
	return nil, 0, nil
}
func (r *emptyProfessionalRepo) CountAll() (int64, error)                            { return 0, nil }
func (r *emptyProfessionalRepo) CountByVerificationStatus(status string) (int64, error) {
	return 0, nil
}
func (r *emptyProfessionalRepo) CategoryCounts(visibleOnly bool) (map[string]int64, error) {
	return map[string]int64{}, nil
}

// completedSubscriptionService answers every verification with a completed
// record.
type completedSubscriptionService struct{}

func (s *completedSubscriptionService) ListPlans() []models.Plan { return subscriptionSvc.Plans }

func (s *completedSubscriptionService) Initialize(professionalID, planID string) (*subscriptionSvc.InitializeResponse, error) {
	return &subscriptionSvc.InitializeResponse{Reference: "ref-1"}, nil
}

func (s *completedSubscriptionService) Verify(reference string) (*models.Subscription, error) {
	return &models.Subscription{
		Reference: reference,
		Status:    "completed",
		CreatedAt: time.Now(),
	}, nil
}

func (s *completedSubscriptionService) ActivateMock(professionalID, planID string) (*models.Subscription, error) {
	return &models.Subscription{Reference: "mock-1", Status: "completed"}, nil
}

func newDirectoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &handlers.HandlerBundle{
		Professionals: &handlers.ProfessionalHandler{},
		Search:        &handlers.SearchHandler{Repo: &emptyProfessionalRepo{}},
		Subscriptions: &handlers.SubscriptionHandler{Service: &completedSubscriptionService{}},
	}
	router := gin.New()
	RegisterProfessionalRoutes(router, hb)
	RegisterSubscriptionRoutes(router, hb)
	return router
}

func TestProfessionalListingIsServedWithoutToken(t *testing.T) {
	router := newDirectoryRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/professionals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "professionals")
	require.Contains(t, w.Body.String(), "pagination")
}

func TestVerifyIsServedWithoutToken(t *testing.T) {
	router := newDirectoryRouter()

	// The gateway redirect that hits this endpoint has no Authorization
	// header, only the reference in the path.
	req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/verify/ref-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ref-1")
	require.Contains(t, w.Body.String(), "completed")
}

func TestInitializeStillRequiresToken(t *testing.T) {
	router := newDirectoryRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions/initialize", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
