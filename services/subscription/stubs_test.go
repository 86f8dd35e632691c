package subscription

import (
	"context"
	"errors"
	"time"

	professionalRepo "expertbridge/database/repository/professional"
	"expertbridge/models"
	"expertbridge/services/payment"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// stubSubscriptionRepo is a map-backed SubscriptionRepository keyed by
// payment reference.
type stubSubscriptionRepo struct {
	byReference map[string]models.Subscription
}

func newStubSubscriptionRepo(records ...models.Subscription) *stubSubscriptionRepo {
	s := &stubSubscriptionRepo{byReference: make(map[string]models.Subscription)}
	for _, r := range records {
		s.byReference[r.Reference] = r
	}
	return s
}

func (s *stubSubscriptionRepo) Create(subscription *models.Subscription) error {
	if _, exists := s.byReference[subscription.Reference]; exists {
		return utils.ConflictError{Msg: "duplicate reference"}
	}
	s.byReference[subscription.Reference] = *subscription
	return nil
}

func (s *stubSubscriptionRepo) GetByReference(reference string) (*models.Subscription, error) {
	r, ok := s.byReference[reference]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *stubSubscriptionRepo) UpdateByReference(reference string, updateDoc bson.M) error {
	r, ok := s.byReference[reference]
	if !ok {
		return utils.NotFoundError{Msg: "subscription record not found"}
	}
	if set, ok := updateDoc["$set"].(bson.M); ok {
		if status, ok := set["status"].(string); ok {
			r.Status = status
		}
		if simulated, ok := set["simulated"].(bool); ok {
			r.Simulated = simulated
		}
		if start, ok := set["startDate"].(time.Time); ok {
			r.StartDate = &start
		}
		if end, ok := set["endDate"].(time.Time); ok {
			r.EndDate = &end
		}
		if completed, ok := set["completedAt"].(time.Time); ok {
			r.CompletedAt = &completed
		}
	}
	s.byReference[reference] = r
	return nil
}

func (s *stubSubscriptionRepo) ListByProfessional(professionalID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, r := range s.byReference {
		if r.ProfessionalID == professionalID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubSubscriptionRepo) DeleteByProfessional(professionalID string) (int64, error) {
	var n int64
	for ref, r := range s.byReference {
		if r.ProfessionalID == professionalID {
			delete(s.byReference, ref)
			n++
		}
	}
	return n, nil
}

// stubProfessionalRepo applies the featured and subscription sub-documents of
// $set updates so window activation is observable.
type stubProfessionalRepo struct {
	professionals map[string]models.Professional
	updateCalls   int
}

func newStubProfessionalRepo(professionals ...models.Professional) *stubProfessionalRepo {
	s := &stubProfessionalRepo{professionals: make(map[string]models.Professional)}
	for _, p := range professionals {
		s.professionals[p.ID] = p
	}
	return s
}

func (s *stubProfessionalRepo) Create(p *models.Professional) error {
	s.professionals[p.ID] = *p
	return nil
}

func (s *stubProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	return s.GetByIDWithProjection(id, nil)
}

func (s *stubProfessionalRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Professional, error) {
	p, ok := s.professionals[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *stubProfessionalRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Professional, error) {
	for _, p := range s.professionals {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubProfessionalRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	p, ok := s.professionals[id]
	if !ok {
		return utils.NotFoundError{Msg: "professional not found"}
	}
	s.updateCalls++
	if set, ok := updateDoc["$set"].(bson.M); ok {
		if f, ok := set["featured"].(models.Featured); ok {
			p.Featured = f
		}
		if sub, ok := set["subscription"].(models.SubscriptionInfo); ok {
			p.Subscription = sub
		}
	}
	s.professionals[id] = p
	return nil
}

func (s *stubProfessionalRepo) Delete(id string) error {
	delete(s.professionals, id)
	return nil
}

func (s *stubProfessionalRepo) IncrementAnalytics(id string, profileViews, contactClicks int64) error {
	return nil
}

func (s *stubProfessionalRepo) Search(criteria professionalRepo.SearchCriteria) ([]models.Professional, int64, error) {
	return nil, 0, nil
}

func (s *stubProfessionalRepo) ListByVerificationStatus(status string, page, limit int64) ([]models.Professional, int64, error) {
	return nil, 0, nil
}

func (s *stubProfessionalRepo) CountAll() (int64, error) { return int64(len(s.professionals)), nil }

func (s *stubProfessionalRepo) CountByVerificationStatus(status string) (int64, error) {
	return 0, nil
}

func (s *stubProfessionalRepo) CategoryCounts(visibleOnly bool) (map[string]int64, error) {
	return map[string]int64{}, nil
}

// stubGateway scripts payment outcomes per reference.
type stubGateway struct {
	initCalls   int
	verifyCalls int
	failVerify  bool
	declined    bool
}

func (g *stubGateway) InitializeTransaction(ctx context.Context, email string, amount float64, currency, reference, callbackURL string, metadata map[string]string) (*payment.InitializeResult, error) {
	g.initCalls++
	return &payment.InitializeResult{
		AuthorizationURL: "https://pay.example.com/" + reference,
		Reference:        reference,
	}, nil
}

func (g *stubGateway) VerifyTransaction(ctx context.Context, reference string) (*payment.VerifyResult, error) {
	g.verifyCalls++
	if g.failVerify {
		return nil, errors.New("gateway unreachable")
	}
	return &payment.VerifyResult{Success: !g.declined, Reference: reference}, nil
}
