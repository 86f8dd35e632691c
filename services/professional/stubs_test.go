package professional

import (
	"context"

	professionalRepo "expertbridge/database/repository/professional"
	"expertbridge/models"
	"expertbridge/services/storage"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// stubProfessionalRepo is a map-backed ProfessionalRepository. It applies the
// typed sub-documents of $set updates and records the last raw set document
// so field filtering is observable.
type stubProfessionalRepo struct {
	professionals map[string]models.Professional
	lastSet       bson.M
	deleted       []string
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
	if set, ok := updateDoc["$set"].(bson.M); ok {
		s.lastSet = set
		if v, ok := set["verification"].(models.Verification); ok {
			p.Verification = v
		}
		if f, ok := set["featured"].(models.Featured); ok {
			p.Featured = f
		}
		if sub, ok := set["subscription"].(models.SubscriptionInfo); ok {
			p.Subscription = sub
		}
		if photo, ok := set["profilePhoto"].(models.ProfilePhoto); ok {
			p.ProfilePhoto = photo
		}
		if name, ok := set["fullName"].(string); ok {
			p.FullName = name
		}
	}
	s.professionals[id] = p
	return nil
}

func (s *stubProfessionalRepo) Delete(id string) error {
	if _, ok := s.professionals[id]; !ok {
		return utils.NotFoundError{Msg: "professional not found"}
	}
	delete(s.professionals, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubProfessionalRepo) IncrementAnalytics(id string, profileViews, contactClicks int64) error {
	p, ok := s.professionals[id]
	if !ok {
		return utils.NotFoundError{Msg: "professional not found"}
	}
	p.Analytics.ProfileViews += profileViews
	p.Analytics.ContactClicks += contactClicks
	s.professionals[id] = p
	return nil
}

func (s *stubProfessionalRepo) Search(criteria professionalRepo.SearchCriteria) ([]models.Professional, int64, error) {
	return nil, 0, nil
}

func (s *stubProfessionalRepo) ListByVerificationStatus(status string, page, limit int64) ([]models.Professional, int64, error) {
	var out []models.Professional
	for _, p := range s.professionals {
		if status == "" || p.Verification.Status == status {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubProfessionalRepo) CountAll() (int64, error) { return int64(len(s.professionals)), nil }

func (s *stubProfessionalRepo) CountByVerificationStatus(status string) (int64, error) {
	var n int64
	for _, p := range s.professionals {
		if p.Verification.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *stubProfessionalRepo) CategoryCounts(visibleOnly bool) (map[string]int64, error) {
	return map[string]int64{}, nil
}

// stubReviewRepo only needs cascade-delete bookkeeping here.
type stubReviewRepo struct {
	byProfessional map[string]int64
	deleteErr      error
	deleteOrder    *[]string
}

func (s *stubReviewRepo) Create(review *models.Review) error                  { return nil }
func (s *stubReviewRepo) GetByID(id string) (*models.Review, error)           { return nil, nil }
func (s *stubReviewRepo) SetStatus(id, status string) error                   { return nil }
func (s *stubReviewRepo) ListByStatus(status string) ([]models.Review, error) { return nil, nil }
func (s *stubReviewRepo) CountAll() (int64, error)                            { return 0, nil }
func (s *stubReviewRepo) CountByStatus(status string) (int64, error)          { return 0, nil }

func (s *stubReviewRepo) ListByProfessional(professionalID, status string, limit int64) ([]models.Review, error) {
	return nil, nil
}

func (s *stubReviewRepo) DeleteByProfessional(professionalID string) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	if s.deleteOrder != nil {
		*s.deleteOrder = append(*s.deleteOrder, "reviews")
	}
	n := s.byProfessional[professionalID]
	delete(s.byProfessional, professionalID)
	return n, nil
}

// stubSubscriptionRepo only needs cascade-delete bookkeeping here.
type stubSubscriptionRepo struct {
	deleteOrder *[]string
}

func (s *stubSubscriptionRepo) Create(subscription *models.Subscription) error { return nil }

func (s *stubSubscriptionRepo) GetByReference(reference string) (*models.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionRepo) UpdateByReference(reference string, updateDoc bson.M) error {
	return nil
}

func (s *stubSubscriptionRepo) ListByProfessional(professionalID string) ([]models.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionRepo) DeleteByProfessional(professionalID string) (int64, error) {
	if s.deleteOrder != nil {
		*s.deleteOrder = append(*s.deleteOrder, "subscriptions")
	}
	return 0, nil
}

// stubMailer records sent messages.
type stubMailer struct {
	sent []string
}

func (m *stubMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.sent = append(m.sent, to+": "+subject)
	return nil
}

// stubImageStore returns a fixed upload result.
type stubImageStore struct {
	uploads int
}

func (s *stubImageStore) Upload(ctx context.Context, imageData string, opts storage.UploadOptions) (*storage.UploadResult, error) {
	s.uploads++
	return &storage.UploadResult{URL: "https://img.example.com/" + opts.PublicID, PublicID: opts.PublicID}, nil
}

func newTestService(professionals ...models.Professional) (*DefaultProfessionalService, *stubProfessionalRepo, *stubMailer) {
	repo := newStubProfessionalRepo(professionals...)
	mailer := &stubMailer{}
	svc := &DefaultProfessionalService{
		Repo:          repo,
		Reviews:       &stubReviewRepo{byProfessional: map[string]int64{}},
		Subscriptions: &stubSubscriptionRepo{},
		Mailer:        mailer,
		Images:        &stubImageStore{},
	}
	return svc, repo, mailer
}
