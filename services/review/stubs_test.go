package review

import (
	"sort"

	professionalRepo "expertbridge/database/repository/professional"
	"expertbridge/models"
	"expertbridge/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// stubReviewRepo is a map-backed ReviewRepository for tests.
type stubReviewRepo struct {
	reviews map[string]models.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]models.Review)}
}

func (s *stubReviewRepo) Create(review *models.Review) error {
	s.reviews[review.ID] = *review
	return nil
}

func (s *stubReviewRepo) GetByID(id string) (*models.Review, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *stubReviewRepo) SetStatus(id, status string) error {
	r, ok := s.reviews[id]
	if !ok {
		return utils.NotFoundError{Msg: "review not found"}
	}
	r.Status = status
	s.reviews[id] = r
	return nil
}

func (s *stubReviewRepo) ListByProfessional(professionalID, status string, limit int64) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		if r.ProfessionalID == professionalID && (status == "" || r.Status == status) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubReviewRepo) ListByStatus(status string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReviewRepo) DeleteByProfessional(professionalID string) (int64, error) {
	var n int64
	for id, r := range s.reviews {
		if r.ProfessionalID == professionalID {
			delete(s.reviews, id)
			n++
		}
	}
	return n, nil
}

func (s *stubReviewRepo) CountAll() (int64, error) {
	return int64(len(s.reviews)), nil
}

func (s *stubReviewRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, r := range s.reviews {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

// stubProfessionalRepo holds professionals in a map and applies the ratings
// portion of update documents so aggregate recomputes are observable.
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
		if ratings, ok := set["ratings"].(models.Ratings); ok {
			p.Ratings = ratings
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
