package handlers

import (
	"math"
	"net/http"
	"strconv"

	professionalRepo "expertbridge/database/repository/professional"
	"expertbridge/models"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the public directory listing and the category catalog.
type SearchHandler struct {
	Repo professionalRepo.ProfessionalRepository
}

// SearchHandler handles GET /api/search. Every filter is optional; distinct
// filters narrow the result, the keyword widens its own match across name,
// bio and subcategory.
func (h *SearchHandler) SearchProfessionalsHandler(c *gin.Context) {
	criteria := professionalRepo.SearchCriteria{
		Category:    c.Query("category"),
		Country:     c.Query("country"),
		City:        c.Query("city"),
		Keyword:     c.Query("keyword"),
		ServiceType: c.Query("serviceType"),
		SortBy:      c.Query("sortBy"),
	}
	if v, err := strconv.Atoi(c.Query("minExperience")); err == nil && v > 0 {
		criteria.MinExperience = v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil && v > 0 {
		criteria.MinRating = v
	}
	criteria.FeaturedOnly = c.Query("featured") == "true"
	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
		criteria.Page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		criteria.Limit = v
	}

	professionals, total, err := h.Repo.Search(criteria)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	limit := criteria.Limit
	if limit <= 0 {
		limit = 12
	}
	pages := int64(math.Ceil(float64(total) / float64(limit)))

	c.JSON(http.StatusOK, gin.H{
		"professionals": professionals,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// CategoriesHandler handles GET /api/categories: the fixed catalog plus a
// per-category count of visible professionals.
func (h *SearchHandler) CategoriesHandler(c *gin.Context) {
	counts, err := h.Repo.CategoryCounts(true)
	if err != nil {
		utils.GetLogger().Warn("Failed to count categories", zap.Error(err))
		counts = map[string]int64{}
	}

	categories := make([]models.CategoryCount, 0, len(models.Categories))
	for _, name := range models.Categories {
		categories = append(categories, models.CategoryCount{Name: name, Count: counts[name]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
