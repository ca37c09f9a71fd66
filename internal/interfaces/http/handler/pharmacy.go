package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medical/backend/internal/domain/pharmacy"
	"github.com/medical/backend/internal/infrastructure/persistence"
	"github.com/medical/backend/internal/interfaces/http/dto"
)

// PharmacyHandler exposes the seeded drug catalog
type PharmacyHandler struct {
	BaseHandler
	drugRepo *persistence.GormDrugRepository
}

// NewPharmacyHandler creates a new PharmacyHandler
func NewPharmacyHandler(drugRepo *persistence.GormDrugRepository) *PharmacyHandler {
	return &PharmacyHandler{drugRepo: drugRepo}
}

// RegisterRoutes registers pharmacy reference routes
func (h *PharmacyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drug-categories", h.ListCategories)
	rg.GET("/drugs", h.ListDrugs)
}

// DrugCategoryResponse represents a drug category in responses
type DrugCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// ListCategories returns all drug categories ordered by sort order
func (h *PharmacyHandler) ListCategories(c *gin.Context) {
	categories, err := h.drugRepo.FindAllCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]DrugCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, DrugCategoryResponse{
			ID:          cat.ID.String(),
			Name:        cat.Name,
			Description: cat.Description,
			SortOrder:   cat.SortOrder,
		})
	}
	h.Success(c, responses)
}

// DrugResponse represents a drug in responses
type DrugResponse struct {
	ID            string `json:"id"`
	CategoryID    string `json:"category_id"`
	Name          string `json:"name"`
	Specification string `json:"specification"`
	Manufacturer  string `json:"manufacturer"`
	Price         string `json:"price"`
	Stock         int    `json:"stock"`
	Unit          string `json:"unit"`
}

func toDrugResponse(d *pharmacy.Drug) DrugResponse {
	return DrugResponse{
		ID:            d.ID.String(),
		CategoryID:    d.CategoryID.String(),
		Name:          d.Name,
		Specification: d.Specification,
		Manufacturer:  d.Manufacturer,
		Price:         d.Price.StringFixed(2),
		Stock:         d.Stock,
		Unit:          d.Unit,
	}
}

// ListDrugs returns all drugs, optionally filtered by category_id
func (h *PharmacyHandler) ListDrugs(c *gin.Context) {
	var drugs []*pharmacy.Drug
	var err error

	if catParam := c.Query("category_id"); catParam != "" {
		catID, parseErr := uuid.Parse(catParam)
		if parseErr != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "category_id must be a UUID")
			return
		}
		drugs, err = h.drugRepo.FindByCategory(c.Request.Context(), catID)
	} else {
		drugs, err = h.drugRepo.FindAll(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]DrugResponse, 0, len(drugs))
	for _, d := range drugs {
		responses = append(responses, toDrugResponse(d))
	}
	h.Success(c, responses)
}
