package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"

	"github.com/medical/backend/internal/domain/hospital"
	"github.com/medical/backend/internal/infrastructure/persistence"
	"github.com/medical/backend/internal/interfaces/http/dto"
)

// HospitalHandler exposes the seeded department, doctor, and hospital data
type HospitalHandler struct {
	BaseHandler
	departmentRepo *persistence.GormDepartmentRepository
	doctorRepo     *persistence.GormDoctorRepository
	hospitalRepo   *persistence.GormHospitalRepository
}

// NewHospitalHandler creates a new HospitalHandler
func NewHospitalHandler(
	departmentRepo *persistence.GormDepartmentRepository,
	doctorRepo *persistence.GormDoctorRepository,
	hospitalRepo *persistence.GormHospitalRepository,
) *HospitalHandler {
	return &HospitalHandler{
		departmentRepo: departmentRepo,
		doctorRepo:     doctorRepo,
		hospitalRepo:   hospitalRepo,
	}
}

// RegisterRoutes registers hospital reference routes
func (h *HospitalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/departments", h.ListDepartments)
	rg.GET("/doctors", h.ListDoctors)
	rg.GET("/hospitals", h.ListHospitals)
}

// DepartmentResponse represents a department in responses
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// ListDepartments returns all departments ordered by sort order
func (h *HospitalHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentRepo.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, DepartmentResponse{
			ID:          d.ID.String(),
			Name:        d.Name,
			Description: d.Description,
			SortOrder:   d.SortOrder,
		})
	}
	h.Success(c, responses)
}

// DoctorResponse represents a doctor in responses
type DoctorResponse struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Specialty    string `json:"specialty"`
	Introduction string `json:"introduction"`
	IsAvailable  bool   `json:"is_available"`
}

func toDoctorResponse(d *hospital.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:           d.ID.String(),
		DepartmentID: d.DepartmentID.String(),
		Name:         d.Name,
		Title:        string(d.Title),
		Specialty:    d.Specialty,
		Introduction: d.Introduction,
		IsAvailable:  d.IsAvailable,
	}
}

// ListDoctors returns all doctors, optionally filtered by department_id
func (h *HospitalHandler) ListDoctors(c *gin.Context) {
	var doctors []*hospital.Doctor
	var err error

	if deptParam := c.Query("department_id"); deptParam != "" {
		deptID, parseErr := uuid.Parse(deptParam)
		if parseErr != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "department_id must be a UUID")
			return
		}
		doctors, err = h.doctorRepo.FindByDepartment(c.Request.Context(), deptID)
	} else {
		doctors, err = h.doctorRepo.FindAll(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		responses = append(responses, toDoctorResponse(d))
	}
	h.Success(c, responses)
}

// HospitalResponse represents a hospital in responses
type HospitalResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Level     string   `json:"level,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ListHospitals returns all partner hospitals
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.hospitalRepo.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]HospitalResponse, 0, len(hospitals))
	for _, item := range hospitals {
		responses = append(responses, HospitalResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Address:   item.Address,
			Level:     item.Level,
			Phone:     item.Phone,
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
		})
	}
	h.Success(c, responses)
}
