package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(r *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := r.Group("/employers")
	{
		employers.POST("", handler.Create)
		employers.GET("", handler.List)
		employers.GET("/:id", handler.Get)
		employers.PUT("/:id", handler.Update)
		employers.DELETE("/:id", handler.Delete)
	}
}

type EmployerRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
}

// Create godoc
// @Summary      Register an employer
// @Description  Create a new employer account
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        body  body      EmployerRequest  true  "Employer data"
// @Success      201   {object}  response.Response{data=domain.Employer}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /employers [post]
func (h *EmployerHandler) Create(c *gin.Context) {
	var req EmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	employer := &domain.Employer{
		CompanyName: req.CompanyName,
		Email:       req.Email,
	}

	if err := h.employerUC.CreateEmployer(c, employer); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Employer created", employer)
}

// List godoc
// @Summary      List employers
// @Description  Get a paginated list of employers
// @Tags         employers
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /employers [get]
func (h *EmployerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	employers, total, err := h.employerUC.ListEmployers(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer list", gin.H{
		"employers": employers,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get godoc
// @Summary      Get an employer
// @Tags         employers
// @Produce      json
// @Param        id  path      string  true  "Employer ID"
// @Success      200 {object}  response.Response{data=domain.Employer}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /employers/{id} [get]
func (h *EmployerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid employer ID"))
		return
	}

	employer, err := h.employerUC.GetEmployer(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer retrieved", employer)
}

// Update godoc
// @Summary      Update an employer
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Employer ID"
// @Param        body  body      EmployerRequest  true  "Employer data"
// @Success      200   {object}  response.Response{data=domain.Employer}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /employers/{id} [put]
func (h *EmployerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid employer ID"))
		return
	}

	var req EmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	employer := &domain.Employer{
		ID:          id,
		CompanyName: req.CompanyName,
		Email:       req.Email,
	}

	if err := h.employerUC.UpdateEmployer(c, employer); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer updated", employer)
}

// Delete godoc
// @Summary      Delete an employer
// @Tags         employers
// @Produce      json
// @Param        id  path      string  true  "Employer ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /employers/{id} [delete]
func (h *EmployerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid employer ID"))
		return
	}

	if err := h.employerUC.DeleteEmployer(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer deleted", nil)
}
