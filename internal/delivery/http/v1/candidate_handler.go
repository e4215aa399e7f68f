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

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

type CandidateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create godoc
// @Summary      Register a candidate
// @Description  Create a new candidate account
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      CandidateRequest  true  "Candidate data"
// @Success      201   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate := &domain.Candidate{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.candidateUC.CreateCandidate(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// List godoc
// @Summary      List candidates
// @Description  Get a paginated list of candidates
// @Tags         candidates
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	candidates, total, err := h.candidateUC.ListCandidates(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", gin.H{
		"candidates": candidates,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}

// Get godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id  path      string  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=domain.Candidate}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid candidate ID"))
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Candidate ID"
// @Param        body  body      CandidateRequest  true  "Candidate data"
// @Success      200   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid candidate ID"))
		return
	}

	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate := &domain.Candidate{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.candidateUC.UpdateCandidate(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id  path      string  true  "Candidate ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid candidate ID"))
		return
	}

	if err := h.candidateUC.DeleteCandidate(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}
