package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.POST("", handler.Create)
		resumes.GET("/:id", handler.Get)
		resumes.DELETE("/:id", handler.Delete)
	}

	r.GET("/candidates/:id/resumes", handler.ListByCandidate)
}

type ResumeRequest struct {
	CandidateID string `json:"candidate_id"`
	FileURL     string `json:"file_url"`
}

// Create godoc
// @Summary      Upload a resume
// @Description  Register a resume file URL for a candidate
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        body  body      ResumeRequest  true  "Resume data"
// @Success      201   {object}  response.Response{data=domain.ResumeView}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	resume := &domain.Resume{
		CandidateID: req.CandidateID,
		FileURL:     req.FileURL,
	}

	if err := h.resumeUC.CreateResume(c, resume); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", domain.NewResumeView(*resume))
}

// Get godoc
// @Summary      Get a resume
// @Tags         resumes
// @Produce      json
// @Param        id  path      string  true  "Resume ID"
// @Success      200 {object}  response.Response{data=domain.ResumeView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid resume ID"))
		return
	}

	resume, err := h.resumeUC.GetResume(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume retrieved", domain.NewResumeView(*resume))
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resumes
// @Produce      json
// @Param        id  path      string  true  "Resume ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid resume ID"))
		return
	}

	if err := h.resumeUC.DeleteResume(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

// ListByCandidate godoc
// @Summary      List a candidate's resumes
// @Tags         resumes
// @Produce      json
// @Param        id  path      string  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=[]domain.ResumeView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id}/resumes [get]
func (h *ResumeHandler) ListByCandidate(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid candidate ID"))
		return
	}

	resumes, err := h.resumeUC.ListResumesByCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", domain.NewResumeViews(resumes))
}
