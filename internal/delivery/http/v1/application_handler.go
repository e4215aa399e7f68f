package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.POST("", handler.Submit)
		applications.GET("", handler.List)
		applications.GET("/:id", handler.Get)
		applications.PUT("/:id/status", handler.UpdateStatus)
	}

	// Cross-reference lookups
	r.GET("/candidates/:id/applications", handler.ListByCandidate)
	r.GET("/jobs/:id/applications", handler.ListByJob)
}

// SubmitApplicationRequest is the request payload for submitting an application.
// Required/format checks are owned by the usecase so the error taxonomy
// (missing vs malformed vs dangling reference) stays precise.
type SubmitApplicationRequest struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	ResumeID    string `json:"resume_id"`
}

// Submit godoc
// @Summary      Submit a job application
// @Description  Create an application linking a candidate, a job and one of the candidate's resumes
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.ApplicationView}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	app, err := h.applicationUC.SubmitApplication(c, req.JobID, req.CandidateID, req.ResumeID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", domain.NewApplicationView(*app, time.Now()))
}

// List godoc
// @Summary      List applications
// @Description  Get all applications, optionally filtered by status, newest first
// @Tags         applications
// @Produce      json
// @Param        status  query     string  false  "Filter by status (applied, shortlisted, rejected)"
// @Success      200     {object}  response.Response{data=[]domain.ApplicationView}
// @Failure      400     {object}  response.Response
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	status := c.Query("status")

	applications, err := h.applicationUC.ListApplications(c, status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", domain.NewApplicationViews(applications, time.Now()))
}

// Get godoc
// @Summary      Get an application
// @Description  Get a single application with resolved job, candidate and resume data
// @Tags         applications
// @Produce      json
// @Param        id  path      string  true  "Application ID"
// @Success      200 {object}  response.Response{data=domain.ApplicationView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid application ID"))
		return
	}

	app, err := h.applicationUC.GetApplication(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", domain.NewApplicationView(*app, time.Now()))
}

// UpdateStatusRequest is the request payload for updating application status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Overwrite the status of an application; applied_at is not modified
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response{data=domain.ApplicationView}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	app, err := h.applicationUC.UpdateApplicationStatus(c, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", domain.NewApplicationView(*app, time.Now()))
}

// ListByCandidate godoc
// @Summary      List a candidate's applications
// @Description  Get all applications submitted by a candidate, newest first
// @Tags         applications
// @Produce      json
// @Param        id  path      string  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=[]domain.ApplicationView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id}/applications [get]
func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid candidate ID"))
		return
	}

	applications, err := h.applicationUC.ListByCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", domain.NewApplicationViews(applications, time.Now()))
}

// ListByJob godoc
// @Summary      List applications for a job
// @Description  Get all applications for a specific job, newest first
// @Tags         applications
// @Produce      json
// @Param        id  path      string  true  "Job ID"
// @Success      200 {object}  response.Response{data=[]domain.ApplicationView}
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.InvalidFormat("id", "Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListByJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", domain.NewApplicationViews(applications, time.Now()))
}
