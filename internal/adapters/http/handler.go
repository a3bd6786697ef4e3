package http

import (
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/pvictorr/SpotifyDownloader-API/internal/domain"
	"github.com/pvictorr/SpotifyDownloader-API/internal/ports"
)

// Handler holds the HTTP handlers for the download API.
type Handler struct {
	service     ports.DownloadService
	jobs        ports.JobService
	defaultPath string
}

// NewHandler creates a new HTTP handler with the given services. defaultPath
// is the download directory reported to clients that let the user pick one.
func NewHandler(service ports.DownloadService, jobs ports.JobService, defaultPath string) *Handler {
	return &Handler{service: service, jobs: jobs, defaultPath: defaultPath}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/path", h.DownloadPath)
		api.POST("/download", h.Download)
		api.POST("/jobs", h.CreateJob)
		api.GET("/jobs", h.ListJobs)
		api.GET("/jobs/:id", h.GetJob)
		api.GET("/jobs/:id/events", h.JobEvents)
		api.DELETE("/jobs/:id", h.CancelJob)
	}
}

// DownloadRequestBody is the JSON payload for download and job submissions.
type DownloadRequestBody struct {
	URL             string `json:"url" binding:"required" example:"https://open.spotify.com/track/abc123"`
	ContentType     string `json:"content_type" binding:"required" example:"track" enums:"track,playlist,album"`
	Threads         int    `json:"threads" example:"4"`
	DestinationPath string `json:"destination_path"`
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// DownloadPath returns the default download directory, creating it on demand.
//
//	@Summary		Default download path
//	@Description	Returns the directory downloads are written to when the request carries no destination of its own. The directory is created if absent.
//	@Tags			downloads
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/v1/path [get]
func (h *Handler) DownloadPath(c *gin.Context) {
	if err := os.MkdirAll(h.defaultPath, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path": h.defaultPath,
	})
}

// Download runs a download synchronously and returns its result record.
//
//	@Summary		Download content
//	@Description	Validates the request, runs the retrieval engine and blocks until it terminates.
//	@Description	The response always carries exactly one of message/error.
//	@Tags			downloads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DownloadRequestBody	true	"Download request"
//	@Success		200		{object}	domain.DownloadResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	domain.DownloadResult
//	@Router			/api/v1/download [post]
func (h *Handler) Download(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result := h.service.Download(c.Request.Context(), req, false)
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateJob submits an asynchronous download job.
//
//	@Summary		Submit download job
//	@Description	Validates the request and starts the download in the background. Poll the job or subscribe to its event stream for progress.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DownloadRequestBody	true	"Download request"
//	@Success		202		{object}	domain.Job
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/jobs [post]
func (h *Handler) CreateJob(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	job, err := h.jobs.Submit(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusAccepted, job)
}

// ListJobs returns all known jobs.
//
//	@Summary		List jobs
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{array}	domain.Job
//	@Router			/api/v1/jobs [get]
func (h *Handler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobs.List())
}

// GetJob returns the current state of a single job.
//
//	@Summary		Get job
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"
//	@Success		200	{object}	domain.Job
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/jobs/{id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	job, ok := h.jobs.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "job not found",
		})
		return
	}
	c.JSON(http.StatusOK, job)
}

// JobEvents streams progress updates for a job as server-sent events until
// the job finishes or the client disconnects.
//
//	@Summary		Stream job progress
//	@Description	Server-sent events, one "progress" event per update, closed when the job reaches a terminal state.
//	@Tags			jobs
//	@Produce		text/event-stream
//	@Param			id	path	string	true	"Job ID"
//	@Success		200
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/jobs/{id}/events [get]
func (h *Handler) JobEvents(c *gin.Context) {
	updates, unsubscribe, err := h.jobs.Subscribe(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case update, open := <-updates:
			if !open {
				if job, ok := h.jobs.Get(c.Param("id")); ok {
					c.SSEvent("done", job)
				}
				return false
			}
			c.SSEvent("progress", update)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// CancelJob terminates a running job's engine process.
//
//	@Summary		Cancel job
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/jobs/{id} [delete]
func (h *Handler) CancelJob(c *gin.Context) {
	if err := h.jobs.Cancel(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "cancelling",
	})
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// bindRequest parses and maps the JSON body onto the domain request. The
// content type is translated to the closed enumeration here, at the boundary.
func (h *Handler) bindRequest(c *gin.Context) (domain.DownloadRequest, bool) {
	var body DownloadRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return domain.DownloadRequest{}, false
	}

	contentType, err := domain.ParseContentType(body.ContentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return domain.DownloadRequest{}, false
	}

	return domain.DownloadRequest{
		URL:             body.URL,
		ContentType:     contentType,
		Threads:         body.Threads,
		DestinationPath: body.DestinationPath,
	}, true
}
