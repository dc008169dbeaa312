package resumes

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"cvforge/internal/shared/server/respond"
	"cvforge/internal/shared/storage/object"
	"cvforge/resume/render"
	"cvforge/resume/schema"
)

const maxUploadSize = 16 << 20 // 16MB

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc   *Service
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Store: store}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.POST("/resumes/:id/generate", h.generate)
	rg.GET("/files/*key", h.download)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err, "failed to upload resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.Created(c, resumeResponse{Resume: resume})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list resumes", nil)
		return
	}
	if items == nil {
		items = []Resume{}
	}
	respond.OK(c, gin.H{"resumes": items})
}

func (h *Handler) get(c *gin.Context) {
	resume, versions, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to load resume")
		return
	}
	if versions == nil {
		versions = []Version{}
	}
	respond.OK(c, resumeResponse{Resume: resume, Versions: versions})
}

func (h *Handler) generate(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	version, err := h.Svc.Generate(c.Request.Context(), resumeID)
	if err != nil {
		h.writeError(c, err, "failed to generate documents")
		return
	}

	c.Set("versionNumber", version.VersionNumber)
	respond.Created(c, toVersionResponse(version))
}

func (h *Handler) download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file key is required", nil)
		return
	}

	rc, err := h.Store.Open(c.Request.Context(), key)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		return
	}
	defer rc.Close()

	name := path.Base(key)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", contentTypeForName(name))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

type resumeResponse struct {
	Resume
	Versions []Version `json:"versions,omitempty"`
}

type versionResponse struct {
	Version
	DocxURL string `json:"docxUrl"`
	PDFURL  string `json:"pdfUrl,omitempty"`
}

func toVersionResponse(v Version) versionResponse {
	out := versionResponse{Version: v, DocxURL: "/api/v1/files/" + v.DocxKey}
	if v.PDFKey != "" {
		out.PDFURL = "/api/v1/files/" + v.PDFKey
	}
	return out
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var schemaErr *schema.SchemaError
	var ioErr *render.IOError
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.As(err, &schemaErr):
		respond.Error(c, http.StatusUnprocessableEntity, "schema_error", "resume record failed validation", schemaErr.Violations)
	case errors.As(err, &ioErr):
		respond.Error(c, http.StatusInternalServerError, "io_error", fallback, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", fallback, nil)
	}
}

func contentTypeForName(name string) string {
	switch {
	case strings.HasSuffix(name, ".docx"):
		return docxMimeType
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}
