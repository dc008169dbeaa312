package resumes

import "time"

// Resume is an uploaded resume with its extracted structured record.
type Resume struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"originalFilename"`
	YAMLKey          string    `json:"-"`
	GenerationCount  int       `json:"generationCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Version is one generated document pair for a resume. PDFKey is empty
// when PDF conversion failed or was disabled.
type Version struct {
	ID            string    `json:"id"`
	ResumeID      string    `json:"resumeId"`
	VersionNumber int       `json:"versionNumber"`
	DocxKey       string    `json:"docxKey"`
	PDFKey        string    `json:"pdfKey,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
