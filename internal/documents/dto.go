package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	FileURL     string    `json:"fileUrl"`
	FileName    string    `json:"fileName"`
	PreviewText string    `json:"previewText,omitempty"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		Title:       doc.Title,
		Subject:     doc.Subject,
		FileURL:     doc.FileURL,
		FileName:    doc.FileName,
		PreviewText: doc.PreviewText,
		UploadedBy:  doc.UploadedBy,
		CreatedAt:   doc.CreatedAt,
	}
}
