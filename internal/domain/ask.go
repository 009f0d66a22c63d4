// internal/domain/ask.go
package domain

// Photo is an uploaded image, held in memory for one request only.
type Photo struct {
	Data     []byte
	MimeType string
}

// AskRequest is a homework question with an optional photo attachment.
type AskRequest struct {
	Question string `json:"question"`
	Photo    *Photo `json:"-"`
}

// AskResponse is the success payload of POST /ask.
type AskResponse struct {
	Answer string `json:"answer"`
}
