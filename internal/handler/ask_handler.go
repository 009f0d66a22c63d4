// internal/handler/ask_handler.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"homework-service/internal/domain"
	"homework-service/internal/provider/ai"
	"homework-service/pkg/response"

	"go.uber.org/zap"
)

const maxPhotoMemory = 10 << 20 // 10 MiB

type AskHandler struct {
	ai     ai.Provider
	logger *zap.Logger
}

func NewAskHandler(aiProvider ai.Provider, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		ai:     aiProvider,
		logger: logger,
	}
}

// HandleAsk accepts a question as multipart form data (question field plus
// optional photo file) or as a JSON body, and returns the provider answer.
func (h *AskHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.parseAskRequest(r)
	if err != nil {
		h.logger.Error("failed to parse ask request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.ai.Answer(ctx, req)
	if err != nil {
		// Upstream detail stays server-side; clients get a fixed message.
		h.logger.Error("AI error",
			zap.String("question", req.Question),
			zap.Bool("has_photo", req.Photo != nil),
			zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "AI error")
		return
	}

	response.JSON(w, http.StatusOK, domain.AskResponse{Answer: answer})
}

func (h *AskHandler) parseAskRequest(r *http.Request) (*domain.AskRequest, error) {
	req := &domain.AskRequest{}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxPhotoMemory); err != nil {
			return nil, err
		}
		req.Question = r.FormValue("question")

		if file, header, err := r.FormFile("photo"); err == nil {
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				return nil, err
			}
			req.Photo = &domain.Photo{
				Data:     data,
				MimeType: header.Header.Get("Content-Type"),
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, err
		}
	}

	if req.Question == "" {
		req.Question = "What is this?"
	}
	return req, nil
}
