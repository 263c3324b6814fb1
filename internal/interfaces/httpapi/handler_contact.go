package httpapi

import (
	"net/http"

	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitContactMessage")
	defer span.End()

	var req contactRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.contactService.Submit(ctx, usecase.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "contact submission failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{"status": "sent"})
}
