package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/varsilias/openclaw-setup/internal/buildinfo"
	"github.com/varsilias/openclaw-setup/internal/chat"
	"github.com/varsilias/openclaw-setup/internal/models"
	"github.com/varsilias/openclaw-setup/pkg/types"
	"github.com/varsilias/openclaw-setup/pkg/utils"
)

const maxChatBody = 1 << 20

type Handlers struct {
	log    *slog.Logger
	chat   *chat.Controller
	models models.Manager
	model  string
}

func NewHandlers(log *slog.Logger, chatCtrl *chat.Controller, manager models.Manager, model string) *Handlers {
	return &Handlers{
		log:    log,
		chat:   chatCtrl,
		models: manager,
		model:  model,
	}
}

// Health is a basic liveness endpoint.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{
		"status":    true,
		"message":   "openclaw-setup",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	utils.JSON(w, http.StatusOK, res)
}

func (h *Handlers) Version(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{
		"version":  buildinfo.Version,
		"commit":   buildinfo.Commit,
		"built_at": buildinfo.BuiltAt,
	}

	utils.JSON(w, http.StatusOK, res)
}

// ListModels GET /api/models
func (h *Handlers) ListModels(w http.ResponseWriter, r *http.Request) {
	list, err := h.models.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"models": list, "active": h.model})
}

// Chat POST /api/chat { messages: [{role, content}] }
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChatRequest(http.MaxBytesReader(w, r.Body, maxChatBody))
	if err != nil {
		err = &chat.Error{Kind: chat.InternalFailure, Err: err}
		h.chatFailed(w, r, err)
		return
	}

	msg, _, err := h.chat.Reply(r.Context(), req.Messages)
	if err != nil {
		h.chatFailed(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, msg)
}

func (h *Handlers) chatFailed(w http.ResponseWriter, r *http.Request, err error) {
	if chat.KindOf(err) == chat.InternalFailure {
		h.log.Error("error in chat api", "err", err.Error(), "path", r.URL.Path)
	}
	status, body := failureResponse(err)
	utils.JSON(w, status, body)
}

// decodeChatRequest reads exactly one JSON value; trailing bytes are an error.
func decodeChatRequest(r io.Reader) (types.ChatRequest, error) {
	var req types.ChatRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("decode chat request: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, errors.New("decode chat request: unexpected data after JSON body")
	}
	return req, nil
}

// failureResponse maps a failed turn onto the wire. Only internal failures
// leave the caller without a renderable chat bubble.
func failureResponse(err error) (int, any) {
	switch chat.KindOf(err) {
	case chat.NoCredential:
		return http.StatusOK, types.Message{Role: types.RoleModel, Content: chat.AdminNotice}
	case chat.UpstreamFailure:
		return http.StatusOK, types.Message{Role: types.RoleModel, Content: chat.TroubleThinking}
	default:
		return http.StatusInternalServerError, map[string]any{"error": "Internal Server Error"}
	}
}
