package member

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"gochat/internal/common"
)

// HistoryCleaner wipes a conversation from one viewer's perspective. The
// message lifecycle service satisfies it.
type HistoryCleaner interface {
	HideAllForSelf(ctx context.Context, conversationID, userID string) error
}

// Handler exposes the membership flows plus the per-viewer history wipe.
type Handler struct {
	members MemberService
	chat    HistoryCleaner
}

func NewHandler(members MemberService, chat HistoryCleaner) *Handler {
	return &Handler{members: members, chat: chat}
}

func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/conversations/{id}/members/me", h.leave).Methods("DELETE")
	router.HandleFunc("/conversations/{id}/members/{userId}", h.removeMember).Methods("DELETE")
	router.HandleFunc("/conversations/{id}/members", h.addMembers).Methods("POST")
	router.HandleFunc("/conversations/{id}/managers", h.promoteManagers).Methods("POST")
	router.HandleFunc("/conversations/{id}/join", h.joinFromLink).Methods("POST")
	router.HandleFunc("/conversations/{id}/messages", h.clearForSelf).Methods("DELETE")
}

type userListRequest struct {
	UserIDs []string `json:"userIds"`
}

func (h *Handler) leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.members.Leave(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req userListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.InvalidArgumentf("invalid request body"))
		return
	}

	if err := h.members.AddMembers(r.Context(), mux.Vars(r)["id"], userID, req.UserIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	if err := h.members.RemoveMember(r.Context(), vars["id"], userID, vars["userId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) promoteManagers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req userListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.InvalidArgumentf("invalid request body"))
		return
	}

	if err := h.members.PromoteManagers(r.Context(), mux.Vars(r)["id"], userID, req.UserIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) joinFromLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.members.JoinFromLink(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clearForSelf wipes the conversation from the caller's view only.
func (h *Handler) clearForSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.chat.HideAllForSelf(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	http.Error(w, err.Error(), status)
}
