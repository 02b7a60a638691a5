package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gochat/internal/chat/service"
	"gochat/internal/common"
)

// MessageHandler exposes the message lifecycle over HTTP and fans the
// resulting events out through the Broadcaster. Rooms are keyed by
// conversation id for conversation messages and by channel id for channel
// messages.
type MessageHandler struct {
	svc       service.ChatService
	broadcast common.Broadcaster
}

func NewMessageHandler(svc service.ChatService, broadcast common.Broadcaster) *MessageHandler {
	return &MessageHandler{svc: svc, broadcast: broadcast}
}

// Register attaches all message routes. The channel listing route must come
// before the conversation one, mux matches in registration order.
func (h *MessageHandler) Register(router *mux.Router) {
	router.HandleFunc("/messages/channel/{channelId}", h.listByChannel).Methods("GET")
	router.HandleFunc("/messages/text", h.createText).Methods("POST")
	router.HandleFunc("/messages/files/base64", h.createFileEncoded).Methods("POST")
	router.HandleFunc("/messages/files", h.createFile).Methods("POST")
	router.HandleFunc("/messages/{conversationId}/files", h.mediaFiles).Methods("GET")
	router.HandleFunc("/messages/{conversationId}", h.listByConversation).Methods("GET")
	router.HandleFunc("/messages/{id}/only", h.hideForSelf).Methods("DELETE")
	router.HandleFunc("/messages/{id}", h.revoke).Methods("DELETE")
	router.HandleFunc("/messages/{id}/reacts/{type}", h.addReaction).Methods("POST")
	router.HandleFunc("/messages/{id}/share/{conversationId}", h.share).Methods("POST")
	router.HandleFunc("/votes", h.addVote).Methods("POST")
}

type createMessageRequest struct {
	ConversationID string `json:"conversationId"`
	ChannelID      string `json:"channelId"`
	Content        string `json:"content"`
}

type createEncodedRequest struct {
	ConversationID string `json:"conversationId"`
	ChannelID      string `json:"channelId"`
	Kind           string `json:"kind"`
	FileName       string `json:"fileName"`
	FileExtension  string `json:"fileExtension"`
	FileBase64     string `json:"fileBase64"`
}

type createVoteRequest struct {
	ConversationID string   `json:"conversationId"`
	Content        string   `json:"content"`
	Options        []string `json:"options"`
}

func (h *MessageHandler) listByConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conversationID := mux.Vars(r)["conversationId"]

	page, size, err := pageWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.svc.ListByConversation(r.Context(), conversationID, userID, page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast.Broadcast(conversationID, common.EventUserLastView, common.UserLastViewEvent{
		ConversationID: conversationID,
		UserID:         userID,
		LastView:       time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, result)
}

func (h *MessageHandler) listByChannel(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	channelID := mux.Vars(r)["channelId"]

	page, size, err := pageWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.svc.ListByChannel(r.Context(), channelID, userID, page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast.Broadcast(channelID, common.EventUserLastView, common.UserLastViewEvent{
		ConversationID: result.ConversationID,
		ChannelID:      channelID,
		UserID:         userID,
		LastView:       time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, result)
}

func (h *MessageHandler) createText(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.InvalidArgumentf("invalid request body"))
		return
	}

	target := common.ResolveTarget(req.ConversationID, req.ChannelID)
	view, err := h.svc.CreateText(r.Context(), userID, target, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	h.fanOutNewMessage(target, view)
	writeJSON(w, http.StatusCreated, view)
}

func (h *MessageHandler) createFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, common.InvalidArgumentf("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.InvalidArgumentf("file field is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, common.InvalidArgumentf("unreadable file"))
		return
	}

	target := common.ResolveTarget(r.FormValue("conversationId"), r.FormValue("channelId"))
	kind := common.DetectMediaKind(header.Header.Get("Content-Type"))

	view, err := h.svc.CreateFile(r.Context(), userID, target, kind, header.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}

	h.fanOutNewMessage(target, view)
	writeJSON(w, http.StatusCreated, view)
}

func (h *MessageHandler) createFileEncoded(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createEncodedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.InvalidArgumentf("invalid request body"))
		return
	}

	target := common.ResolveTarget(req.ConversationID, req.ChannelID)
	view, err := h.svc.CreateFileFromEncoded(r.Context(), userID, target, common.MessageKind(req.Kind), service.EncodedFile{
		Name:    req.FileName,
		Ext:     req.FileExtension,
		Content: req.FileBase64,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.fanOutNewMessage(target, view)
	writeJSON(w, http.StatusCreated, view)
}

func (h *MessageHandler) revoke(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	messageID := mux.Vars(r)["id"]

	route, err := h.svc.Revoke(r.Context(), messageID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	event := common.DeleteMessageEvent{
		ID:             route.MessageID,
		ConversationID: route.ConversationID,
		ChannelID:      route.ChannelID,
	}
	h.broadcast.Broadcast(route.ConversationID, common.EventDeleteMessage, event)
	if route.ChannelID != "" {
		h.broadcast.Broadcast(route.ChannelID, common.EventDeleteMessage, event)
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *MessageHandler) hideForSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	messageID := mux.Vars(r)["id"]

	if err := h.svc.HideForSelf(r.Context(), messageID, userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MessageHandler) addReaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	reactionType, err := strconv.Atoi(vars["type"])
	if err != nil {
		writeError(w, common.InvalidArgumentf("reaction type must be numeric"))
		return
	}

	event, err := h.svc.AddReaction(r.Context(), vars["id"], userID, reactionType)
	if err != nil {
		writeError(w, err)
		return
	}

	room := event.ConversationID
	if event.ChannelID != "" {
		room = event.ChannelID
	}
	h.broadcast.Broadcast(room, common.EventAddReaction, event)

	writeJSON(w, http.StatusOK, event)
}

func (h *MessageHandler) share(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	view, err := h.svc.Share(r.Context(), vars["id"], vars["conversationId"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast.Broadcast(vars["conversationId"], common.EventNewMessage, view)
	writeJSON(w, http.StatusCreated, view)
}

func (h *MessageHandler) addVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.InvalidArgumentf("invalid request body"))
		return
	}

	view, err := h.svc.AddVote(r.Context(), userID, req.ConversationID, req.Content, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast.Broadcast(req.ConversationID, common.EventNewMessage, view)
	writeJSON(w, http.StatusCreated, view)
}

// mediaFiles serves both shapes: without a kind query it returns the digest
// (recent media grouped by kind), with one it runs a filtered search.
func (h *MessageHandler) mediaFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conversationID := mux.Vars(r)["conversationId"]

	query := r.URL.Query()
	kind := query.Get("kind")
	if kind == "" {
		digest, err := h.svc.MediaDigest(r.Context(), conversationID, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, digest)
		return
	}

	start, err := timeParam(query.Get("start"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := timeParam(query.Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	views, err := h.svc.MediaSearch(r.Context(), conversationID, userID, common.MessageKind(kind), query.Get("senderId"), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *MessageHandler) fanOutNewMessage(target common.Target, view service.MessageView) {
	if target.IsChannel() {
		h.broadcast.Broadcast(target.ChannelID(), common.EventNewMessageOfChannel, view)
		return
	}
	h.broadcast.Broadcast(target.ConversationID(), common.EventNewMessage, view)
}

func pageWindow(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	page := 0
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, common.InvalidArgumentf("page must be numeric")
		}
		page = parsed
	}

	size := 20
	if raw := query.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, common.InvalidArgumentf("size must be numeric")
		}
		size = parsed
	}

	return page, size, nil
}

func timeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, common.InvalidArgumentf("time must be RFC3339")
	}
	return &parsed, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes.
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
