package member

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"gochat/internal/common"
)

// fakeMemberService returns a fixed error from every flow.
type fakeMemberService struct {
	err error
}

func (f *fakeMemberService) Leave(context.Context, string, string) error { return f.err }
func (f *fakeMemberService) AddMembers(context.Context, string, string, []string) error {
	return f.err
}
func (f *fakeMemberService) RemoveMember(context.Context, string, string, string) error {
	return f.err
}
func (f *fakeMemberService) JoinFromLink(context.Context, string, string) error { return f.err }
func (f *fakeMemberService) PromoteManagers(context.Context, string, string, []string) error {
	return f.err
}

type fakeChatService struct {
	hideAllErr error
	hiddenConv string
	hiddenUser string
}

func (f *fakeChatService) HideAllForSelf(_ context.Context, conversationID, userID string) error {
	f.hiddenConv = conversationID
	f.hiddenUser = userID
	return f.hideAllErr
}

func newMemberRouter(members MemberService, chat *fakeChatService) *mux.Router {
	router := mux.NewRouter()
	NewHandler(members, chat).Register(router)
	return router
}

func perform(router *mux.Router, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if userID != "" {
		req = req.WithContext(common.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"leave", http.MethodDelete, "/conversations/conv-1/members/me", nil},
		{"remove member", http.MethodDelete, "/conversations/conv-1/members/u2", nil},
		{"add members", http.MethodPost, "/conversations/conv-1/members", map[string]interface{}{"userIds": []string{"u2"}}},
		{"promote", http.MethodPost, "/conversations/conv-1/managers", map[string]interface{}{"userIds": []string{"u2"}}},
		{"join", http.MethodPost, "/conversations/conv-1/join", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newMemberRouter(&fakeMemberService{}, &fakeChatService{})
			rec := perform(router, tc.method, tc.path, "u1", tc.body)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", common.Forbiddenf("no"), http.StatusForbidden},
		{"not found", common.NotFoundf("gone"), http.StatusNotFound},
		{"conflict", common.Conflictf("dup"), http.StatusConflict},
		{"invalid", common.InvalidArgumentf("bad"), http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newMemberRouter(&fakeMemberService{err: tc.err}, &fakeChatService{})
			rec := perform(router, http.MethodPost, "/conversations/conv-1/join", "u1", nil)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestClearForSelf(t *testing.T) {
	chat := &fakeChatService{}
	router := newMemberRouter(&fakeMemberService{}, chat)

	rec := perform(router, http.MethodDelete, "/conversations/conv-1/messages", "u1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "conv-1", chat.hiddenConv)
	assert.Equal(t, "u1", chat.hiddenUser)
}

func TestUnauthorized(t *testing.T) {
	router := newMemberRouter(&fakeMemberService{}, &fakeChatService{})

	rec := perform(router, http.MethodPost, "/conversations/conv-1/join", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
