package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messageboard/dto"
	"messageboard/models"
	"messageboard/repositories"
	"messageboard/services"
	"messageboard/session"
	"messageboard/views"
)

type memoryMessages struct {
	rows []dto.MessageDTO
	err  error
}

func (m *memoryMessages) Create(_ context.Context, message *models.Message) error {
	if m.err != nil {
		return m.err
	}
	message.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, dto.MessageDTO{ID: message.ID, Content: message.Content})
	return nil
}

func (m *memoryMessages) List(context.Context) ([]dto.MessageDTO, error) {
	return m.rows, m.err
}

func (m *memoryMessages) FindByID(_ context.Context, id uint) (*dto.MessageDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryMessages) UpdateContent(_ context.Context, id uint, content string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Content = content
			return true, nil
		}
	}
	return false, nil
}

func newMessageHandler(t *testing.T, repo *memoryMessages) *MessageHandler {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	return NewMessageHandler(NewHandler(renderer), services.NewMessageService(repo))
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withUser(r *http.Request, user *models.SessionUser) *http.Request {
	return r.WithContext(session.WithUser(r.Context(), user))
}

func TestCreateMessage(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		repo := &memoryMessages{}
		h := newMessageHandler(t, repo)

		rec := httptest.NewRecorder()
		h.CreateMessage(rec, formRequest(http.MethodPost, "/message", url.Values{"message": {"hi"}}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized\n", rec.Body.String())
		assert.Empty(t, repo.rows)
	})

	t.Run("logged in", func(t *testing.T) {
		repo := &memoryMessages{}
		h := newMessageHandler(t, repo)

		req := withUser(formRequest(http.MethodPost, "/message", url.Values{"message": {"hi"}}),
			&models.SessionUser{ID: 1, Username: "alice"})
		rec := httptest.NewRecorder()
		h.CreateMessage(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "hi", repo.rows[0].Content)
	})

	t.Run("storage failure", func(t *testing.T) {
		h := newMessageHandler(t, &memoryMessages{err: errors.New("disk full")})

		req := withUser(formRequest(http.MethodPost, "/message", url.Values{"message": {"hi"}}),
			&models.SessionUser{ID: 1, Username: "alice"})
		rec := httptest.NewRecorder()
		h.CreateMessage(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Something went wrong")
	})
}

func TestHomeHandler(t *testing.T) {
	author := "alice"
	h := newMessageHandler(t, &memoryMessages{rows: []dto.MessageDTO{
		{ID: 1, Content: "first", Author: &author},
		{ID: 2, Content: "orphan"},
	}})

	rec := httptest.NewRecorder()
	h.HomeHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "first"), strings.Index(body, "orphan"))
	assert.Contains(t, body, "anonymous")
	assert.NotContains(t, body, `action="/message"`, "anonymous visitors get no post form")
}

func TestHomeHandlerStorageFailure(t *testing.T) {
	h := newMessageHandler(t, &memoryMessages{err: errors.New("db down")})

	rec := httptest.NewRecorder()
	h.HomeHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEditForm(t *testing.T) {
	h := newMessageHandler(t, &memoryMessages{rows: []dto.MessageDTO{{ID: 7, Content: "draft"}}})

	tests := []struct {
		id   string
		want string
	}{
		{id: "7", want: `hx-put="/message/7"`},
		{id: "8", want: ""},
		{id: "x", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/message/"+tc.id+"/edit", nil),
				map[string]string{"id": tc.id})
			rec := httptest.NewRecorder()
			h.EditForm(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tc.want == "" {
				assert.Empty(t, strings.TrimSpace(rec.Body.String()))
				return
			}
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestUpdateMessage(t *testing.T) {
	repo := &memoryMessages{rows: []dto.MessageDTO{{ID: 1, Content: "old"}, {ID: 2, Content: "keep"}}}
	h := newMessageHandler(t, repo)

	req := mux.SetURLVars(formRequest(http.MethodPut, "/message/1", url.Values{"message": {"new"}}),
		map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.UpdateMessage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new")
	assert.Equal(t, "new", repo.rows[0].Content)
	assert.Equal(t, "keep", repo.rows[1].Content)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewSystemHandler(pingerFunc(func(context.Context) error { return nil })).
		Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	NewSystemHandler(pingerFunc(func(context.Context) error { return errors.New("gone") })).
		Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
		reason string
	}{
		{services.ErrValidation, http.StatusBadRequest, "missing_field"},
		{services.ErrDuplicateUsername, http.StatusBadRequest, "duplicate_username"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{fmt.Errorf("%w: boom", services.ErrPersistence), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.status, statusFor(tc.err), tc.err.Error())
		assert.Equal(t, tc.reason, failureReason(tc.err), tc.err.Error())
	}
}

func TestUserFormsRedirectWhenLoggedIn(t *testing.T) {
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	h := NewUserHandler(NewHandler(renderer), nil, session.NewCookies(nil, nil, false))
	alice := &models.SessionUser{ID: 1, Username: "alice"}

	for path, handle := range map[string]http.HandlerFunc{
		"/login":    h.LoginHandler,
		"/register": h.RegisterHandler,
	} {
		rec := httptest.NewRecorder()
		handle(rec, withUser(httptest.NewRequest(http.MethodGet, path, nil), alice))
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get("Location"), path)

		rec = httptest.NewRecorder()
		handle(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `name="password"`, path)
	}
}
