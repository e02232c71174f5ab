package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatapp/backend/handlers/mocks"
	"chatapp/backend/logger"
	"chatapp/backend/models"
	"chatapp/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newUserHandler(t *testing.T) (*UserHandler, *mocks.MockUserStore) {
	users := mocks.NewMockUserStore(gomock.NewController(t))
	return &UserHandler{Users: users, JWTSecret: testSecret, JWTExpiry: time.Hour, Log: logger.NewNop()}, users
}

func TestRegisterUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, users := newUserHandler(t)
		newID := primitive.NewObjectID()
		users.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, models.ErrUserNotFound)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, u *models.User) error {
			assert.Equal(t, "Alice", u.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
			u.ID = newID
			u.Pic = models.DefaultPic
			return nil
		})

		rr := httptest.NewRecorder()
		body := map[string]string{"name": "Alice", "email": " alice@example.com ", "password": "secret"}
		h.RegisterUser(rr, newRequest(t, http.MethodPost, "/api/user", body, primitive.NilObjectID))

		require.Equal(t, http.StatusCreated, rr.Code)
		got := decodeBody[models.AuthResponse](t, rr)
		assert.Equal(t, newID, got.ID)
		assert.Equal(t, models.DefaultPic, got.Pic)
		assert.NotContains(t, rr.Body.String(), "password")

		tokenUser, err := utils.GetUserIDFromToken(got.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, newID, tokenUser)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		h, _ := newUserHandler(t)
		rr := httptest.NewRecorder()
		h.RegisterUser(rr, newRequest(t, http.MethodPost, "/api/user", map[string]string{"name": "Alice"}, primitive.NilObjectID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Please Enter all the Fields", errorMessage(t, rr))
	})

	t.Run("Email Exists", func(t *testing.T) {
		h, users := newUserHandler(t)
		users.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(&models.User{ID: primitive.NewObjectID()}, nil)

		rr := httptest.NewRecorder()
		body := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"}
		h.RegisterUser(rr, newRequest(t, http.MethodPost, "/api/user", body, primitive.NilObjectID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User already exists", errorMessage(t, rr))
	})

	t.Run("Duplicate On Insert", func(t *testing.T) {
		h, users := newUserHandler(t)
		users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, models.ErrUserNotFound)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.ErrEmailTaken)

		rr := httptest.NewRecorder()
		body := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"}
		h.RegisterUser(rr, newRequest(t, http.MethodPost, "/api/user", body, primitive.NilObjectID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User already exists", errorMessage(t, rr))
	})

	t.Run("Lookup Failure", func(t *testing.T) {
		h, users := newUserHandler(t)
		users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		rr := httptest.NewRecorder()
		body := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"}
		h.RegisterUser(rr, newRequest(t, http.MethodPost, "/api/user", body, primitive.NilObjectID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestLoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.User{ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@example.com", Password: string(hash), Pic: "a.png"}

	tests := []struct {
		name           string
		email          string
		password       string
		found          *models.User
		findErr        error
		expectedStatus int
	}{
		{name: "Success", email: "alice@example.com", password: "secret", found: alice, expectedStatus: http.StatusOK},
		{name: "Wrong Password", email: "alice@example.com", password: "nope", found: alice, expectedStatus: http.StatusUnauthorized},
		{name: "Unknown Email", email: "bob@example.com", password: "secret", findErr: models.ErrUserNotFound, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, users := newUserHandler(t)
			users.EXPECT().FindByEmail(gomock.Any(), tt.email).Return(tt.found, tt.findErr)

			rr := httptest.NewRecorder()
			h.LoginUser(rr, newRequest(t, http.MethodPost, "/api/user/login", map[string]string{"email": tt.email, "password": tt.password}, primitive.NilObjectID))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Invalid Email or Password", errorMessage(t, rr))
				return
			}
			got := decodeBody[models.AuthResponse](t, rr)
			assert.Equal(t, alice.ID, got.ID)
			assert.NotEmpty(t, got.Token)
		})
	}
}

func TestSearchUsers(t *testing.T) {
	h, users := newUserHandler(t)
	caller := primitive.NewObjectID()
	bob := models.UserSummary{ID: primitive.NewObjectID(), Name: "Bob"}
	users.EXPECT().Search(gomock.Any(), "bo", caller).Return([]models.UserSummary{bob}, nil)

	rr := httptest.NewRecorder()
	h.SearchUsers(rr, newRequest(t, http.MethodGet, "/api/user?search=bo", nil, caller))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[[]models.UserSummary](t, rr)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)
}

func TestSearchUsersNoMatches(t *testing.T) {
	h, users := newUserHandler(t)
	caller := primitive.NewObjectID()
	users.EXPECT().Search(gomock.Any(), "", caller).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.SearchUsers(rr, newRequest(t, http.MethodGet, "/api/user", nil, caller))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
