package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"volunteerhub/internal/models"
)

var testJWTSecret = []byte("volunteerhub_test_jwt_secret_1234567890")

// memUserRepo is an in-memory stand-in for the users collection.
type memUserRepo struct {
	users []*models.User
	err   error
}

func (r *memUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Insert(_ context.Context, user *models.User) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	user.ID = bson.NewObjectID()
	stored := *user
	r.users = append(r.users, &stored)
	return user.ID.Hex(), nil
}

// memActivityRepo is an in-memory stand-in for the activities collection.
type memActivityRepo struct {
	activities []*models.Activity
	err        error
}

func (r *memActivityRepo) All(_ context.Context) ([]models.Activity, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Activity{}
	for _, a := range r.activities {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memActivityRepo) Insert(_ context.Context, activity *models.Activity) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	activity.ID = bson.NewObjectID()
	stored := *activity
	r.activities = append(r.activities, &stored)
	return activity.ID.Hex(), nil
}

func (r *memActivityRepo) AddParticipant(_ context.Context, id string, participant models.Participant) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, a := range r.activities {
		if a.ID.Hex() == id {
			a.Participants = append(a.Participants, participant)
			return true, nil
		}
	}
	return false, nil
}

// memPostRepo is an in-memory stand-in for the communityPosts collection.
type memPostRepo struct {
	posts []*models.CommunityPost
	err   error
}

func (r *memPostRepo) AllByNewest(_ context.Context) ([]models.CommunityPost, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.CommunityPost{}
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memPostRepo) Insert(_ context.Context, post *models.CommunityPost) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	post.ID = bson.NewObjectID()
	stored := *post
	r.posts = append(r.posts, &stored)
	return post.ID.Hex(), nil
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return out
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}
