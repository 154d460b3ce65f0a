package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	authdomain "task-manager-backend/internal/auth/domain"
	authRepo "task-manager-backend/internal/auth/repository"
	authUsecase "task-manager-backend/internal/auth/usecase"
	taskdomain "task-manager-backend/internal/task/domain"
	taskRepo "task-manager-backend/internal/task/repository"
	taskUsecase "task-manager-backend/internal/task/usecase"
	"task-manager-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tokens := token.NewService("router-test-secret", time.Hour)
	authUc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(db), tokens)
	taskUc := taskUsecase.NewTaskUsecase(taskRepo.NewGormTaskRepository(db))

	r := gin.New()
	SetupRoutes(r, authUc, taskUc, tokens)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, accessToken string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", accessToken)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: decode response %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, decoded
}

func signUp(t *testing.T, r *gin.Engine, email, name string) string {
	t.Helper()
	w, body := do(t, r, http.MethodPost, "/api/auth/sign_up", "", gin.H{
		"email": email, "name": name, "password": "hunter22",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("sign up %s: expected 201, got %d: %v", email, w.Code, body)
	}
	accessToken, _ := body["accessToken"].(string)
	if accessToken == "" {
		t.Fatalf("sign up %s: expected accessToken in response", email)
	}
	return accessToken
}

func TestSignUpAndLoginFlow(t *testing.T) {
	r := newTestRouter(t)
	signUp(t, r, "alice@example.com", "Alice Smith")

	w, body := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "hunter22",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %v", w.Code, body)
	}
	for _, key := range []string{"message", "user", "accessToken", "accessTokenExpiresAt"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("login response missing %q: %v", key, body)
		}
	}
	user := body["user"].(map[string]any)
	if _, leaked := user["password"]; leaked {
		t.Fatal("password hash leaked in login response")
	}

	w, body = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad login: expected 400, got %d", w.Code)
	}
	if body["success"] != false {
		t.Fatalf("expected success:false envelope, got %v", body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodPut, "/api/auth/update"},
		{http.MethodPut, "/api/auth/update-password"},
		{http.MethodPut, "/api/auth/update-email"},
		{http.MethodPost, "/api/task/create"},
		{http.MethodGet, "/api/task/get-tasks"},
		{http.MethodGet, "/api/task/get-task/some-id"},
		{http.MethodPut, "/api/task/update-task/some-id"},
		{http.MethodDelete, "/api/task/delete-task/some-id"},
	}
	for _, route := range routes {
		w, _ := do(t, r, route.method, route.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", route.method, route.path, w.Code)
		}
	}
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)
	accessToken := signUp(t, r, "alice@example.com", "Alice Smith")

	w, task := do(t, r, http.MethodPost, "/api/task/create", accessToken, gin.H{
		"title": "A", "description": "B", "dueDate": "2025-01-01", "priority": "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %v", w.Code, task)
	}
	taskID := task["id"].(string)
	if task["status"] != "pending" || task["priority"] != "high" {
		t.Fatalf("create: unexpected defaults %v", task)
	}

	w, got := do(t, r, http.MethodGet, "/api/task/get-task/"+taskID, accessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if got["title"] != "A" || got["description"] != "B" {
		t.Fatalf("get: unexpected task %v", got)
	}

	// Unknown fields in an update body are silently dropped.
	w, updated := do(t, r, http.MethodPut, "/api/task/update-task/"+taskID, accessToken, gin.H{
		"title": "X", "hacker": "field",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %v", w.Code, updated)
	}
	if updated["title"] != "X" {
		t.Fatalf("update: expected title X, got %v", updated["title"])
	}
	if _, ok := updated["hacker"]; ok {
		t.Fatal("update: unknown field persisted")
	}

	w, list := do(t, r, http.MethodGet, "/api/task/get-tasks?status=pending&limit=5", accessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	pagination := list["pagination"].(map[string]any)
	if pagination["total"].(float64) != 1 || pagination["totalPages"].(float64) != 1 {
		t.Fatalf("list: unexpected pagination %v", pagination)
	}

	w, _ = do(t, r, http.MethodDelete, "/api/task/delete-task/"+taskID, accessToken, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w, _ = do(t, r, http.MethodDelete, "/api/task/delete-task/"+taskID, accessToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestTaskCrossUserAccess(t *testing.T) {
	r := newTestRouter(t)
	aliceToken := signUp(t, r, "alice@example.com", "Alice Smith")
	bobToken := signUp(t, r, "bob@example.com", "Bob Brown")

	_, task := do(t, r, http.MethodPost, "/api/task/create", aliceToken, gin.H{
		"title": "private", "description": "d", "dueDate": "2025-01-01",
	})
	taskID := task["id"].(string)

	// Every cross-user access looks like a missing task.
	w, _ := do(t, r, http.MethodGet, "/api/task/get-task/"+taskID, bobToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user get: expected 404, got %d", w.Code)
	}
	w, _ = do(t, r, http.MethodPut, "/api/task/update-task/"+taskID, bobToken, gin.H{"title": "stolen"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user update: expected 404, got %d", w.Code)
	}
	w, _ = do(t, r, http.MethodDelete, "/api/task/delete-task/"+taskID, bobToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user delete: expected 404, got %d", w.Code)
	}

	w, list := do(t, r, http.MethodGet, "/api/task/get-tasks", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if total := list["pagination"].(map[string]any)["total"].(float64); total != 0 {
		t.Fatalf("expected bob to see no tasks, got %v", total)
	}
}

func TestAuthUpdateEndpoints(t *testing.T) {
	r := newTestRouter(t)
	accessToken := signUp(t, r, "alice@example.com", "Alice Smith")

	w, body := do(t, r, http.MethodPut, "/api/auth/update", accessToken, gin.H{"name": "Alice Jones"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %v", w.Code, body)
	}
	if body["user"].(map[string]any)["name"] != "Alice Jones" {
		t.Fatalf("update: unexpected user %v", body["user"])
	}

	w, _ = do(t, r, http.MethodPut, "/api/auth/update-password", accessToken, gin.H{
		"email": "alice@example.com", "oldPassword": "hunter22", "newPassword": "newpass99",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update-password: expected 200, got %d", w.Code)
	}

	w, body = do(t, r, http.MethodPut, "/api/auth/update-email", accessToken, gin.H{
		"currentEmail": "alice@example.com", "newEmail": "alice2@example.com", "password": "newpass99",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update-email: expected 200, got %d: %v", w.Code, body)
	}
	if body["accessToken"] == "" {
		t.Fatal("update-email: expected a re-issued token")
	}

	w, _ = do(t, r, http.MethodPost, "/api/auth/logout", accessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}

	// Signup with the old email now works again only if it was freed.
	w, _ = do(t, r, http.MethodPost, "/api/auth/sign_up", "", gin.H{
		"email": "alice2@example.com", "name": "Copy Cat", "password": "x12345",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("duplicate signup: expected 401, got %d", w.Code)
	}
}
