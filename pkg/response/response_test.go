package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github-webhook-events/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, "pong")

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Status != response.StatusSuccess {
			t.Errorf("expected status %q, got %q", response.StatusSuccess, resp.Status)
		}
		if resp.Message != "pong" {
			t.Errorf("expected message 'pong', got %q", resp.Message)
		}
	})

	t.Run("Created attaches event", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Created(c, "Event processed and stored", map[string]string{"request_id": "abc123"})

		if w.Code != http.StatusCreated {
			t.Errorf("expected %d, got %d", http.StatusCreated, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		ev, ok := resp.Event.(map[string]interface{})
		if !ok || ev["request_id"] != "abc123" {
			t.Errorf("unexpected event payload: %v", resp.Event)
		}
	})

	t.Run("Skipped", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Skipped(c, "not tracked")

		if w.Code != http.StatusOK {
			t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Status != response.StatusSkipped {
			t.Errorf("expected status %q, got %q", response.StatusSkipped, resp.Status)
		}
		if resp.Event != nil {
			t.Errorf("skipped response must not carry an event, got %v", resp.Event)
		}
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, http.StatusBadRequest, errors.New("missing header"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Status != response.StatusError {
			t.Errorf("expected status %q, got %q", response.StatusError, resp.Status)
		}
		if resp.Message != "missing header" {
			t.Errorf("expected message 'missing header', got %q", resp.Message)
		}
	})

	t.Run("InternalError hides cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("expected default message, got %q", resp.Message)
		}
	})
}
