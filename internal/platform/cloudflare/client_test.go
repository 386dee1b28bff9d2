package cloudflare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a Client at an httptest server.
func testClient(srv *httptest.Server) *Client {
	c := NewClient("test-token", 5*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestGetZoneID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "example.com", r.URL.Query().Get("name"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(apiResponse{
			Success: true,
			Result:  json.RawMessage(`[{"id":"zone-123"}]`),
		})
	}))
	defer srv.Close()

	id, err := testClient(srv).GetZoneID(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "zone-123", id)
}

func TestGetZoneID_NoZone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Result: json.RawMessage(`[]`)})
	}))
	defer srv.Close()

	_, err := testClient(srv).GetZoneID(context.Background(), "example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no zone found")
}

func TestFindRecord_NotFoundIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jellyfin.example.com", r.URL.Query().Get("name"))
		assert.Equal(t, "A", r.URL.Query().Get("type"))
		_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Result: json.RawMessage(`[]`)})
	}))
	defer srv.Close()

	rec, err := testClient(srv).FindRecord(context.Background(), "zone-123", "jellyfin.example.com", "A")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestEnsureRecord_CreatesWhenAbsent(t *testing.T) {
	var createBody Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Result: json.RawMessage(`[]`)})
		case http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&createBody))
			createBody.ID = "rec-1"
			result, _ := json.Marshal(createBody)
			_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Result: result})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	rec, created, err := testClient(srv).EnsureRecord(context.Background(), "zone-123", "jellyfin.example.com", "203.0.113.10")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "A", createBody.Type)
	assert.Equal(t, "203.0.113.10", createBody.Content)
	assert.True(t, createBody.Proxied)
	assert.Equal(t, 1, createBody.TTL)
}

func TestEnsureRecord_UpdatesExisting(t *testing.T) {
	var updatedID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(apiResponse{
				Success: true,
				Result:  json.RawMessage(`[{"id":"rec-9","type":"A","name":"jellyfin.example.com","content":"198.51.100.1"}]`),
			})
		case http.MethodPut:
			updatedID = r.URL.Path[len(r.URL.Path)-5:]
			var rec Record
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			rec.ID = "rec-9"
			result, _ := json.Marshal(rec)
			_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Result: result})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	rec, created, err := testClient(srv).EnsureRecord(context.Background(), "zone-123", "jellyfin.example.com", "203.0.113.10")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "rec-9", updatedID)
	assert.Equal(t, "203.0.113.10", rec.Content)
}

func TestDo_RejectionStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":9109,"message":"Invalid access token"}]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).GetZoneID(context.Background(), "example.com")
	require.Error(t, err)
	assert.True(t, IsRejection(err))
}

func TestDo_APILevelFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(apiResponse{
			Success: false,
			Errors:  []apiError{{Code: 1003, Message: "Invalid zone identifier"}},
		})
	}))
	defer srv.Close()

	_, err := testClient(srv).FindRecord(context.Background(), "bad", "x", "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid zone identifier")
}
