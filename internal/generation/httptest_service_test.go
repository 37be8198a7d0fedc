package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/calebsorensen/notewright/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the full HTTP serialization path: httptest server →
// llm client → generation service → contract validation and filtering. They
// guard against mock-drift between the wire format and the parsing layer.

func newTestService(t *testing.T, handler http.HandlerFunc) (Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.APIKey = "test-key"

	return NewService(llm.NewClient(cfg, llm.NoopObserver{})), srv
}

func modelReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			}},
		},
	})
	require.NoError(t, err)
}

func noteRequest(clients ...domain.Client) NoteRequest {
	return NoteRequest{
		NoteType:   domain.NoteSOAP,
		Clients:    clients,
		Selections: domain.NewSelections(),
	}
}

func TestGenerateNotes_EmptyClientList_NoCall(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	result, err := svc.GenerateNotes(context.Background(), noteRequest())
	require.NoError(t, err)
	assert.Empty(t, result.Notes)
	assert.Zero(t, result.Dropped)
	assert.Equal(t, int32(0), calls.Load(), "an empty client list must not reach the endpoint")
}

func TestGenerateNotes_FiltersUnrequestedClients(t *testing.T) {
	entries := []domain.GeneratedNote{
		{ClientID: "a", ClientName: "Alice", Note: "note for a"},
		{ClientID: "c", ClientName: "Charlie", Note: "note for c"},
		{ClientID: "b", ClientName: "Bob", Note: "note for b"},
	}
	payload, err := json.Marshal(entries)
	require.NoError(t, err)

	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, string(payload))
	})

	result, err := svc.GenerateNotes(context.Background(), noteRequest(
		domain.Client{ID: "a", Name: "Alice"},
		domain.Client{ID: "b", Name: "Bob"},
	))
	require.NoError(t, err)

	// Only requested IDs survive, in response order.
	require.Len(t, result.Notes, 2)
	assert.Equal(t, "a", result.Notes[0].ClientID)
	assert.Equal(t, "b", result.Notes[1].ClientID)
	assert.Equal(t, 1, result.Dropped)
}

func TestGenerateNotes_ResponseOrderPreserved(t *testing.T) {
	entries := []domain.GeneratedNote{
		{ClientID: "b", ClientName: "Bob", Note: "n"},
		{ClientID: "a", ClientName: "Alice", Note: "n"},
	}
	payload, err := json.Marshal(entries)
	require.NoError(t, err)

	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, string(payload))
	})

	result, err := svc.GenerateNotes(context.Background(), noteRequest(
		domain.Client{ID: "a", Name: "Alice"},
		domain.Client{ID: "b", Name: "Bob"},
	))
	require.NoError(t, err)

	// Response order, not request order.
	require.Len(t, result.Notes, 2)
	assert.Equal(t, "b", result.Notes[0].ClientID)
	assert.Equal(t, "a", result.Notes[1].ClientID)
}

func TestGenerateNotes_SchemaViolation(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, "Sorry, I could not produce notes today.")
	})

	_, err := svc.GenerateNotes(context.Background(), noteRequest(domain.Client{ID: "a", Name: "A"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Contains(t, err.Error(), "parsing note response")
}

func TestGenerateNotes_MissingMandatoryField(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, `[{"clientId":"a","clientName":"","note":"n"}]`)
	})

	_, err := svc.GenerateNotes(context.Background(), noteRequest(domain.Client{ID: "a", Name: "A"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestGenerateNotes_MissingCredential_NoCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = ""
	svc := NewService(llm.NewClient(cfg, llm.NoopObserver{}))

	_, err := svc.GenerateNotes(context.Background(), noteRequest(domain.Client{ID: "a", Name: "A"}))
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
	assert.Equal(t, int32(0), calls.Load())
}

func TestGenerateNotes_TransportError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	})

	_, err := svc.GenerateNotes(context.Background(), noteRequest(domain.Client{ID: "a", Name: "A"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating notes")
}

func TestGenerateAssessment_PlainTextContract(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		genCfg, _ := req["generationConfig"].(map[string]any)
		assert.NotContains(t, genCfg, "responseSchema", "assessments use the plain-text contract")

		modelReply(t, w, "Identifying Information\nJordan Reyes is a 34-year-old...")
	})

	result, err := svc.GenerateAssessment(context.Background(), AssessmentRequest{
		Info:           domain.ClientInfo{Name: "Jordan Reyes"},
		AssessmentType: domain.AssessmentBiopsychosocial,
		Data:           make(domain.AssessmentData),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", result.ClientName)
	assert.Contains(t, result.Text, "34-year-old")
}

func TestGenerateAssessment_MissingCredential(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.APIKey = ""
	svc := NewService(llm.NewClient(cfg, llm.NoopObserver{}))

	_, err := svc.GenerateAssessment(context.Background(), AssessmentRequest{
		Info:           domain.ClientInfo{Name: "J"},
		AssessmentType: domain.AssessmentMentalStatus,
		Data:           make(domain.AssessmentData),
	})
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestGenerateAssessment_UnknownType(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, "text")
	})

	_, err := svc.GenerateAssessment(context.Background(), AssessmentRequest{
		Info:           domain.ClientInfo{Name: "J"},
		AssessmentType: domain.AssessmentType("phrenology"),
		Data:           make(domain.AssessmentData),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phrenology")
}
