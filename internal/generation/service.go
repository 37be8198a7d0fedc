// Package generation owns the contract with the external text-generation
// service: request shape, response schema, and response validation. Each call
// is single-shot with no retries and no internal locking; concurrent calls
// are independent and unordered relative to each other.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/calebsorensen/notewright/internal/llm"
	"github.com/calebsorensen/notewright/internal/prompt"
)

// NoteRequest carries everything needed to generate progress notes for a
// set of clients in one external call.
type NoteRequest struct {
	NoteType     domain.NoteType
	Clients      []domain.Client
	Programs     []domain.Program
	Partners     []domain.Partner
	Documents    []domain.Document
	Intervention string
	Selections   domain.Selections
}

// NoteResult is the validated outcome of a note generation call. Dropped
// counts response entries that named client IDs outside the request; they
// are filtered silently but the count stays observable.
type NoteResult struct {
	Notes   []domain.GeneratedNote
	Dropped int
}

// AssessmentRequest carries everything needed to generate one assessment.
type AssessmentRequest struct {
	Info           domain.ClientInfo
	AssessmentType domain.AssessmentType
	Data           domain.AssessmentData
}

// Service generates clinical documentation through the external
// generative-language endpoint.
type Service interface {
	// GenerateNotes produces one note per requested client from a single
	// external call. An empty client list returns an empty result without
	// issuing any request.
	GenerateNotes(ctx context.Context, req NoteRequest) (*NoteResult, error)

	// GenerateAssessment produces a single assessment document.
	GenerateAssessment(ctx context.Context, req AssessmentRequest) (*domain.GeneratedAssessment, error)
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by the given generation client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

// noteContract declares the structured response shape for note generation:
// an ordered array of objects with clientId, clientName, and note, all
// mandatory strings.
var noteContract = &llm.Schema{
	Type: "array",
	Items: &llm.Schema{
		Type: "object",
		Properties: map[string]*llm.Schema{
			"clientId":   {Type: "string"},
			"clientName": {Type: "string"},
			"note":       {Type: "string"},
		},
		Required: []string{"clientId", "clientName", "note"},
	},
}

func (s *service) GenerateNotes(ctx context.Context, req NoteRequest) (*NoteResult, error) {
	if !s.client.Configured() {
		return nil, llm.ErrMissingAPIKey
	}
	if len(req.Clients) == 0 {
		// Cost and latency short-circuit: nothing to document, no call made.
		return &NoteResult{}, nil
	}

	userPrompt, err := prompt.BuildNotePrompt(
		req.NoteType, req.Clients, req.Programs, req.Partners,
		req.Documents, req.Intervention, req.Selections,
	)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskNotes,
		UserPrompt: userPrompt,
		Contract:   noteContract,
	})
	if err != nil {
		return nil, fmt.Errorf("generating notes: %w", err)
	}

	entries, err := llm.ExtractJSON[[]domain.GeneratedNote](resp.Text, validateNoteEntries)
	if err != nil {
		return nil, fmt.Errorf("parsing note response: %w", err)
	}

	// The model is not trusted to respect the request exactly: keep only
	// entries for requested client IDs, in response order.
	requested := make(map[string]bool, len(req.Clients))
	for _, c := range req.Clients {
		requested[c.ID] = true
	}

	result := &NoteResult{}
	for _, e := range entries {
		if !requested[e.ClientID] {
			result.Dropped++
			continue
		}
		result.Notes = append(result.Notes, e)
	}

	return result, nil
}

// validateNoteEntries enforces the structured contract strictly: every entry
// must carry all three fields. Loosely-shaped data never crosses this
// boundary.
func validateNoteEntries(entries []domain.GeneratedNote) error {
	for i, e := range entries {
		if strings.TrimSpace(e.ClientID) == "" {
			return fmt.Errorf("entry %d: missing clientId", i)
		}
		if strings.TrimSpace(e.ClientName) == "" {
			return fmt.Errorf("entry %d: missing clientName", i)
		}
		if strings.TrimSpace(e.Note) == "" {
			return fmt.Errorf("entry %d: missing note", i)
		}
	}
	return nil
}

func (s *service) GenerateAssessment(ctx context.Context, req AssessmentRequest) (*domain.GeneratedAssessment, error) {
	if !s.client.Configured() {
		return nil, llm.ErrMissingAPIKey
	}

	userPrompt, err := prompt.BuildAssessmentPrompt(req.Info, req.AssessmentType, req.Data)
	if err != nil {
		return nil, err
	}

	// Plain-text contract: no structural schema to validate afterwards.
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskAssessment,
		UserPrompt: userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generating assessment: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty assessment response", llm.ErrInvalidOutput)
	}

	return &domain.GeneratedAssessment{
		ClientName: req.Info.Name,
		Text:       text,
	}, nil
}
