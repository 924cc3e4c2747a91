package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
)

// SuggestionService calls the external AI hint endpoint for fields flagged
// ai_suggest/ai_evaluate. Calls run in their own goroutine with a timeout;
// a slow or dead endpoint costs nothing but a log line, never a failed
// submission or transition.
type SuggestionService struct {
	Repos    *repositories.Repos
	Endpoint string
	Timeout  time.Duration
	Client   *http.Client
}

func NewSuggestionService(repos *repositories.Repos, endpoint string, timeout time.Duration) *SuggestionService {
	return &SuggestionService{
		Repos:    repos,
		Endpoint: endpoint,
		Timeout:  timeout,
		Client:   &http.Client{},
	}
}

type suggestionRequest struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type suggestionResponse struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// SuggestAsync fires the hint call and returns immediately.
func (s *SuggestionService) SuggestAsync(requestID uint, field models.FieldDefinition, value string) {
	if s.Endpoint == "" {
		return
	}
	go s.suggest(requestID, field, value)
}

func (s *SuggestionService) suggest(requestID uint, field models.FieldDefinition, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	payload, err := json.Marshal(suggestionRequest{
		Field: field.Name,
		Label: field.Label,
		Value: value,
	})
	if err != nil {
		log.Printf("[suggestion] encode failed for request %d field %s: %v", requestID, field.Name, err)
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		log.Printf("[suggestion] request build failed: %v", err)
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		log.Printf("[suggestion] call failed for request %d field %s: %v", requestID, field.Name, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[suggestion] endpoint returned %d for request %d field %s", resp.StatusCode, requestID, field.Name)
		return
	}

	var hint suggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&hint); err != nil {
		log.Printf("[suggestion] decode failed: %v", err)
		return
	}
	if hint.Text == "" {
		return
	}

	entry := &models.RequestAudit{
		RequestID: requestID,
		Action:    models.AuditActionSuggestion,
		Notes:     fmt.Sprintf("[%s] %s (score %.2f)", field.Name, hint.Text, hint.Score),
	}
	if err := s.Repos.Audit.Create(entry); err != nil {
		log.Printf("[suggestion] failed to store hint for request %d: %v", requestID, err)
	}
}
