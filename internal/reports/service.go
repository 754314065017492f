package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"teamlens-backend/internal/analysis"
)

// Service persists and serves analysis snapshots. It satisfies the people
// package's Recorder interface.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Record stores the engine output as an immutable snapshot.
func (s *Service) Record(ctx context.Context, personID string, result *analysis.Result) error {
	if strings.TrimSpace(personID) == "" {
		return errors.New("person id is required")
	}
	if result == nil {
		return errors.New("result is required")
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return s.Repo.Create(ctx, Report{
		ID:            uuid.NewString(),
		PersonID:      personID,
		Mode:          string(result.Mode),
		SchemaVersion: result.SchemaVersion,
		Result:        payload,
	})
}

func (s *Service) GetByID(ctx context.Context, reportID string) (Report, error) {
	if strings.TrimSpace(reportID) == "" {
		return Report{}, errors.New("report id is required")
	}
	return s.Repo.GetByID(ctx, reportID)
}

func (s *Service) ListByPerson(ctx context.Context, personID string) ([]Report, error) {
	if strings.TrimSpace(personID) == "" {
		return nil, errors.New("person id is required")
	}
	return s.Repo.ListByPerson(ctx, personID)
}
