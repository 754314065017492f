package people

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/shared/metrics"
	"teamlens-backend/internal/talents"
)

// ErrUnanalyzable signals a person with neither a personality type nor any
// ranked talents. It is an expected condition, surfaced to the API as 422.
var ErrUnanalyzable = errors.New("person has no analyzable data")

// Recorder persists an analysis snapshot. Implemented by the reports service;
// nil disables persistence.
type Recorder interface {
	Record(ctx context.Context, personID string, result *analysis.Result) error
}

// Notifier announces a completed analysis to an external channel. Nil
// disables notifications.
type Notifier interface {
	AnalysisCompleted(ctx context.Context, personName string, result *analysis.Result)
}

type Service struct {
	Repo     Repo
	Engine   *analysis.Engine
	Talents  *talents.Catalog
	Recorder Recorder
	Notifier Notifier
}

func NewService(repo Repo, engine *analysis.Engine, talentCatalog *talents.Catalog) *Service {
	return &Service{Repo: repo, Engine: engine, Talents: talentCatalog}
}

// PersonInput is the mutable subset of a person record accepted on create
// and update.
type PersonInput struct {
	Name            string           `json:"name"`
	PersonalityType string           `json:"personalityType"`
	RankedTalents   []talents.Ranked `json:"rankedTalents"`
}

func (s *Service) Create(ctx context.Context, input PersonInput) (Person, error) {
	person, err := s.buildPerson(uuid.NewString(), input)
	if err != nil {
		return Person{}, err
	}
	if err := s.Repo.Create(ctx, person); err != nil {
		return Person{}, fmt.Errorf("create person: %w", err)
	}
	return s.Repo.GetByID(ctx, person.ID)
}

func (s *Service) Update(ctx context.Context, personID string, input PersonInput) (Person, error) {
	if strings.TrimSpace(personID) == "" {
		return Person{}, errors.New("person id is required")
	}
	person, err := s.buildPerson(personID, input)
	if err != nil {
		return Person{}, err
	}
	if err := s.Repo.Update(ctx, person); err != nil {
		return Person{}, err
	}
	return s.Repo.GetByID(ctx, personID)
}

func (s *Service) GetByID(ctx context.Context, personID string) (Person, error) {
	if strings.TrimSpace(personID) == "" {
		return Person{}, errors.New("person id is required")
	}
	return s.Repo.GetByID(ctx, personID)
}

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, personID string) error {
	if strings.TrimSpace(personID) == "" {
		return errors.New("person id is required")
	}
	return s.Repo.Delete(ctx, personID)
}

// Analyze runs the engine against a stored person, records the snapshot, and
// fires the completion notification.
func (s *Service) Analyze(ctx context.Context, personID string) (*analysis.Result, error) {
	person, err := s.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	result, err := s.runEngine(person.AnalysisInput())
	if err != nil {
		return nil, err
	}
	if s.Recorder != nil {
		if err := s.Recorder.Record(ctx, person.ID, result); err != nil {
			return nil, fmt.Errorf("record analysis: %w", err)
		}
	}
	if s.Notifier != nil {
		s.Notifier.AnalysisCompleted(ctx, person.Name, result)
	}
	return result, nil
}

// AnalyzeAdHoc runs the engine against unsaved input. Nothing is persisted
// and no notification fires.
func (s *Service) AnalyzeAdHoc(_ context.Context, input analysis.Person) (*analysis.Result, error) {
	return s.runEngine(input)
}

func (s *Service) runEngine(input analysis.Person) (*analysis.Result, error) {
	start := time.Now()
	result, ok := s.Engine.Analyze(input)
	if !ok {
		metrics.IncAnalysisUnanalyzable()
		return nil, ErrUnanalyzable
	}
	metrics.IncAnalysisRun()
	if result.Degraded {
		metrics.IncAnalysisDegraded()
	}
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	return result, nil
}

// ImportSummary reports the outcome of a bulk import. Row numbers in Errors
// refer to the source file, not the accepted subset.
type ImportSummary struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

// Import creates people in bulk, skipping invalid entries and reporting them
// against their source row numbers.
func (s *Service) Import(ctx context.Context, rows []ImportRow) (ImportSummary, error) {
	var summary ImportSummary
	for _, row := range rows {
		if _, err := s.Create(ctx, row.Input); err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			summary.Errors = append(summary.Errors, RowError{Row: row.Row, Message: err.Error()})
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

func (s *Service) buildPerson(id string, input PersonInput) (Person, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Person{}, errors.New("name is required")
	}
	if err := s.validateRanked(input.RankedTalents); err != nil {
		return Person{}, err
	}
	return Person{
		ID:              id,
		Name:            name,
		PersonalityType: strings.ToUpper(strings.TrimSpace(input.PersonalityType)),
		RankedTalents:   normalizeRanked(input.RankedTalents),
	}, nil
}

// validateRanked rejects structurally broken talent lists. Unknown
// personality types pass through on purpose; the engine degrades those.
func (s *Service) validateRanked(ranked []talents.Ranked) error {
	seenIDs := make(map[int]bool, len(ranked))
	seenRanks := make(map[int]bool, len(ranked))
	for _, r := range ranked {
		if _, ok := s.Talents.ByID(r.ID); !ok {
			return fmt.Errorf("unknown talent id %d", r.ID)
		}
		if r.Rank < 1 {
			return fmt.Errorf("talent id %d has invalid rank %d", r.ID, r.Rank)
		}
		if seenIDs[r.ID] {
			return fmt.Errorf("talent id %d listed more than once", r.ID)
		}
		if seenRanks[r.Rank] {
			return fmt.Errorf("rank %d assigned more than once", r.Rank)
		}
		seenIDs[r.ID] = true
		seenRanks[r.Rank] = true
	}
	return nil
}

func normalizeRanked(ranked []talents.Ranked) []talents.Ranked {
	if len(ranked) == 0 {
		return nil
	}
	return append([]talents.Ranked(nil), ranked...)
}
