package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

// GenerationJob is one request against the content collaborator. Seq is
// the generation counter captured at submission; a completed job whose
// counter no longer matches the kind's latest request is stale and its
// result is discarded.
type GenerationJob struct {
	Kind    domain.GenerationKind
	Subject string
	Topic   string
	Seq     uint64
}

// GenerationOutcome describes how a processed job ended.
type GenerationOutcome struct {
	// Applied is false when the result arrived for a superseded request
	// and was discarded.
	Applied bool
	// Fallback is true when the collaborator failed and the fixed
	// degradation message was used instead.
	Fallback bool
}

// StudioOutput is the latest result slot for one generation kind.
type StudioOutput struct {
	Kind     domain.GenerationKind `json:"kind"`
	Text     string                `json:"text,omitempty"`
	Pending  bool                  `json:"pending"`
	Fallback bool                  `json:"fallback,omitempty"`
}

type outputSlot struct {
	text     string
	pending  bool
	fallback bool
	seq      uint64
}

// StudioService runs the content workflows. Each kind keeps a single
// latest-output slot and a monotonically increasing generation counter;
// requests never block other state transitions and a user may navigate
// away while one is outstanding.
type StudioService struct {
	gen ports.ContentGenerator
	log zerolog.Logger

	mu      sync.Mutex
	seq     map[domain.GenerationKind]uint64
	outputs map[domain.GenerationKind]outputSlot
}

func NewStudioService(gen ports.ContentGenerator, log zerolog.Logger) *StudioService {
	return &StudioService{
		gen:     gen,
		log:     log,
		seq:     make(map[domain.GenerationKind]uint64),
		outputs: make(map[domain.GenerationKind]outputSlot),
	}
}

// Begin registers a new generation request for kind and returns the job
// to hand to the dispatcher. Any still-outstanding request for the same
// kind is superseded from this point on.
func (s *StudioService) Begin(kind domain.GenerationKind, subject, topic string) (GenerationJob, error) {
	if !kind.Valid() {
		return GenerationJob{}, fmt.Errorf("%w: %q", domain.ErrUnknownGenerationKind, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[kind]++
	seq := s.seq[kind]
	s.outputs[kind] = outputSlot{pending: true, seq: seq}

	return GenerationJob{Kind: kind, Subject: subject, Topic: topic, Seq: seq}, nil
}

// Process invokes the collaborator and applies the result unless the job
// has been superseded. Collaborator failure degrades to the kind's fixed
// fallback message; it never propagates.
func (s *StudioService) Process(ctx context.Context, job GenerationJob) GenerationOutcome {
	text, err := s.gen.Generate(ctx, job.Kind, job.Subject, job.Topic)
	fallback := false
	if err != nil {
		s.log.Warn().Err(err).Str("kind", string(job.Kind)).Msg("generation failed, using fallback")
		text = job.Kind.Fallback()
		fallback = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[job.Kind] != job.Seq {
		s.log.Debug().Str("kind", string(job.Kind)).Uint64("seq", job.Seq).Msg("stale generation result discarded")
		return GenerationOutcome{Applied: false, Fallback: fallback}
	}

	s.outputs[job.Kind] = outputSlot{text: text, fallback: fallback, seq: job.Seq}
	return GenerationOutcome{Applied: true, Fallback: fallback}
}

// Output returns the latest result slot for kind; ok is false when no
// request was ever made for it.
func (s *StudioService) Output(kind domain.GenerationKind) (StudioOutput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.outputs[kind]
	if !ok {
		return StudioOutput{Kind: kind}, false
	}
	return StudioOutput{Kind: kind, Text: slot.text, Pending: slot.pending, Fallback: slot.fallback}, true
}

// NewStudioTask builds the planner task scheduled from generated output.
// Titles, platforms, and color tags follow the studio views: scripts
// become TikTok video tasks, everything else lands on Instagram.
func NewStudioTask(kind domain.GenerationKind, productName, id string, now time.Time) domain.PlannerTask {
	task := domain.PlannerTask{
		ID:       id,
		Title:    fmt.Sprintf("%s: %s", kind, productName),
		Type:     domain.TaskCaption,
		Platform: "Instagram",
		Date:     now,
		Status:   domain.TaskPending,
		Color:    "bg-pink-100 text-pink-600",
	}
	switch kind {
	case domain.GenerateScript:
		task.Title = "Video: " + productName
		task.Type = domain.TaskVideo
		task.Platform = "TikTok"
		task.Color = "bg-black text-white"
	case domain.GenerateStrategy:
		task.Type = domain.TaskStrategy
		task.Color = "bg-amber-100 text-amber-600"
	}
	return task
}
