package ports

import (
	"context"

	"github.com/lamare/creator-studio/internal/core/domain"
)

// ContentGenerator is the opaque generative-content collaborator. Subject
// is the primary prompt input (product name, niche, stats summary) and
// topic carries secondary context (category, platform). A failure is an
// error; callers degrade to the kind's fixed fallback message.
type ContentGenerator interface {
	Generate(ctx context.Context, kind domain.GenerationKind, subject, topic string) (string, error)
}
