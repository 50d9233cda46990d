package domain

import "errors"

// GenerationKind selects which content workflow a generation request
// belongs to.
type GenerationKind string

const (
	GenerateCaption  GenerationKind = "CAPTION"
	GenerateScript   GenerationKind = "SCRIPT"
	GenerateIdeas    GenerationKind = "IDEAS"
	GenerateStrategy GenerationKind = "STRATEGY"
	GenerateImage    GenerationKind = "IMAGE"
)

var ErrUnknownGenerationKind = errors.New("unknown generation kind")

// Valid reports whether k is a supported generation kind.
func (k GenerationKind) Valid() bool {
	switch k {
	case GenerateCaption, GenerateScript, GenerateIdeas, GenerateStrategy, GenerateImage:
		return true
	}
	return false
}

// fallbacks are the fixed user-facing messages shown when the generation
// collaborator fails. Failures never propagate past the issuing view.
var fallbacks = map[GenerationKind]string{
	GenerateCaption:  "Maaf, gagal menghasilkan caption. Silakan coba lagi nanti.",
	GenerateScript:   "Gagal menghasilkan naskah video.",
	GenerateIdeas:    "Gagal menghasilkan ide konten.",
	GenerateStrategy: "Tidak dapat memuat saran strategi saat ini.",
	GenerateImage:    "Failed to generate image. Please try again.",
}

// Fallback returns the fixed human-readable degradation message for k.
func (k GenerationKind) Fallback() string {
	if msg, ok := fallbacks[k]; ok {
		return msg
	}
	return "Error processing request. Check your connection."
}
