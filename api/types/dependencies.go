package types

import (
	"github.com/killallgit/lecture-api/internal/database"
	"github.com/killallgit/lecture-api/internal/services/lectures"
	"github.com/killallgit/lecture-api/internal/services/summarizer"
	"github.com/killallgit/lecture-api/internal/services/translator"
)

// Dependencies holds all the dependencies needed by handlers. Clients are
// constructed once at process start and injected, never looked up globally.
type Dependencies struct {
	DB             *database.DB
	LectureService lectures.Service
	Translator     *translator.Client
	Summarizer     *summarizer.Client

	// MinAudioBytes is the smallest audio payload worth sending upstream;
	// anything smaller is answered as "too short" without a provider call
	MinAudioBytes int
}
