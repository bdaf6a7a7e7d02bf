package lectures

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/lecture-api/internal/models"
	"github.com/killallgit/lecture-api/internal/services/summarizer"
	"github.com/killallgit/lecture-api/internal/services/translator"
	"gorm.io/datatypes"
)

// fallbackTitleMaxChars caps the deterministic title derived from the
// transcript when the summarization provider fails
const fallbackTitleMaxChars = 60

// ServiceImpl implements the Service interface. It holds no session state:
// every operation re-reads from the repository, so any number of instances
// can serve requests concurrently.
type ServiceImpl struct {
	repository Repository
	translator translator.Translator
	summarizer summarizer.Summarizer
}

// NewService creates a new lecture session service
func NewService(repository Repository, translator translator.Translator, summarizer summarizer.Summarizer) Service {
	return &ServiceImpl{
		repository: repository,
		translator: translator,
		summarizer: summarizer,
	}
}

// CreateLecture opens a new recording session
func (s *ServiceImpl) CreateLecture(ctx context.Context, name string) (*models.Lecture, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("lecture_name", "must not be empty")
	}

	lecture := &models.Lecture{
		UUID: uuid.New().String(),
		Name: name,
	}
	if err := s.repository.CreateLecture(ctx, lecture); err != nil {
		return nil, StorageError{Operation: "create lecture", Cause: err}
	}

	log.Printf("[INFO] Created lecture %d (%s)", lecture.ID, lecture.Name)
	return lecture, nil
}

// SubmitChunk translates one audio chunk and persists the result. The
// provider call and the store write are two observable phases: a provider
// failure writes nothing, and a store failure after a successful translation
// is reported distinctly. The open-state check is optimistic; a chunk in
// flight at the exact moment the session closes may still land, which the
// read path tolerates because ordering is reconstructed from chunk numbers.
func (s *ServiceImpl) SubmitChunk(ctx context.Context, lectureID uint, chunkNumber int, audio []byte, filename string) (*models.Transcription, error) {
	if chunkNumber <= 0 {
		return nil, NewValidationError("chunk_number", "must be a positive integer")
	}
	if len(audio) == 0 {
		return nil, NewValidationError("audio", "must not be empty")
	}

	lecture, err := s.repository.GetLectureByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	if lecture.Ended() {
		return nil, ErrLectureEnded
	}

	started := time.Now()
	translation, err := s.translator.Translate(ctx, audio, filename)
	if err != nil {
		return nil, TranslationError{Cause: err}
	}
	processingMs := int(time.Since(started).Milliseconds())

	transcription := &models.Transcription{
		LectureID:        lectureID,
		ChunkNumber:      chunkNumber,
		EnglishText:      translation.Text,
		ConfidenceScore:  translation.Confidence,
		ProcessingTimeMs: &processingMs,
		Timestamps:       chunkTimestamps(time.Now().UTC(), translation.Duration),
	}
	if err := s.repository.CreateTranscription(ctx, transcription); err != nil {
		if err == ErrDuplicateChunk {
			return nil, err
		}
		return nil, PersistenceError{Operation: "create transcription", Cause: err}
	}

	log.Printf("[INFO] Saved chunk %d for lecture %d (%d ms)", chunkNumber, lectureID, processingMs)
	return transcription, nil
}

// EndLecture closes a session: assembles the transcript from all chunks in
// chunk-number order, asks the summarization provider for a title, and sets
// the finalization fields in one update. A title-generation failure does not
// block finalization; the title falls back to a deterministic excerpt of the
// transcript. Ending an already-ended lecture fails with ErrLectureEnded and
// mutates nothing.
func (s *ServiceImpl) EndLecture(ctx context.Context, lectureID uint) (*models.Lecture, error) {
	lecture, err := s.repository.GetLectureByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	if lecture.Ended() {
		return nil, ErrLectureEnded
	}

	chunks, err := s.repository.ListTranscriptionsByLectureID(ctx, lectureID)
	if err != nil {
		return nil, StorageError{Operation: "list transcriptions", Cause: err}
	}
	transcript := assembleTranscript(chunks)
	if transcript == "" {
		return nil, NewValidationError("transcript", "no transcript available, record some audio before ending the session")
	}

	title, err := s.summarizer.GenerateTitle(ctx, transcript)
	if err != nil || title == "" {
		log.Printf("[WARN] Title generation failed for lecture %d, using fallback: %v", lectureID, err)
		title = fallbackTitle(transcript)
	}

	if err := s.repository.FinalizeLecture(ctx, lectureID, title, transcript, time.Now().UTC()); err != nil {
		if err == ErrLectureEnded || IsNotFound(err) {
			return nil, err
		}
		return nil, PersistenceError{Operation: "finalize lecture", Cause: err}
	}

	log.Printf("[INFO] Ended lecture %d with %d chunk(s)", lectureID, len(chunks))

	updated, err := s.repository.GetLectureByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	updated.Transcriptions = chunks
	return updated, nil
}

// GetLecture returns a lecture and its chunks ordered by chunk number
func (s *ServiceImpl) GetLecture(ctx context.Context, lectureID uint) (*models.Lecture, []models.Transcription, error) {
	lecture, err := s.repository.GetLectureByID(ctx, lectureID)
	if err != nil {
		return nil, nil, err
	}
	chunks, err := s.repository.ListTranscriptionsByLectureID(ctx, lectureID)
	if err != nil {
		return nil, nil, StorageError{Operation: "list transcriptions", Cause: err}
	}
	return lecture, chunks, nil
}

// ListLectures returns all lectures, newest first
func (s *ServiceImpl) ListLectures(ctx context.Context) ([]models.Lecture, error) {
	lectures, err := s.repository.ListLectures(ctx)
	if err != nil {
		return nil, StorageError{Operation: "list lectures", Cause: err}
	}
	return lectures, nil
}

// EnhanceLecture rewrites a closed lecture's transcript via the
// summarization provider. Re-running overwrites the previous enhanced
// transcript; a provider failure leaves the stored value untouched.
func (s *ServiceImpl) EnhanceLecture(ctx context.Context, lectureID uint) (*models.Lecture, error) {
	lecture, err := s.repository.GetLectureByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	if !lecture.Ended() {
		return nil, ErrLectureNotEnded
	}
	if lecture.FullTranscript == nil || strings.TrimSpace(*lecture.FullTranscript) == "" {
		return nil, NewValidationError("full_transcript", "no transcript available to enhance")
	}

	title := lecture.Name
	if lecture.GeneratedTitle != nil && *lecture.GeneratedTitle != "" {
		title = *lecture.GeneratedTitle
	}

	enhanced, err := s.summarizer.EnhanceTranscript(ctx, title, *lecture.FullTranscript)
	if err != nil {
		return nil, EnhancementError{Cause: err}
	}
	if enhanced == "" {
		return nil, EnhancementError{Cause: fmt.Errorf("provider returned an empty transcript")}
	}

	if err := s.repository.UpdateEnhancedTranscript(ctx, lectureID, enhanced); err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, PersistenceError{Operation: "update enhanced transcript", Cause: err}
	}

	log.Printf("[INFO] Enhanced transcript for lecture %d", lectureID)
	return s.repository.GetLectureByID(ctx, lectureID)
}

// DeleteLecture removes a lecture and cascades to its chunks
func (s *ServiceImpl) DeleteLecture(ctx context.Context, lectureID uint) error {
	return s.repository.DeleteLecture(ctx, lectureID)
}

// DeleteChunk removes a single chunk from a lecture
func (s *ServiceImpl) DeleteChunk(ctx context.Context, lectureID uint, chunkNumber int) error {
	if _, err := s.repository.GetLectureByID(ctx, lectureID); err != nil {
		return err
	}
	return s.repository.DeleteTranscription(ctx, lectureID, chunkNumber)
}

// assembleTranscript joins chunk texts in chunk-number order with a single
// space, matching what clients see streamed during recording
func assembleTranscript(chunks []models.Transcription) string {
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.EnglishText != "" {
			texts = append(texts, chunk.EnglishText)
		}
	}
	return strings.Join(texts, " ")
}

// fallbackTitle derives a deterministic title from the transcript's first
// ten words, capped at fallbackTitleMaxChars
func fallbackTitle(transcript string) string {
	words := strings.Fields(transcript)
	if len(words) > 10 {
		words = words[:10]
	}
	title := strings.Join(words, " ")
	if len(title) > fallbackTitleMaxChars {
		title = strings.TrimSpace(title[:fallbackTitleMaxChars])
	}
	return title
}

// chunkTimestamps builds the JSON timestamps column for a chunk
func chunkTimestamps(recordedAt time.Time, audioDuration float64) datatypes.JSON {
	payload, err := json.Marshal(map[string]interface{}{
		"recorded_at":            recordedAt.Format(time.RFC3339),
		"audio_duration_seconds": audioDuration,
	})
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(payload)
}
