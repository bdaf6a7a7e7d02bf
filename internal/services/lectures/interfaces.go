package lectures

import (
	"context"
	"time"

	"github.com/killallgit/lecture-api/internal/models"
)

// Service defines the interface for lecture session business logic
type Service interface {
	// CreateLecture opens a new recording session
	CreateLecture(ctx context.Context, name string) (*models.Lecture, error)

	// SubmitChunk translates one audio chunk and persists the result
	SubmitChunk(ctx context.Context, lectureID uint, chunkNumber int, audio []byte, filename string) (*models.Transcription, error)

	// EndLecture closes a session, assembles the transcript and generates a title
	EndLecture(ctx context.Context, lectureID uint) (*models.Lecture, error)

	// GetLecture returns a lecture and its chunks ordered by chunk number
	GetLecture(ctx context.Context, lectureID uint) (*models.Lecture, []models.Transcription, error)

	// ListLectures returns all lectures, newest first
	ListLectures(ctx context.Context) ([]models.Lecture, error)

	// EnhanceLecture rewrites a closed lecture's transcript via the summarization provider
	EnhanceLecture(ctx context.Context, lectureID uint) (*models.Lecture, error)

	// DeleteLecture removes a lecture and cascades to its chunks
	DeleteLecture(ctx context.Context, lectureID uint) error

	// DeleteChunk removes a single chunk from a lecture
	DeleteChunk(ctx context.Context, lectureID uint, chunkNumber int) error
}

// Repository defines the interface for lecture data access
type Repository interface {
	// Lecture operations
	CreateLecture(ctx context.Context, lecture *models.Lecture) error
	GetLectureByID(ctx context.Context, id uint) (*models.Lecture, error)
	ListLectures(ctx context.Context) ([]models.Lecture, error)
	FinalizeLecture(ctx context.Context, id uint, title, transcript string, endedAt time.Time) error
	UpdateEnhancedTranscript(ctx context.Context, id uint, enhanced string) error
	DeleteLecture(ctx context.Context, id uint) error

	// Chunk operations
	CreateTranscription(ctx context.Context, transcription *models.Transcription) error
	ListTranscriptionsByLectureID(ctx context.Context, lectureID uint) ([]models.Transcription, error)
	DeleteTranscription(ctx context.Context, lectureID uint, chunkNumber int) error
}
