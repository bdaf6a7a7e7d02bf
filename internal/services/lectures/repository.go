package lectures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/lecture-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface using GORM
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new lecture repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateLecture inserts a new lecture row
func (r *RepositoryImpl) CreateLecture(ctx context.Context, lecture *models.Lecture) error {
	if err := r.db.WithContext(ctx).Create(lecture).Error; err != nil {
		return fmt.Errorf("creating lecture: %w", err)
	}
	return nil
}

// GetLectureByID retrieves a lecture by its ID
func (r *RepositoryImpl) GetLectureByID(ctx context.Context, id uint) (*models.Lecture, error) {
	var lecture models.Lecture
	if err := r.db.WithContext(ctx).First(&lecture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("lecture", id)
		}
		return nil, fmt.Errorf("getting lecture: %w", err)
	}
	return &lecture, nil
}

// ListLectures retrieves all lectures, newest first
func (r *RepositoryImpl) ListLectures(ctx context.Context) ([]models.Lecture, error) {
	var lectures []models.Lecture
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&lectures).Error; err != nil {
		return nil, fmt.Errorf("listing lectures: %w", err)
	}
	return lectures, nil
}

// FinalizeLecture sets the finalization field group in one update. The
// ended_at IS NULL guard doubles as the optimistic-concurrency check: if a
// concurrent caller closed the lecture first, zero rows match and the losing
// caller gets ErrLectureEnded instead of silently double-finalizing.
func (r *RepositoryImpl) FinalizeLecture(ctx context.Context, id uint, title, transcript string, endedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Lecture{}).
		Where("id = ? AND ended_at IS NULL", id).
		Updates(map[string]interface{}{
			"ended_at":        endedAt,
			"generated_title": title,
			"full_transcript": transcript,
		})
	if result.Error != nil {
		return fmt.Errorf("finalizing lecture: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Lecture{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("finalizing lecture: %w", err)
		}
		if count == 0 {
			return NewNotFoundError("lecture", id)
		}
		return ErrLectureEnded
	}
	return nil
}

// UpdateEnhancedTranscript overwrites the enhanced transcript field only
func (r *RepositoryImpl) UpdateEnhancedTranscript(ctx context.Context, id uint, enhanced string) error {
	result := r.db.WithContext(ctx).Model(&models.Lecture{}).
		Where("id = ?", id).
		Update("enhanced_full_transcript", enhanced)
	if result.Error != nil {
		return fmt.Errorf("updating enhanced transcript: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("lecture", id)
	}
	return nil
}

// DeleteLecture removes a lecture; the foreign key cascades to its chunks
func (r *RepositoryImpl) DeleteLecture(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Lecture{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting lecture: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("lecture", id)
	}
	return nil
}

// CreateTranscription inserts a new chunk row
func (r *RepositoryImpl) CreateTranscription(ctx context.Context, transcription *models.Transcription) error {
	if err := r.db.WithContext(ctx).Create(transcription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateChunk
		}
		return fmt.Errorf("creating transcription: %w", err)
	}
	return nil
}

// ListTranscriptionsByLectureID retrieves all chunks for a lecture ordered
// by chunk number ascending, regardless of insertion order
func (r *RepositoryImpl) ListTranscriptionsByLectureID(ctx context.Context, lectureID uint) ([]models.Transcription, error) {
	var transcriptions []models.Transcription
	if err := r.db.WithContext(ctx).
		Where("lecture_id = ?", lectureID).
		Order("chunk_number ASC").
		Find(&transcriptions).Error; err != nil {
		return nil, fmt.Errorf("listing transcriptions: %w", err)
	}
	return transcriptions, nil
}

// DeleteTranscription removes a single chunk by lecture and chunk number
func (r *RepositoryImpl) DeleteTranscription(ctx context.Context, lectureID uint, chunkNumber int) error {
	result := r.db.WithContext(ctx).
		Where("lecture_id = ? AND chunk_number = ?", lectureID, chunkNumber).
		Delete(&models.Transcription{})
	if result.Error != nil {
		return fmt.Errorf("deleting transcription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("chunk", chunkNumber)
	}
	return nil
}
