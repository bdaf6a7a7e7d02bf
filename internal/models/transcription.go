package models

import (
	"time"

	"gorm.io/datatypes"
)

// Transcription represents one translated audio chunk belonging to a lecture.
// Rows are never mutated after creation; ordering is reconstructed at read
// time by sorting on ChunkNumber.
type Transcription struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	LectureID        uint           `gorm:"not null;uniqueIndex:idx_lecture_chunk" json:"lecture_id"`
	ChunkNumber      int            `gorm:"not null;uniqueIndex:idx_lecture_chunk" json:"chunk_number"`
	EnglishText      string         `gorm:"type:text;not null" json:"english_text"`
	ConfidenceScore  *float64       `json:"confidence_score"`
	ProcessingTimeMs *int           `json:"processing_time_ms"`
	Timestamps       datatypes.JSON `gorm:"default:'{}'" json:"timestamps"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName specifies the table name for Transcription
func (Transcription) TableName() string {
	return "transcriptions"
}
