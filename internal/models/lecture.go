package models

import (
	"time"
)

// Lecture represents one recording session
type Lecture struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UUID      string    `gorm:"uniqueIndex;not null" json:"uuid"`
	Name      string    `gorm:"column:lecture_name;not null" json:"lecture_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Finalization fields, set together when the session is closed
	EndedAt                *time.Time `json:"ended_at"`
	GeneratedTitle         *string    `json:"generated_title"`
	FullTranscript         *string    `gorm:"type:text" json:"full_transcript"`
	EnhancedFullTranscript *string    `gorm:"column:enhanced_full_transcript;type:text" json:"enhanced_full_transcript"`

	Transcriptions []Transcription `json:"transcriptions,omitempty" gorm:"foreignKey:LectureID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Lecture
func (Lecture) TableName() string {
	return "lectures"
}

// Ended reports whether the lecture session has been closed
func (l *Lecture) Ended() bool {
	return l.EndedAt != nil
}
