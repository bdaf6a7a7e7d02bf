package types

import "github.com/killallgit/lecture-api/internal/models"

// Status constants for API responses
const (
	StatusOK       = "success"
	StatusTooShort = "too_short"
)

// LectureResponse for a single lecture
type LectureResponse struct {
	Status  string          `json:"status"`
	Lecture *models.Lecture `json:"lecture"`
}

// LecturesResponse for the lecture history view
type LecturesResponse struct {
	Status   string           `json:"status"`
	Lectures []models.Lecture `json:"lectures"`
	Count    int              `json:"count"`
}

// LectureDetailResponse for a lecture with its ordered chunks
type LectureDetailResponse struct {
	Status         string                 `json:"status"`
	Lecture        *models.Lecture        `json:"lecture"`
	Transcriptions []models.Transcription `json:"transcriptions"`
}

// LectureStatusResponse reports whether a session is still active
type LectureStatusResponse struct {
	Exists         bool    `json:"exists"`
	Active         bool    `json:"active"`
	Ended          bool    `json:"ended"`
	LectureName    string  `json:"lecture_name,omitempty"`
	GeneratedTitle *string `json:"generated_title,omitempty"`
}

// EndLectureResponse for session finalization
type EndLectureResponse struct {
	Status           string `json:"status"`
	LectureID        uint   `json:"lecture_id"`
	GeneratedTitle   string `json:"generated_title"`
	FullTranscript   string `json:"full_transcript"`
	TranscriptChunks int    `json:"transcript_chunks"`
}

// EnhanceLectureResponse for transcript enhancement
type EnhanceLectureResponse struct {
	Status                 string `json:"status"`
	LectureID              uint   `json:"lecture_id"`
	EnhancedFullTranscript string `json:"enhanced_full_transcript"`
}

// TranslationResponse for chunk translation
type TranslationResponse struct {
	Status           string   `json:"status"`
	Text             string   `json:"text"`
	LectureID        *uint    `json:"lecture_id,omitempty"`
	ChunkNumber      *int     `json:"chunk_number,omitempty"`
	ConfidenceScore  *float64 `json:"confidence_score,omitempty"`
	ProcessingTimeMs *int     `json:"processing_time_ms,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
