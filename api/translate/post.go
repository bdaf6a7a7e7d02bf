package translate

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/lecture-api/api/types"
)

// Post handles audio chunk translation requests
// @Summary      Translate audio chunk
// @Description  Relay an audio chunk to the translation provider. When lecture_id and chunk_number are supplied the result is persisted against that lecture; otherwise the translation is returned without being stored.
// @Tags         translate
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio formData file true "Audio chunk (webm, wav, mp3, m4a, ogg)"
// @Param        lecture_id formData int false "Lecture to attach the chunk to"
// @Param        chunk_number formData int false "Position of the chunk within the lecture"
// @Success      200 {object} types.TranslationResponse "Translation result"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Failure      409 {object} types.ErrorResponse "Lecture ended or duplicate chunk"
// @Failure      429 {object} types.ErrorResponse "Provider rate limit"
// @Failure      502 {object} types.ErrorResponse "Provider failure"
// @Router       /api/v1/translate [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("audio")
		if err != nil {
			types.SendBadRequest(c, "Audio file is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			types.SendBadRequest(c, "Failed to open audio file")
			return
		}
		defer file.Close()

		audio, err := io.ReadAll(file)
		if err != nil {
			types.SendBadRequest(c, "Failed to read audio file")
			return
		}

		// Browsers flush a near-empty chunk when the microphone picks up
		// silence; answer without calling the provider
		if len(audio) < deps.MinAudioBytes {
			c.JSON(http.StatusOK, types.TranslationResponse{
				Status: types.StatusTooShort,
				Text:   "",
			})
			return
		}

		lectureIDStr := c.PostForm("lecture_id")
		chunkNumberStr := c.PostForm("chunk_number")

		// Stateless mode: translate without persisting
		if lectureIDStr == "" {
			translateOnly(c, deps, audio, fileHeader.Filename)
			return
		}

		lectureID, ok := parseFormUint(c, "lecture_id", lectureIDStr)
		if !ok {
			return
		}
		chunkNumber, ok := parseFormInt(c, "chunk_number", chunkNumberStr)
		if !ok {
			return
		}

		transcription, err := deps.LectureService.SubmitChunk(c.Request.Context(), lectureID, chunkNumber, audio, fileHeader.Filename)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.TranslationResponse{
			Status:           types.StatusOK,
			Text:             transcription.EnglishText,
			LectureID:        &transcription.LectureID,
			ChunkNumber:      &transcription.ChunkNumber,
			ConfidenceScore:  transcription.ConfidenceScore,
			ProcessingTimeMs: transcription.ProcessingTimeMs,
		})
	}
}

// translateOnly relays the chunk upstream and returns the text unstored
func translateOnly(c *gin.Context, deps *types.Dependencies, audio []byte, filename string) {
	started := time.Now()
	translation, err := deps.Translator.Translate(c.Request.Context(), audio, filename)
	if err != nil {
		types.SendServiceError(c, err)
		return
	}
	elapsed := int(time.Since(started).Milliseconds())

	c.JSON(http.StatusOK, types.TranslationResponse{
		Status:           types.StatusOK,
		Text:             translation.Text,
		ConfidenceScore:  translation.Confidence,
		ProcessingTimeMs: &elapsed,
	})
}

func parseFormUint(c *gin.Context, field, value string) (uint, bool) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		types.SendBadRequest(c, "Invalid "+field)
		return 0, false
	}
	return uint(parsed), true
}

func parseFormInt(c *gin.Context, field, value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		types.SendBadRequest(c, "Invalid "+field)
		return 0, false
	}
	return parsed, true
}
