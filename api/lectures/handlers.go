package lectures

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/lecture-api/api/types"
	lectureService "github.com/killallgit/lecture-api/internal/services/lectures"
)

// CreateLecture opens a new recording session
// @Summary      Create lecture
// @Description  Open a new lecture recording session with a client supplied name
// @Tags         lectures
// @Accept       json
// @Produce      json
// @Param        lecture body types.CreateLectureRequest true "Lecture data (lecture_name)"
// @Success      201 {object} types.LectureResponse "Created lecture"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      503 {object} types.ErrorResponse "Storage unavailable"
// @Router       /api/v1/lectures [post]
func CreateLecture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateLectureRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		lecture, err := deps.LectureService.CreateLecture(c.Request.Context(), req.LectureName)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		types.SendCreated(c, types.LectureResponse{
			Status:  types.StatusOK,
			Lecture: lecture,
		})
	}
}

// ListLectures returns the lecture history, newest first
// @Summary      List lectures
// @Description  Retrieve all lectures ordered by creation time, newest first
// @Tags         lectures
// @Produce      json
// @Success      200 {object} types.LecturesResponse "List of lectures"
// @Failure      503 {object} types.ErrorResponse "Storage unavailable"
// @Router       /api/v1/lectures [get]
func ListLectures(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectures, err := deps.LectureService.ListLectures(c.Request.Context())
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.LecturesResponse{
			Status:   types.StatusOK,
			Lectures: lectures,
			Count:    len(lectures),
		})
	}
}

// GetLecture returns a lecture with its ordered chunks
// @Summary      Get lecture
// @Description  Retrieve a lecture and its transcriptions ordered by chunk number
// @Tags         lectures
// @Produce      json
// @Param        id path int true "Lecture ID"
// @Success      200 {object} types.LectureDetailResponse "Lecture with transcriptions"
// @Failure      400 {object} types.ErrorResponse "Invalid lecture ID"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Router       /api/v1/lectures/{id} [get]
func GetLecture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return // Error response already sent by utility
		}

		lecture, transcriptions, err := deps.LectureService.GetLecture(c.Request.Context(), lectureID)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		types.SendSuccess(c, types.LectureDetailResponse{
			Status:         types.StatusOK,
			Lecture:        lecture,
			Transcriptions: transcriptions,
		})
	}
}

// GetLectureStatus reports whether a session exists and is still active
// @Summary      Get lecture status
// @Description  Report whether a lecture exists and whether it is still accepting chunks
// @Tags         lectures
// @Produce      json
// @Param        id path int true "Lecture ID"
// @Success      200 {object} types.LectureStatusResponse "Lecture status"
// @Failure      400 {object} types.ErrorResponse "Invalid lecture ID"
// @Router       /api/v1/lectures/{id}/status [get]
func GetLectureStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		lecture, _, err := deps.LectureService.GetLecture(c.Request.Context(), lectureID)
		if err != nil {
			// A missing lecture is a valid status answer, not an error
			if lectureService.IsNotFound(err) {
				c.JSON(http.StatusOK, types.LectureStatusResponse{Exists: false})
				return
			}
			types.SendServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.LectureStatusResponse{
			Exists:         true,
			Active:         !lecture.Ended(),
			Ended:          lecture.Ended(),
			LectureName:    lecture.Name,
			GeneratedTitle: lecture.GeneratedTitle,
		})
	}
}

// EndLecture closes a session, assembles the transcript and generates a title
// @Summary      End lecture
// @Description  Close an active lecture, assemble the full transcript and generate a title
// @Tags         lectures
// @Produce      json
// @Param        id path int true "Lecture ID"
// @Success      200 {object} types.EndLectureResponse "Finalized lecture"
// @Failure      400 {object} types.ErrorResponse "Lecture has no transcribed content"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Failure      409 {object} types.ErrorResponse "Lecture already ended"
// @Router       /api/v1/lectures/{id}/end [post]
func EndLecture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		lecture, err := deps.LectureService.EndLecture(c.Request.Context(), lectureID)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		title := ""
		if lecture.GeneratedTitle != nil {
			title = *lecture.GeneratedTitle
		}
		transcript := ""
		if lecture.FullTranscript != nil {
			transcript = *lecture.FullTranscript
		}

		types.SendSuccess(c, types.EndLectureResponse{
			Status:           types.StatusOK,
			LectureID:        lecture.ID,
			GeneratedTitle:   title,
			FullTranscript:   transcript,
			TranscriptChunks: len(lecture.Transcriptions),
		})
	}
}

// EnhanceLecture rewrites a closed lecture's transcript via the provider
// @Summary      Enhance lecture transcript
// @Description  Rewrite the full transcript of an ended lecture into cleaned up prose
// @Tags         lectures
// @Produce      json
// @Param        id path int true "Lecture ID"
// @Success      200 {object} types.EnhanceLectureResponse "Enhanced transcript"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Failure      409 {object} types.ErrorResponse "Lecture still active"
// @Failure      502 {object} types.ErrorResponse "Provider failure"
// @Router       /api/v1/lectures/{id}/enhance [post]
func EnhanceLecture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		lecture, err := deps.LectureService.EnhanceLecture(c.Request.Context(), lectureID)
		if err != nil {
			types.SendServiceError(c, err)
			return
		}

		enhanced := ""
		if lecture.EnhancedFullTranscript != nil {
			enhanced = *lecture.EnhancedFullTranscript
		}

		types.SendSuccess(c, types.EnhanceLectureResponse{
			Status:                 types.StatusOK,
			LectureID:              lecture.ID,
			EnhancedFullTranscript: enhanced,
		})
	}
}

// DeleteLecture removes a lecture and all of its chunks
// @Summary      Delete lecture
// @Description  Delete a lecture; its transcriptions are removed with it
// @Tags         lectures
// @Produce      json
// @Param        id path int true "Lecture ID"
// @Success      200 {object} object{message=string} "Lecture deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid lecture ID"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Router       /api/v1/lectures/{id} [delete]
func DeleteLecture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.LectureService.DeleteLecture(c.Request.Context(), lectureID); err != nil {
			types.SendServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Lecture deleted successfully"})
	}
}

// DeleteChunk removes a single transcription chunk from a lecture
// @Summary      Delete chunk
// @Description  Delete one transcription chunk from a lecture by chunk number
// @Tags         lectures
// @Produce      json
// @Param        id path int true "Lecture ID"
// @Param        chunk path int true "Chunk number"
// @Success      200 {object} object{message=string} "Chunk deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid parameters"
// @Failure      404 {object} types.ErrorResponse "Lecture or chunk not found"
// @Router       /api/v1/lectures/{id}/chunks/{chunk} [delete]
func DeleteChunk(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		chunkNumber, ok := types.ParseIntParam(c, "chunk")
		if !ok {
			return
		}

		err := deps.LectureService.DeleteChunk(c.Request.Context(), lectureID, chunkNumber)
		if err != nil {
			if errors.Is(err, lectureService.ErrChunkNotFound) {
				types.SendNotFound(c, "Chunk not found")
				return
			}
			types.SendServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Chunk deleted successfully"})
	}
}
