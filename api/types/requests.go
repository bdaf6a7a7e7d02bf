package types

// CreateLectureRequest for opening a new recording session
type CreateLectureRequest struct {
	LectureName string `json:"lecture_name" binding:"required"`
}
