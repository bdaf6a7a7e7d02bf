package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/lecture-api/api/types"
	"github.com/killallgit/lecture-api/internal/models"
	lectureService "github.com/killallgit/lecture-api/internal/services/lectures"
	"github.com/killallgit/lecture-api/internal/services/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLectureService is a mock implementation of lectures.Service
type MockLectureService struct {
	mock.Mock
}

func (m *MockLectureService) CreateLecture(ctx context.Context, name string) (*models.Lecture, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lecture), args.Error(1)
}

func (m *MockLectureService) SubmitChunk(ctx context.Context, lectureID uint, chunkNumber int, audio []byte, filename string) (*models.Transcription, error) {
	args := m.Called(ctx, lectureID, chunkNumber, audio, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transcription), args.Error(1)
}

func (m *MockLectureService) EndLecture(ctx context.Context, lectureID uint) (*models.Lecture, error) {
	args := m.Called(ctx, lectureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lecture), args.Error(1)
}

func (m *MockLectureService) GetLecture(ctx context.Context, lectureID uint) (*models.Lecture, []models.Transcription, error) {
	args := m.Called(ctx, lectureID)
	var lecture *models.Lecture
	if args.Get(0) != nil {
		lecture = args.Get(0).(*models.Lecture)
	}
	var transcriptions []models.Transcription
	if args.Get(1) != nil {
		transcriptions = args.Get(1).([]models.Transcription)
	}
	return lecture, transcriptions, args.Error(2)
}

func (m *MockLectureService) ListLectures(ctx context.Context) ([]models.Lecture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lecture), args.Error(1)
}

func (m *MockLectureService) EnhanceLecture(ctx context.Context, lectureID uint) (*models.Lecture, error) {
	args := m.Called(ctx, lectureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lecture), args.Error(1)
}

func (m *MockLectureService) DeleteLecture(ctx context.Context, lectureID uint) error {
	args := m.Called(ctx, lectureID)
	return args.Error(0)
}

func (m *MockLectureService) DeleteChunk(ctx context.Context, lectureID uint, chunkNumber int) error {
	args := m.Called(ctx, lectureID, chunkNumber)
	return args.Error(0)
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1/translate")
	RegisterRoutes(group, deps)
	return router
}

// multipartAudio builds a multipart body with an audio file plus extra fields
func multipartAudio(t *testing.T, audio []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", "chunk.webm")
	require.NoError(t, err)
	_, err = part.Write(audio)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestPostChunkPersisted(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  10,
	}
	router := setupRouter(deps)

	audio := bytes.Repeat([]byte{0xAB}, 64)
	transcription := &models.Transcription{
		ID:               1,
		LectureID:        5,
		ChunkNumber:      3,
		EnglishText:      "hello from the lecture",
		ConfidenceScore:  floatPtr(0.91),
		ProcessingTimeMs: intPtr(250),
	}
	mockService.On("SubmitChunk", mock.Anything, uint(5), 3, audio, "chunk.webm").
		Return(transcription, nil)

	body, contentType := multipartAudio(t, audio, map[string]string{
		"lecture_id":   "5",
		"chunk_number": "3",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response types.TranslationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, types.StatusOK, response.Status)
	assert.Equal(t, "hello from the lecture", response.Text)
	require.NotNil(t, response.LectureID)
	assert.Equal(t, uint(5), *response.LectureID)
	require.NotNil(t, response.ChunkNumber)
	assert.Equal(t, 3, *response.ChunkNumber)
	mockService.AssertExpectations(t)
}

func TestPostTooShort(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  5000,
	}
	router := setupRouter(deps)

	body, contentType := multipartAudio(t, []byte("tiny"), map[string]string{
		"lecture_id":   "5",
		"chunk_number": "1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response types.TranslationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, types.StatusTooShort, response.Status)
	assert.Empty(t, response.Text)
	mockService.AssertNotCalled(t, "SubmitChunk")
}

func TestPostMissingAudio(t *testing.T) {
	deps := &types.Dependencies{MinAudioBytes: 10}
	router := setupRouter(deps)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("lecture_id", "5"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostInvalidLectureID(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  10,
	}
	router := setupRouter(deps)

	body, contentType := multipartAudio(t, bytes.Repeat([]byte{1}, 64), map[string]string{
		"lecture_id":   "abc",
		"chunk_number": "1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitChunk")
}

func TestPostMissingChunkNumber(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  10,
	}
	router := setupRouter(deps)

	body, contentType := multipartAudio(t, bytes.Repeat([]byte{1}, 64), map[string]string{
		"lecture_id": "5",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitChunk")
}

func TestPostLectureEnded(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  10,
	}
	router := setupRouter(deps)

	audio := bytes.Repeat([]byte{0xCD}, 64)
	mockService.On("SubmitChunk", mock.Anything, uint(5), 4, audio, "chunk.webm").
		Return(nil, lectureService.ErrLectureEnded)

	body, contentType := multipartAudio(t, audio, map[string]string{
		"lecture_id":   "5",
		"chunk_number": "4",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPostDuplicateChunk(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  10,
	}
	router := setupRouter(deps)

	audio := bytes.Repeat([]byte{0xCD}, 64)
	mockService.On("SubmitChunk", mock.Anything, uint(5), 2, audio, "chunk.webm").
		Return(nil, lectureService.ErrDuplicateChunk)

	body, contentType := multipartAudio(t, audio, map[string]string{
		"lecture_id":   "5",
		"chunk_number": "2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPostTranslationFailure(t *testing.T) {
	mockService := new(MockLectureService)
	deps := &types.Dependencies{
		LectureService: mockService,
		MinAudioBytes:  10,
	}
	router := setupRouter(deps)

	audio := bytes.Repeat([]byte{0xCD}, 64)
	mockService.On("SubmitChunk", mock.Anything, uint(5), 2, audio, "chunk.webm").
		Return(nil, &lectureService.TranslationError{Cause: translator.ErrProviderUnavailable})

	body, contentType := multipartAudio(t, audio, map[string]string{
		"lecture_id":   "5",
		"chunk_number": "2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPostStatelessTranslation(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "stateless result", "duration": 2.5}`))
	}))
	defer provider.Close()

	deps := &types.Dependencies{
		Translator: translator.NewClient(translator.Config{
			APIKey:  "test-key",
			BaseURL: provider.URL,
		}),
		MinAudioBytes: 10,
	}
	router := setupRouter(deps)

	body, contentType := multipartAudio(t, bytes.Repeat([]byte{0x01}, 64), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response types.TranslationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, types.StatusOK, response.Status)
	assert.Equal(t, "stateless result", response.Text)
	assert.Nil(t, response.LectureID)
	require.NotNil(t, response.ProcessingTimeMs)
}

func TestPostStatelessRateLimited(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limit reached"}}`, http.StatusTooManyRequests)
	}))
	defer provider.Close()

	deps := &types.Dependencies{
		Translator: translator.NewClient(translator.Config{
			APIKey:        "test-key",
			BaseURL:       provider.URL,
			RetryAttempts: 0,
		}),
		MinAudioBytes: 10,
	}
	router := setupRouter(deps)

	body, contentType := multipartAudio(t, bytes.Repeat([]byte{0x01}, 64), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
