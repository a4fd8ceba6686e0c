package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"monarch-web/internal/domain"
	"monarch-web/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock webhook client
type MockWebhook struct {
	mock.Mock
}

func (m *MockWebhook) PostJSON(ctx context.Context, payload interface{}) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *MockWebhook) IsConfigured() bool {
	return m.Called().Bool(0)
}

func validFields() domain.ContactFormFields {
	return domain.ContactFormFields{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   "Analytical Engines",
		Phone:     "+32470123456",
		Message:   "We need our invoicing automated.",
	}
}

func TestContactSubmit(t *testing.T) {
	t.Run("Should clear fields and confirm on 2xx", func(t *testing.T) {
		hook := new(MockWebhook)
		hook.On("IsConfigured").Return(true)
		hook.On("PostJSON", mock.Anything, mock.AnythingOfType("domain.ContactSubmission")).Return(nil).Once()

		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
		state, err := uc.Submit(context.Background(), "", validFields())

		require.NoError(t, err)
		assert.True(t, state.Submitted)
		assert.True(t, state.Fields.IsEmpty())
		assert.Empty(t, state.Error)
		hook.AssertExpectations(t)
	})

	t.Run("Should send every field plus timestamp and source", func(t *testing.T) {
		hook := new(MockWebhook)
		hook.On("IsConfigured").Return(true)
		hook.On("PostJSON", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sub := args.Get(1).(domain.ContactSubmission)
			assert.Equal(t, "Ada", sub.FirstName)
			assert.Equal(t, "Lovelace", sub.LastName)
			assert.Equal(t, "ada@example.com", sub.Email)
			assert.Equal(t, "Analytical Engines", sub.Company)
			assert.Equal(t, "+32470123456", sub.Phone)
			assert.Equal(t, "We need our invoicing automated.", sub.Message)
			assert.Equal(t, "monarch-ai-website", sub.Source)
			_, err := time.Parse(time.RFC3339, sub.Timestamp)
			assert.NoError(t, err)
		})

		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
		_, err := uc.Submit(context.Background(), "", validFields())
		require.NoError(t, err)
	})

	t.Run("Should keep values and surface generic error on webhook failure", func(t *testing.T) {
		hook := new(MockWebhook)
		hook.On("IsConfigured").Return(true)
		hook.On("PostJSON", mock.Anything, mock.Anything).Return(errors.New("status 500")).Once()

		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
		state, err := uc.Submit(context.Background(), "", validFields())

		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
		assert.False(t, state.Submitted)
		assert.Equal(t, validFields(), state.Fields)
		assert.Equal(t, domain.ContactErrorMessage, state.Error)
		hook.AssertNumberOfCalls(t, "PostJSON", 1)
	})

	t.Run("Should keep typed values untrimmed on failure while posting trimmed ones", func(t *testing.T) {
		hook := new(MockWebhook)
		hook.On("IsConfigured").Return(true)
		hook.On("PostJSON", mock.Anything, mock.Anything).Return(errors.New("status 502")).Run(func(args mock.Arguments) {
			sub := args.Get(1).(domain.ContactSubmission)
			assert.Equal(t, "Ada", sub.FirstName)
			assert.Equal(t, "ada@example.com", sub.Email)
		}).Once()

		typed := validFields()
		typed.FirstName = " Ada "
		typed.Email = "ada@example.com  "

		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
		state, err := uc.Submit(context.Background(), "", typed)

		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
		assert.Equal(t, typed, state.Fields)
		hook.AssertExpectations(t)
	})

	t.Run("Should reject missing required fields without posting", func(t *testing.T) {
		hook := new(MockWebhook)
		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")

		fields := validFields()
		fields.Message = "   "
		_, err := uc.Submit(context.Background(), "", fields)

		assert.ErrorIs(t, err, domain.ErrMissingField)
		assert.Contains(t, err.Error(), "message")
		hook.AssertNotCalled(t, "PostJSON", mock.Anything, mock.Anything)
	})

	t.Run("Should allow empty optional fields", func(t *testing.T) {
		hook := new(MockWebhook)
		hook.On("IsConfigured").Return(true)
		hook.On("PostJSON", mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
		fields := validFields()
		fields.Company = ""
		fields.Phone = ""
		state, err := uc.Submit(context.Background(), "", fields)

		require.NoError(t, err)
		assert.True(t, state.Submitted)
	})

	t.Run("Should report unavailable when webhook is not configured", func(t *testing.T) {
		hook := new(MockWebhook)
		hook.On("IsConfigured").Return(false)

		uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
		_, err := uc.Submit(context.Background(), "", validFields())

		assert.ErrorIs(t, err, domain.ErrContactUnavailable)
		assert.False(t, uc.IsAvailable())
		hook.AssertNotCalled(t, "PostJSON", mock.Anything, mock.Anything)
	})
}

func TestContactDoubleSubmitPostsOnce(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	hook := new(MockWebhook)
	hook.On("IsConfigured").Return(true)
	hook.On("PostJSON", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		close(entered)
		<-release
	}).Once()

	uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
	formID := "7f1c1a52-0d7e-4c55-9a36-3f4d3b0b4b1e"

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(context.Background(), formID, validFields())
		done <- err
	}()
	<-entered

	state, err := uc.Submit(context.Background(), formID, validFields())
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)
	assert.Equal(t, validFields(), state.Fields)

	close(release)
	require.NoError(t, <-done)
	hook.AssertNumberOfCalls(t, "PostJSON", 1)
}

func TestContactDoubleSubmitWithoutFormID(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	hook := new(MockWebhook)
	hook.On("IsConfigured").Return(true)
	hook.On("PostJSON", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		close(entered)
		<-release
	}).Once()

	uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(context.Background(), "", validFields())
		done <- err
	}()
	<-entered

	_, err := uc.Submit(context.Background(), "", validFields())
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	hook.AssertNumberOfCalls(t, "PostJSON", 1)
}

func TestContactResubmitAfterCompletion(t *testing.T) {
	hook := new(MockWebhook)
	hook.On("IsConfigured").Return(true)
	hook.On("PostJSON", mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
	hook.On("PostJSON", mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewContactUsecase(hook, nil, "monarch-ai-website")
	formID := "7f1c1a52-0d7e-4c55-9a36-3f4d3b0b4b1e"

	_, err := uc.Submit(context.Background(), formID, validFields())
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)

	// manual retry after the first attempt finished goes through
	state, err := uc.Submit(context.Background(), formID, validFields())
	require.NoError(t, err)
	assert.True(t, state.Submitted)
	hook.AssertNumberOfCalls(t, "PostJSON", 2)
}

func TestAnalyze(t *testing.T) {
	t.Run("Should return mock report with input url and fixed score", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(10 * time.Millisecond)

		start := time.Now()
		report, err := uc.Analyze(context.Background(), "https://acme.example")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
		assert.Equal(t, "https://acme.example", report.URL)
		assert.Equal(t, 78, report.OverallScore)
		assert.Len(t, report.Sections, 4)
		assert.Equal(t, 82, report.Sections["user_experience"].Score)
		assert.NotEmpty(t, report.StrategicQuestion)
	})

	t.Run("Should not start for empty url", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(time.Hour)

		report, err := uc.Analyze(context.Background(), "  ")

		assert.ErrorIs(t, err, domain.ErrEmptyURL)
		assert.Nil(t, report)
	})

	t.Run("Should stop waiting when context is cancelled", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(time.Hour)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := uc.Analyze(ctx, "https://acme.example")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Should not leak mutations between calls", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(0)

		first, err := uc.Analyze(context.Background(), "https://one.example")
		require.NoError(t, err)
		sec := first.Sections["brand_positioning"]
		sec.Recommendations[0] = "tampered"

		second, err := uc.Analyze(context.Background(), "https://two.example")
		require.NoError(t, err)
		assert.Equal(t, "Expand thought leadership content", second.Sections["brand_positioning"].Recommendations[0])
		assert.Equal(t, "https://two.example", second.URL)
	})
}
