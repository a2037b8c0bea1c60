package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alloy-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInquiryRepository is a mock implementation of repository.InquiryRepository.
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return m.Called(ctx, inquiry).Error(0)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) ListRecent(ctx context.Context, limit int) ([]model.Inquiry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Inquiry), args.Error(1)
}

func TestInquiryHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	stored := []model.Inquiry{
		{
			ID:        uuid.New(),
			Request:   model.OrderRequest{Name: "Анна", Phone: "89261234567"},
			CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	tests := []struct {
		name           string
		query          string
		mockLimit      int
		mockReturn     []model.Inquiry
		mockError      error
		expectedStatus int
		expectMockCall bool
	}{
		{
			name:           "Default limit",
			query:          "",
			mockLimit:      50,
			mockReturn:     stored,
			expectedStatus: http.StatusOK,
			expectMockCall: true,
		},
		{
			name:           "Custom limit",
			query:          "?limit=5",
			mockLimit:      5,
			mockReturn:     stored,
			expectedStatus: http.StatusOK,
			expectMockCall: true,
		},
		{
			name:           "Invalid limit",
			query:          "?limit=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Limit too large",
			query:          "?limit=10000",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Repository error",
			query:          "",
			mockLimit:      50,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectMockCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInquiryRepository)
			if tt.expectMockCall {
				repo.On("ListRecent", mock.Anything, tt.mockLimit).Return(tt.mockReturn, tt.mockError)
			}

			h := NewInquiryHandler(repo, logger)
			rec := serve("/api/inquiries", h.List, httptest.NewRequest(http.MethodGet, "/api/inquiries"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var got []model.Inquiry
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.Len(t, got, 1)
				assert.Equal(t, stored[0].ID, got[0].ID)
			}

			if tt.expectMockCall {
				repo.AssertExpectations(t)
			} else {
				repo.AssertNotCalled(t, "ListRecent", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestInquiryHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	stored := &model.Inquiry{
		ID:        uuid.New(),
		Request:   model.OrderRequest{Name: "Анна", Phone: "89261234567"},
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.Inquiry
		mockError      error
		expectedStatus int
		expectedCode   string
		expectMockCall bool
	}{
		{
			name:           "Found",
			id:             stored.ID.String(),
			mockReturn:     stored,
			expectedStatus: http.StatusOK,
			expectMockCall: true,
		},
		{
			name:           "Not found",
			id:             stored.ID.String(),
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
			expectMockCall: true,
		},
		{
			name:           "Invalid ID",
			id:             "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidation,
		},
		{
			name:           "Repository error",
			id:             stored.ID.String(),
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectMockCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInquiryRepository)
			if tt.expectMockCall {
				repo.On("GetByID", mock.Anything, stored.ID).Return(tt.mockReturn, tt.mockError)
			}

			h := NewInquiryHandler(repo, logger)
			rec := serve("/api/inquiries/{id}", h.Get, httptest.NewRequest(http.MethodGet, "/api/inquiries/"+tt.id, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Error)
			} else {
				var got model.Inquiry
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, stored.ID, got.ID)
				assert.Equal(t, "Анна", got.Request.Name)
			}

			if tt.expectMockCall {
				repo.AssertExpectations(t)
			} else {
				repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			}
		})
	}
}
