package requestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreateRequest(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		productName   string
		country       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Request opens with zero votes",
			productName: "Matcha Powder",
			country:     "JP",
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.ProductRequest) error {
						assert.Equal(t, OpenRequestStatus, req.Status)
						assert.Equal(t, 0, req.MeTooCount)
						assert.NotNil(t, req.Images)
						return nil
					})
			},
		},
		{
			name:          "Blank product name",
			productName:   "   ",
			country:       "JP",
			expectedError: ErrValidation,
		},
		{
			name:          "Unsupported country",
			productName:   "Matcha Powder",
			country:       "ZZ",
			expectedError: ErrValidation,
		},
		{
			name:        "Repo failure propagates",
			productName: "Matcha Powder",
			country:     "JP",
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req, err := service.Create(context.Background(), "user-1", tt.productName, "https://example.com/p", "desc", nil, tt.country)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, req)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.productName, req.ProductName)
			}
		})
	}
}

func TestVote(t *testing.T) {
	service, repo := NewMock(t)

	// A fresh vote, a duplicate, and a repo failure all complete silently.
	repo.EXPECT().AddVote(gomock.Any(), "req-1", "user-1").Return(true, nil)
	service.Vote(context.Background(), "req-1", "user-1")

	repo.EXPECT().AddVote(gomock.Any(), "req-1", "user-1").Return(false, nil)
	service.Vote(context.Background(), "req-1", "user-1")

	repo.EXPECT().AddVote(gomock.Any(), "req-1", "user-1").Return(false, errors.New("some error"))
	service.Vote(context.Background(), "req-1", "user-1")
}

func TestListRequests(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().List(gomock.Any(), "US", OpenRequestStatus).
		Return([]domain.ProductRequest{{ID: "req-1"}}, nil)
	list, err := service.List(context.Background(), "US", OpenRequestStatus)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
