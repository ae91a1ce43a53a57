package notificationservice

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

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		ntype         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Success notification is saved unread",
			ntype: TypeSuccess,
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n *domain.Notification) error {
						assert.False(t, n.Read)
						assert.NotEmpty(t, n.ID)
						return nil
					})
			},
		},
		{
			name:          "Unknown type is rejected before the repo",
			ntype:         "shout",
			expectedError: ErrInvalidType,
		},
		{
			name:  "Repo failure propagates",
			ntype: TypeInfo,
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

			n, err := service.Create(context.Background(), "user-1", "Title", "Message", tt.ntype, "/orders/1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, n)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.ntype, n.Type)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByUserID(gomock.Any(), "user-1", DefaultLimit).
		Return([]domain.Notification{{ID: "n-1"}}, nil)
	list, err := service.List(context.Background(), "user-1", 0)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	repo.EXPECT().FindByUserID(gomock.Any(), "user-1", 10).Return(nil, nil)
	list, err = service.List(context.Background(), "user-1", 10)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestMarkRead(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().MarkRead(gomock.Any(), "n-1").
		Return(&domain.Notification{ID: "n-1", Read: true}, nil)
	n, err := service.MarkRead(context.Background(), "n-1")
	assert.NoError(t, err)
	assert.True(t, n.Read)

	repo.EXPECT().MarkRead(gomock.Any(), "missing").Return(nil, nil)
	n, err = service.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, n)
}

func TestNotifyOrderDeadline(t *testing.T) {
	service, repo := NewMock(t)

	saved := make([]string, 0, 2)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			assert.Equal(t, TypeWarning, n.Type)
			assert.Equal(t, "/orders/order-1", n.ActionURL)
			saved = append(saved, n.UserID)
			return nil
		})

	err := service.NotifyOrderDeadline(context.Background(), "order-1", "Organic Coffee Beans", []string{"manager-1", "user-1"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"manager-1", "user-1"}, saved)
}
