package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/mock"
	"github.com/MKhiriev/go-room-chat/models"
)

func newTestAccountSvc(t *testing.T) (ClientAccountService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAccountService(mockAdapter, logger.Nop()), mockAdapter
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestClientAccountService_CreateUser_SendsPlaceholderID(t *testing.T) {
	svc, mockAdapter := newTestAccountSvc(t)

	mockAdapter.EXPECT().
		AddUser(gomock.Any(), models.User{ID: models.PlaceholderID, Name: "alice", Password: "pw"}).
		Return(models.Success("user 'alice' created", true), nil)

	reply, err := svc.CreateUser(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.True(t, models.Truthy(reply))
	assert.Equal(t, "user 'alice' created", reply.Message)
}

func TestClientAccountService_CreateUser_Rejected(t *testing.T) {
	svc, mockAdapter := newTestAccountSvc(t)

	mockAdapter.EXPECT().AddUser(gomock.Any(), gomock.Any()).
		Return(models.Failure[bool]("name is required"), nil)

	reply, err := svc.CreateUser(context.Background(), "", "pw")
	require.NoError(t, err)
	assert.False(t, reply.OK())
	assert.Equal(t, "name is required", reply.Message)
}

func TestClientAccountService_CreateUser_TransportError(t *testing.T) {
	svc, mockAdapter := newTestAccountSvc(t)

	mockAdapter.EXPECT().AddUser(gomock.Any(), gomock.Any()).
		Return(models.Envelope[bool]{}, adapter.ErrTransport)

	_, err := svc.CreateUser(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

// ── SearchUser ───────────────────────────────────────────────────────────────

func TestClientAccountService_SearchUser_PassesFiltersThrough(t *testing.T) {
	svc, mockAdapter := newTestAccountSvc(t)

	users := []models.User{{ID: 1, Name: "alice"}}
	// пустые фильтры уходят на сервер без изменений
	mockAdapter.EXPECT().
		SearchUser(gomock.Any(), models.UserSearch{ID: 0, Name: ""}).
		Return(models.Success("found 1 user(s)", users), nil)

	reply, err := svc.SearchUser(context.Background(), 0, "")
	require.NoError(t, err)
	got, ok := reply.Data()
	require.True(t, ok)
	assert.Equal(t, users, got)
}

func TestClientAccountService_CreateThenSearch(t *testing.T) {
	svc, mockAdapter := newTestAccountSvc(t)

	var stored []models.User
	mockAdapter.EXPECT().AddUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.Envelope[bool], error) {
			u.ID = int64(len(stored) + 1)
			u.Password = ""
			stored = append(stored, u)
			return models.Success("created", true), nil
		})
	mockAdapter.EXPECT().SearchUser(gomock.Any(), models.UserSearch{Name: "carol"}).
		DoAndReturn(func(_ context.Context, f models.UserSearch) (models.Envelope[[]models.User], error) {
			var out []models.User
			for _, u := range stored {
				if u.Name == f.Name {
					out = append(out, u)
				}
			}
			return models.Success("found", out), nil
		})

	_, err := svc.CreateUser(context.Background(), "carol", "pw")
	require.NoError(t, err)

	reply, err := svc.SearchUser(context.Background(), 0, "carol")
	require.NoError(t, err)
	found, _ := reply.Data()
	require.Len(t, found, 1)
	assert.Equal(t, "carol", found[0].Name)
	assert.NotZero(t, found[0].ID)
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestClientAccountService_DeleteUser_ZeroRowsIsNotAnError(t *testing.T) {
	svc, mockAdapter := newTestAccountSvc(t)

	mockAdapter.EXPECT().
		DeleteUser(gomock.Any(), models.User{ID: 42, Name: "ghost", Password: "pw"}).
		Return(models.Success("deleted 0 user(s)", int64(0)), nil)

	reply, err := svc.DeleteUser(context.Background(), 42, "ghost", "pw")
	require.NoError(t, err)
	n, ok := reply.Data()
	assert.True(t, ok)
	assert.Zero(t, n)
}
