package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/mock"
	"github.com/MKhiriev/go-room-chat/internal/store"
	"github.com/MKhiriev/go-room-chat/internal/utils"
	"github.com/MKhiriev/go-room-chat/internal/validators"
	"github.com/MKhiriev/go-room-chat/models"
)

// newTestUserSvc: хелпер для создания userService с моком репозитория
func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, validators.NewChatValidator(), logger.Nop()), repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hashed
}

// ── AddUser ──────────────────────────────────────────────────────────────────

func TestUserService_AddUser_Success(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			// пароль должен уйти в хранилище только в виде хеша
			assert.NotEqual(t, "secret", u.Password)
			assert.NoError(t, utils.CheckPassword(u.Password, "secret"))
			u.ID = 11
			return u, nil
		})

	created, err := svc.AddUser(context.Background(), models.User{Name: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "alice", created.Name)
	assert.Empty(t, created.Password)
}

func TestUserService_AddUser_Invalid(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	tests := []struct {
		name string
		user models.User
	}{
		{"id set", models.User{ID: 3, Name: "alice", Password: "pw"}},
		{"empty name", models.User{Password: "pw"}},
		{"empty password", models.User{Name: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserService_AddUser_StorageError(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.AddUser(context.Background(), models.User{Name: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── SearchUsers ──────────────────────────────────────────────────────────────

func TestUserService_SearchUsers_PassesFilter(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	filter := models.UserSearch{Name: "alice"}
	want := []models.User{{ID: 1, Name: "alice"}, {ID: 2, Name: "alice"}}
	repo.EXPECT().FindUsers(gomock.Any(), filter).Return(want, nil)

	got, err := svc.SearchUsers(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_SearchUsers_NegativeID(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.SearchUsers(context.Background(), models.UserSearch{ID: -5})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_SearchUsers_StorageError(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().FindUsers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.SearchUsers(context.Background(), models.UserSearch{})
	assert.Error(t, err)
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestUserService_DeleteUser_Success(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	gomock.InOrder(
		repo.EXPECT().GetUserByID(gomock.Any(), int64(4)).
			Return(models.User{ID: 4, Name: "bob", Password: mustHash(t, "pw")}, nil),
		repo.EXPECT().DeleteUser(gomock.Any(), int64(4)).Return(int64(1), nil),
	)

	n, err := svc.DeleteUser(context.Background(), models.User{ID: 4, Name: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserService_DeleteUser_UnknownIDDeletesNothing(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().GetUserByID(gomock.Any(), int64(99)).Return(models.User{}, store.ErrNotFound)

	n, err := svc.DeleteUser(context.Background(), models.User{ID: 99, Name: "ghost", Password: "pw"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUserService_DeleteUser_WrongPassword(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().GetUserByID(gomock.Any(), int64(4)).
		Return(models.User{ID: 4, Name: "bob", Password: mustHash(t, "pw")}, nil)

	_, err := svc.DeleteUser(context.Background(), models.User{ID: 4, Name: "bob", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUserService_DeleteUser_NameMismatch(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().GetUserByID(gomock.Any(), int64(4)).
		Return(models.User{ID: 4, Name: "bob", Password: mustHash(t, "pw")}, nil)

	_, err := svc.DeleteUser(context.Background(), models.User{ID: 4, Name: "mallory", Password: "pw"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUserService_DeleteUser_PlaceholderID(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.DeleteUser(context.Background(), models.User{Name: "bob", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
