package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/token"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindBy(ctx context.Context, field Field, value string) (*User, error) {
	args := m.Called(ctx, field, value)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, u User) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Replace(ctx context.Context, u User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, login string) error {
	args := m.Called(ctx, login)
	return args.Error(0)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(subject uuid.UUID) (token.Pair, error) {
	args := m.Called(subject)
	return args.Get(0).(token.Pair), args.Error(1)
}

func newTestService(repo Repository, issuer Issuer) *Service {
	return NewService(repo, issuer, slog.Default())
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	stored := &User{ID: userID, Login: "alice", PasswordHash: hashOf(t, "secret123")}
	pair := token.Pair{AccessToken: "access", RefreshToken: "refresh"}

	mockRepo.On("FindBy", mock.Anything, FieldLogin, "alice").Return(stored, nil)
	mockIssuer.On("Issue", userID).Return(pair, nil)

	result, err := service.Login(context.Background(), LoginRequest{Login: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, LoginOK, result.Outcome)
	assert.Equal(t, pair, result.Tokens)

	mockRepo.AssertExpectations(t)
	mockIssuer.AssertExpectations(t)
}

func TestService_Login_WrongLogin(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	mockRepo.On("FindBy", mock.Anything, FieldLogin, "ghost").Return(nil, nil)

	result, err := service.Login(context.Background(), LoginRequest{Login: "ghost", Password: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, LoginWrongLogin, result.Outcome)
	assert.Empty(t, result.Tokens.AccessToken)

	mockIssuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	stored := &User{ID: uuid.New(), Login: "alice", PasswordHash: hashOf(t, "correct")}
	mockRepo.On("FindBy", mock.Anything, FieldLogin, "alice").Return(stored, nil)

	result, err := service.Login(context.Background(), LoginRequest{Login: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.Equal(t, LoginWrongPassword, result.Outcome)
	assert.Empty(t, result.Tokens.AccessToken)

	mockIssuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestService_Login_IssueFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	stored := &User{ID: userID, Login: "alice", PasswordHash: hashOf(t, "secret123")}
	mockRepo.On("FindBy", mock.Anything, FieldLogin, "alice").Return(stored, nil)
	mockIssuer.On("Issue", userID).Return(token.Pair{}, errors.New("signing broke"))

	result, err := service.Login(context.Background(), LoginRequest{Login: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, LoginUnknown, result.Outcome)
}

func TestService_Login_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	mockRepo.On("FindBy", mock.Anything, FieldLogin, "alice").Return(nil, errors.New("connection refused"))

	_, err := service.Login(context.Background(), LoginRequest{Login: "alice", Password: "secret123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Register_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	req := RegistrationRequest{
		Login:     "alice",
		Password:  "secret123",
		Mail:      "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	userID := uuid.New()
	pair := token.Pair{AccessToken: "access", RefreshToken: "refresh"}

	mockRepo.On("FindBy", mock.Anything, FieldMail, req.Mail).Return(nil, nil)
	mockRepo.On("FindBy", mock.Anything, FieldLogin, req.Login).Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
		// The hash reaches the store, never the plaintext.
		return u.Login == req.Login && u.Mail == req.Mail &&
			u.PasswordHash != "" && u.PasswordHash != req.Password &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
	})).Return(User{ID: userID, Login: req.Login, Mail: req.Mail}, nil).Once()
	mockIssuer.On("Issue", userID).Return(pair, nil)

	result, err := service.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, RegistrationOK, result.Outcome)
	assert.Equal(t, pair, result.Tokens)

	mockRepo.AssertExpectations(t)
	mockIssuer.AssertExpectations(t)
}

func TestService_Register_MailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	existing := &User{ID: uuid.New(), Login: "other", Mail: "alice@example.com"}
	mockRepo.On("FindBy", mock.Anything, FieldMail, "alice@example.com").Return(existing, nil)

	result, err := service.Register(context.Background(), RegistrationRequest{
		Login: "alice", Password: "secret123", Mail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, RegistrationMailTaken, result.Outcome)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_LoginTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	existing := &User{ID: uuid.New(), Login: "alice", Mail: "other@example.com"}
	mockRepo.On("FindBy", mock.Anything, FieldMail, "alice@example.com").Return(nil, nil)
	mockRepo.On("FindBy", mock.Anything, FieldLogin, "alice").Return(existing, nil)

	result, err := service.Register(context.Background(), RegistrationRequest{
		Login: "alice", Password: "secret123", Mail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, RegistrationLoginTaken, result.Outcome)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_MailPrecedesLogin(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	// Both collide; the mail conflict is the one reported.
	existing := &User{ID: uuid.New(), Login: "alice", Mail: "alice@example.com"}
	mockRepo.On("FindBy", mock.Anything, FieldMail, "alice@example.com").Return(existing, nil)

	result, err := service.Register(context.Background(), RegistrationRequest{
		Login: "alice", Password: "secret123", Mail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, RegistrationMailTaken, result.Outcome)

	mockRepo.AssertNotCalled(t, "FindBy", mock.Anything, FieldLogin, mock.Anything)
}

func TestService_Register_RaceLoserGetsConflict(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		expected RegistrationOutcome
	}{
		{
			name:     "login index violated",
			storeErr: ErrLoginTaken,
			expected: RegistrationLoginTaken,
		},
		{
			name:     "mail index violated",
			storeErr: ErrMailTaken,
			expected: RegistrationMailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockIssuer := new(MockIssuer)
			service := newTestService(mockRepo, mockIssuer)

			// Pre-check sees nothing; the concurrent writer wins
			// between check and insert, and the unique index fires.
			mockRepo.On("FindBy", mock.Anything, FieldMail, mock.Anything).Return(nil, nil)
			mockRepo.On("FindBy", mock.Anything, FieldLogin, mock.Anything).Return(nil, nil)
			mockRepo.On("Create", mock.Anything, mock.Anything).Return(User{}, tt.storeErr)

			result, err := service.Register(context.Background(), RegistrationRequest{
				Login: "alice", Password: "secret123", Mail: "alice@example.com",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Outcome)

			mockIssuer.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}
}

func TestService_Register_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	mockRepo.On("FindBy", mock.Anything, FieldMail, mock.Anything).Return(nil, nil)
	mockRepo.On("FindBy", mock.Anything, FieldLogin, mock.Anything).Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(User{}, errors.New("connection reset"))

	_, err := service.Register(context.Background(), RegistrationRequest{
		Login: "alice", Password: "secret123", Mail: "alice@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestService_Register_IssueFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	mockRepo.On("FindBy", mock.Anything, FieldMail, mock.Anything).Return(nil, nil)
	mockRepo.On("FindBy", mock.Anything, FieldLogin, mock.Anything).Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(User{ID: userID}, nil)
	mockIssuer.On("Issue", userID).Return(token.Pair{}, errors.New("signing broke"))

	result, err := service.Register(context.Background(), RegistrationRequest{
		Login: "alice", Password: "secret123", Mail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, RegistrationUnknown, result.Outcome)
}

func TestService_Edit_PreservesPasswordHash(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	originalHash := hashOf(t, "secret123")
	existing := &User{
		ID:           userID,
		Login:        "alice",
		Mail:         "alice@example.com",
		PasswordHash: originalHash,
		FirstName:    "Alice",
		LastName:     "Smith",
	}

	mockRepo.On("FindByID", mock.Anything, userID).Return(existing, nil)
	mockRepo.On("Replace", mock.Anything, User{
		ID:           userID,
		Login:        "alice2",
		Mail:         "alice2@example.com",
		PasswordHash: originalHash,
		FirstName:    "Alicia",
		LastName:     "Jones",
	}).Return(nil).Once()

	err := service.Edit(context.Background(), userID, EditRequest{
		Login:     "alice2",
		Mail:      "alice2@example.com",
		FirstName: "Alicia",
		LastName:  "Jones",
	})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Edit_UserMissing(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	mockRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	err := service.Edit(context.Background(), userID, EditRequest{Login: "alice"})
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	existing := &User{ID: userID, Login: "alice"}

	mockRepo.On("FindByID", mock.Anything, userID).Return(existing, nil)
	mockRepo.On("Delete", mock.Anything, "alice").Return(nil).Once()

	err := service.Delete(context.Background(), userID)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_AlreadyGone(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIssuer := new(MockIssuer)
	service := newTestService(mockRepo, mockIssuer)

	userID := uuid.New()
	mockRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	err := service.Delete(context.Background(), userID)
	assert.NoError(t, err)

	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
