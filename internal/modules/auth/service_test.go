package auth

import (
	"context"
	"testing"

	"petshop/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 12
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@example.com" &&
			u.Role == domain.RoleClient &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("sekrit1")) == nil
	})).Return(nil)

	service := NewService(users, new(MockTokenIssuer), nil)

	resp, err := service.Register(context.Background(), RegisterRequest{
		FullName: "Ana",
		Email:    "Ana@Example.com",
		Password: "sekrit1",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "client", resp.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{ID: 1, Email: "ana@example.com"}, nil)

	service := NewService(users, new(MockTokenIssuer), nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		FullName: "Ana",
		Email:    "ana@example.com",
		Password: "sekrit1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("sekrit1"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           5,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)

	tokens := new(MockTokenIssuer)
	tokens.On("GenerateToken", int64(5), "client").Return("signed-token", nil)

	service := NewService(users, tokens, nil)

	resp, err := service.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "sekrit1"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(5), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("sekrit1"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           5,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)

	service := NewService(users, new(MockTokenIssuer), nil)

	_, err := service.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:       5,
		FullName: "Ana Client",
		Email:    "ana@example.com",
		Phone:    "0811111111",
		Address:  "Old Street 1",
		Role:     domain.RoleClient,
	}, nil)

	newPhone := "0822222222"
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 5 &&
			u.Phone == newPhone &&
			u.FullName == "Ana Client" &&
			u.Address == "Old Street 1"
	})).Return(nil)

	service := NewService(users, new(MockTokenIssuer), nil)

	resp, err := service.UpdateProfile(context.Background(), 5, UpdateProfileRequest{Phone: &newPhone})

	assert.NoError(t, err)
	assert.Equal(t, newPhone, resp.Phone)
	users.AssertExpectations(t)
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:           5,
		Email:        "ana@example.com",
		PasswordHash: "old-hash",
		Role:         domain.RoleClient,
	}, nil)

	newPassword := "newsekrit"
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(newPassword)) == nil
	})).Return(nil)

	service := NewService(users, new(MockTokenIssuer), nil)

	_, err := service.UpdateProfile(context.Background(), 5, UpdateProfileRequest{Password: &newPassword})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(MockTokenIssuer), nil)

	_, err := service.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
