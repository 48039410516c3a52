package impl

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
)

// Hand-written test doubles for the domain interfaces the services depend on.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockShipmentRepository struct {
	mock.Mock
}

func (m *mockShipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	args := m.Called(ctx, shipment)

	return args.Error(0)
}

func (m *mockShipmentRepository) FindByTracking(ctx context.Context, trackingNumber string) (*entity.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Shipment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) ListAll(ctx context.Context) ([]*entity.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) UpdateStatus(ctx context.Context, shipmentID int64, status entity.ShipmentStatus) (*entity.Shipment, error) {
	args := m.Called(ctx, shipmentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Shipment), args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID int64, email string, role entity.Role) (string, error) {
	args := m.Called(userID, email, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *mockTokenService) TokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateTrackingQR(trackingNumber string) ([]byte, error) {
	args := m.Called(trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// stubTrackingGenerator returns a fixed tracking number.
type stubTrackingGenerator struct {
	number string
}

func (s *stubTrackingGenerator) Generate() string {
	return s.number
}

// fakeRepositoryFactory hands out the repositories a test wired in.
type fakeRepositoryFactory struct {
	users     repository.UserRepository
	shipments repository.ShipmentRepository
}

func (f *fakeRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.users
}

func (f *fakeRepositoryFactory) NewShipmentRepository() repository.ShipmentRepository {
	return f.shipments
}

// fakeTransactionManager runs the unit of work directly against the wired
// factory, without a database.
type fakeTransactionManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}
