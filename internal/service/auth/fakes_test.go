package auth

import (
	"context"
	"sync"

	"github.com/diacare/identity-service/internal/domain/models"
	"github.com/google/uuid"
)

// fakeTxManager runs the function directly, without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo is an in-memory UserRepo.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User

	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *fakeUserRepo) add(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindAdminByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.Role == "ADMIN" {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phoneNumber string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, userID uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[userID], nil
}

func (r *fakeUserRepo) FindWithProfile(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &models.UserProfile{User: *u}, nil
}

func (r *fakeUserRepo) UpdateSessionSecret(_ context.Context, userID uuid.UUID, hash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.SetSessionSecret(hash)
	}
	return nil
}

// fakePatientRepo records created patient profiles.
type fakePatientRepo struct {
	mu       sync.Mutex
	profiles []*models.PatientProfile
}

func (r *fakePatientRepo) Create(_ context.Context, profile *models.PatientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.ID = uuid.New()
	r.profiles = append(r.profiles, profile)
	return nil
}

// fakeDoctorRepo records created doctor profiles and counts license lookups.
type fakeDoctorRepo struct {
	mu                 sync.Mutex
	profiles           []*models.DoctorProfile
	licenseLookupCount int
}

func (r *fakeDoctorRepo) Create(_ context.Context, profile *models.DoctorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.ID = uuid.New()
	r.profiles = append(r.profiles, profile)
	return nil
}

func (r *fakeDoctorRepo) FindByLicense(_ context.Context, licenseNumber string) (*models.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.licenseLookupCount++
	for _, p := range r.profiles {
		if p.LicenseNumber == licenseNumber {
			return p, nil
		}
	}
	return nil, nil
}
