package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"alcyxob/fittrack/internal/stats"
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// Profile is a user together with the goals in effect for them.
type Profile struct {
	User           *domain.User       `json:"user"`
	EffectiveGoals domain.Goals       `json:"effectiveGoals"`
	MacroTargets   stats.MacroTargets `json:"macroTargets"`
}

// UpdateProfileInput replaces height and personal goals. Zero goal fields fall back to defaults.
type UpdateProfileInput struct {
	HeightCm float64      `validate:"gte=0,lte=300"`
	Goals    domain.Goals
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, input UpdateProfileInput) (*Profile, error)
}

type profileService struct {
	userRepo repository.UserRepository
	defaults domain.Goals
}

// NewProfileService creates a ProfileService; defaults fill goals a user has not set.
func NewProfileService(userRepo repository.UserRepository, defaults domain.Goals) ProfileService {
	return &profileService{userRepo: userRepo, defaults: defaults}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	return buildProfile(user, s.defaults), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input UpdateProfileInput) (*Profile, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	g := input.Goals
	if sum := g.ProteinPct + g.CarbsPct + g.FatPct; sum != 0 && sum != 100 {
		return nil, invalidf("macro percentages must add up to 100, got %d", sum)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, input.HeightCm, g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to update profile")
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func buildProfile(user *domain.User, defaults domain.Goals) *Profile {
	user.PasswordHash = ""
	goals := user.Goals.WithDefaults(defaults)
	return &Profile{
		User:           user,
		EffectiveGoals: goals,
		MacroTargets:   stats.MacroGoals(goals.DailyCalories, goals.ProteinPct, goals.CarbsPct, goals.FatPct),
	}
}

func loadUser(ctx context.Context, repo repository.UserRepository, userID primitive.ObjectID) (*domain.User, error) {
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to load user")
		return nil, err
	}
	return user, nil
}
