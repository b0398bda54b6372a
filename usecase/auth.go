package usecase

import (
	"context"
	"log"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// AuthService owns registration and login. It is the only writer of the
// credential store and bootstraps the tourist profile exactly once per
// tourist identity.
type AuthService struct {
	Users    repository.UserStore
	Profiles repository.ProfileStore
	Tokens   *services.TokenService
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("user lookup failed during registration: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "credential store unavailable")
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, model.NewAppError(model.ErrKindConflict, "email already registered")
	}

	passwordHash, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "failed to hash password")
	}

	user := &model.User{
		UserID:       utils.GenerateID(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Users.Put(ctx, user); err != nil {
		log.Printf("user insert failed during registration: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "credential store unavailable")
	}

	if user.Role == model.RoleTourist {
		profile := &model.TouristProfile{
			ProfileID:         utils.GenerateID(),
			UserID:            user.UserID,
			DigitalID:         utils.GenerateDigitalID(),
			SafetyScore:       85,
			PlannedItinerary:  []model.Waypoint{},
			EmergencyContacts: []model.EmergencyContact{},
			IntegrityHash:     utils.GenerateIntegrityHash(),
			CreatedAt:         time.Now().UTC(),
		}
		if req.EmergencyContact != "" && req.EmergencyPhone != "" {
			profile.EmergencyContacts = append(profile.EmergencyContacts, model.EmergencyContact{
				Name:         req.EmergencyContact,
				Phone:        req.EmergencyPhone,
				Relationship: "Emergency Contact",
			})
		}
		if err := s.Profiles.Put(ctx, profile); err != nil {
			log.Printf("profile bootstrap failed during registration: %v", err)
			return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "profile store unavailable")
		}
	}

	token, err := s.Tokens.Issue(user.UserID)
	if err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "failed to issue token")
	}

	utils.TrackAuthAttempt("success", "register")
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// Login never tells the caller whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("user lookup failed during login: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "credential store unavailable")
	}

	if user == nil || !services.VerifyPassword(user.PasswordHash, req.Password) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.NewAppError(model.ErrKindAuthRejected, "invalid email or password")
	}

	token, err := s.Tokens.Issue(user.UserID)
	if err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "failed to issue token")
	}

	utils.TrackAuthAttempt("success", "login")
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// GetTouristProfile returns the caller's own profile.
func (s *AuthService) GetTouristProfile(ctx context.Context, userID string) (*model.TouristProfile, error) {
	profile, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("profile lookup failed: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "profile store unavailable")
	}
	if profile == nil {
		return nil, model.NewAppError(model.ErrKindNotFound, "tourist profile not found")
	}
	return profile, nil
}
