package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"vaultgate/internal/auth"
	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
	"vaultgate/internal/domain/services"
)

type accountService struct {
	userRepo      repositories.UserRepository
	issuer        *auth.TokenIssuer
	allowedEmails []string
	logger        *slog.Logger
}

// NewAccountService creates a new account service. allowedEmails is the
// registration allow-list; empty means registration is closed.
func NewAccountService(
	userRepo repositories.UserRepository,
	issuer *auth.TokenIssuer,
	allowedEmails []string,
	logger *slog.Logger,
) services.AccountService {
	return &accountService{
		userRepo:      userRepo,
		issuer:        issuer,
		allowedEmails: allowedEmails,
		logger:        logger,
	}
}

// Prelogin reports the KDF parameters for an email. Unknown accounts get
// the default so existence is not revealed.
func (s *accountService) Prelogin(ctx context.Context, req *models.PreloginRequest) (*models.PreloginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.BadRequestError{Message: "Missing email"}
	}

	iterations, err := s.userRepo.KdfIterationsByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, wrapStorage(err)
	}

	resp := &models.PreloginResponse{
		Kdf:           0, // PBKDF2
		KdfIterations: models.DefaultKdfIterations,
	}
	if iterations != nil {
		resp.KdfIterations = *iterations
	}
	return resp, nil
}

// Register finishes account creation. Only allow-listed emails may sign up.
func (s *accountService) Register(ctx context.Context, req *models.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return &domain.BadRequestError{Message: err.Error()}
	}

	if !s.emailAllowed(req.Email) {
		return &domain.UnauthorizedError{Message: "Not allowed to signup"}
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Email:              strings.ToLower(req.Email),
		EmailVerified:      false,
		MasterPasswordHash: req.MasterPasswordHash,
		MasterPasswordHint: req.MasterPasswordHint,
		Key:                req.UserSymmetricKey,
		PrivateKey:         req.UserAsymmetricKeys.EncryptedPrivateKey,
		PublicKey:          req.UserAsymmetricKeys.PublicKey,
		KdfType:            req.Kdf,
		KdfIterations:      req.KdfIterations,
		SecurityStamp:      uuid.NewString(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return wrapStorage(err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return nil
}

// Token performs the password grant. The password is the client-derived
// master password hash; the server compares it in constant time and never
// runs a KDF itself. Lookup misses and hash mismatches produce the same
// error.
func (s *accountService) Token(ctx context.Context, email, masterPasswordHash string) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UnauthorizedError{Message: "Invalid username or password"}
		}
		return nil, wrapStorage(err)
	}

	if subtle.ConstantTimeCompare([]byte(user.MasterPasswordHash), []byte(masterPasswordHash)) != 1 {
		return nil, &domain.UnauthorizedError{Message: "Invalid username or password"}
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:         token,
		ExpiresIn:           int(s.issuer.TTL().Seconds()),
		TokenType:           "Bearer",
		Key:                 user.Key,
		PrivateKey:          user.PrivateKey,
		Kdf:                 user.KdfType,
		KdfIterations:       user.KdfIterations,
		ResetMasterPassword: false,
		Scope:               "api offline_access",
	}, nil
}

// RevisionDate returns the user's updatedAt as a millisecond epoch, used by
// clients for on-demand sync checks.
func (s *accountService) RevisionDate(ctx context.Context, userID string) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, wrapStorage(err)
	}
	return user.UpdatedAt.UnixMilli(), nil
}

func (s *accountService) emailAllowed(email string) bool {
	for _, allowed := range s.allowedEmails {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}
