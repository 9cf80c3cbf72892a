package auth

import (
	"errors"
	"time"

	"finance-tracker-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidAccessToken  = errors.New("invalid or expired token")
)

type Claims struct {
	UserID uint        `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthResult struct {
	User    models.User     `json:"user"`
	Company *models.Company `json:"company,omitempty"`
	TokenPair
}

type Service struct {
	db            *gorm.DB
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(db *gorm.DB, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		db:            db,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Register creates an owner account together with its first company.
func (s *Service) Register(email, password, companyName string) (*AuthResult, error) {
	var existing models.User
	err := s.db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, PasswordHash: string(hash), Role: models.RoleOwner}
	company := models.Company{Name: companyName}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		company.OwnerID = user.ID
		return tx.Create(&company).Error
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(&user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Company: &company, TokenPair: *tokens}, nil
}

func (s *Service) Login(email, password string) (*AuthResult, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(&user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, TokenPair: *tokens}, nil
}

// Refresh rotates the refresh token: the presented token is consumed
// whether or not it is still valid.
func (s *Service) Refresh(token string) (*TokenPair, error) {
	var stored models.RefreshToken
	if err := s.db.First(&stored, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if err := s.db.Delete(&stored).Error; err != nil {
		return nil, err
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := s.parseToken(token, s.refreshSecret)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, ErrInvalidRefreshToken
	}
	return s.issueTokens(&user)
}

func (s *Service) Logout(refreshToken string) error {
	return s.db.Delete(&models.RefreshToken{}, "token = ?", refreshToken).Error
}

// VerifyAccess validates a bearer token and returns its claims.
func (s *Service) VerifyAccess(token string) (*Claims, error) {
	claims, err := s.parseToken(token, s.accessSecret)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}
	return claims, nil
}

func (s *Service) issueTokens(user *models.User) (*TokenPair, error) {
	access, err := s.signToken(user, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	err = s.db.Create(&models.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}).Error
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) signToken(user *models.User, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			// iat/exp only have second granularity; the jti keeps two
			// tokens for the same user distinct however close together
			// they are issued, so rotation always mints a new string.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *Service) parseToken(token string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidAccessToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidAccessToken
	}
	return claims, nil
}
