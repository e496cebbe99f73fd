package auth

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/msilviu/taskpro/pkg/logging"
	"github.com/msilviu/taskpro/pkg/notifier"
)

// ErrNotify reports a notification failure after the account has already been
// created. Registration is deliberately not rolled back on email-send failure.
var ErrNotify = errors.New("failed to send confirmation email")

// AvatarUpload carries an uploaded avatar file.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AvatarStore abstracts avatar object storage (e.g. S3). Save stores the file
// and returns its public URL.
type AvatarStore interface {
	Save(ctx context.Context, userID uuid.UUID, upload AvatarUpload) (string, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	Email   string
	Message string
}

type LoginResult struct {
	Tokens TokenPair
	User   PublicView
}

// ProfileInput is a partial profile update. Password is re-hashed only when a
// non-empty value is supplied; an absent or empty password leaves the stored
// credential untouched.
type ProfileInput struct {
	Name     *string
	Email    *string
	Password *string
	Avatar   *AvatarUpload
}

// AuthUseCase describes the session authority: registration, credential
// verification, token rotation, and session termination.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (RegisterResult, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Current(ctx context.Context, userID uuid.UUID) (User, error)
	UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) (PublicView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (PublicView, error)
	RequestHelp(ctx context.Context, email, comment string) error
}

type authService struct {
	repo         UserRepository
	tokens       TokenIssuer
	notify       notifier.Notifier
	avatars      AvatarStore
	log          logging.Logger
	confirmBase  string
	supportInbox string
}

// NewAuthService returns the default implementation of AuthUseCase.
// confirmBase is the public base URL confirmation links are built from;
// supportInbox receives help requests.
func NewAuthService(repo UserRepository, tokens TokenIssuer, notify notifier.Notifier, avatars AvatarStore, log logging.Logger, confirmBase, supportInbox string) AuthUseCase {
	return &authService{
		repo:         repo,
		tokens:       tokens,
		notify:       notify,
		avatars:      avatars,
		log:          log,
		confirmBase:  confirmBase,
		supportInbox: supportInbox,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if in.Email == "" || in.Password == "" {
		return RegisterResult{}, ErrInvalidCredentials
	}

	// Fail fast on a taken email; Create still enforces uniqueness so a
	// racing duplicate is rejected by the store.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return RegisterResult{}, ErrEmailTaken
	}

	passwordHash, err := HashPassword(in.Password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	confirmation, err := NewConfirmationToken()
	if err != nil {
		return RegisterResult{}, fmt.Errorf("issue confirmation token: %w", err)
	}

	user := User{
		ID:                uuid.New(),
		Name:              in.Name,
		Email:             in.Email,
		PasswordHash:      passwordHash,
		ConfirmationToken: &confirmation,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return RegisterResult{}, err
	}

	link := fmt.Sprintf("%s/confirm?token=%s", s.confirmBase, confirmation)
	msg := notifier.Message{
		To:      in.Email,
		Subject: "Registration Confirmation",
		Text:    fmt.Sprintf("Welcome to our site! Please confirm your registration by clicking the following link: %s", link),
		HTML:    fmt.Sprintf(`<p>Welcome to our site! Please confirm your registration by clicking the following link: <a href="%s">%s</a>.</p>`, link, link),
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		// The account already exists at this point; surface the delivery
		// failure without rolling the registration back.
		s.log.Error(ctx, "confirmation email failed", "email", in.Email, "error", err)
		return RegisterResult{}, fmt.Errorf("%w: %v", ErrNotify, err)
	}

	return RegisterResult{
		Email:   user.Email,
		Message: "Registration successful! Please check your email to confirm your account.",
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Identical failure for unknown email and wrong password.
		return LoginResult{}, ErrInvalidCredentials
	}
	if !CheckPassword(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.Mint(ctx, user.ID.String())
	if err != nil {
		return LoginResult{}, fmt.Errorf("mint token pair: %w", err)
	}
	if err := s.repo.SetSessionTokens(ctx, user.ID, pair.AccessToken, pair.RefreshToken); err != nil {
		return LoginResult{}, fmt.Errorf("persist token pair: %w", err)
	}
	return LoginResult{Tokens: pair, User: user.PublicView()}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	rawID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidRefresh
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return TokenPair{}, ErrInvalidRefresh
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, ErrInvalidRefresh
	}
	// A rotated-out or cleared token no longer matches the stored anchor.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return TokenPair{}, ErrInvalidRefresh
	}

	pair, err := s.tokens.Mint(ctx, userID.String())
	if err != nil {
		return TokenPair{}, fmt.Errorf("mint token pair: %w", err)
	}
	// Conditional on the presented token still being stored: a concurrent
	// rotation wins the row and this request loses with 403.
	if err := s.repo.RotateSessionTokens(ctx, userID, refreshToken, pair.AccessToken, pair.RefreshToken); err != nil {
		if errors.Is(err, ErrTokenMismatch) {
			return TokenPair{}, ErrInvalidRefresh
		}
		return TokenPair{}, fmt.Errorf("rotate token pair: %w", err)
	}
	return pair, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.repo.ClearSessionTokens(ctx, userID)
}

func (s *authService) Current(ctx context.Context, userID uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *authService) UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) (PublicView, error) {
	user, err := s.repo.Update(ctx, userID, ProfilePatch{Theme: &theme})
	if err != nil {
		return PublicView{}, err
	}
	return user.PublicView(), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (PublicView, error) {
	patch := ProfilePatch{Name: in.Name, Email: in.Email}

	if in.Password != nil && *in.Password != "" {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return PublicView{}, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	if in.Avatar != nil {
		url, err := s.avatars.Save(ctx, userID, *in.Avatar)
		if err != nil {
			return PublicView{}, fmt.Errorf("store avatar: %w", err)
		}
		patch.AvatarURL = &url
	}

	user, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return PublicView{}, err
	}
	return user.PublicView(), nil
}

func (s *authService) RequestHelp(ctx context.Context, email, comment string) error {
	request := notifier.Message{
		To:      s.supportInbox,
		Subject: "User need help",
		HTML:    fmt.Sprintf("<p> Email: %s, Comment: %s</p>", email, comment),
	}
	if err := s.notify.Send(ctx, request); err != nil {
		return fmt.Errorf("forward help request: %w", err)
	}
	ack := notifier.Message{
		To:      email,
		Subject: "Support",
		HTML:    fmt.Sprintf("<p>Thank you for you request! We will consider your comment %s</p>", comment),
	}
	if err := s.notify.Send(ctx, ack); err != nil {
		return fmt.Errorf("send help acknowledgement: %w", err)
	}
	return nil
}
