package service

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

var (
	ErrInvalidPhone = errors.New("phone number must be 10 digits")
	ErrNoPendingOTP = errors.New("no OTP has been requested")
	ErrInvalidOTP   = errors.New("invalid OTP")
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// AuthService is the login gate. The code is generated locally and handed
// straight back to the caller; there is no verification authority behind
// it. The login flag and phone survive restarts through the session
// repository, the generated code never does.
type AuthService interface {
	// RequestOTP generates a 4-digit code for the phone number and returns
	// it so the UI can show it to the user.
	RequestOTP(phone string) (string, error)
	// VerifyOTP transitions to logged-in when input matches the generated
	// code; a mismatch leaves the state untouched.
	VerifyOTP(input string) error
	Logout() error

	LoggedIn() bool
	Phone() string
}

func NewAuthService(sessions model.SessionRepository, dispatcher EventDispatcher) AuthService {
	s := &authService{
		sessions:   sessions,
		dispatcher: dispatcher,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if saved, err := s.sessions.Load(); err == nil {
		s.loggedIn = saved.LoggedIn
		s.phone = saved.Phone
	} else if !errors.Is(err, model.ErrSessionNotFound) {
		log.WithError(err).Warn("could not restore saved session, starting logged out")
	}
	return s
}

type authService struct {
	mu         sync.Mutex
	sessions   model.SessionRepository
	dispatcher EventDispatcher
	rng        *rand.Rand

	loggedIn bool
	phone    string

	// Ephemeral, held only for the duration of one login attempt.
	generatedOTP string
	pendingPhone string
}

func (s *authService) RequestOTP(phone string) (string, error) {
	if !phonePattern.MatchString(phone) {
		return "", ErrInvalidPhone
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generatedOTP = fmt.Sprintf("%d", 1000+s.rng.Intn(9000))
	s.pendingPhone = phone

	_ = s.dispatcher.Dispatch(model.OTPRequested{Phone: phone})
	return s.generatedOTP, nil
}

func (s *authService) VerifyOTP(input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generatedOTP == "" {
		return ErrNoPendingOTP
	}
	if input != s.generatedOTP {
		return ErrInvalidOTP
	}

	s.loggedIn = true
	s.phone = s.pendingPhone
	s.generatedOTP = ""
	s.pendingPhone = ""

	if err := s.sessions.Save(&model.Session{
		LoggedIn:  true,
		Phone:     s.phone,
		UpdatedAt: time.Now(),
	}); err != nil {
		log.WithError(err).Warn("session not persisted, login will not survive restart")
	}

	_ = s.dispatcher.Dispatch(model.UserLoggedIn{Phone: s.phone})
	return nil
}

func (s *authService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loggedIn = false
	s.phone = ""
	s.generatedOTP = ""
	s.pendingPhone = ""

	if err := s.sessions.Clear(); err != nil {
		return err
	}
	_ = s.dispatcher.Dispatch(model.UserLoggedOut{})
	return nil
}

func (s *authService) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

func (s *authService) Phone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phone
}
