package service

// Initialization of Clerk Services by passing the secret key from Clerk
import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/swimmeet/internal/server"
)

type AuthService struct {
	server  *server.Server
	enabled bool
}

func NewAuthService(s *server.Server) *AuthService {
	key := s.Config.Auth.SecretKey
	if key != "" {
		clerk.SetKey(key)
	}
	return &AuthService{
		server:  s,
		enabled: key != "",
	}
}

// Enabled reports whether write routes require a Clerk session token.
func (a *AuthService) Enabled() bool {
	return a.enabled
}
