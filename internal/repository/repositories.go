package repository

import (
	"github.com/deppfellow/swimmeet/internal/server"
)

// NewStore returns the store selected by database.driver.
//
// The postgres store uses the pool on s.DB, so server.New must have
// connected it. The memory store starts empty.
func NewStore(s *server.Server) Store {
	if s.Config.Database.IsMemory() {
		return NewMemoryStore()
	}
	return NewPostgresStore(s.DB.Pool)
}
