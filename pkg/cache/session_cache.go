package cache

import (
	"sync"
	"time"

	"ultrapanel_admin_back/models"
)

type cachedSession struct {
	session *models.Session
	touched time.Time
}

var (
	sessions   = make(map[string]*cachedSession)
	sessionTTL = 30 * time.Minute
	mu         sync.Mutex
)

// GetSession devolve o estado de tela da sessão do token, criando um novo
// quando não existe ou quando o anterior expirou por inatividade.
func GetSession(token string) *models.Session {
	mu.Lock()
	defer mu.Unlock()

	entry, ok := sessions[token]
	if !ok || time.Since(entry.touched) > sessionTTL {
		entry = &cachedSession{session: models.NewSession()}
		sessions[token] = entry
	}
	entry.touched = time.Now()
	return entry.session
}

// Purge descarta sessões inativas há mais que o TTL.
func Purge() {
	mu.Lock()
	defer mu.Unlock()

	for token, entry := range sessions {
		if time.Since(entry.touched) > sessionTTL {
			delete(sessions, token)
		}
	}
}
