package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"parc-info/internal/entities"
)

const (
	// Durée de fraîcheur des lectures: au-delà, le prochain Get repart
	// sur le réseau.
	DefaultCacheTTL = 5 * time.Minute

	sessionPath = "/api/auth/user"
)

// APIError porte le code HTTP et le message serveur d'une réponse non-2xx.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
	Errors  json.RawMessage `json:"errors"`
}

// Client consomme l'API du parc avec un cache de lecture par chemin et
// un suivi de session par cookie. Sûr pour un usage concurrent.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *memoryCache

	mu   sync.RWMutex
	user *entities.User
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = newMemoryCache(ttl) }
}

func New(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
		cache:   newMemoryCache(DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}
	return c
}

// User rend l'utilisateur de la session courante, nil si personne n'est
// connecté ou si la session s'est effondrée.
func (c *Client) User() *entities.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

func (c *Client) setUser(u *entities.User) {
	c.mu.Lock()
	c.user = u
	c.mu.Unlock()
}

// collapseSession oublie l'utilisateur et vide le cache: plus rien de ce
// qui a été lu sous cette session ne doit être resservi.
func (c *Client) collapseSession() {
	c.setUser(nil)
	c.cache.clear()
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			env = envelope{Message: strings.TrimSpace(string(raw))}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Un 401 du point de contrôle de session efface la session;
		// ailleurs c'est un simple échec de chargement.
		if resp.StatusCode == http.StatusUnauthorized && path == sessionPath {
			c.collapseSession()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

// Get lit un chemin d'API. Les lectures passent par le cache et sont
// retentées une fois sur échec réseau ou 5xx.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if cached, ok := c.cache.get(path); ok {
		return cached, nil
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		if !retryable(err) {
			return nil, err
		}
		env, err = c.do(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
	}

	c.cache.set(path, env.Body)
	return env.Body, nil
}

// retryable: pannes réseau et erreurs serveur. Jamais les 4xx.
func retryable(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode >= 500
	}
	return true
}

// Create envoie un POST. Les écritures ne sont jamais retentées; en cas
// de succès la collection visée est invalidée immédiatement.
func (c *Client) Create(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.mutate(ctx, http.MethodPost, path, payload)
}

func (c *Client) Update(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.mutate(ctx, http.MethodPut, path, payload)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.mutate(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) mutate(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	env, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	c.cache.invalidatePrefix(collectionOf(path))
	return env.Body, nil
}

// collectionOf ramène un chemin d'élément à sa collection:
// /api/equipment/42 -> /api/equipment.
func collectionOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/")
	if i := strings.Index(trimmed, "/"); i > 0 {
		trimmed = trimmed[:i]
	}
	return "/api/" + trimmed
}

// Login ouvre une session; le cookie est conservé par le jar du client.
func (c *Client) Login(ctx context.Context, email, password string) (*entities.User, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", payload)
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal(env.Body, &user); err != nil {
		return nil, err
	}
	c.setUser(&user)
	return &user, nil
}

// RefreshUser revalide la session auprès du serveur. Un 401 ou une panne
// réseau laissent le client déconnecté sans erreur: l'absence de session
// n'est pas une faute.
func (c *Client) RefreshUser(ctx context.Context) (*entities.User, error) {
	env, err := c.do(ctx, http.MethodGet, sessionPath, nil)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, nil
		}
		c.setUser(nil)
		return nil, nil
	}

	var user entities.User
	if err := json.Unmarshal(env.Body, &user); err != nil {
		return nil, err
	}
	c.setUser(&user)
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	c.collapseSession()
	return err
}
