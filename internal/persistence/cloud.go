// internal/persistence/cloud.go
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// CloudClient: клиент сервиса game-data: GET/PUT прогресса с bearer-токеном
type CloudClient struct {
	baseURL string
	token   string
	http    *http.Client
}

type gameDataRequest struct {
	GameData *Progress `json:"gameData"`
}

// envelope: ответ сервиса
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		GameData *Progress `json:"gameData"`
	} `json:"data"`
}

func NewCloudClient(baseURL, token string, timeout time.Duration) *CloudClient {
	return &CloudClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Authenticated: токен задан
func (c *CloudClient) Authenticated() bool {
	return c.token != ""
}

// Fetch загружает прогресс из облака.
func (c *CloudClient) Fetch(ctx context.Context) (*Progress, error) {
	env, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game data: %w", err)
	}
	if env.Data.GameData == nil {
		return nil, fmt.Errorf("cloud game data: %w", ErrNotFound)
	}
	return env.Data.GameData, nil
}

// Push отправляет прогресс в облако.
func (c *CloudClient) Push(ctx context.Context, progress *Progress) error {
	body, err := json.Marshal(gameDataRequest{GameData: progress})
	if err != nil {
		return fmt.Errorf("failed to marshal game data: %w", err)
	}
	if _, err := c.do(ctx, http.MethodPut, body); err != nil {
		return fmt.Errorf("failed to update game data: %w", err)
	}
	return nil
}

func (c *CloudClient) do(ctx context.Context, method string, body []byte) (*envelope, error) {
	if !c.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/game-data", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if env.Message != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, env.Message)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	return &env, nil
}
