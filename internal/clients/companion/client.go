package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/handlers/rest"
)

// Config holds configuration for the API client
type Config struct {
	BaseURL    string
	User       string
	HTTPClient *http.Client
}

type client struct {
	baseURL    string
	user       string
	httpClient *http.Client
}

// New creates a new API client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("client config cannot be nil")
	}
	if strings.TrimSpace(cfg.User) == "" {
		return nil, dnderr.InvalidArgument("user is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, dnderr.InvalidArgumentf("invalid API URL %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &client{
		baseURL:    base.String(),
		user:       cfg.User,
		httpClient: httpClient,
	}, nil
}

func (c *client) ListCharacters(ctx context.Context) ([]*entities.Character, error) {
	var out []*entities.Character
	if err := c.do(ctx, http.MethodGet, "/api/characters", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateCharacter(ctx context.Context, input *entities.CharacterInput) (*entities.Character, error) {
	var out entities.Character
	if err := c.do(ctx, http.MethodPost, "/api/characters", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateCharacter(ctx context.Context, id string, patch *entities.CharacterPatch) (*entities.Character, error) {
	var out entities.Character
	if err := c.do(ctx, http.MethodPut, "/api/characters/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteCharacter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/characters/"+url.PathEscape(id), nil, nil)
}

func (c *client) ListCampaigns(ctx context.Context) ([]*entities.Campaign, error) {
	var out []*entities.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateCampaign(ctx context.Context, characterIDs []string) (*entities.Campaign, error) {
	var out entities.Campaign
	body := rest.CreateCampaignRequest{CharacterIDs: characterIDs}
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetCampaign(ctx context.Context, id string) (*entities.Campaign, error) {
	var out entities.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateCampaign(ctx context.Context, id string, patch *entities.CampaignPatch) (*entities.Campaign, error) {
	var out entities.Campaign
	if err := c.do(ctx, http.MethodPut, "/api/campaigns/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/campaigns/"+url.PathEscape(id), nil, nil)
}

func (c *client) GetOverland(ctx context.Context) (*entities.OverlandState, error) {
	var out entities.OverlandState
	if err := c.do(ctx, http.MethodGet, "/api/overland", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) SaveOverland(ctx context.Context, state *entities.OverlandState) (*entities.OverlandState, error) {
	var out entities.OverlandState
	if err := c.do(ctx, http.MethodPut, "/api/overland", state, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListMaps(ctx context.Context) (*rest.MapsResponse, error) {
	var out rest.MapsResponse
	if err := c.do(ctx, http.MethodGet, "/api/maps", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(rest.UserHeader, c.user)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dnderr.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError turns an {"error": ...} body back into a coded error
func decodeError(method, path string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
	}
	if body.Error == "" {
		body.Error = resp.Status
	}

	code := dnderr.CodeUnknown
	switch resp.StatusCode {
	case http.StatusBadRequest:
		code = dnderr.CodeValidation
	case http.StatusUnauthorized:
		code = dnderr.CodeUnauthenticated
	case http.StatusNotFound:
		code = dnderr.CodeNotFound
	case http.StatusConflict:
		code = dnderr.CodeAlreadyExists
	}

	return dnderr.New(code, body.Error).
		WithMeta("method", method).
		WithMeta("path", path).
		WithMeta("status", resp.StatusCode)
}
