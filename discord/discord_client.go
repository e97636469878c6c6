package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/patrickmn/go-cache"
)

type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds"`
}

type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type OAuthToken struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

type Member struct {
	User  User     `json:"user"`
	Roles []string `json:"roles"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RoleIDs are the guild roles that grant elevated booking permissions. Members holding
// neither are players.
type RoleIDs struct {
	SuperAdmin string
	TurfAdmin  string
}

func (r RoleIDs) Actor(member *Member) identity.Actor {
	actor := identity.Actor{
		UserID:   member.User.ID,
		Username: member.User.Username,
		Role:     identity.RolePlayer,
	}

	switch {
	case r.SuperAdmin != "" && slices.Contains(member.Roles, r.SuperAdmin):
		actor.Role = identity.RoleSuperAdmin
	case r.TurfAdmin != "" && slices.Contains(member.Roles, r.TurfAdmin):
		actor.Role = identity.RoleTurfAdmin
	}

	return actor
}

const defaultBaseURL = "https://discord.com/api/v10"

type Config struct {
	BotToken     string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	ServerID     string
	// BaseURL overrides the Discord API root, mainly for tests.
	BaseURL string
}

type Client struct {
	cfg     Config
	baseURL string
	client  *http.Client
	members *cache.Cache
}

//go:generate mockgen -destination=mocks/discord_mocks.go -package=mocks . DiscordClient

type DiscordClient interface {
	SendMessage(ctx context.Context, channelID string, message Message) error
	GetOAuth2Token(ctx context.Context, code string) (*OAuthToken, error)
	GetGuildMember(ctx context.Context, accessToken string) (*Member, error)
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		cfg:     cfg,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		members: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (c *Client) SendMessage(ctx context.Context, channelID string, message Message) error {
	if len(strings.TrimSpace(channelID)) == 0 {
		return errors.New("channelID cannot be empty")
	}

	msgURL, err := c.getURL("channels", channelID, "messages")

	if err != nil {
		return err
	}

	body, err := json.Marshal(message)

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, msgURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	return c.do(req, nil)
}

func (c *Client) GetOAuth2Token(ctx context.Context, code string) (*OAuthToken, error) {
	if code == "" {
		return nil, errors.New("authorization code cannot be empty")
	}

	tokenURL, err := c.getURL("oauth2", "token")

	if err != nil {
		return nil, err
	}

	form := url.Values{
		"code":          {code},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"redirect_uri":  {c.cfg.RedirectURI},
		"grant_type":    {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	token := &OAuthToken{}

	if err := c.do(req, token); err != nil {
		return nil, err
	}

	return token, nil
}

// GetGuildMember resolves the guild membership behind a user access token. Results are
// cached per token for a minute since every authenticated request calls this.
func (c *Client) GetGuildMember(ctx context.Context, accessToken string) (*Member, error) {
	if cached, found := c.members.Get(accessToken); found {
		return cached.(*Member), nil
	}

	memberURL, err := c.getURL("users", "@me", "guilds", c.cfg.ServerID, "member")

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, memberURL, http.NoBody)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	member := &Member{}

	if err := c.do(req, member); err != nil {
		return nil, err
	}

	c.members.Set(accessToken, member, cache.DefaultExpiration)

	return member, nil
}

// do sends req and decodes a 2xx JSON body into out when out is not nil.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed reading body: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bot "+c.cfg.BotToken)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
