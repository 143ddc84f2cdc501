package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Authenticator = (*Client)(nil)

const requestTimeout = 10 * time.Second

type (
	userResp struct {
		ID             string `json:"id"`
		Email          string `json:"email"`
		Name           string `json:"name"`
		Role           string `json:"role"`
		EmailConfirmed bool   `json:"email_confirmed"`
	}

	loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginResp struct {
		Token string   `json:"token"`
		User  userResp `json:"user"`
	}

	registerReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
)

// Client proxies credential checks to the remote auth service. The
// storefront owns no authentication protocol, it forwards and maps
// shapes.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) Client {
	return Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c Client) Login(
	ctx context.Context, creds domain.Credentials,
) (domain.AuthSession, error) {
	const op = "authapi.Client.Login"

	var lr loginResp
	err := c.postJSON(ctx, "/api/auth/login/", loginReq(creds), &lr)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.AuthSession{
		Token: lr.Token,
		User:  toDomainUser(lr.User),
	}, nil
}

func (c Client) Register(
	ctx context.Context, r domain.Registration,
) (domain.User, error) {
	const op = "authapi.Client.Register"

	var ur userResp
	err := c.postJSON(ctx, "/api/auth/register/", registerReq(r), &ur)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainUser(ur), nil
}

func (c Client) Verify(
	ctx context.Context, token string,
) (domain.User, error) {
	const op = "authapi.Client.Verify"

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/api/auth/verify/", nil,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.User{}, fmt.Errorf("%s: status %d", op, resp.StatusCode)
	}

	var ur userResp
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainUser(ur), nil
}

func (c Client) postJSON(
	ctx context.Context, path string, reqBody, respBody any,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized ||
		resp.StatusCode == http.StatusForbidden {
		return domain.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK &&
		resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(respBody)
}

func toDomainUser(u userResp) domain.User {
	return domain.User{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		EmailConfirmed: u.EmailConfirmed,
	}
}
