package githubapp

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/getgantry/gantry"
	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/util"
)

var (
	ErrAppNotConfigured = errors.New("github app credentials are not configured")
	ErrTokenExchange    = errors.New("failed to exchange installation access token")
)

const (
	acceptHeader     = "application/vnd.github+json"
	apiVersionHeader = "2022-11-28"

	// the app assertion is backdated to tolerate clock skew and kept
	// short-lived; it is minted fresh on every resolution, never cached
	assertionBackdate = time.Minute
	assertionTTL      = 10 * time.Minute
)

// API is the slice of the GitHub REST surface this controller consumes.
type API interface {
	InstallationToken(ctx context.Context, installationID int64) (string, error)
	ListRunJobs(ctx context.Context, token, owner, repo string, runID int64) (*JobsSummary, error)
	RegistrationToken(ctx context.Context, token, owner, repo string) (string, error)
	RemovalToken(ctx context.Context, token, owner, repo string) (string, error)
	CreateRepoHook(ctx context.Context, token string, hook *RepoHook) (string, error)
}

// JobsSummary is the queued/in-progress breakdown for one workflow run.
type JobsSummary struct {
	Queued     int
	InProgress int
}

// RepoHook describes the webhook to create on a repository.
type RepoHook struct {
	Owner  string
	Repo   string
	URL    string
	Secret string
}

type Client struct {
	appID      int64
	privateKey *rsa.PrivateKey
	apiURL     string
	inner      *http.Client
}

func NewClient(cfg config.GitHubConfiguration) (*Client, error) {
	c := &Client{
		appID:  cfg.AppID,
		apiURL: cfg.APIURL,
		inner:  &http.Client{Timeout: gantry.HTTP_TIMEOUT_IN_DURATION},
	}

	pem := cfg.PrivateKey
	if util.IsStringEmpty(pem) && !util.IsStringEmpty(cfg.PrivateKeyPath) {
		raw, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read github app private key: %w", err)
		}
		pem = string(raw)
	}

	if !util.IsStringEmpty(pem) {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("failed to parse github app private key: %w", err)
		}
		c.privateKey = key
	}

	return c, nil
}

// appAssertion mints the signed, time-boxed app claim.
func (c *Client) appAssertion() (string, error) {
	if c.appID == 0 || c.privateKey == nil {
		return "", ErrAppNotConfigured
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(c.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-assertionBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
	})

	return tok.SignedString(c.privateKey)
}

func (c *Client) InstallationToken(ctx context.Context, installationID int64) (string, error) {
	assertion, err := c.appAssertion()
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", c.apiURL, installationID)

	var body struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}

	status, err := c.do(ctx, http.MethodPost, url, assertion, nil, &body)
	if err != nil {
		return "", err
	}

	if status != http.StatusCreated {
		return "", fmt.Errorf("%w: unexpected status %d", ErrTokenExchange, status)
	}

	return body.Token, nil
}

func (c *Client) ListRunJobs(ctx context.Context, token, owner, repo string, runID int64) (*JobsSummary, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runs/%d/jobs", c.apiURL, owner, repo, runID)

	var body struct {
		Jobs []struct {
			Status string `json:"status"`
		} `json:"jobs"`
	}

	status, err := c.do(ctx, http.MethodGet, url, token, nil, &body)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("failed to list run jobs: unexpected status %d", status)
	}

	summary := &JobsSummary{}
	for _, j := range body.Jobs {
		switch j.Status {
		case "queued":
			summary.Queued++
		case "in_progress":
			summary.InProgress++
		}
	}

	return summary, nil
}

func (c *Client) RegistrationToken(ctx context.Context, token, owner, repo string) (string, error) {
	return c.runnerToken(ctx, token, owner, repo, "registration-token")
}

func (c *Client) RemovalToken(ctx context.Context, token, owner, repo string) (string, error) {
	return c.runnerToken(ctx, token, owner, repo, "remove-token")
}

func (c *Client) runnerToken(ctx context.Context, token, owner, repo, kind string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runners/%s", c.apiURL, owner, repo, kind)

	var body struct {
		Token string `json:"token"`
	}

	status, err := c.do(ctx, http.MethodPost, url, token, nil, &body)
	if err != nil {
		return "", err
	}

	if status != http.StatusCreated {
		return "", fmt.Errorf("failed to create runner %s: unexpected status %d", kind, status)
	}

	return body.Token, nil
}

func (c *Client) CreateRepoHook(ctx context.Context, token string, hook *RepoHook) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/hooks", c.apiURL, hook.Owner, hook.Repo)

	payload := map[string]interface{}{
		"name":   "web",
		"active": true,
		"events": []string{"push", "workflow_job", "workflow_run"},
		"config": map[string]string{
			"url":          hook.URL,
			"content_type": "json",
			"insecure_ssl": "0",
			"secret":       hook.Secret,
		},
	}

	var body struct {
		ID int64 `json:"id"`
	}

	status, err := c.do(ctx, http.MethodPost, url, token, payload, &body)
	if err != nil {
		return "", err
	}

	if status != http.StatusCreated {
		return "", fmt.Errorf("failed to create repository webhook: unexpected status %d", status)
	}

	return strconv.FormatInt(body.ID, 10), nil
}

func (c *Client) do(ctx context.Context, method, url, bearer string, payload, out interface{}) (int, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersionHeader)
	req.Header.Set("User-Agent", gantry.UserAgent())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.inner.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}

	return resp.StatusCode, nil
}
