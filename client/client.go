// Package client is the thin wrapper over the remote survey service. Every
// data-bearing operation of the application goes through here; the wrapper
// only shapes requests and classifies failures, it never retries and never
// caches.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lauracmd12/Front-Davivienda/httpx"
	"github.com/lauracmd12/Front-Davivienda/log"
	"github.com/lauracmd12/Front-Davivienda/model"
)

// ErrNoSession means an owner operation was attempted without a stored user
// id. This is a caller error, not a network error: nothing was sent.
var ErrNoSession = errors.New("no authenticated session")

type Client struct {
	baseURL string
	http    *http.Client
	userID  func() string
}

// New builds a client for the service at baseURL. userID supplies the id of
// the locally-stored session user for the User-Id header; it may return ""
// for an anonymous session.
func New(baseURL string, userID func() string) *Client {
	if userID == nil {
		userID = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		userID:  userID,
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
}

type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.call(ctx, http.MethodPost, "/auth/login", Credentials{Email: email, Password: password}, &out, false)
	return out, err
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	var out model.User
	err := c.call(ctx, http.MethodPost, "/auth/register", in, &out, false)
	return out, err
}

func (c *Client) CreateSurvey(ctx context.Context, in model.SurveyInput) (model.Survey, error) {
	var out model.Survey
	err := c.call(ctx, http.MethodPost, "/auth/create", in, &out, true)
	return out, err
}

func (c *Client) MySurveys(ctx context.Context) ([]model.Survey, error) {
	var out []model.Survey
	err := c.call(ctx, http.MethodGet, "/auth/my-surveys", nil, &out, true)
	return out, err
}

func (c *Client) MyActiveSurveys(ctx context.Context) ([]model.Survey, error) {
	var out []model.Survey
	err := c.call(ctx, http.MethodGet, "/auth/my-surveys/active", nil, &out, true)
	return out, err
}

func (c *Client) PublicSurveys(ctx context.Context) ([]model.Survey, error) {
	var out []model.Survey
	err := c.call(ctx, http.MethodGet, "/auth/public", nil, &out, false)
	return out, err
}

func (c *Client) GetSurvey(ctx context.Context, id string) (model.Survey, error) {
	var out model.Survey
	err := c.call(ctx, http.MethodGet, "/auth/getSurveyById/"+id, nil, &out, true)
	return out, err
}

func (c *Client) GetPublicSurvey(ctx context.Context, id string) (model.Survey, error) {
	var out model.Survey
	err := c.call(ctx, http.MethodGet, "/auth/public/"+id, nil, &out, false)
	return out, err
}

func (c *Client) UpdateSurvey(ctx context.Context, id string, in model.SurveyInput) (model.Survey, error) {
	var out model.Survey
	err := c.call(ctx, http.MethodPut, "/auth/"+id, in, &out, true)
	return out, err
}

func (c *Client) DeleteSurvey(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/auth/"+id, nil, nil, true)
}

func (c *Client) SubmitResponse(ctx context.Context, surveyID string, resp model.SurveyResponse) error {
	resp.SurveyID = surveyID
	return c.call(ctx, http.MethodPost, "/auth/submitResponse/"+surveyID, resp, nil, false)
}

func (c *Client) GetSurveyResponses(ctx context.Context, id string) ([]model.SurveyResponse, error) {
	var out []model.SurveyResponse
	err := c.call(ctx, http.MethodGet, "/auth/getSurveyResponses/"+id, nil, &out, true)
	return out, err
}

func (c *Client) GetSurveyStats(ctx context.Context, id string) (model.SurveyStats, error) {
	var out model.SurveyStats
	err := c.call(ctx, http.MethodGet, "/auth/getSurveyStatsById/"+id, nil, &out, true)
	return out, err
}

func (c *Client) TestConnection(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/auth/test", nil, nil, false)
}

// call performs one request against the service and decodes its envelope.
// Owner operations (authenticated=true) fail before any network activity when
// no session user id is available.
func (c *Client) call(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	userID := c.userID()
	if authenticated && userID == "" {
		return ErrNoSession
	}

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("User-Id", userID)
	}

	log.Debugf("client: %s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return httpx.DecodeEnvelope(resp, out)
}
