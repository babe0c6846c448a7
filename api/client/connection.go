// Package client issues every call that reaches the processing backend,
// attaching the resolved credential and tenant hint and centralizing the
// unauthorized-response handling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/photodeck/photodeck-go/api"
	"github.com/photodeck/photodeck-go/internal/config"
	"github.com/photodeck/photodeck-go/sessions"
	"github.com/photodeck/photodeck-go/tenants"
)

// DefaultUserAgent identifies this client to the backend.
const DefaultUserAgent = "photodeck-client-golang"

// Connection talks to one backend. Calls are independent asynchronous
// operations; several may be in flight at once with no ordering guarantee
// between them. No call is ever retried by this layer.
type Connection struct {
	client       *http.Client
	baseURL      string
	session      *sessions.Manager
	tenantSlug   func() string
	unauthorized func()
	userAgent    string
}

// NewConnection builds a connection from the environment configuration. The
// tenant hint for each request comes from hostname-based resolution, not
// from the session's numeric tenant id; the backend reconciles the two.
func NewConnection(cfg *config.Config, session *sessions.Manager) *Connection {
	return &Connection{
		client:     &http.Client{},
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		session:    session,
		tenantSlug: func() string { return tenants.FromEnvironment(cfg) },
		userAgent:  DefaultUserAgent,
	}
}

// BaseURL reports the backend location, for log and error messages.
func (c *Connection) BaseURL() string {
	return c.baseURL
}

func (c *Connection) SetUserAgent(ua string) {
	c.userAgent = ua
}

// SetUnauthorizedHook registers fn to run whenever the backend answers 401,
// after the persisted session state has been cleared. The web front end
// redirects to its login page here; the CLI prints a re-login notice.
func (c *Connection) SetUnauthorizedHook(fn func()) {
	c.unauthorized = fn
}

// do performs one request. The bearer header is attached only when a token
// is present, never fabricated empty; the tenant hint only when a slug is
// resolvable.
func (c *Connection) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.New().String())
	if s := c.session.Current(); s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}
	if slug := c.tenantSlug(); slug != "" {
		req.Header.Set("x-tenant-slug", slug)
	}

	log.Debug().Str("method", method).Str("path", path).Msg("api request")

	res, err := c.client.Do(req)
	if err != nil {
		return &api.TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		// The only automatic recovery path: wipe the session and hand
		// control to the unauthorized hook. No retry.
		c.session.Logout()
		if c.unauthorized != nil {
			c.unauthorized()
		}
		return api.ErrUnauthorized
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		text, _ := io.ReadAll(res.Body)
		return &api.RequestError{Status: res.StatusCode, Message: strings.TrimSpace(string(text))}
	}
	if res.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	// A success status with an unreadable body is still a failed exchange;
	// keep it inside the error taxonomy callers already handle.
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &api.TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func (c *Connection) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Connection) postJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Connection) patchJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, in, out)
}

func (c *Connection) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, body, out)
}

// Login exchanges credentials for a bearer token. The tenant may come from
// the hostname/override resolution; an explicit tenantSlug argument wins,
// for users whose tenant cannot be inferred from the host.
func (c *Connection) Login(ctx context.Context, username, password, tenantSlug string) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	if tenantSlug == "" {
		tenantSlug = c.tenantSlug()
	}
	if tenantSlug != "" {
		form.Set("tenant_slug", tenantSlug)
	}

	var res api.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/token",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &res)
	if err != nil {
		return nil, err
	}
	tokenType := res.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}
	return &oauth2.Token{AccessToken: res.AccessToken, TokenType: tokenType}, nil
}

// Register creates a user in an existing tenant.
func (c *Connection) Register(ctx context.Context, req api.RegisterRequest) (api.User, error) {
	var user api.User
	err := c.postJSON(ctx, "/auth/register", req, &user)
	return user, err
}

// Tenants lists the tenants visible to the current user.
func (c *Connection) Tenants(ctx context.Context) ([]api.Tenant, error) {
	var list []api.Tenant
	err := c.get(ctx, "/tenants", &list)
	return list, err
}

// CreateTenant provisions a new tenant. Superusers only; everyone else gets
// a RequestError straight from the backend.
func (c *Connection) CreateTenant(ctx context.Context, req api.TenantCreateRequest) (api.Tenant, error) {
	var tenant api.Tenant
	err := c.postJSON(ctx, "/tenants/", req, &tenant)
	return tenant, err
}

// Assets lists the image assets of the active tenant.
func (c *Connection) Assets(ctx context.Context) ([]api.ImageAsset, error) {
	var list []api.ImageAsset
	err := c.get(ctx, "/assets", &list)
	return list, err
}

// Tasks lists the processing tasks of the active tenant.
func (c *Connection) Tasks(ctx context.Context) ([]api.Task, error) {
	var list []api.Task
	err := c.get(ctx, "/tasks", &list)
	return list, err
}

// Task fetches a single processing task.
func (c *Connection) Task(ctx context.Context, id int64) (api.Task, error) {
	var task api.Task
	err := c.get(ctx, "/tasks/"+strconv.FormatInt(id, 10), &task)
	return task, err
}

// CreateTask asks the backend to run the processing pipeline over an
// uploaded asset. The backend accepts with 202 and processes in the
// background; poll Task until the status is terminal.
func (c *Connection) CreateTask(ctx context.Context, req api.TaskCreateRequest) (api.Task, error) {
	var task api.Task
	err := c.postJSON(ctx, "/tasks/", req, &task)
	return task, err
}

// UpdateTask patches mutable task fields.
func (c *Connection) UpdateTask(ctx context.Context, id int64, fields map[string]any) (api.Task, error) {
	var task api.Task
	err := c.patchJSON(ctx, "/tasks/"+strconv.FormatInt(id, 10), fields, &task)
	return task, err
}

// Upload streams a file to the backend as a multipart body with a single
// "file" field. Header attachment and error handling are identical to every
// other call.
func (c *Connection) Upload(ctx context.Context, filename string, r io.Reader) (api.UploadResponse, error) {
	m := MultipartFileWriter(filename, r)
	var res api.UploadResponse
	err := c.do(ctx, http.MethodPost, "/uploads/", m.ContentType(), m, &res)
	return res, err
}

// Health checks that the backend is reachable.
func (c *Connection) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}
