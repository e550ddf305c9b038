package lessonapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/core/user"
)

var (
	// errors
	ErrUnauthorized = errors.New("lesson api: unauthorized")
)

type errorBody struct {
	Error string `json:"error"`
}

type (
	LoginResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	// Client is a lesson.Gateway backed by a remote tutordesk API.
	// Claims are made on behalf of the token's tutor.
	Client struct {
		baseURL string
		token   string
		http    *rest.Client
	}
)

var _ lesson.Gateway = (*Client)(nil) // interface compliance check

// NewClient returns a Client for the API rooted at baseURL (e.g. http://localhost:8000/v1).
// A nil httpClient means http.DefaultClient.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &rest.Client{HTTPClient: httpClient},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) HasToken() bool { return c.token != "" }

func (c *Client) request(method rest.Method, path string, body interface{}) (rest.Request, error) {
	req := rest.Request{
		Method:  method,
		BaseURL: c.baseURL + path,
		Headers: map[string]string{"Accept": "application/json"},
	}
	if c.token != "" {
		req.Headers["Authorization"] = "Bearer " + c.token
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return rest.Request{}, errors.Wrap(err, "encoding request body")
		}
		req.Headers["Content-Type"] = "application/json"
		req.Body = data
	}
	return req, nil
}

// do sends the request and decodes a 2xx JSON response into out.
func (c *Client) do(ctx context.Context, req rest.Request, out interface{}) error {
	res, err := c.http.SendWithContext(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.BaseURL)
	}

	switch code := res.StatusCode; {
	case code == http.StatusNotFound:
		return lesson.ErrNotFound
	case code == http.StatusConflict:
		return lesson.ErrNotAvailable
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code >= http.StatusBadRequest:
		return errors.New(responseMessage(res))
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal([]byte(res.Body), out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

// responseMessage extracts the API error message, falling back to the status text.
func responseMessage(res *rest.Response) string {
	var body errorBody
	if err := json.Unmarshal([]byte(res.Body), &body); err == nil && body.Error != "" {
		return body.Error
	}
	return http.StatusText(res.StatusCode)
}

// Login exchanges credentials for a token, which the Client keeps for subsequent calls.
func (c *Client) Login(ctx context.Context, creds user.Credentials) (LoginResponse, error) {
	req, err := c.request(rest.Post, "/auth/login", creds)
	if err != nil {
		return LoginResponse{}, err
	}
	var res LoginResponse
	if err = c.do(ctx, req, &res); err != nil {
		return LoginResponse{}, err
	}
	c.SetToken(res.Token)
	return res, nil
}

func (c *Client) GetLessons(ctx context.Context) ([]lesson.Lesson, error) {
	req, err := c.request(rest.Get, "/lessons", nil)
	if err != nil {
		return nil, err
	}
	lessons := make([]lesson.Lesson, 0)
	if err = c.do(ctx, req, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *Client) TakeLesson(ctx context.Context, id, _ string) (lesson.Lesson, error) {
	req, err := c.request(rest.Post, "/lessons/"+url.PathEscape(id)+"/take", nil)
	if err != nil {
		return lesson.Lesson{}, err
	}
	var l lesson.Lesson
	if err = c.do(ctx, req, &l); err != nil {
		return lesson.Lesson{}, err
	}
	return l, nil
}
