package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"hunt/internal/hunt"
)

const (
	// DefaultBaseURL is the canned question service used by the hunt.
	DefaultBaseURL = "https://8926b087-4e0b-4b4e-8f08-c5b755ab7767.mock.pstmn.io"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 15 * time.Second
)

// Config wires a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    zerolog.Logger
}

// Client talks to the question endpoint.
type Client struct {
	baseURL string
	http    *req.Client
	log     zerolog.Logger
}

// New constructs a client for the configured base URL.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := req.C().
		SetTimeout(timeout).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal).
		SetCommonHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		httpClient.SetUserAgent(cfg.UserAgent)
	}
	return &Client{baseURL: baseURL, http: httpClient, log: cfg.Logger}
}

// BaseURL returns the normalized endpoint base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// QuestionURL returns the endpoint URL for a scan ID. The ID is appended as
// is: slashes stay path separators and only each segment is escaped.
func (c *Client) QuestionURL(scanID string) string {
	segments := strings.Split(scanID, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return c.baseURL + "/" + strings.Join(segments, "/")
}

// AnswerURL returns the submit URL for an answer, encoded as a URI
// component (spaces become %20, not +).
func AnswerURL(endpointURL, answer string) string {
	sep := "?"
	if strings.Contains(endpointURL, "?") {
		sep = "&"
	}
	return endpointURL + sep + "answer=" + strings.ReplaceAll(url.QueryEscape(answer), "+", "%20")
}

// FetchQuestion loads the question behind a scanned code.
func (c *Client) FetchQuestion(ctx context.Context, scanID string) (hunt.Question, error) {
	scanID = strings.TrimSpace(scanID)
	if scanID == "" {
		return hunt.Question{}, ErrEmptyScanID
	}
	fullURL := c.QuestionURL(scanID)
	c.log.Info().Str("url", fullURL).Msg("fetching from")

	resp, err := c.http.R().SetContext(ctx).Get(fullURL)
	if err != nil {
		return hunt.Question{}, failure(ErrFetchFailed, errors.Wrapf(err, "GET %s", fullURL))
	}
	body, err := resp.ToBytes()
	if err != nil {
		return hunt.Question{}, failure(ErrFetchFailed, errors.Wrapf(err, "read body of %s", fullURL))
	}
	if !isSuccess(resp.GetStatusCode()) {
		return hunt.Question{}, failure(ErrFetchFailed, decodeHTTPError(resp.GetStatusCode(), body))
	}
	var question hunt.Question
	if err := json.Unmarshal(body, &question); err != nil {
		return hunt.Question{}, failure(ErrFetchFailed, errors.Wrapf(err, "decode question from %s", fullURL))
	}
	question.EndpointURL = fullURL
	c.log.Debug().
		Str("url", fullURL).
		Str("response_type", question.ResponseType).
		Int("choices", len(question.Choices)).
		Msg("question loaded")
	return question, nil
}

// SubmitAnswer posts an answer to the endpoint the question came from.
func (c *Client) SubmitAnswer(ctx context.Context, question hunt.Question, answer string) (hunt.SubmitResult, error) {
	if question.EndpointURL == "" {
		return hunt.SubmitResult{}, ErrNoQuestion
	}
	c.log.Info().Str("url", question.EndpointURL).Str("answer", answer).Msg("submitting answer")

	target := AnswerURL(question.EndpointURL, answer)
	resp, err := c.http.R().SetContext(ctx).Post(target)
	if err != nil {
		return hunt.SubmitResult{}, failure(ErrSubmitFailed, errors.Wrapf(err, "POST %s", question.EndpointURL))
	}
	body, err := resp.ToBytes()
	if err != nil {
		return hunt.SubmitResult{}, failure(ErrSubmitFailed, errors.Wrapf(err, "read body of %s", question.EndpointURL))
	}
	if !isSuccess(resp.GetStatusCode()) {
		return hunt.SubmitResult{}, failure(ErrSubmitFailed, decodeHTTPError(resp.GetStatusCode(), body))
	}
	var result hunt.SubmitResult
	if err := json.Unmarshal(body, &result); err != nil {
		return hunt.SubmitResult{}, failure(ErrSubmitFailed, errors.Wrapf(err, "decode answer result from %s", question.EndpointURL))
	}
	c.log.Info().
		Bool("correct", result.IsCorrect).
		Str("coordinates", result.Coordinates.String()).
		Msg("answer checked")
	return result, nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
