package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultURL is the joke API endpoint
	DefaultURL = "https://api.chucknorris.io/jokes/random"

	// MaxLength is the longest text a tray notification can display
	MaxLength = 150

	// DefaultMaxAttempts bounds how many jokes are requested per fetch
	DefaultMaxAttempts = 5

	maxBodySize = 64 << 10
)

var (
	// ErrNoShortJoke is returned when every attempt produced an over-length joke
	ErrNoShortJoke = errors.New("no joke short enough")

	// ErrEmptyJoke is returned when the response carries no joke text
	ErrEmptyJoke = errors.New("empty joke")
)

// Joke is a joke as returned by the API
type Joke struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Value string `json:"value"`
}

// Fetcher is implemented by anything that can produce the next joke
type Fetcher interface {
	Fetch(ctx context.Context) (*Joke, error)
}

var _ Fetcher = (*Service)(nil)

// Service fetches jokes over HTTP
type Service struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	log         *logrus.Entry
}

// Option configures a Service
type Option func(*Service)

// WithURL overrides the API endpoint
func WithURL(url string) Option {
	return func(s *Service) { s.baseURL = url }
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.httpClient = c }
}

// WithMaxAttempts overrides the number of attempts per fetch
func WithMaxAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewService creates a new joke service
func NewService(logger *logrus.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Service{
		baseURL: DefaultURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxAttempts: DefaultMaxAttempts,
		log:         logger.WithField("component", "quote"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns a joke of at most MaxLength characters. Over-length jokes are
// discarded and another one is requested, up to the configured attempts.
// Any network or decoding failure ends the fetch immediately.
func (s *Service) Fetch(ctx context.Context) (*Joke, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		joke, err := s.fetchOne(ctx)
		if err != nil {
			return nil, err
		}

		if n := utf8.RuneCountInString(joke.Value); n > MaxLength {
			s.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"length":  n,
				"id":      joke.ID,
			}).Debug("joke too long, discarding")
			continue
		}
		return joke, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrNoShortJoke, s.maxAttempts)
}

func (s *Service) fetchOne(ctx context.Context) (*Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch joke: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var joke Joke
	if err := json.Unmarshal(body, &joke); err != nil {
		return nil, fmt.Errorf("failed to parse joke: %w", err)
	}

	joke.Value = PlainText(joke.Value)
	if joke.Value == "" {
		return nil, ErrEmptyJoke
	}
	return &joke, nil
}

// inlineTag matches the formatting tags jokes are known to carry. Any other
// "<" is part of the joke text.
var inlineTag = regexp.MustCompile(`(?i)</?(a|b|br|em|i|p|small|span|strong|sub|sup|u)(\s[^<>]*)?/?>`)

// PlainText strips markup, decodes HTML entities and collapses whitespace
func PlainText(text string) string {
	if strings.ContainsAny(text, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(escapeText(text)))
		if err == nil {
			text = doc.Text()
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// escapeText keeps inline tags, turns <br> into a space and escapes every
// other "<" so the parser reads it as text.
func escapeText(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range inlineTag.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(strings.ReplaceAll(text[last:loc[0]], "<", "&lt;"))
		if strings.EqualFold(text[loc[2]:loc[3]], "br") {
			b.WriteString(" ")
		} else {
			b.WriteString(text[loc[0]:loc[1]])
		}
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(text[last:], "<", "&lt;"))
	return b.String()
}
