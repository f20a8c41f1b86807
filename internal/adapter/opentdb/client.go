package opentdb

import (
	"context"
	"encoding/json"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/util"
)

const DefaultBaseURL = "https://opentdb.com"

// rawQuestion mirrors the OpenTriviaDB question payload.
type rawQuestion struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// apiResponse is the OpenTriviaDB envelope. Results stays raw so an
// absent or non-array value can be told apart from a decode error of
// the envelope itself.
type apiResponse struct {
	ResponseCode int             `json:"response_code"`
	Results      json.RawMessage `json:"results"`
}

// Client fetches and normalizes questions from OpenTriviaDB. It
// implements domain.QuestionSource.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	rng   *rand.Rand
	newID func() string
}

// NewClient creates a Client against the given base URL. A nil
// httpClient falls back to a default with a sane timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:      util.NewULID,
	}
}

var _ domain.QuestionSource = (*Client)(nil)

// Fetch requests amount multiple-choice questions for the given
// category and difficulty, and normalizes them: HTML entities decoded,
// a fresh id per question, and the combined answer list shuffled once.
func (c *Client) Fetch(ctx context.Context, amount, categoryID int, difficulty domain.Difficulty) ([]domain.Question, error) {
	q := url.Values{}
	q.Set("amount", strconv.Itoa(amount))
	q.Set("category", strconv.Itoa(categoryID))
	q.Set("difficulty", string(difficulty))
	q.Set("type", "multiple")
	reqURL := c.baseURL + "/api.php?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewInternalError("failed to build OpenTriviaDB request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewSourceUnavailableError(nil)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewNoResultsError()
	}
	if payload.ResponseCode != 0 || payload.Results == nil {
		return nil, domain.NewNoResultsError()
	}

	var results []rawQuestion
	if err := json.Unmarshal(payload.Results, &results); err != nil {
		return nil, domain.NewNoResultsError()
	}

	questions := make([]domain.Question, 0, len(results))
	for _, r := range results {
		questions = append(questions, c.normalize(r))
	}
	return questions, nil
}

func (c *Client) normalize(r rawQuestion) domain.Question {
	correct := html.UnescapeString(r.CorrectAnswer)
	incorrect := make([]string, 0, len(r.IncorrectAnswers))
	for _, a := range r.IncorrectAnswers {
		incorrect = append(incorrect, html.UnescapeString(a))
	}

	all := make([]string, 0, len(incorrect)+1)
	all = append(all, correct)
	all = append(all, incorrect...)
	c.shuffle(all)

	return domain.Question{
		ID:               c.newID(),
		Text:             html.UnescapeString(r.Question),
		CorrectAnswer:    correct,
		IncorrectAnswers: incorrect,
		AllAnswers:       all,
	}
}

// shuffle applies a Fisher-Yates permutation in place. The answer
// order is frozen into the persisted question, so this runs exactly
// once per question.
func (c *Client) shuffle(a []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(a) - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
