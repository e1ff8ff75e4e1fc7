package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"task-viewer/internal/domain"
	apperrors "task-viewer/internal/errors"
	"task-viewer/internal/logging"
)

// DefaultBaseURL is the public demo API serving the todo records.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// taskDTO is the wire shape of one todo record.
type taskDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	UserID    int64  `json:"userId"`
	Completed bool   `json:"completed"`
}

func (d taskDTO) toDomain() domain.Task {
	return domain.Task{
		ID:        d.ID,
		Title:     d.Title,
		UserID:    d.UserID,
		Completed: d.Completed,
	}
}

// Client reads todo records from the remote REST API. It never retries.
type Client struct {
	BaseURL    string
	Limit      int
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL requesting at most limit records per list
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Limit:      limit,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchTasks returns the task list in the order the API sends it
func (c *Client) FetchTasks(ctx context.Context) ([]domain.Task, error) {
	params := url.Values{}
	if c.Limit > 0 {
		params.Set("_limit", strconv.Itoa(c.Limit))
	}
	endpoint := c.BaseURL + "/todos"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, apperrors.NewFetchError(endpoint, fmt.Errorf("http %d", status))
	}

	var dtos []taskDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, apperrors.NewFetchError(endpoint, fmt.Errorf("decode task list: %w", err))
	}

	tasks := make([]domain.Task, 0, len(dtos))
	for _, d := range dtos {
		tasks = append(tasks, d.toDomain())
	}
	logging.Debugf("fetched %d tasks from %s\n", len(tasks), endpoint)
	return tasks, nil
}

// FetchTask returns a single task. A 404 or an empty object means the task does not exist.
func (c *Client) FetchTask(ctx context.Context, id int64) (domain.Task, error) {
	idStr := strconv.FormatInt(id, 10)
	endpoint := c.BaseURL + "/todos/" + idStr

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return domain.Task{}, err
	}
	if status == http.StatusNotFound {
		return domain.Task{}, apperrors.NewNotFoundError("task", idStr)
	}
	if status < 200 || status > 299 {
		return domain.Task{}, apperrors.NewFetchError(endpoint, fmt.Errorf("http %d", status))
	}

	var dto taskDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.Task{}, apperrors.NewFetchError(endpoint, fmt.Errorf("decode task: %w", err))
	}
	task := dto.toDomain()
	if !task.IsValid() {
		return domain.Task{}, apperrors.NewNotFoundError("task", idStr)
	}
	logging.Debugf("fetched task %d from %s\n", task.ID, endpoint)
	return task, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, apperrors.NewFetchError(endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, 0, apperrors.WrapError(err, apperrors.ErrorTypeTimeout, "fetching "+endpoint+" timed out")
		}
		return nil, 0, apperrors.NewFetchError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, apperrors.NewFetchError(endpoint, err)
	}
	return body, resp.StatusCode, nil
}
