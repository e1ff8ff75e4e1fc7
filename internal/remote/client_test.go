package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-viewer/internal/domain"
	apperrors "task-viewer/internal/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchTasks(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false},
			{"userId": 1, "id": 2, "title": "quis ut nam", "completed": true}
		]`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", 200, time.Second)
	tasks, err := client.FetchTasks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "_limit=200", gotQuery)
	want := []domain.Task{
		{ID: 1, Title: "delectus aut autem", UserID: 1, Completed: false},
		{ID: 2, Title: "quis ut nam", UserID: 1, Completed: true},
	}
	if diff := cmp.Diff(want, tasks); diff != "" {
		t.Errorf("FetchTasks() mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_FetchTasks_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"not": "a list"`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, 10, time.Second).FetchTasks(context.Background())
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeFetch))
		})
	}
}

func TestClient_FetchTasks_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 10, time.Second).FetchTasks(context.Background())
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeFetch))
}

func TestClient_FetchTasks_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL, 10, time.Minute).FetchTasks(ctx)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout))
}

func TestClient_FetchTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/todos/5":
			fmt.Fprint(w, `{"userId": 1, "id": 5, "title": "laboriosam mollitia", "completed": false}`)
		case "/todos/6":
			fmt.Fprint(w, `{}`)
		case "/todos/7":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{}`)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 10, time.Second)
	ctx := context.Background()

	task, err := client.FetchTask(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: 5, Title: "laboriosam mollitia", UserID: 1}, task)

	_, err = client.FetchTask(ctx, 6)
	assert.True(t, apperrors.IsNotFound(err), "empty object is not found")

	_, err = client.FetchTask(ctx, 7)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeFetch))

	_, err = client.FetchTask(ctx, 9999)
	assert.True(t, apperrors.IsNotFound(err))
}
