package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcess_SendsFullRequestBody(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Response{ProcessedText: "what is for you"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Process(context.Background(), Request{
		Text:                "wt 2 4 u",
		Action:              ActionConvert,
		Mode:                ModeSmsToFull,
		CustomAbbreviations: map[string]string{"wt": "what"},
	})

	require.NoError(t, err)
	require.Equal(t, "what is for you", resp.ProcessedText)
	require.Equal(t, "wt 2 4 u", got.Text)
	require.Equal(t, ActionConvert, got.Action)
	require.Equal(t, ModeSmsToFull, got.Mode)
	require.Equal(t, map[string]string{"wt": "what"}, got.CustomAbbreviations)
}

func TestProcess_Non2xxIsServerError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", status)
		}))

		client := NewClient(srv.URL)
		_, err := client.Process(context.Background(), Request{Text: "x", Action: ActionConvert, Mode: ModeSmsToFull})

		require.ErrorIs(t, err, ErrServer, "status %d", status)
		srv.Close()
	}
}

func TestProcess_UnreachableServerIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Shut down before the request so the connection is refused.

	client := NewClient(srv.URL)
	_, err := client.Process(context.Background(), Request{Text: "x", Action: ActionConvert, Mode: ModeSmsToFull})

	require.ErrorIs(t, err, ErrServer)
}

func TestProcess_MalformedBodyIsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Process(context.Background(), Request{Text: "x", Action: ActionGrammar, Mode: ModeSmsToFull})

	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestProcess_PlagiarismOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"percentage": 12, "explanation": "Some text matched. It was short."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Process(context.Background(), Request{Text: "x", Action: ActionPlagiarism, Mode: ModeSmsToFull})

	require.NoError(t, err)
	require.NotNil(t, resp.Percentage)
	require.Equal(t, float64(12), *resp.Percentage)
	require.Equal(t, "Some text matched. It was short.", resp.Explanation)
}

func TestProcess_PlagiarismAbsentPercentageStaysNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"explanation": "nothing matched"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Process(context.Background(), Request{Text: "x", Action: ActionPlagiarism, Mode: ModeSmsToFull})

	require.NoError(t, err)
	require.Nil(t, resp.Percentage)
}
