package nlpsvc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maintenance-task-parser/pkg/nlpsvc"
)

func TestNLPClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Text string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		if strings.Contains(req.Text, "boom") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		annotation := nlpsvc.Annotation{
			Tokens: []nlpsvc.Token{
				{Text: "the", POS: "DET"},
				{Text: "sink", POS: "NOUN"},
				{Text: "leaks", POS: "VERB"},
				{Text: "pipe", POS: "NOUN"},
			},
			Entities: []nlpsvc.Entity{
				{Text: "next Friday", Label: "DATE"},
				{Text: "Building A", Label: "FAC"},
			},
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(annotation)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := nlpsvc.NewClient(ts.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("NounTokens", func(t *testing.T) {
		nouns, err := client.NounTokens(ctx, "the sink leaks pipe")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(nouns) != 2 || nouns[0].Text != "sink" || nouns[1].Text != "pipe" {
			t.Errorf("unexpected noun tokens: %+v", nouns)
		}
	})

	t.Run("DateEntities", func(t *testing.T) {
		dates, err := client.DateEntities(ctx, "by next Friday in Building A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dates) != 1 || dates[0].Text != "next Friday" {
			t.Errorf("unexpected date entities: %+v", dates)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		if _, err := client.NounTokens(ctx, "boom"); err == nil {
			t.Fatalf("expected error on 500 response")
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		dead := nlpsvc.NewClient("http://127.0.0.1:1", time.Second)
		if _, err := dead.DateEntities(ctx, "tomorrow"); err == nil {
			t.Fatalf("expected error for unreachable service")
		}
	})
}
