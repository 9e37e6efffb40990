package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newFixtureServer serves the shared shutterstock fixtures by path; other paths get 404.
func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	routes := map[string]string{
		"/v2/images":           "image_list.json",
		"/v2/images/108559295": "image_get.json",
		"/v2/images/search":    "image_search.json",
		"/v2/videos":           "video_list.json",
		"/v2/videos/5869544":   "video_get.json",
		"/v2/videos/search":    "video_search.json",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		data, err := os.ReadFile(filepath.Join("..", "..", "internal", "shutterstock", "testdata", name))
		if err != nil {
			t.Errorf("read fixture %s: %v", name, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	t.Cleanup(server.Close)
	return server
}

// runCLI executes the root command against the fixture server with env-only configuration.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	server := newFixtureServer(t)
	t.Setenv("STOCKMEDIA_BASE_URL", server.URL)
	t.Setenv("STOCKMEDIA_TOKEN", "test-token")
	t.Setenv("STOCKMEDIA_LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"-c", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestImageListJSON(t *testing.T) {
	out, err := runCLI(t, "image", "list", "108559295", "143051491", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var result shutterstock.ListResult[shutterstock.Image]
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(result.Data) != 2 || result.Data[0].ID != "108559295" {
		t.Errorf("unexpected data: %+v", result.Data)
	}
}

func TestVideoSearchJSON(t *testing.T) {
	out, err := runCLI(t, "video", "search", "waterfall", "--json", "--per-page", "5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var result shutterstock.SearchResult[shutterstock.Video]
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result.TotalCount != 1287 {
		t.Errorf("total_count = %d, want 1287", result.TotalCount)
	}
}

func TestImageGetJSON_PartialFailure(t *testing.T) {
	out, err := runCLI(t, "image", "get", "108559295", "1", "--json")
	if err == nil || err.Error() != "1 of 2 lookups failed" {
		t.Fatalf("err = %v, want partial failure", err)
	}

	var outcomes []getOutcome[shutterstock.ImageDetails]
	if err := json.Unmarshal([]byte(out), &outcomes); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(outcomes))
	}
	if outcomes[0].ID != "108559295" || outcomes[0].Data == nil || outcomes[0].Data.Description != "Donkey isolated on white" {
		t.Errorf("first outcome = %+v", outcomes[0])
	}
	if outcomes[1].ID != "1" || outcomes[1].Data != nil || outcomes[1].Error != "not found" {
		t.Errorf("second outcome = %+v", outcomes[1])
	}
}

func TestGetAll_PreservesOrder(t *testing.T) {
	server := newFixtureServer(t)
	client, err := shutterstock.New(shutterstock.Config{BaseURL: server.URL, Token: "t"}, discardLogger)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ids := []string{"missing", "5869544", "other", "5869544", "x", "y"}
	outcomes, err := getAll(context.Background(), client.Video, ids)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	for i, o := range outcomes {
		if o.ID != ids[i] {
			t.Errorf("outcome %d id = %q, want %q", i, o.ID, ids[i])
		}
	}
	if outcomes[1].Data == nil || outcomes[3].Data == nil {
		t.Error("known video should resolve")
	}
	if got := countFailed(outcomes); got != 4 {
		t.Errorf("failed = %d, want 4", got)
	}
}

func TestGetAll_Canceled(t *testing.T) {
	server := newFixtureServer(t)
	client, err := shutterstock.New(shutterstock.Config{BaseURL: server.URL, Token: "t"}, discardLogger)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := getAll(ctx, client.Image, []string{"108559295"}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestRenderImageDetails(t *testing.T) {
	img := &shutterstock.ImageDetails{
		Image: shutterstock.Image{
			ID:          "108559295",
			Description: "Donkey isolated on white",
			ImageType:   "photo",
			Assets: shutterstock.ImageAssets{
				"small_jpg": {Width: 500, Height: 333, FileSize: 63488, IsLicensable: true},
				"huge_jpg":  {Width: 4368, Height: 2912, FileSize: 3248128, IsLicensable: true},
			},
		},
		Keywords: []string{"donkey", "farm"},
	}

	got := renderImageDetails(img)
	for _, want := range []string{"Donkey isolated on white", "108559295", "huge_jpg 4368x2912, 3.2 MB", "donkey, farm"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "added") {
		t.Error("empty added date should be skipped")
	}
}

func TestRenderSearch_Empty(t *testing.T) {
	r := &shutterstock.SearchResult[shutterstock.Video]{Data: []shutterstock.Video{}}
	if got := renderSearch("videos", r, renderVideo); !strings.Contains(got, "No videos found.") {
		t.Errorf("got %q", got)
	}
}

func TestRenderList_ShowsErrors(t *testing.T) {
	r := &shutterstock.ListResult[shutterstock.Image]{
		Data:   []shutterstock.Image{{ID: "1", Description: "Fox", ImageType: "photo"}},
		Errors: []shutterstock.ErrorDetail{{Message: "Not found", Data: "2"}},
	}
	got := renderList("images", r, renderImage)
	for _, want := range []string{"1 images", "Fox", "2: Not found"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderOutcomes(t *testing.T) {
	outcomes := []getOutcome[shutterstock.VideoDetails]{
		{ID: "5869544", Data: &shutterstock.VideoDetails{Video: shutterstock.Video{ID: "5869544", Description: "Waterfall", Duration: 14.5}}},
		{ID: "1", Error: "not found"},
	}
	got := renderOutcomes(outcomes, renderVideoDetails)
	for _, want := range []string{"Waterfall", "14.5s", "1: not found"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
