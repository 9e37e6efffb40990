package telegram

import (
	"strings"
	"testing"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

func TestFormatImageDetails(t *testing.T) {
	img := &shutterstock.ImageDetails{
		Image: shutterstock.Image{
			ID:          "108559295",
			Description: "Donkey isolated on white",
			ImageType:   "photo",
			Contributor: shutterstock.Contributor{ID: "371512"},
			Assets: shutterstock.ImageAssets{
				"huge_jpg": {Width: 4368, Height: 2912, FileSize: 3248128, IsLicensable: true},
			},
		},
		Categories: []shutterstock.Category{{ID: "1", Name: "Animals/Wildlife"}},
		Keywords:   []string{"donkey", "farm"},
	}

	got := FormatImageDetails(img)
	for _, want := range []string{
		"Donkey isolated on white",
		"ID: 108559295 · photo · contributor 371512",
		"Largest: huge_jpg 4368x2912 (3.2 MB)",
		"Categories: Animals/Wildlife",
		"Keywords: donkey, farm",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Adult") {
		t.Error("unexpected adult marker")
	}
}

func TestFormatVideoDetails(t *testing.T) {
	v := &shutterstock.VideoDetails{
		Video: shutterstock.Video{
			ID:          "5869544",
			Description: "Mae Klang Waterfall",
			Duration:    21,
			AspectRatio: "16:9",
			Contributor: shutterstock.Contributor{ID: "943678"},
		},
		IsAdult: true,
	}

	got := FormatVideoDetails(v)
	if !strings.Contains(got, "ID: 5869544 · 21s · 16:9 · contributor 943678") {
		t.Errorf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "Adult content") {
		t.Error("expected adult marker")
	}
	if strings.Contains(got, "Largest") {
		t.Error("no licensable asset, expected no Largest line")
	}
}

func TestFormatImageResults(t *testing.T) {
	r := &shutterstock.SearchResult[shutterstock.Image]{
		Page:       1,
		PerPage:    20,
		TotalCount: 45321,
		Data: []shutterstock.Image{
			{ID: "1", Description: "Donkey", ImageType: "photo"},
			{ID: "2", Description: "Donkey icon", ImageType: "vector"},
		},
	}

	got := FormatImageResults(r)
	want := "45,321 images · page 1 (20 per page)\n1. Donkey (photo, 1)\n2. Donkey icon (vector, 2)"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatVideoResults_Empty(t *testing.T) {
	r := &shutterstock.SearchResult[shutterstock.Video]{Page: 1, PerPage: 20, Data: []shutterstock.Video{}}
	if got := FormatVideoResults(r); got != "No videos found." {
		t.Errorf("got %q", got)
	}
}

func TestWriteKeywords_Truncates(t *testing.T) {
	var b strings.Builder
	writeKeywords(&b, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"})
	if got := b.String(); got != "Keywords: a, b, c, d, e, f, g, h, i, j (+2 more)\n" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer description", 10, "a longer …"},
		{"водопад в горах", 8, "водопад…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
