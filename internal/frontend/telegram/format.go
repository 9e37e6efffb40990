package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

// FormatImageDetails renders an image detail record as plain text.
func FormatImageDetails(img *shutterstock.ImageDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", img.Description)
	fmt.Fprintf(&b, "ID: %s · %s · contributor %s\n", img.ID, img.ImageType, img.Contributor.ID)
	if name, asset, ok := img.Assets.Largest(); ok {
		fmt.Fprintf(&b, "Largest: %s %dx%d (%s)\n", name, asset.Width, asset.Height, humanize.Bytes(uint64(asset.FileSize)))
	}
	writeCategories(&b, img.Categories)
	writeKeywords(&b, img.Keywords)
	if img.IsAdult {
		b.WriteString("Adult content\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatVideoDetails renders a video detail record as plain text.
func FormatVideoDetails(v *shutterstock.VideoDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Description)
	fmt.Fprintf(&b, "ID: %s · %s · %s · contributor %s\n",
		v.ID, v.Length().Round(100*time.Millisecond), v.AspectRatio, v.Contributor.ID)
	if name, asset, ok := v.Assets.Largest(); ok {
		fmt.Fprintf(&b, "Largest: %s %dx%d (%s)\n", name, asset.Width, asset.Height, humanize.Bytes(uint64(asset.FileSize)))
	}
	writeCategories(&b, v.Categories)
	writeKeywords(&b, v.Keywords)
	if v.IsAdult {
		b.WriteString("Adult content\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatImageResults renders a page of image search results.
func FormatImageResults(r *shutterstock.SearchResult[shutterstock.Image]) string {
	lines := make([]string, 0, len(r.Data))
	for _, img := range r.Data {
		lines = append(lines, fmt.Sprintf("%s (%s, %s)", img.Description, img.ImageType, img.ID))
	}
	return formatPage("images", r.Page, r.PerPage, r.TotalCount, lines)
}

// FormatVideoResults renders a page of video search results.
func FormatVideoResults(r *shutterstock.SearchResult[shutterstock.Video]) string {
	lines := make([]string, 0, len(r.Data))
	for _, v := range r.Data {
		lines = append(lines, fmt.Sprintf("%s (%s, %s)", v.Description, v.Length().Round(time.Second), v.ID))
	}
	return formatPage("videos", r.Page, r.PerPage, r.TotalCount, lines)
}

func formatPage(kind string, page, perPage, total int, lines []string) string {
	if len(lines) == 0 {
		return fmt.Sprintf("No %s found.", kind)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s · page %d (%d per page)\n", humanize.Comma(int64(total)), kind, page, perPage)
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeCategories(b *strings.Builder, categories []shutterstock.Category) {
	if len(categories) == 0 {
		return
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	fmt.Fprintf(b, "Categories: %s\n", strings.Join(names, ", "))
}

func writeKeywords(b *strings.Builder, keywords []string) {
	const maxKeywords = 10
	if len(keywords) == 0 {
		return
	}
	shown := keywords
	if len(shown) > maxKeywords {
		shown = shown[:maxKeywords]
	}
	line := strings.Join(shown, ", ")
	if len(keywords) > maxKeywords {
		line += fmt.Sprintf(" (+%d more)", len(keywords)-maxKeywords)
	}
	fmt.Fprintf(b, "Keywords: %s\n", line)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
