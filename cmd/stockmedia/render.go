package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

func renderImage(img shutterstock.Image) string {
	return recordLine(img.ID, img.Description, img.ImageType)
}

func renderVideo(v shutterstock.Video) string {
	return recordLine(v.ID, v.Description, v.Length().Round(time.Second).String()+" · "+v.AspectRatio)
}

func recordLine(id, description, meta string) string {
	return styleInfo.Render(id) + "  " + styleTitle.Render(description) + "  " + styleDim.Render(meta)
}

func renderImageDetails(img *shutterstock.ImageDetails) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(img.Description) + "\n")
	field(&b, "id", img.ID)
	field(&b, "type", img.ImageType)
	field(&b, "aspect", fmt.Sprintf("%.3g", img.Aspect))
	field(&b, "contributor", img.Contributor.ID)
	field(&b, "added", img.AddedDate)
	if name, a, ok := img.Assets.Largest(); ok {
		field(&b, "largest", fmt.Sprintf("%s %dx%d, %s", name, a.Width, a.Height, humanize.Bytes(uint64(a.FileSize))))
	}
	field(&b, "preview", img.Assets["preview"].URL)
	field(&b, "categories", categoryNames(img.Categories))
	field(&b, "keywords", strings.Join(img.Keywords, ", "))
	if img.IsAdult {
		b.WriteString("  " + styleWarn.Render("adult content") + "\n")
	}
	return b.String()
}

func renderVideoDetails(v *shutterstock.VideoDetails) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(v.Description) + "\n")
	field(&b, "id", v.ID)
	field(&b, "duration", v.Length().Round(100*time.Millisecond).String())
	field(&b, "aspect", v.AspectRatio)
	field(&b, "contributor", v.Contributor.ID)
	field(&b, "added", v.AddedDate)
	if name, a, ok := v.Assets.Largest(); ok {
		field(&b, "largest", fmt.Sprintf("%s %dx%d, %s", name, a.Width, a.Height, humanize.Bytes(uint64(a.FileSize))))
	}
	field(&b, "preview", v.Assets["preview_mp4"].URL)
	field(&b, "categories", categoryNames(v.Categories))
	field(&b, "keywords", strings.Join(v.Keywords, ", "))
	if v.IsEditorial {
		b.WriteString("  " + styleWarn.Render("editorial use only") + "\n")
	}
	if v.IsAdult {
		b.WriteString("  " + styleWarn.Render("adult content") + "\n")
	}
	return b.String()
}

// field writes one "label: value" detail line; empty values are skipped.
func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", styleDim.Render(fmt.Sprintf("%-12s", label+":")), value)
}

func categoryNames(categories []shutterstock.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func renderList[R any](plural string, r *shutterstock.ListResult[R], summary func(R) string) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%d %s", len(r.Data), plural)) + "\n")
	for _, rec := range r.Data {
		b.WriteString(summary(rec) + "\n")
	}
	for _, e := range r.Errors {
		msg := e.Message
		if e.Data != "" {
			msg = e.Data + ": " + msg
		}
		b.WriteString(styleWarn.Render("! "+msg) + "\n")
	}
	return b.String()
}

func renderSearch[R any](plural string, r *shutterstock.SearchResult[R], summary func(R) string) string {
	if len(r.Data) == 0 {
		return styleDim.Render("No "+plural+" found.") + "\n"
	}
	var b strings.Builder
	header := fmt.Sprintf("%s %s · page %d (%d per page)", humanize.Comma(int64(r.TotalCount)), plural, r.Page, r.PerPage)
	b.WriteString(styleHeader.Render(header) + "\n")
	for _, rec := range r.Data {
		b.WriteString(summary(rec) + "\n")
	}
	if r.Message != "" {
		b.WriteString(styleDim.Render(r.Message) + "\n")
	}
	return b.String()
}

// renderOutcomes renders "get" results in argument order.
func renderOutcomes[D any](outcomes []getOutcome[D], details func(*D) string) string {
	var b strings.Builder
	for i, o := range outcomes {
		if i > 0 {
			b.WriteString("\n")
		}
		if o.Data == nil {
			b.WriteString(styleError.Render(fmt.Sprintf("%s: %s", o.ID, o.Error)) + "\n")
			continue
		}
		b.WriteString(details(o.Data))
	}
	return b.String()
}
