package shutterstock

import "time"

// Resource names used as the first path segment under /v2.
const (
	ResourceImages = "images"
	ResourceVideos = "videos"
)

var (
	imageKeys = []string{"id", "aspect", "assets", "contributor", "description", "image_type", "media_type"}
	videoKeys = []string{"media_type", "id", "aspect", "duration", "description", "contributor", "aspect_ratio", "assets"}
)

// RequiredKeys returns the key set every record of the given resource carries.
// It returns nil for unknown resources.
func RequiredKeys(resource string) []string {
	switch resource {
	case ResourceImages:
		return append([]string(nil), imageKeys...)
	case ResourceVideos:
		return append([]string(nil), videoKeys...)
	}
	return nil
}

// Contributor identifies the author of an image or video.
type Contributor struct {
	ID string `json:"id"`
}

// Category is a catalog category attached to a detail record.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImageAsset is one rendition of an image (preview, thumbnail, licensable size).
type ImageAsset struct {
	URL          string `json:"url,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
	DPI          int    `json:"dpi,omitempty"`
	FileSize     int64  `json:"file_size,omitempty"`
	Format       string `json:"format,omitempty"`
	IsLicensable bool   `json:"is_licensable,omitempty"`
}

// ImageAssets maps rendition names ("preview", "huge_jpg", ...) to assets.
type ImageAssets map[string]ImageAsset

// Image is an image record as returned by list and search.
type Image struct {
	ID          string      `json:"id"`
	Aspect      float64     `json:"aspect"`
	Assets      ImageAssets `json:"assets"`
	Contributor Contributor `json:"contributor"`
	Description string      `json:"description"`
	ImageType   string      `json:"image_type"`
	MediaType   string      `json:"media_type"`
}

// ImageDetails is an image record with the fields only present on get.
type ImageDetails struct {
	Image

	AddedDate          string     `json:"added_date,omitempty"`
	Categories         []Category `json:"categories"`
	Keywords           []string   `json:"keywords"`
	IsAdult            bool       `json:"is_adult"`
	IsIllustration     bool       `json:"is_illustration"`
	HasModelRelease    bool       `json:"has_model_release"`
	HasPropertyRelease bool       `json:"has_property_release"`
}

// VideoAsset is one rendition of a video (thumbnail, preview clip, licensable size).
type VideoAsset struct {
	URL          string  `json:"url,omitempty"`
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
	DisplayName  string  `json:"display_name,omitempty"`
	FileSize     int64   `json:"file_size,omitempty"`
	Format       string  `json:"format,omitempty"`
	FPS          float64 `json:"fps,omitempty"`
	IsLicensable bool    `json:"is_licensable,omitempty"`
}

// VideoAssets maps rendition names ("thumb_jpg", "preview_mp4", "hd", ...) to assets.
type VideoAssets map[string]VideoAsset

// Video is a video record as returned by list and search.
type Video struct {
	MediaType   string      `json:"media_type"`
	ID          string      `json:"id"`
	Aspect      float64     `json:"aspect"`
	Duration    float64     `json:"duration"`
	Description string      `json:"description"`
	Contributor Contributor `json:"contributor"`
	AspectRatio string      `json:"aspect_ratio"`
	Assets      VideoAssets `json:"assets"`
}

// VideoDetails is a video record with the fields only present on get.
type VideoDetails struct {
	Video

	AddedDate          string     `json:"added_date,omitempty"`
	Categories         []Category `json:"categories"`
	Keywords           []string   `json:"keywords"`
	IsAdult            bool       `json:"is_adult"`
	IsEditorial        bool       `json:"is_editorial"`
	HasModelRelease    bool       `json:"has_model_release"`
	HasPropertyRelease bool       `json:"has_property_release"`
}

// ListResult is the body of a list-by-id call. Data is never nil.
type ListResult[R any] struct {
	Data   []R           `json:"data"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// SearchResult is one page of keyword search results. Data is never nil.
type SearchResult[R any] struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalCount int    `json:"total_count"`
	SearchID   string `json:"search_id,omitempty"`
	Data       []R    `json:"data"`
	Message    string `json:"message,omitempty"`
}

// SearchOptions narrows a search. The zero value lists everything with server defaults.
type SearchOptions struct {
	Query   string // free-text keyword; empty means no keyword
	Page    int    // 1-based; 0 leaves the server default
	PerPage int    // 0 leaves the server default
	Sort    string // e.g. "popular", "newest", "relevance"
}

// Largest returns the licensable rendition with the biggest file size.
func (a ImageAssets) Largest() (string, ImageAsset, bool) {
	var (
		bestName string
		best     ImageAsset
		found    bool
	)
	for name, asset := range a {
		if !asset.IsLicensable {
			continue
		}
		if !found || asset.FileSize > best.FileSize || (asset.FileSize == best.FileSize && name < bestName) {
			bestName, best, found = name, asset, true
		}
	}
	return bestName, best, found
}

// Largest returns the licensable rendition with the biggest file size.
func (a VideoAssets) Largest() (string, VideoAsset, bool) {
	var (
		bestName string
		best     VideoAsset
		found    bool
	)
	for name, asset := range a {
		if !asset.IsLicensable {
			continue
		}
		if !found || asset.FileSize > best.FileSize || (asset.FileSize == best.FileSize && name < bestName) {
			bestName, best, found = name, asset, true
		}
	}
	return bestName, best, found
}

// Length returns the clip duration.
func (v Video) Length() time.Duration {
	return time.Duration(v.Duration * float64(time.Second))
}
