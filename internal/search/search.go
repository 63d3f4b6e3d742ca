// Package search filters a catalog by title or tag.
//
// Searches are pure: the same catalog and query always produce the same [Results]. Choosing a result and playing it
// is left to the caller, see [Results.Pick].
package search

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/desertthunder/ytplayer/internal/models"
)

// Result is a match with its 1-based position in the result list.
type Result struct {
	Index int
	Video models.Video
}

// Results are matches sorted by title, then id.
type Results []Result

// ByTitle returns videos whose title contains term, ignoring case.
func ByTitle(catalog models.Catalog, term string) Results {
	needle := strings.ToLower(term)
	return filter(catalog, func(v models.Video) bool {
		return strings.Contains(strings.ToLower(v.Title), needle)
	})
}

// ByTag returns videos carrying tag, ignoring case.
func ByTag(catalog models.Catalog, tag string) Results {
	return filter(catalog, func(v models.Video) bool {
		return v.HasTag(tag)
	})
}

// SortByTitle sorts videos in place by title, breaking ties by id.
func SortByTitle(videos []models.Video) {
	slices.SortStableFunc(videos, func(a, b models.Video) int {
		return cmp.Or(strings.Compare(a.Title, b.Title), strings.Compare(a.ID, b.ID))
	})
}

// Pick resolves a user's answer to a result. Anything other than a number in range means no selection.
func (r Results) Pick(answer string) (models.Video, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(r) {
		return models.Video{}, false
	}
	return r[n-1].Video, true
}

// Videos returns the matched videos in result order.
func (r Results) Videos() []models.Video {
	out := make([]models.Video, len(r))
	for i, res := range r {
		out[i] = res.Video
	}
	return out
}

func filter(catalog models.Catalog, match func(models.Video) bool) Results {
	var matched []models.Video
	for _, v := range catalog.All() {
		if match(v) {
			matched = append(matched, v)
		}
	}
	SortByTitle(matched)

	results := make(Results, len(matched))
	for i, v := range matched {
		results[i] = Result{Index: i + 1, Video: v}
	}
	return results
}
