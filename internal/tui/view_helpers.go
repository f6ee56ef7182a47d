package tui

import (
	"errors"
	"fmt"

	"github.com/shpixel/gallery/internal/adapter"
	"github.com/shpixel/gallery/internal/app"
	"github.com/shpixel/gallery/internal/service"
	"github.com/shpixel/gallery/models"
)

func photoLine(p models.Photo) string {
	marker := "  "
	if p.Favorite {
		marker = favStyle.Render("★ ")
	}
	line := marker + p.Title
	if len(p.Tags) > 0 {
		line += helpStyle.Render("  #" + p.Tags[0])
	}
	return line
}

func renderField(label, value string) string {
	return helpStyle.Render(label+": ") + value + "\n"
}

func renderStat(label string, n int) string {
	return fmt.Sprintf("%-14s %d\n", label, n)
}

func nextSortOption(current models.SortOption) models.SortOption {
	switch current {
	case models.SortNewest:
		return models.SortOldest
	case models.SortOldest:
		return models.SortName
	case models.SortName:
		return models.SortDateUploaded
	default:
		return models.SortNewest
	}
}

// humanizeError turns transport and validation errors into the wording the
// user sees in the status line.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgTokenIsExpiredOrInvalid
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "server is unavailable, try again later"
	case errors.Is(err, service.ErrRequestInFlight):
		return "still working on the previous request"
	default:
		return err.Error()
	}
}
