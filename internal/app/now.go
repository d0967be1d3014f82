package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/soundfield-hq/nts-radio-client/internal/logger"
	"github.com/soundfield-hq/nts-radio-client/pkg/nts"
)

// Source is the slice of the NTS client the report needs.
type Source interface {
	CurrentBroadcasts(ctx context.Context) ([]nts.Broadcast, error)
	Mixtapes(ctx context.Context) (*nts.MixtapeList, error)
}

// maxCreditsShown caps the contributing-show list per mixtape.
const maxCreditsShown = 5

// App fetches live broadcasts and mixtapes and writes a human-readable
// report. Errors from the source propagate unmodified.
type App struct {
	source Source
	out    io.Writer
}

// New builds the report app around a source and an output writer.
func New(source Source, out io.Writer) *App {
	return &App{source: source, out: out}
}

// Run writes the full report: live channels first, then mixtapes.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.source == nil {
		return fmt.Errorf("app is not initialized")
	}

	broadcasts, err := a.source.CurrentBroadcasts(ctx)
	if err != nil {
		return fmt.Errorf("fetch current broadcasts: %w", err)
	}
	logger.DebugObj("live broadcasts fetched", "count", len(broadcasts))
	a.renderBroadcasts(broadcasts)

	mixtapes, err := a.source.Mixtapes(ctx)
	if err != nil {
		return fmt.Errorf("fetch mixtapes: %w", err)
	}
	logger.DebugObj("mixtapes fetched", "count", len(mixtapes.Results))
	a.renderMixtapes(mixtapes)

	return nil
}

func (a *App) renderBroadcasts(broadcasts []nts.Broadcast) {
	a.header("Live Channels")

	for _, b := range broadcasts {
		name := fmt.Sprintf("Channel %s", b.Channel)
		fmt.Fprintf(a.out, "\n%s\n%s\n", name, strings.Repeat("-", len(name)))
		fmt.Fprintf(a.out, "%s 🔴\n", b.Title)

		d := b.Details

		if d.Description != "" {
			fmt.Fprintf(a.out, "\n%s\n", d.Description)
		}
		if len(d.Genres) > 0 {
			fmt.Fprintf(a.out, "\nGenres:\n")
			for _, g := range d.Genres {
				fmt.Fprintf(a.out, "- %s\n", g.Value)
			}
		}
		if len(d.Moods) > 0 {
			fmt.Fprintf(a.out, "\nMoods:\n")
			for _, m := range d.Moods {
				fmt.Fprintf(a.out, "- %s\n", m.Value)
			}
		}
		if d.LocationLong != nil {
			fmt.Fprintf(a.out, "\nLocation: %s\n", *d.LocationLong)
		}
		if len(d.ExternalLinks) > 0 {
			fmt.Fprintf(a.out, "\nLinks:\n")
			for _, link := range d.ExternalLinks {
				fmt.Fprintf(a.out, "- %s\n", link)
			}
		}
		if len(d.AudioSources) > 0 {
			fmt.Fprintf(a.out, "\nAudio Sources:\n")
			for _, src := range d.AudioSources {
				fmt.Fprintf(a.out, "- %s: %s\n", src.Source, src.URL)
			}
		}
		if d.Mixcloud != nil {
			fmt.Fprintf(a.out, "\nMixcloud: %s\n", *d.Mixcloud)
		}

		fmt.Fprintf(a.out, "\nStart: %s\nEnd: %s\n", b.StartTime, b.EndTime)

		if d.Media.PictureLarge != nil {
			fmt.Fprintf(a.out, "\nArtwork: %s\n", *d.Media.PictureLarge)
		}
	}
}

func (a *App) renderMixtapes(list *nts.MixtapeList) {
	fmt.Fprintln(a.out)
	a.header("Mixtapes")

	for _, m := range list.Results {
		fmt.Fprintf(a.out, "\n%s (%s)\n%s\n", m.Title, m.Alias, strings.Repeat("-", len(m.Title)))
		fmt.Fprintf(a.out, "%s\n", m.Subtitle)
		fmt.Fprintf(a.out, "\n%s\n", m.Description)

		if len(m.Credits) > 0 {
			fmt.Fprintf(a.out, "\nFeaturing:\n")
			for i, credit := range m.Credits {
				if i == maxCreditsShown {
					fmt.Fprintf(a.out, "...and %d more\n", len(m.Credits)-maxCreditsShown)
					break
				}
				fmt.Fprintf(a.out, "- %s\n", credit.Name)
			}
		}

		fmt.Fprintf(a.out, "\n🎵 %s\n", m.StreamURL)
	}
}

func (a *App) header(title string) {
	fmt.Fprintf(a.out, "%s\n%s\n", title, strings.Repeat("-", len(title)))
}
