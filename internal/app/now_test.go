package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soundfield-hq/nts-radio-client/pkg/nts"
)

type stubSource struct {
	broadcasts []nts.Broadcast
	mixtapes   *nts.MixtapeList
	liveErr    error
	mixErr     error
}

func (s stubSource) CurrentBroadcasts(context.Context) ([]nts.Broadcast, error) {
	return s.broadcasts, s.liveErr
}

func (s stubSource) Mixtapes(context.Context) (*nts.MixtapeList, error) {
	return s.mixtapes, s.mixErr
}

func strPtr(s string) *string { return &s }

func sampleSource() stubSource {
	return stubSource{
		broadcasts: []nts.Broadcast{
			{
				Channel:   "1",
				Title:     "TED DRAWS",
				StartTime: "2025-01-07T15:00:00Z",
				EndTime:   "2025-01-07T17:00:00Z",
				Details: nts.Details{
					Description:  "Hip-hop scholar Ted Draws.",
					Genres:       []nts.Genre{{ID: "ambient-jazz", Value: "Ambient Jazz"}, {ID: "ambient", Value: "Ambient"}},
					Moods:        []nts.Mood{{ID: "mellow", Value: "Mellow"}},
					LocationLong: strPtr("London"),
					Media:        nts.BroadcastMedia{PictureLarge: strPtr("https://media.example/ted.jpeg")},
					AudioSources: []nts.AudioSource{{URL: "https://stream.example/ted", Source: "soundcloud"}},
				},
			},
		},
		mixtapes: &nts.MixtapeList{
			Results: []nts.Mixtape{
				{
					Alias:       "poolside",
					Title:       "Poolside",
					Subtitle:    "Balearic and boogie.",
					Description: "Sun-kissed mixes.",
					StreamURL:   "https://stream-mixtape-geo.ntslive.net/mixtape4",
					Credits: []nts.MixtapeCredit{
						{Name: "Show A", Path: "/shows/a"},
						{Name: "Show B", Path: "/shows/b"},
						{Name: "Show C", Path: "/shows/c"},
						{Name: "Show D", Path: "/shows/d"},
						{Name: "Show E", Path: "/shows/e"},
						{Name: "Show F", Path: "/shows/f"},
						{Name: "Show G", Path: "/shows/g"},
					},
				},
			},
		},
	}
}

func TestAppRunRendersReport(t *testing.T) {
	var out bytes.Buffer
	if err := New(sampleSource(), &out).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	report := out.String()
	for _, want := range []string{
		"Live Channels",
		"Channel 1",
		"TED DRAWS 🔴",
		"- Ambient Jazz",
		"- Ambient",
		"- Mellow",
		"Location: London",
		"- soundcloud: https://stream.example/ted",
		"Start: 2025-01-07T15:00:00Z",
		"Artwork: https://media.example/ted.jpeg",
		"Mixtapes",
		"Poolside (poolside)",
		"- Show E",
		"...and 2 more",
		"🎵 https://stream-mixtape-geo.ntslive.net/mixtape4",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "Show F") {
		t.Fatalf("report should cap credits at %d:\n%s", maxCreditsShown, report)
	}
}

func TestAppRunSkipsEmptySections(t *testing.T) {
	src := sampleSource()
	src.broadcasts[0].Details = nts.Details{}

	var out bytes.Buffer
	if err := New(src, &out).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	report := out.String()
	for _, absent := range []string{"Genres:", "Moods:", "Location:", "Audio Sources:", "Mixcloud:", "Artwork:"} {
		if strings.Contains(report, absent) {
			t.Fatalf("report should omit %q when there is no data:\n%s", absent, report)
		}
	}
}

func TestAppRunPropagatesErrors(t *testing.T) {
	cause := &nts.ResponseError{StatusCode: 500, Body: "boom"}

	err := New(stubSource{liveErr: cause}, &bytes.Buffer{}).Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, nts.ErrAPI) {
		t.Fatalf("expected base api kind preserved, got %v", err)
	}
	var respErr *nts.ResponseError
	if !errors.As(err, &respErr) || respErr.StatusCode != 500 {
		t.Fatalf("expected wrapped response error, got %v", err)
	}

	err = New(stubSource{mixtapes: &nts.MixtapeList{}, mixErr: &nts.TimeoutError{}}, &bytes.Buffer{}).Run(context.Background())
	var timeoutErr *nts.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected wrapped timeout error, got %v", err)
	}
}
