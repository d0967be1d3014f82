package nts

import "encoding/json"

// Link is a typed hyperlink returned by the API for resource discovery.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
	Type string `json:"type"`
}

// AudioSource is an external playback location for an episode.
type AudioSource struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Genre is an id/value genre tag.
type Genre struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Mood is an id/value mood tag.
type Mood struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// BroadcastMedia holds episode artwork URLs at multiple resolutions. Every
// field is optional; nil means the API omitted it.
type BroadcastMedia struct {
	BackgroundLarge       *string `json:"background_large"`
	BackgroundMediumLarge *string `json:"background_medium_large"`
	BackgroundMedium      *string `json:"background_medium"`
	BackgroundSmall       *string `json:"background_small"`
	BackgroundThumb       *string `json:"background_thumb"`
	PictureLarge          *string `json:"picture_large"`
	PictureMediumLarge    *string `json:"picture_medium_large"`
	PictureMedium         *string `json:"picture_medium"`
	PictureSmall          *string `json:"picture_small"`
	PictureThumb          *string `json:"picture_thumb"`
}

// Details is the episode-level metadata embedded within a broadcast response.
// Text fields absent from the payload decode to the empty string; fields the
// API treats as properly optional are pointers and decode to nil.
type Details struct {
	Status          string          `json:"status"`
	Updated         string          `json:"updated"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"description_html"`
	ExternalLinks   []string        `json:"external_links"`
	Moods           []Mood          `json:"moods"`
	Genres          []Genre         `json:"genres"`
	LocationShort   *string         `json:"location_short"`
	LocationLong    *string         `json:"location_long"`
	Intensity       *string         `json:"intensity"`
	Media           BroadcastMedia  `json:"media"`
	EpisodeAlias    string          `json:"episode_alias"`
	ShowAlias       string          `json:"show_alias"`
	Broadcast       string          `json:"broadcast"`
	Mixcloud        *string         `json:"mixcloud"`
	AudioSources    []AudioSource   `json:"audio_sources"`
	Brand           json.RawMessage `json:"brand"`
	Embeds          json.RawMessage `json:"embeds"`
	Links           []Link          `json:"links"`
}

// Broadcast is one channel's currently airing (or queried) program.
//
// Optional fields are nil when the corresponding key is missing from the
// payload. Raw retains the source JSON object verbatim so callers can reach
// fields the typed model does not expose.
type Broadcast struct {
	Channel       string
	Title         string
	StartTime     string
	EndTime       string
	Name          *string
	Description   *string
	LocationShort *string
	LocationLong  *string
	ShowAlias     *string
	EpisodeAlias  *string
	PictureURL    *string
	Details       Details
	Links         []Link
	Raw           json.RawMessage
}

// MixtapeCredit names a show contributing to a mixtape.
type MixtapeCredit struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// MixtapeMedia holds mixtape artwork and animation URLs. Every field is
// optional; nil means the API omitted it.
type MixtapeMedia struct {
	AnimationLargeLandscape *string `json:"animation_large_landscape"`
	AnimationLargePortrait  *string `json:"animation_large_portrait"`
	AnimationThumb          *string `json:"animation_thumb"`
	IconBlack               *string `json:"icon_black"`
	IconWhite               *string `json:"icon_white"`
	PictureLarge            *string `json:"picture_large"`
	PictureMediumLarge      *string `json:"picture_medium_large"`
	PictureMedium           *string `json:"picture_medium"`
	PictureSmall            *string `json:"picture_small"`
	PictureThumb            *string `json:"picture_thumb"`
}

// MixtapeMetadata is the list-level metadata on the mixtapes endpoint.
type MixtapeMetadata struct {
	Subtitle               string `json:"subtitle"`
	Credits                string `json:"credits"`
	MQHost                 string `json:"mq_host"`
	AnimationLargePortrait string `json:"animation_large_portrait"`
}

// Mixtape is a curated, continuously looping audio stream. Raw retains the
// source JSON object verbatim.
type Mixtape struct {
	Alias           string
	Title           string
	Subtitle        string
	Description     string
	DescriptionHTML string
	StreamURL       string
	Credits         []MixtapeCredit
	Media           MixtapeMedia
	NowPlayingTopic string
	Links           []Link
	Raw             json.RawMessage
}

// MixtapeList is the collection returned by the mixtapes endpoint. Results
// preserves the payload order; ByAlias offers keyed lookup.
type MixtapeList struct {
	Metadata MixtapeMetadata
	Results  []Mixtape
	Links    []Link

	byAlias map[string]int
}

// ByAlias returns the mixtape with the given alias, if present.
func (l *MixtapeList) ByAlias(alias string) (Mixtape, bool) {
	if l == nil {
		return Mixtape{}, false
	}
	i, ok := l.byAlias[alias]
	if !ok {
		return Mixtape{}, false
	}
	return l.Results[i], true
}

// Aliases returns all mixtape aliases in payload order.
func (l *MixtapeList) Aliases() []string {
	if l == nil || len(l.Results) == 0 {
		return nil
	}
	out := make([]string, 0, len(l.Results))
	for _, m := range l.Results {
		out = append(out, m.Alias)
	}
	return out
}
