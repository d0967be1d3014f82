package nts

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
)

// Envelope structs mirror the wire schema. Mandatory keys are pointers so a
// missing key is distinguishable from a present-but-empty value.

type liveEnvelope struct {
	Results *[]json.RawMessage `json:"results"`
}

type liveChannel struct {
	Now json.RawMessage `json:"now"`
}

type broadcastEnvelope struct {
	BroadcastTitle *string `json:"broadcast_title"`
	StartTimestamp *string `json:"start_timestamp"`
	EndTimestamp   *string `json:"end_timestamp"`
	Embeds         struct {
		Details json.RawMessage `json:"details"`
	} `json:"embeds"`
	Links []Link `json:"links"`
}

// detailsProbe captures presence of the details fields that are copied onto
// the Broadcast record as optional values.
type detailsProbe struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	LocationShort *string `json:"location_short"`
	LocationLong  *string `json:"location_long"`
	ShowAlias     *string `json:"show_alias"`
	EpisodeAlias  *string `json:"episode_alias"`
}

type mixtapesEnvelope struct {
	Metadata MixtapeMetadata    `json:"metadata"`
	Results  *[]json.RawMessage `json:"results"`
	Links    []Link             `json:"links"`
}

type mixtapeEnvelope struct {
	MixtapeAlias        *string         `json:"mixtape_alias"`
	Title               *string         `json:"title"`
	Subtitle            *string         `json:"subtitle"`
	Description         *string         `json:"description"`
	DescriptionHTML     *string         `json:"description_html"`
	AudioStreamEndpoint *string         `json:"audio_stream_endpoint"`
	Credits             []MixtapeCredit `json:"credits"`
	Media               MixtapeMedia    `json:"media"`
	NowPlayingTopic     string          `json:"now_playing_topic"`
	Links               []Link          `json:"links"`
}

// MapBroadcasts converts a raw live-channels payload into one Broadcast per
// channel that carries a current show. Channel identifiers are the 1-based
// position of the channel in the results array.
func MapBroadcasts(raw []byte) ([]Broadcast, error) {
	var envelope liveEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode live payload: %v", ErrAPI, err)
	}
	if envelope.Results == nil {
		return nil, fmt.Errorf("%w: invalid live data format", ErrAPI)
	}

	broadcasts := make([]Broadcast, 0, len(*envelope.Results))
	for i, channelRaw := range *envelope.Results {
		channel := strconv.Itoa(i + 1)

		var ch liveChannel
		if err := json.Unmarshal(channelRaw, &ch); err != nil {
			return nil, fmt.Errorf("%w: decode channel %s: %v", ErrAPI, channel, err)
		}
		if !jsonPresent(ch.Now) {
			continue
		}

		b, err := mapBroadcast(channel, ch.Now)
		if err != nil {
			return nil, err
		}
		broadcasts = append(broadcasts, b)
	}

	return broadcasts, nil
}

func mapBroadcast(channel string, raw json.RawMessage) (Broadcast, error) {
	var envelope broadcastEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Broadcast{}, fmt.Errorf("%w: decode channel %s broadcast: %v", ErrAPI, channel, err)
	}

	switch {
	case envelope.BroadcastTitle == nil:
		return Broadcast{}, fmt.Errorf("%w: channel %s broadcast missing broadcast_title", ErrAPI, channel)
	case envelope.StartTimestamp == nil:
		return Broadcast{}, fmt.Errorf("%w: channel %s broadcast missing start_timestamp", ErrAPI, channel)
	case envelope.EndTimestamp == nil:
		return Broadcast{}, fmt.Errorf("%w: channel %s broadcast missing end_timestamp", ErrAPI, channel)
	}

	var details Details
	var probe detailsProbe
	if jsonPresent(envelope.Embeds.Details) {
		if err := json.Unmarshal(envelope.Embeds.Details, &details); err != nil {
			return Broadcast{}, fmt.Errorf("%w: decode channel %s details: %v", ErrAPI, channel, err)
		}
		if err := json.Unmarshal(envelope.Embeds.Details, &probe); err != nil {
			return Broadcast{}, fmt.Errorf("%w: decode channel %s details: %v", ErrAPI, channel, err)
		}
	}
	details.Name = html.UnescapeString(details.Name)
	details.Description = html.UnescapeString(details.Description)

	return Broadcast{
		Channel:       channel,
		Title:         html.UnescapeString(*envelope.BroadcastTitle),
		StartTime:     *envelope.StartTimestamp,
		EndTime:       *envelope.EndTimestamp,
		Name:          unescapePtr(probe.Name),
		Description:   unescapePtr(probe.Description),
		LocationShort: probe.LocationShort,
		LocationLong:  probe.LocationLong,
		ShowAlias:     probe.ShowAlias,
		EpisodeAlias:  probe.EpisodeAlias,
		PictureURL:    details.Media.PictureLarge,
		Details:       details,
		Links:         envelope.Links,
		Raw:           raw,
	}, nil
}

// MapMixtapes converts a raw mixtapes payload into a MixtapeList keyed by
// mixtape alias, preserving payload order for iteration.
func MapMixtapes(raw []byte) (*MixtapeList, error) {
	var envelope mixtapesEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode mixtapes payload: %v", ErrAPI, err)
	}
	if envelope.Results == nil {
		return nil, fmt.Errorf("%w: invalid mixtapes data format", ErrAPI)
	}

	list := &MixtapeList{
		Metadata: envelope.Metadata,
		Results:  make([]Mixtape, 0, len(*envelope.Results)),
		Links:    envelope.Links,
		byAlias:  make(map[string]int, len(*envelope.Results)),
	}

	for i, itemRaw := range *envelope.Results {
		m, err := mapMixtape(i, itemRaw)
		if err != nil {
			return nil, err
		}
		list.Results = append(list.Results, m)
		list.byAlias[m.Alias] = len(list.Results) - 1
	}

	return list, nil
}

func mapMixtape(index int, raw json.RawMessage) (Mixtape, error) {
	var envelope mixtapeEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Mixtape{}, fmt.Errorf("%w: decode mixtape %d: %v", ErrAPI, index, err)
	}

	for key, field := range map[string]*string{
		"mixtape_alias":         envelope.MixtapeAlias,
		"title":                 envelope.Title,
		"subtitle":              envelope.Subtitle,
		"description":           envelope.Description,
		"description_html":      envelope.DescriptionHTML,
		"audio_stream_endpoint": envelope.AudioStreamEndpoint,
	} {
		if field == nil {
			return Mixtape{}, fmt.Errorf("%w: mixtape %d missing %s", ErrAPI, index, key)
		}
	}

	return Mixtape{
		Alias:           *envelope.MixtapeAlias,
		Title:           html.UnescapeString(*envelope.Title),
		Subtitle:        html.UnescapeString(*envelope.Subtitle),
		Description:     html.UnescapeString(*envelope.Description),
		DescriptionHTML: *envelope.DescriptionHTML,
		StreamURL:       *envelope.AudioStreamEndpoint,
		Credits:         envelope.Credits,
		Media:           envelope.Media,
		NowPlayingTopic: envelope.NowPlayingTopic,
		Links:           envelope.Links,
		Raw:             raw,
	}, nil
}

// jsonPresent reports whether a raw message holds a value other than null.
func jsonPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func unescapePtr(s *string) *string {
	if s == nil {
		return nil
	}
	decoded := html.UnescapeString(*s)
	return &decoded
}
