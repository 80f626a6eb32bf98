package sonarr

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

// Config defines Sonarr API client settings
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the Sonarr v3 REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Series is the subset of a Sonarr series resource the tools read.
type Series struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Status    string `json:"status"`
	Monitored bool   `json:"monitored"`
}

// Season describes per-season monitoring state
type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// LookupSeries is a series lookup result. Raw keeps every field Sonarr
// returned so the record can be posted back unchanged when adding.
type LookupSeries struct {
	Title   string   `json:"title"`
	Year    int      `json:"year"`
	TvdbID  int      `json:"tvdbId"`
	Seasons []Season `json:"seasons"`

	Raw map[string]any `json:"-"`
}

// UnmarshalJSON decodes the typed fields and retains the full record.
func (l *LookupSeries) UnmarshalJSON(data []byte) error {
	type plain LookupSeries
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&p.Raw); err != nil {
		return err
	}

	*l = LookupSeries(p)
	return nil
}

// Episode is an episode resource as returned by /episode and /calendar.
type Episode struct {
	ID            int     `json:"id"`
	SeriesID      int     `json:"seriesId"`
	SeasonNumber  int     `json:"seasonNumber"`
	EpisodeNumber int     `json:"episodeNumber"`
	Title         string  `json:"title"`
	AirDateUtc    string  `json:"airDateUtc"`
	HasFile       bool    `json:"hasFile"`
	Monitored     bool    `json:"monitored"`
	Overview      string  `json:"overview"`
	Series        *Series `json:"series,omitempty"`
}

// SeriesTitle returns the embedded series title, if any.
func (e Episode) SeriesTitle() string {
	if e.Series == nil {
		return ""
	}
	return e.Series.Title
}

// CalendarParams bound a calendar query
type CalendarParams struct {
	Start       string // YYYY-MM-DD
	End         string // YYYY-MM-DD
	Unmonitored bool
}

// CommandRequest is the body posted to /command
type CommandRequest struct {
	Name     string `json:"name"`
	SeriesID int    `json:"seriesId"`
}

// Command is a queued Sonarr command
type Command struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
}

type validationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}
