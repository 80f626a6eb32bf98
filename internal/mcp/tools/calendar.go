package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

const calendarWindow = 7 * 24 * time.Hour

type calendarClient interface {
	Calendar(ctx context.Context, params sonarr.CalendarParams) ([]sonarr.Episode, error)
}

type calendarParams struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// CalendarEntry is one episode of the getCalendar result
type CalendarEntry struct {
	Series  string `json:"series"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Title   string `json:"title"`
	AirDate string `json:"airDate"`
	HasFile bool   `json:"hasFile"`
}

type GetCalendar struct {
	client calendarClient
	clock  func() time.Time
}

var getCalendarInputSchema = objectSchema(map[string]*jsonschema.Schema{
	"startDate": dateProp("Start date in YYYY-MM-DD format. Defaults to today if not provided."),
	"endDate":   dateProp("End date in YYYY-MM-DD format. Defaults to 7 days from start date if not provided."),
})

func NewGetCalendar(client calendarClient, clock func() time.Time) *GetCalendar {
	if clock == nil {
		clock = time.Now
	}
	return &GetCalendar{client: client, clock: clock}
}

func (t *GetCalendar) Name() string {
	return "getCalendar"
}

func (t *GetCalendar) Description() string {
	return "Fetches a list of upcoming and recently aired episodes from the Sonarr calendar for a given date range."
}

func (t *GetCalendar) InputSchema() *jsonschema.Schema {
	return getCalendarInputSchema
}

func (t *GetCalendar) Execute(ctx context.Context, args json.RawMessage) (mcp.Outcome, error) {
	var params calendarParams
	if err := decodeArgs(args, &params); err != nil {
		return mcp.Outcome{}, err
	}

	start, end, err := calendarRange(params, t.clock())
	if err != nil {
		return mcp.Outcome{}, err
	}

	episodes, err := t.client.Calendar(ctx, sonarr.CalendarParams{
		Start:       start,
		End:         end,
		Unmonitored: true,
	})
	if err != nil {
		return mcp.Outcome{}, fmt.Errorf("fetch calendar: %w", err)
	}

	out := make([]CalendarEntry, 0, len(episodes))
	for _, ep := range episodes {
		out = append(out, CalendarEntry{
			Series:  ep.SeriesTitle(),
			Season:  ep.SeasonNumber,
			Episode: ep.EpisodeNumber,
			Title:   ep.Title,
			AirDate: ep.AirDateUtc,
			HasFile: ep.HasFile,
		})
	}

	return mcp.Value(out), nil
}

// calendarRange fills in the defaults: start is today (UTC) and end is
// start plus seven days.
func calendarRange(params calendarParams, now time.Time) (string, string, error) {
	start := params.StartDate
	if start == "" {
		start = now.UTC().Format(dateLayout)
	}

	end := params.EndDate
	if end == "" {
		startDay, err := time.Parse(dateLayout, start)
		if err != nil {
			return "", "", mcp.NewInvalidParamsError("Invalid params: startDate must be YYYY-MM-DD, got %q", start)
		}
		end = startDay.Add(calendarWindow).Format(dateLayout)
	}

	return start, end, nil
}
