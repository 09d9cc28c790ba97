// Package labbook uploads measurement sessions to the lab-notebook
// service so rig runs are charted alongside manually entered data.
package labbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/calvinmclean/babyapi"

	teai "github.com/SemalDeSilva/TEAI"
)

// Session groups the samples of one rig run.
type Session struct {
	Name      string
	Date      time.Time
	StartTime time.Time `json:",omitempty"`
	Samples   []Sample  `json:",omitempty"`
}

// Sample is one measured specimen. Nil pointers mean the ambient sensor
// had never produced a reading at weigh time.
type Sample struct {
	Index        int
	Time         time.Time
	WeightG      float64
	TemperatureC *float64 `json:",omitempty"`
	HumidityPct  *float64 `json:",omitempty"`
}

// SampleFromMeasurement converts a wire measurement into an upload row.
func SampleFromMeasurement(index int, at time.Time, m teai.Measurement) Sample {
	s := Sample{
		Index:   index,
		Time:    at,
		WeightG: m.WeightG,
	}
	if m.HasTemperature {
		t := m.TemperatureC
		s.TemperatureC = &t
	}
	if m.HasHumidity {
		h := m.HumidityPct
		s.HumidityPct = &h
	}
	return s
}

type session struct {
	// include NilResource so we don't implement Render/Bind which are not needed
	*babyapi.NilResource
	ID string `json:"id,omitempty"`
	Session
}

func (s session) GetID() string {
	return s.ID
}

type Client struct {
	client    *babyapi.Client[*session]
	sessionID string
}

func NewClient(addr string) *Client {
	client := babyapi.NewClient[*session](addr, "/sessions")
	return &Client{client: client}
}

// CreateSession registers a new session and remembers its ID for the
// sample uploads that follow.
func (c *Client) CreateSession(ctx context.Context, name string) (string, error) {
	resp, err := c.client.Post(ctx, &session{
		Session: Session{
			Name: name,
			Date: time.Now(),
		},
	})
	if err != nil {
		return "", err
	}

	c.sessionID = resp.Data.GetID()

	return c.sessionID, nil
}

func (c *Client) AddSample(ctx context.Context, s Sample) error {
	url, _ := c.client.URL(c.sessionID)
	url += "/add-sample"

	return c.makeRequest(ctx, url, s)
}

func (c *Client) Done(ctx context.Context) error {
	url, _ := c.client.URL(c.sessionID)
	url += "/done"

	return c.makeRequest(ctx, url, map[string]any{"time": time.Now()})
}

func (c *Client) makeRequest(ctx context.Context, url string, body any) error {
	var bodyReader io.Reader = http.NoBody
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := c.client.MakeGenericRequest(req, nil)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	if resp.Response.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d, response: %v", resp.Response.StatusCode, resp.Body)
	}

	return nil
}
