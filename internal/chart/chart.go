// Package chart describes chart data independently of any chart library.
package chart

import (
	"errors"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	Bar      Kind = "bar"
	Line     Kind = "line"
	Doughnut Kind = "doughnut"
)

type Styling struct {
	BackgroundColors []string `json:"backgroundColors,omitempty"`
	BorderColor      string   `json:"borderColor,omitempty"`
	Fill             bool     `json:"fill,omitempty"`
}

type Dataset struct {
	Label   string    `json:"label"`
	Data    []float64 `json:"data"`
	Styling Styling   `json:"styling"`
}

// Scale carries axis hints. A nil Max leaves the axis unbounded.
type Scale struct {
	Label string   `json:"label,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

type Chart struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Kind       Kind      `json:"kind"`
	Horizontal bool      `json:"horizontal"`
	Stacked    bool      `json:"stacked"`
	Labels     []string  `json:"labels"`
	Datasets   []Dataset `json:"datasets"`
	Scale      Scale     `json:"scale"`
	// Empty marks a chart built from no data. Surfaces show a
	// "no data" state instead of the plot.
	Empty bool `json:"empty"`
}

func New(id, title string, kind Kind) Chart {
	return Chart{ID: id, Title: title, Kind: kind, Labels: []string{}, Datasets: []Dataset{}}
}

func (c Chart) WithLabels(labels []string) Chart {
	c.Labels = labels
	c.Empty = len(labels) == 0
	return c
}

func (c Chart) WithDataset(label string, data []float64) Chart {
	c.Datasets = append(c.Datasets, Dataset{
		Label: label,
		Data:  data,
		Styling: Styling{
			BackgroundColors: Colors(len(c.Datasets), len(data), c.Kind),
			BorderColor:      Color(len(c.Datasets)),
			Fill:             c.Kind == Line && c.Stacked,
		},
	})
	return c
}

func (c Chart) CapAt(limit float64) Chart {
	c.Scale.Max = &limit
	return c
}

func (c Chart) WithAxis(label string) Chart {
	c.Scale.Label = label
	return c
}

// Surface displays charts. It returns ErrMissingTarget when it has nowhere
// to draw a chart.
type Surface interface {
	Render(Chart) error
}

var ErrMissingTarget = errors.New("chart target not found")

// Publish renders every chart. A missing target is logged and skipped.
// Other errors stop publishing.
func Publish(surface Surface, charts []Chart, log logrus.FieldLogger) error {
	for _, c := range charts {
		err := surface.Render(c)
		if errors.Is(err, ErrMissingTarget) {
			log.WithField("chart", c.ID).Debug("no target for chart, skipping")
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
