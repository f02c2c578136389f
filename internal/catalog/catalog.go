// Package catalog holds the reference data the dashboards label things with:
// SDGs, impact topics, measurement frameworks and business metric details.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"impactlens/internal/domain"
)

//go:embed catalog.yaml
var defaultYAML []byte

type SDG struct {
	ID    int    `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

type Topic struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type Framework struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type ImpactMetric struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type Category struct {
	ID      string   `yaml:"id" json:"id"`
	Metrics []string `yaml:"metrics" json:"metrics"`
}

type MetricDetail struct {
	Name        string  `yaml:"name" json:"name"`
	Standard    string  `yaml:"standard" json:"standard"`
	Source      string  `yaml:"source" json:"source"`
	Description string  `yaml:"description" json:"description"`
	Field       string  `yaml:"field" json:"-"`
	Fallback    float64 `yaml:"fallback" json:"-"`
	Unit        string  `yaml:"unit" json:"-"`
	Fixed       string  `yaml:"fixed" json:"-"`
	Target      string  `yaml:"target" json:"target"`
}

type Catalog struct {
	SDGs          []SDG          `yaml:"sdgs" json:"sdgs"`
	Topics        []Topic        `yaml:"topics" json:"topics"`
	Frameworks    []Framework    `yaml:"frameworks" json:"frameworks"`
	ImpactMetrics []ImpactMetric `yaml:"impact_metrics" json:"impactMetrics"`
	Categories    []Category     `yaml:"categories" json:"categories"`
	MetricDetails []MetricDetail `yaml:"metric_details" json:"metricDetails"`

	details map[string]MetricDetail
	impact  map[string]string
}

// Parse decodes a catalog document and checks that every SDG id is a real
// goal and every metric detail field resolves against MetricSnapshot.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, s := range c.SDGs {
		if s.ID < 1 || s.ID > 17 {
			return nil, fmt.Errorf("catalog: sdg id %d out of range", s.ID)
		}
	}
	c.details = make(map[string]MetricDetail, len(c.MetricDetails))
	for _, d := range c.MetricDetails {
		if d.Field != "" {
			if _, ok := (domain.MetricSnapshot{}).Value(d.Field); !ok {
				return nil, fmt.Errorf("catalog: metric %q has unknown field %q", d.Name, d.Field)
			}
		}
		c.details[d.Name] = d
	}
	c.impact = make(map[string]string, len(c.ImpactMetrics))
	for _, m := range c.ImpactMetrics {
		c.impact[m.ID] = m.Name
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("catalog: no metric categories")
	}
	return &c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalog. The embedded document is part of the
// build, so a parse failure is a programming error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(err)
		}
		defaultCat = c
	})
	return defaultCat
}

// Category returns the metric names of a category id.
func (c *Catalog) Category(id string) ([]string, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat.Metrics, true
		}
	}
	return nil, false
}

func (c *Catalog) CategoryIDs() []string {
	ids := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
	}
	return ids
}

func (c *Catalog) Metric(name string) (MetricDetail, bool) {
	d, ok := c.details[name]
	return d, ok
}

// ImpactMetricName falls back to the id for metrics the catalog does not know.
func (c *Catalog) ImpactMetricName(id string) string {
	if name, ok := c.impact[id]; ok {
		return name
	}
	return id
}

// CurrentValue formats a metric for display. A zero or missing snapshot value
// shows the fallback, matching how the dashboard renders untouched fields.
func (d MetricDetail) CurrentValue(snap *domain.MetricSnapshot) string {
	if d.Fixed != "" {
		return d.Fixed
	}
	v := d.Fallback
	if snap != nil {
		if got, ok := snap.Value(d.Field); ok && got != 0 {
			v = got
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + d.Unit
}
