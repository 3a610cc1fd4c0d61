package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/five82/marquee/internal/carousel"
)

// ErrEmptyCatalog is returned when a catalog has no domains to show.
var ErrEmptyCatalog = errors.New("catalog has no domains")

// Event is a single card.
type Event struct {
	Name  string `json:"name" toml:"name"`
	About string `json:"about" toml:"about"`
}

// Domain groups events shown in one carousel.
type Domain struct {
	Name   string  `json:"name" toml:"name"`
	Events []Event `json:"events" toml:"events"`
}

// Catalog is the full set of domains.
type Catalog struct {
	Domains []Domain `json:"domains" toml:"domains"`
}

// Slug returns a lower-case, dash-separated form of the domain name suitable
// for element identifiers.
func (d Domain) Slug() string {
	fields := strings.FieldsFunc(strings.ToLower(d.Name), unicode.IsSpace)
	return strings.Join(fields, "-")
}

// CardID returns the identifier of the card at index i.
func (d Domain) CardID(i int) string {
	return fmt.Sprintf("%s-card-%d", d.Slug(), i)
}

// Items converts events to carousel items.
func (d Domain) Items() []carousel.Item {
	items := make([]carousel.Item, len(d.Events))
	for i, ev := range d.Events {
		items[i] = carousel.Item{Title: ev.Name, Description: ev.About}
	}
	return items
}

// Validate reports structural problems that would leave a carousel empty.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Domains) == 0 {
		return ErrEmptyCatalog
	}
	var errs []error
	for i, d := range c.Domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("domain %d: name is required", i))
			name = fmt.Sprintf("#%d", i)
		}
		if len(d.Events) == 0 {
			errs = append(errs, fmt.Errorf("domain %s: %w", name, carousel.ErrNoItems))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{Domains: make([]Domain, len(c.Domains))}
	for i, d := range c.Domains {
		out.Domains[i] = Domain{
			Name:   d.Name,
			Events: append([]Event(nil), d.Events...),
		}
	}
	return out
}

// Sizes returns the event count of every domain, in order.
func (c *Catalog) Sizes() []int {
	if c == nil {
		return nil
	}
	sizes := make([]int, len(c.Domains))
	for i, d := range c.Domains {
		sizes[i] = len(d.Events)
	}
	return sizes
}
