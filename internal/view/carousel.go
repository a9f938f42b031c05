package view

import (
	"fmt"
	"html/template"

	"sharehub/internal/model"
)

// Slide is one rendered picture of a Carousel.
type Slide struct {
	Index  int
	URL    template.URL
	Active bool
}

// Carousel walks an ordered set of pictures circularly.
type Carousel struct {
	pictures []model.Picture
	active   int
	base     string
}

// NewCarousel creates a carousel positioned at active, normalized modulo the
// number of pictures.
func NewCarousel(pictures []model.Picture, active int) Carousel {
	c := Carousel{pictures: pictures}
	c.active = c.wrap(active)
	return c
}

func (c Carousel) wrap(i int) int {
	n := len(c.pictures)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Len returns the number of pictures.
func (c Carousel) Len() int { return len(c.pictures) }

// Active returns the index of the displayed picture.
func (c Carousel) Active() int { return c.active }

// Next returns the index after the active one.
func (c Carousel) Next() int { return c.wrap(c.active + 1) }

// Prev returns the index before the active one.
func (c Carousel) Prev() int { return c.wrap(c.active - 1) }

// HasControls reports whether navigation buttons are rendered.
func (c Carousel) HasControls() bool { return len(c.pictures) > 0 }

// Current returns the displayed slide, or a zero Slide on an empty carousel.
func (c Carousel) Current() Slide {
	if len(c.pictures) == 0 {
		return Slide{}
	}
	return c.slide(c.active)
}

// WithBase sets the page the navigation links point back to.
func (c Carousel) WithBase(href string) Carousel {
	c.base = href
	return c
}

// NextHref links to the page showing the next picture.
func (c Carousel) NextHref() string { return c.href(c.Next()) }

// PrevHref links to the page showing the previous picture.
func (c Carousel) PrevHref() string { return c.href(c.Prev()) }

func (c Carousel) href(i int) string {
	return fmt.Sprintf("%s?foto=%d", c.base, i)
}

// Slides returns every picture in order, marking the active one.
func (c Carousel) Slides() []Slide {
	out := make([]Slide, len(c.pictures))
	for i := range c.pictures {
		out[i] = c.slide(i)
	}
	return out
}

func (c Carousel) slide(i int) Slide {
	return Slide{
		Index:  i,
		URL:    template.URL(c.pictures[i].DataURL()),
		Active: i == c.active,
	}
}
