package components

import "github.com/yohamta/donburi"

// Direction is a carousel navigation direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// CarouselData is a cyclic index-based selector over an ordered, non-empty
// list of asset identifiers.
type CarouselData struct {
	Items []string
	Index int
}

// Navigate moves the selection one step, wrapping modulo the item count.
func (c *CarouselData) Navigate(dir Direction) {
	n := len(c.Items)
	if n == 0 {
		return
	}
	switch dir {
	case DirLeft:
		c.Index = (c.Index - 1 + n) % n
	case DirRight:
		c.Index = (c.Index + 1) % n
	}
}

// Selected returns the identifier at the current index.
func (c *CarouselData) Selected() string {
	return c.Items[c.Index]
}

var Carousel = donburi.NewComponentType[CarouselData]()
