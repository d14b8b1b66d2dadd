package export

// IconSet is one style-scoped, Iconify-compatible icon-set document.
// Immutable once assembled.
type IconSet struct {
	Prefix string          `json:"prefix"`
	Icons  map[string]Icon `json:"icons"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Info   Info            `json:"info"`
}

// Icon is one icon's geometry inside a set. Left/top offsets and transforms
// are always zeroed for FontAwesome sources.
type Icon struct {
	Body   string `json:"body"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Rotate int    `json:"rotate"`
	HFlip  bool   `json:"hFlip"`
	VFlip  bool   `json:"vFlip"`
}

// Info is the set's aggregate metadata block.
type Info struct {
	Name    string  `json:"name"`
	Total   int     `json:"total"`
	Version string  `json:"version"`
	Author  Author  `json:"author"`
	License License `json:"license"`
}

// Author attributes the icon set.
type Author struct {
	Name string `json:"name"`
}

// License identifies the icon set's license.
type License struct {
	Title string `json:"title"`
	SPDX  string `json:"spdx"`
}

// Assembled pairs a built icon set with the style it was derived from.
type Assembled struct {
	Style string
	Set   IconSet
}
