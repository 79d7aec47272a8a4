// style.go - The closed set of template styles: canvas sizes, caption
// slot counts, and per-slot default captions.
package layout

// Style identifies one of the three fixed meme templates. The numeric
// value is the user-facing style number.
type Style int

const (
	Style2 Style = 2 // three equal columns
	Style3 Style = 3 // 36/24/40 split with a big punchline column
	Style4 Style = 4 // four panels over a centered punchline
)

type styleSpec struct {
	name     string
	width    int
	height   int
	defaults []string
}

// styleTable is indexed by Style - Style2. The last default of every
// style is the punchline caption.
var styleTable = [...]styleSpec{
	{
		name:   "Style 2",
		width:  900,
		height: 400,
		defaults: []string{
			"原神牛逼",
			"鸣潮牛逼",
			"！？逼逼？！",
		},
	},
	{
		name:   "Style 3",
		width:  1080,
		height: 700,
		defaults: []string{
			"原神牛逼",
			"星铁牛逼",
			"鸣潮牛逼",
			"！？逼逼？！",
		},
	},
	{
		name:   "Style 4",
		width:  1200,
		height: 640,
		defaults: []string{
			"原神牛逼",
			"鸣潮牛逼",
			"星铁牛逼",
			"绝区零牛逼",
			"！？逼逼？！",
		},
	},
}

// StyleFromNumber maps a user-supplied style number to a Style.
func StyleFromNumber(n int) (Style, bool) {
	s := Style(n)
	return s, s.Valid()
}

// Valid reports whether s is one of the three known styles.
func (s Style) Valid() bool {
	return s >= Style2 && s <= Style4
}

func (s Style) spec() styleSpec {
	return styleTable[s-Style2]
}

// Name returns the display name of the style.
func (s Style) Name() string { return s.spec().name }

// CanvasSize returns the fixed output dimensions in pixels.
func (s Style) CanvasSize() (w, h int) {
	sp := s.spec()
	return sp.width, sp.height
}

// SlotCount returns the number of caption slots.
func (s Style) SlotCount() int { return len(s.spec().defaults) }

// DefaultCaption returns the fallback text for slot i.
func (s Style) DefaultCaption(i int) string {
	d := s.spec().defaults
	if i < 0 || i >= len(d) {
		return ""
	}
	return d[i]
}

// ResolveCaptions pads or truncates captions to the style's slot count
// and substitutes the per-slot default for every empty slot. Defaults
// are applied here, at render time; callers keep storing the raw
// (possibly empty) values.
func (s Style) ResolveCaptions(captions []string) []string {
	resolved := make([]string, s.SlotCount())
	for i := range resolved {
		if i < len(captions) && captions[i] != "" {
			resolved[i] = captions[i]
			continue
		}
		resolved[i] = s.DefaultCaption(i)
	}
	return resolved
}
