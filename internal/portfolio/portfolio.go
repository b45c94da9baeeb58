package portfolio

// All matches every item.
const All = "all"

type Item struct {
	Title    string
	Category string
}

var DefaultItems = []Item{
	{Title: "Terminal mail client", Category: "cli"},
	{Title: "YouTube Music TUI", Category: "cli"},
	{Title: "Game recommender", Category: "web"},
	{Title: "Portfolio site", Category: "web"},
	{Title: "Network scanner", Category: "security"},
	{Title: "CTF write-ups", Category: "security"},
}

// Filter returns the items shown under filter, preserving order.
func Filter(items []Item, filter string) []Item {
	var out []Item
	for _, it := range items {
		if filter == All || it.Category == filter {
			out = append(out, it)
		}
	}
	return out
}

// Filters lists All followed by each category in first-seen order.
func Filters(items []Item) []string {
	out := []string{All}
	seen := map[string]bool{All: true}
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Cycler steps through the available filters.
type Cycler struct {
	filters []string
	index   int
}

func NewCycler(items []Item) *Cycler {
	return &Cycler{filters: Filters(items)}
}

func (c *Cycler) Current() string { return c.filters[c.index] }

// Next selects the following filter, wrapping back to All.
func (c *Cycler) Next() string {
	c.index = (c.index + 1) % len(c.filters)
	return c.Current()
}
