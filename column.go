package meretable

import "unicode/utf8"

// column is one node of the column tree. A node with children is a group and
// never holds values; a node without children is a leaf holding one value per
// row.
type column struct {
	title    string
	children []*column
	values   []string

	// width is refreshed by computeWidth on every render.
	width int
	// step constrains the widths this subtree can take: (width+1)%step == 0.
	step int
}

func newColumn(title string) *column {
	return &column{title: title, step: 1}
}

func (c *column) isLeaf() bool { return len(c.children) == 0 }

// addChild appends a new leaf subcolumn and returns it.
func (c *column) addChild(title string) *column {
	child := newColumn(title)
	c.children = append(c.children, child)
	return child
}

// find returns the direct child titled title, or nil.
func (c *column) find(title string) *column {
	return findColumn(c.children, title)
}

func findColumn(cols []*column, title string) *column {
	for _, col := range cols {
		if col.title == title {
			return col
		}
	}
	return nil
}

// leaves counts the leaf columns rooted at c.
func (c *column) leaves() int {
	if c.isLeaf() {
		return 1
	}
	n := 0
	for _, child := range c.children {
		n += child.leaves()
	}
	return n
}

// depth is 1 for a leaf.
func (c *column) depth() int {
	d := 0
	for _, child := range c.children {
		d = max(d, child.depth())
	}
	return d + 1
}

// consume takes one value per leaf from values starting at *pos, depth-first,
// and advances *pos past them. The caller guarantees enough values remain.
func (c *column) consume(values []string, pos *int) {
	if c.isLeaf() {
		c.values = append(c.values, values[*pos])
		*pos++
		return
	}
	for _, child := range c.children {
		child.consume(values, pos)
	}
}

func (c *column) clearValues() {
	c.values = nil
	for _, child := range c.children {
		child.clearValues()
	}
}

// computeWidth sizes c to fit its title, its values and its children.
// Siblings under a group always end up with equal widths.
func (c *column) computeWidth() {
	c.width = utf8.RuneCountInString(c.title)
	c.step = 1

	if c.isLeaf() {
		for _, v := range c.values {
			c.width = max(c.width, utf8.RuneCountInString(v))
		}
		return
	}

	n := len(c.children)
	maxChild := 0
	step := 1
	for _, child := range c.children {
		child.computeWidth()
		maxChild = max(maxChild, child.width)
		step = lcm(step, child.step)
	}

	if c.width > maxChild*n {
		maxChild = (c.width + n - 1) / n
	}
	// Group children only accept widths one short of a multiple of their step.
	if r := (maxChild + 1) % step; r != 0 {
		maxChild += step - r
	}

	c.width = maxChild*n + n - 1
	c.step = step * n

	for _, child := range c.children {
		child.setWidth(maxChild)
	}
}

// setWidth assigns w to c and spreads it evenly over c's children. w must
// satisfy (w+1)%c.step == 0, which computeWidth guarantees.
func (c *column) setWidth(w int) {
	c.width = w
	if c.isLeaf() {
		return
	}
	each := (w+1)/len(c.children) - 1
	for _, child := range c.children {
		child.setWidth(each)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
