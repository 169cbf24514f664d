package tree

// rotateLeft performs a left rotation around node x:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// nolint:varnamelen // Standard red-black tree variable names
func (m *Map[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	m.replaceChild(x, y)

	y.left = x
	x.parent = y
}

// rotateRight performs a right rotation around node y:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// nolint:dupword,varnamelen // ASCII art; standard RB tree variable names
func (m *Map[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	m.replaceChild(y, x)

	x.right = y
	y.parent = x
}

// replaceChild hangs repl where old used to be under old's parent.
func (m *Map[K, V]) replaceChild(old, repl *node[K, V]) {
	parent := old.parent

	switch {
	case parent == nil:
		m.root = repl
	case old == parent.left:
		parent.left = repl
	default:
		parent.right = repl
	}

	if repl != nil {
		repl.parent = parent
	}
}

// fixupPut restores red-black properties after inserting the red node z.
//
// While z's parent is red:
//   - uncle red: recolor parent, uncle and grandparent, continue from grandparent
//   - uncle black: rotate z into the outer position, then rotate the
//     grandparent and recolor
//
// nolint:varnamelen,nestif // Standard red-black tree variable names
func (m *Map[K, V]) fixupPut(z *node[K, V]) {
	for isRed(z.parent) {
		parent := z.parent
		grandparent := parent.parent

		if parent == grandparent.left {
			uncle := grandparent.right
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == parent.right {
				z = parent
				m.rotateLeft(z)
			}

			z.parent.color = black
			grandparent.color = red
			m.rotateRight(grandparent)
		} else {
			uncle := grandparent.left
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == parent.left {
				z = parent
				m.rotateRight(z)
			}

			z.parent.color = black
			grandparent.color = red
			m.rotateLeft(grandparent)
		}
	}

	m.root.color = black
}

// deleteNode unlinks z from the tree and rebalances.
//
// nolint:varnamelen // Standard red-black tree variable names from CLRS
func (m *Map[K, V]) deleteNode(z *node[K, V]) {
	removedColor := z.color

	// x takes the place of the node that was physically removed; it may be
	// nil, so its parent is tracked separately.
	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		m.replaceChild(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		m.replaceChild(z, z.left)
	default:
		y := minimum(z.right)
		removedColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			m.replaceChild(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		m.replaceChild(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	z.left, z.right, z.parent = nil, nil, nil

	if removedColor == black {
		m.fixupDelete(x, xParent)
	}
}

// fixupDelete restores the black-height property after a black node was
// removed. x carries an extra black; the loop pushes it up the tree or
// resolves it with rotations around its sibling w.
//
// nolint:varnamelen,dupl,cyclop // Standard red-black tree variable names; symmetric cases
func (m *Map[K, V]) fixupDelete(x, parent *node[K, V]) {
	for x != m.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				m.rotateRight(w)
				w = parent.right
			}

			w.color = parent.color
			parent.color = black
			w.right.color = black
			m.rotateLeft(parent)
			x = m.root
		} else {
			w := parent.left
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				m.rotateLeft(w)
				w = parent.left
			}

			w.color = parent.color
			parent.color = black
			w.left.color = black
			m.rotateRight(parent)
			x = m.root
		}
	}

	if x != nil {
		x.color = black
	}
}
