package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks; internal nodes contain
// children and a per-child summary cache used for seeking.
type Node struct {
	height  uint8
	summary TextSummary

	children       []*Node
	childSummaries []TextSummary

	chunks []Chunk
}

func newLeafNode() *Node {
	return &Node{chunks: make([]Chunk, 0, MaxChunksPerLeaf)}
}

func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.Summary())
	}
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	summaries := make([]TextSummary, len(children))
	var total TextSummary
	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &Node{
		height:         children[0].height + 1,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Chars returns the character count of the subtree.
func (n *Node) Chars() int {
	return n.summary.Chars
}

func (n *Node) clone() *Node {
	if n.IsLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &Node{summary: n.summary, chunks: chunks}
	}

	children := make([]*Node, len(n.children))
	copy(children, n.children)
	summaries := make([]TextSummary, len(n.childSummaries))
	copy(summaries, n.childSummaries)

	return &Node{
		height:         n.height,
		summary:        n.summary,
		children:       children,
		childSummaries: summaries,
	}
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends the characters in [start, end) to the builder.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.IsLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkEnd := offset + chunk.Chars()
			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			s := chunk.String()
			lo := charToByte(s, start-offset)
			hi := len(s)
			if end < chunkEnd {
				hi = charToByte(s, end-offset)
			}
			sb.WriteString(s[lo:hi])
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for i, child := range n.children {
		childEnd := offset + n.childSummaries[i].Chars
		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}
		child.appendRange(sb, max(start-offset, 0), min(end, childEnd)-offset)
		offset = childEnd
	}
}

// split splits the node at a character offset.
// The left node holds [0, offset), the right node [offset, end).
func (n *Node) split(offset int) (*Node, *Node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.Chars() {
		return n.clone(), newLeafNode()
	}
	if n.IsLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *Node) splitLeaf(offset int) (*Node, *Node) {
	var left, right []Chunk
	current := 0

	for _, chunk := range n.chunks {
		chars := chunk.Chars()
		switch {
		case current+chars <= offset:
			left = append(left, chunk)
		case current >= offset:
			right = append(right, chunk)
		default:
			l, r := chunk.Split(offset - current)
			if !l.IsEmpty() {
				left = append(left, l)
			}
			if !r.IsEmpty() {
				right = append(right, r)
			}
		}
		current += chars
	}

	return newLeafNodeWithChunks(left), newLeafNodeWithChunks(right)
}

func (n *Node) splitInternal(offset int) (*Node, *Node) {
	var left, right []*Node
	current := 0

	for i, child := range n.children {
		chars := n.childSummaries[i].Chars
		switch {
		case current+chars <= offset:
			left = append(left, child)
		case current >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - current)
			if !l.summary.IsZero() {
				left = append(left, l)
			}
			if !r.summary.IsZero() {
				right = append(right, r)
			}
		}
		current += chars
	}

	return buildNodeFromChildren(left), buildNodeFromChildren(right)
}

// buildNodeFromChildren creates a balanced tree from a list of child nodes.
func buildNodeFromChildren(children []*Node) *Node {
	switch {
	case len(children) == 0:
		return newLeafNode()
	case len(children) == 1:
		return children[0]
	case len(children) <= MaxChildren:
		return newInternalNode(children)
	}

	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := min(i+MaxChildren, len(children))
		parents = append(parents, newInternalNode(children[i:end]))
	}
	return buildNodeFromChildren(parents)
}

// concat concatenates two nodes.
func concat(left, right *Node) *Node {
	if left == nil || left.summary.IsZero() {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.summary.IsZero() {
		return left
	}

	if left.IsLeaf() && right.IsLeaf() {
		return concatLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}
	return mergeNodes(left, right)
}

func concatLeaves(left, right *Node) *Node {
	total := len(left.chunks) + len(right.chunks)
	if total <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, total)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}
	return newInternalNode([]*Node{left.clone(), right.clone()})
}

func mergeNodes(left, right *Node) *Node {
	if left.IsLeaf() {
		return concatLeaves(left, right)
	}

	all := make([]*Node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)
	return buildNodeFromChildren(all)
}

// charAt returns the rune at a character offset within the subtree.
func (n *Node) charAt(offset int) (rune, bool) {
	for !n.IsLeaf() {
		idx := len(n.children) - 1
		for i, s := range n.childSummaries {
			if offset < s.Chars {
				idx = i
				break
			}
			offset -= s.Chars
		}
		n = n.children[idx]
	}

	for _, chunk := range n.chunks {
		if offset < chunk.Chars() {
			for _, r := range chunk.String() {
				if offset == 0 {
					return r, true
				}
				offset--
			}
		}
		offset -= chunk.Chars()
	}
	return 0, false
}

// lineStart returns the character offset of the first character of the
// given line within the subtree. line must be in [0, summary.Lines].
func (n *Node) lineStart(line int) int {
	if line <= 0 {
		return 0
	}

	chars := 0
	for !n.IsLeaf() {
		idx := len(n.children) - 1
		for i, s := range n.childSummaries {
			if line <= s.Lines {
				idx = i
				break
			}
			line -= s.Lines
			chars += s.Chars
		}
		n = n.children[idx]
	}

	for _, chunk := range n.chunks {
		s := chunk.Summary()
		if line <= s.Lines {
			return chars + nthNewlineEnd(chunk.String(), line)
		}
		line -= s.Lines
		chars += s.Chars
	}
	return chars
}

// lineOf returns the number of newlines strictly before a character offset.
func (n *Node) lineOf(offset int) int {
	lines := 0
	for !n.IsLeaf() {
		idx := len(n.children) - 1
		for i, s := range n.childSummaries {
			if offset < s.Chars {
				idx = i
				break
			}
			offset -= s.Chars
			lines += s.Lines
		}
		n = n.children[idx]
	}

	for _, chunk := range n.chunks {
		s := chunk.Summary()
		if offset < s.Chars {
			return lines + newlinesBefore(chunk.String(), offset)
		}
		offset -= s.Chars
		lines += s.Lines
	}
	return lines
}
