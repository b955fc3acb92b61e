package rope

import "strings"

// Tree structure constants.
const (
	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// node represents a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type node struct {
	height  uint8
	summary Summary

	// Internal node fields (height > 0)
	children       []*node
	childSummaries []Summary

	// Leaf node fields (height == 0)
	chunks []Chunk
}

func newLeafNode() *node {
	return &node{
		height: 0,
		chunks: make([]Chunk, 0, MaxChunksPerLeaf),
	}
}

func newLeafNodeWithChunks(chunks []Chunk) *node {
	n := &node{
		height: 0,
		chunks: chunks,
	}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.Summary())
	}
	return n
}

func newInternalNode(children []*node) *node {
	if len(children) == 0 {
		return newLeafNode()
	}

	height := children[0].height + 1
	summaries := make([]Summary, len(children))
	var total Summary

	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &node{
		height:         height,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// chars returns the scalar count of text in this subtree.
func (n *node) chars() int {
	return n.summary.Chars
}

func (n *node) clone() *node {
	if n.isLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &node{
			height:  0,
			summary: n.summary,
			chunks:  chunks,
		}
	}

	children := make([]*node, len(n.children))
	copy(children, n.children)
	summaries := make([]Summary, len(n.childSummaries))
	copy(summaries, n.childSummaries)

	return &node{
		height:         n.height,
		summary:        n.summary,
		children:       children,
		childSummaries: summaries,
	}
}

// appendTo appends all text in this subtree to the builder.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}

	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends text in the scalar range [start, end) to the builder.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkChars := chunk.Chars()
			chunkEnd := offset + chunkChars

			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = start - offset
			}
			sliceEnd := chunkChars
			if end < chunkEnd {
				sliceEnd = end - offset
			}

			data := chunk.String()
			from := charToByte(data, sliceStart)
			to := charToByte(data, sliceEnd)
			sb.WriteString(data[from:to])
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for i, child := range n.children {
		childChars := n.childSummaries[i].Chars
		childEnd := offset + childChars

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := childChars
		if end < childEnd {
			childEndAdj = end - offset
		}

		child.appendRange(sb, childStart, childEndAdj)
		offset = childEnd
	}
}

// charAt returns the scalar at the given offset within this subtree.
func (n *node) charAt(offset int) (rune, bool) {
	if offset < 0 || offset >= n.chars() {
		return 0, false
	}

	for !n.isLeaf() {
		idx, childOffset := n.findChildByChar(offset)
		n = n.children[idx]
		offset = childOffset
	}

	for _, chunk := range n.chunks {
		chunkChars := chunk.Chars()
		if offset < chunkChars {
			for _, r := range chunk.String() {
				if offset == 0 {
					return r, true
				}
				offset--
			}
		}
		offset -= chunkChars
	}

	return 0, false
}

// findChildByChar finds the child containing the given scalar offset.
// Returns the child index and the offset within that child.
func (n *node) findChildByChar(offset int) (int, int) {
	current := 0
	for i, summary := range n.childSummaries {
		if current+summary.Chars > offset {
			return i, offset - current
		}
		current += summary.Chars
	}

	lastIdx := len(n.children) - 1
	return lastIdx, offset - (n.summary.Chars - n.childSummaries[lastIdx].Chars)
}

// lineStartChar returns the scalar offset where the given line begins.
// Line 0 begins at 0; line k begins just past the k-th newline.
// A line index past the last newline returns the total scalar count.
func (n *node) lineStartChar(line int) int {
	if line <= 0 {
		return 0
	}

	if n.isLeaf() {
		chars := 0
		for _, chunk := range n.chunks {
			cs := chunk.Summary()
			if line <= cs.Lines {
				for _, r := range chunk.String() {
					chars++
					if r == '\n' {
						line--
						if line == 0 {
							return chars
						}
					}
				}
			}
			line -= cs.Lines
			chars += cs.Chars
		}
		return chars
	}

	chars := 0
	for i, child := range n.children {
		cs := n.childSummaries[i]
		if line <= cs.Lines {
			return chars + child.lineStartChar(line)
		}
		line -= cs.Lines
		chars += cs.Chars
	}
	return chars
}

// lineStartByte is lineStartChar measured in bytes.
func (n *node) lineStartByte(line int) int {
	if line <= 0 {
		return 0
	}

	if n.isLeaf() {
		bytes := 0
		for _, chunk := range n.chunks {
			cs := chunk.Summary()
			if line <= cs.Lines {
				data := chunk.String()
				for i, r := range data {
					if r == '\n' {
						line--
						if line == 0 {
							return bytes + i + 1
						}
					}
				}
			}
			line -= cs.Lines
			bytes += cs.Bytes
		}
		return bytes
	}

	bytes := 0
	for i, child := range n.children {
		cs := n.childSummaries[i]
		if line <= cs.Lines {
			return bytes + child.lineStartByte(line)
		}
		line -= cs.Lines
		bytes += cs.Bytes
	}
	return bytes
}

// charToLine returns the number of newlines in the scalar range [0, offset).
func (n *node) charToLine(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.chars() {
		return n.summary.Lines
	}

	if n.isLeaf() {
		lines := 0
		for _, chunk := range n.chunks {
			cs := chunk.Summary()
			if offset < cs.Chars {
				for _, r := range chunk.String() {
					if offset == 0 {
						break
					}
					if r == '\n' {
						lines++
					}
					offset--
				}
				return lines
			}
			offset -= cs.Chars
			lines += cs.Lines
		}
		return lines
	}

	lines := 0
	for i, child := range n.children {
		cs := n.childSummaries[i]
		if offset < cs.Chars {
			return lines + child.charToLine(offset)
		}
		offset -= cs.Chars
		lines += cs.Lines
	}
	return lines
}

// split splits the node at the given scalar offset.
// Left contains [0, offset), right contains [offset, end).
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.chars() {
		return n.clone(), newLeafNode()
	}

	if n.isLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *node) splitLeaf(offset int) (*node, *node) {
	var leftChunks, rightChunks []Chunk
	current := 0

	for _, chunk := range n.chunks {
		chunkChars := chunk.Chars()

		switch {
		case current+chunkChars <= offset:
			leftChunks = append(leftChunks, chunk)
		case current >= offset:
			rightChunks = append(rightChunks, chunk)
		default:
			left, right := chunk.SplitAtChar(offset - current)
			if !left.IsEmpty() {
				leftChunks = append(leftChunks, left)
			}
			if !right.IsEmpty() {
				rightChunks = append(rightChunks, right)
			}
		}
		current += chunkChars
	}

	return newLeafNodeWithChunks(leftChunks), newLeafNodeWithChunks(rightChunks)
}

func (n *node) splitInternal(offset int) (*node, *node) {
	var leftChildren, rightChildren []*node
	current := 0

	for i, child := range n.children {
		childChars := n.childSummaries[i].Chars

		switch {
		case current+childChars <= offset:
			leftChildren = append(leftChildren, child)
		case current >= offset:
			rightChildren = append(rightChildren, child)
		default:
			leftChild, rightChild := child.split(offset - current)
			if leftChild.chars() > 0 {
				leftChildren = append(leftChildren, leftChild)
			}
			if rightChild.chars() > 0 {
				rightChildren = append(rightChildren, rightChild)
			}
		}
		current += childChars
	}

	return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
}

// buildNodeFromChildren creates a balanced tree from a list of child nodes.
func buildNodeFromChildren(children []*node) *node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*node
	for i := 0; i < len(children); i += MaxChildren {
		end := i + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternalNode(children[i:end]))
	}

	return buildNodeFromChildren(parents)
}

// concatNodes concatenates two nodes.
func concatNodes(left, right *node) *node {
	if left == nil || left.chars() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.chars() == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return concatLeaves(left, right)
	}

	// Bring to the same height by wrapping the shorter one.
	for left.height < right.height {
		left = newInternalNode([]*node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*node{right})
	}

	return mergeNodes(left, right)
}

func concatLeaves(left, right *node) *node {
	totalChunks := len(left.chunks) + len(right.chunks)

	if totalChunks <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, totalChunks)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}

	return newInternalNode([]*node{left.clone(), right.clone()})
}

func mergeNodes(left, right *node) *node {
	if left.isLeaf() {
		return concatLeaves(left, right)
	}

	allChildren := make([]*node, 0, len(left.children)+len(right.children))
	allChildren = append(allChildren, left.children...)
	allChildren = append(allChildren, right.children...)

	if len(allChildren) <= MaxChildren {
		return newInternalNode(allChildren)
	}

	return buildNodeFromChildren(allChildren)
}
