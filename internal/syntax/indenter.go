package syntax

// Indenter answers indentation queries by combining a bracket-scope
// tree with optional Lua rules. Both parts may be nil; the zero case
// reports level 0 everywhere.
type Indenter struct {
	tree  *Tree
	rules *Rules
}

// NewIndenter builds an indenter over a parsed tree and optional rules.
func NewIndenter(tree *Tree, rules *Rules) *Indenter {
	return &Indenter{tree: tree, rules: rules}
}

// Retree swaps in a tree parsed from fresh content, keeping the rules.
func (in *Indenter) Retree(tree *Tree) {
	in.tree = tree
}

// IndentationLevel returns the indentation level at a byte offset:
// the bracket depth, passed through the rules when present.
func (in *Indenter) IndentationLevel(byteOffset int) int {
	if in == nil {
		return 0
	}
	depth := in.tree.IndentationLevel(byteOffset)
	return in.rules.Apply(depth, byteOffset)
}
