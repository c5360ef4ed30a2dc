package parseva

import (
	"io"
	"strings"
)

// Print draws the subtree rooted at n, one node per line in pre-order. Each
// line has the form "NAME -> text", where NAME is the node's token type. A
// line starts with "|- " if the node has later siblings and "'- " if it is
// the last child; the root counts as a last child. Each level of nesting is
// indented by "|  " where the ancestor at that level has later siblings and by
// three spaces otherwise.
func Print(n TreeNode) string {
	if !n.Valid() {
		return ""
	}
	var b strings.Builder
	printnode(&b, n, "", true)
	return b.String()
}

// Fprint writes the drawing of the subtree rooted at n to w.
func Fprint(w io.Writer, n TreeNode) error {
	_, err := io.WriteString(w, Print(n))
	return err
}

func printnode(b *strings.Builder, n TreeNode, indent string, last bool) {
	b.WriteString(indent)
	if last {
		b.WriteString("'- ")
		indent += "   "
	} else {
		b.WriteString("|- ")
		indent += "|  "
	}
	b.WriteString(n.Type().Name())
	b.WriteString(" -> ")
	b.WriteString(n.Text())
	b.WriteByte('\n')
	k := n.NumChildren()
	for i := 0; i < k; i++ {
		printnode(b, n.Child(i), indent, i == k-1)
	}
}
