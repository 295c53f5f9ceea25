package ast

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node before its children. Children are skipped when f returns
// false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	case *VarStatement:
		Inspect(n.Name, f)
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *ExpressionStatement:
		Inspect(n.Expression, f)
	case *CallExpression:
		Inspect(n.Function, f)
		for _, a := range n.Arguments {
			Inspect(a, f)
		}
	}
}
