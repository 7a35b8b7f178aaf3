package ast

import "fmt"

// Label returns a short description of a node, without its children.
func Label(n Node) string {
	switch n := n.(type) {
	case *Literal:
		return n.String()
	case *Variable:
		return n.Name.Lexeme
	case *Unary:
		return n.Operator.Lexeme
	case *Binary:
		return n.Operator.Lexeme
	case *Grouping:
		return "( )"
	case *ExpressionStmt:
		return "expr"
	case *Let:
		return "let " + n.Name.Lexeme
	case *Assignment:
		return n.Name.Lexeme + " ="
	case *Block:
		return "{ }"
	case *If:
		return "if"
	case *While:
		return "while"
	case *Print:
		return "print"
	}
	panic(fmt.Sprintf("unknown AST node type %T", n))
}

// Children returns the sub-nodes of a node, in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Literal, *Variable:
		return nil
	case *Unary:
		return []Node{n.Operand}
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Grouping:
		return []Node{n.Inner}
	case *ExpressionStmt:
		return []Node{n.Expr}
	case *Let:
		return []Node{n.Initializer}
	case *Assignment:
		return []Node{n.Value}
	case *Block:
		children := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			children[i] = s
		}
		return children
	case *If:
		if n.Else == nil {
			return []Node{n.Condition, n.Then}
		}
		return []Node{n.Condition, n.Then, n.Else}
	case *While:
		return []Node{n.Condition, n.Body}
	case *Print:
		children := make([]Node, len(n.Expressions))
		for i, e := range n.Expressions {
			children[i] = e
		}
		return children
	}
	panic(fmt.Sprintf("unknown AST node type %T", n))
}

// Inspect traverses an AST in depth-first pre-order, calling f for every
// node together with its depth. If f returns false, the children of the
// node are skipped.
func Inspect(n Node, f func(Node, int) bool) {
	inspect(n, 0, f)
}

func inspect(n Node, depth int, f func(Node, int) bool) {
	if !f(n, depth) {
		return
	}
	for _, ch := range Children(n) {
		inspect(ch, depth+1, f)
	}
}
