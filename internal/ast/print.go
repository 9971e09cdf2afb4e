package ast

import (
	"fmt"
	"io"
)

// children returns n's direct AST children in evaluation order, for tree
// printing. Leaves (literals, VariableLookup) return nil.
func children(n Node) []Node {
	switch v := n.(type) {
	case *Program:
		out := make([]Node, len(v.Statements))
		for i, s := range v.Statements {
			out[i] = s
		}
		return out
	case *Block:
		out := make([]Node, len(v.Statements))
		for i, s := range v.Statements {
			out[i] = s
		}
		return out
	case *Declare:
		return []Node{v.Init}
	case *FunctionDeclare:
		return []Node{v.Body}
	case *AssignOp:
		return []Node{v.Target, v.Value}
	case *ExpressionStatement:
		return []Node{v.Expression}
	case *Return:
		return []Node{v.Value}
	case *IfThen:
		return []Node{v.Cond, v.Then}
	case *IfElse:
		return []Node{v.Cond, v.Then, v.Else}
	case *While:
		return []Node{v.Cond, v.Body}
	case *BinaryOp:
		return []Node{v.Left, v.Right}
	case *UnaryOp:
		return []Node{v.Operand}
	case *FunctionCall:
		out := []Node{v.Callee}
		for _, a := range v.Args {
			out = append(out, a)
		}
		return out
	case *Access:
		return []Node{v.Left, v.Index}
	case *VectorLiteral:
		out := make([]Node, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}

// Print writes n as a tree to w, using "|-" for a connector followed by more
// siblings and "`- " for the last sibling at a given depth, as printed by
// the "parse" CLI verb.
func Print(w io.Writer, n Node) {
	fmt.Fprintln(w, n.String())
	printChildren(w, children(n), "")
}

func printChildren(w io.Writer, kids []Node, prefix string) {
	for i, k := range kids {
		last := i == len(kids)-1
		connector := "|- "
		childPrefix := prefix + "|  "
		if last {
			connector = "`- "
			childPrefix = prefix + "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, k.String())
		printChildren(w, children(k), childPrefix)
	}
}
