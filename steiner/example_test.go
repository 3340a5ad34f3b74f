package steiner_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/steinertree/core"
	"github.com/katalvlaran/steinertree/gridgraph"
	"github.com/katalvlaran/steinertree/steiner"
)

// ExampleTree connects two opposite corners of a bus-shaped network: the
// cheapest route passes through the hub H, which survives as a Steiner
// point even though it is not a terminal.
func ExampleTree() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "H", 1)
	g.AddEdge("H", "B", 1)
	g.AddEdge("H", "C", 1)
	g.AddEdge("A", "B", 3) // direct, but pricier than routing via H

	tree, err := steiner.Tree(g, []string{"A", "B", "C"}, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("vertices:", tree.Vertices())
	fmt.Println("cost:", steiner.Weight(tree))
	// Output:
	// vertices: [A B C H]
	// cost: 3
}

// ExampleTree_grid spans three cells of a 5×5 unit grid, guiding every
// search with the Manhattan heuristic.
func ExampleTree_grid() {
	gg, err := gridgraph.Square(5)
	if err != nil {
		log.Fatal(err)
	}
	g := gg.ToCoreGraph()

	terminals := []string{"0,0", "4,0", "0,4"}
	tree, err := steiner.Tree(g, terminals, gridgraph.Manhattan)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("edges:", tree.EdgeCount())
	fmt.Println("cost:", steiner.Weight(tree))
	// Output:
	// edges: 8
	// cost: 8
}
