// cmd/kinship is a command-line front end for the Kinship relationship
// engine. It answers genealogy queries over a YAML tree document.
//
// Startup sequence:
//  1. Load configuration from KINSHIP_-prefixed environment variables.
//  2. Apply command-line flags on top of the environment defaults.
//  3. Load and parse the tree document into an immutable snapshot.
//  4. Run the requested query and print results to stdout.
//
// All logging goes to stderr; stdout carries only query results so the
// output stays scriptable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/scrypster/kinship/internal/config"
	"github.com/scrypster/kinship/internal/engine"
	"github.com/scrypster/kinship/internal/treeio"
	"github.com/scrypster/kinship/pkg/types"
)

const usage = `Usage: kinship [flags] <command> [args]

Commands:
  ancestors <id>              list ancestors with generation and lineage
  descendants <id>            list descendants with generation
  relatives <id>              list all ancestors and descendants
  common-ancestor <id> <id>   nearest common ancestor of two persons
  common-ancestors <id> <id>  all common ancestors of two persons
  cousins <id> <degree>       cousins of exactly the given degree
  degree <id> <id>            cousin degree and removal for two persons
  relationship <id> <id>      shortest relationship path and label

Flags:
  -tree FILE   tree document (default $KINSHIP_TREE_PATH or ./tree.yaml)
  -max-gen N   generation cutoff, 0 = unlimited
  -max-persons N  cap on persons a single query records, 0 = default
  -lineage L   ancestor lineage filter: paternal or maternal
  -living      keep only living descendants
  -deceased    keep only deceased descendants
  -neutral     use gender-neutral relationship labels
`

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("kinship: ")
	log.SetFlags(0)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	treePath := flag.String("tree", cfg.Tree.Path, "tree document path")
	maxGen := flag.Int("max-gen", cfg.Engine.MaxGenerations, "generation cutoff, 0 = unlimited")
	maxPersons := flag.Int("max-persons", cfg.Engine.MaxPersons, "cap on persons a single query records, 0 = default")
	lineage := flag.String("lineage", "", "ancestor lineage filter: paternal or maternal")
	living := flag.Bool("living", false, "keep only living descendants")
	deceased := flag.Bool("deceased", false, "keep only deceased descendants")
	neutral := flag.Bool("neutral", cfg.Output.NeutralLabels, "use gender-neutral relationship labels")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	snap, err := treeio.Load(*treePath)
	if err != nil {
		log.Fatalf("failed to load tree: %v", err)
	}
	snap.Limits = engine.TraversalLimits{MaxPersons: *maxPersons}
	log.Printf("loaded %d persons from %s", len(snap.People), *treePath)

	namerOpts := engine.NamerOptions{NeutralLabels: *neutral}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "ancestors":
		runAncestors(snap, one(rest), *maxGen, *lineage)
	case "descendants":
		runDescendants(snap, one(rest), *maxGen, *living, *deceased)
	case "relatives":
		runRelatives(snap, one(rest))
	case "common-ancestor":
		a, b := two(rest)
		runCommonAncestor(snap, a, b)
	case "common-ancestors":
		a, b := two(rest)
		runAllCommonAncestors(snap, a, b)
	case "cousins":
		id, deg := two(rest)
		runCousins(snap, id, deg)
	case "degree":
		a, b := two(rest)
		runDegree(snap, a, b)
	case "relationship":
		a, b := two(rest)
		runRelationship(snap, a, b, namerOpts)
	default:
		log.Printf("unknown command %q", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

// one extracts a single required argument.
func one(args []string) string {
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	return args[0]
}

// two extracts exactly two required arguments.
func two(args []string) (string, string) {
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}
	return args[0], args[1]
}

func runAncestors(snap *engine.Snapshot, id string, maxGen int, lineage string) {
	opts := engine.AncestorOptions{
		MaxGenerations: maxGen,
		LineageFilter:  types.Lineage(lineage),
	}
	ancestors := engine.FindAncestors(snap, id, opts)
	for _, a := range ancestors {
		fmt.Printf("gen %d\t%s\t%s\t%s\n", a.Generation, a.Person.ID, a.Person.FullName(), a.Lineage)
	}
	fmt.Printf("total: %d\n", len(ancestors))
}

func runDescendants(snap *engine.Snapshot, id string, maxGen int, living, deceased bool) {
	opts := engine.DescendantOptions{
		MaxGenerations:  maxGen,
		IncludeLiving:   living,
		IncludeDeceased: deceased,
	}
	descendants := engine.FindDescendants(snap, id, opts)
	for _, d := range descendants {
		fmt.Printf("gen %d\t%s\t%s\n", d.Generation, d.Person.ID, d.Person.FullName())
	}
	fmt.Printf("total: %d\n", len(descendants))
}

func runRelatives(snap *engine.Snapshot, id string) {
	rel := engine.FindAllRelatives(snap, id)
	for _, a := range rel.Ancestors {
		fmt.Printf("ancestor\tgen %d\t%s\t%s\n", a.Generation, a.Person.ID, a.Person.FullName())
	}
	for _, d := range rel.Descendants {
		fmt.Printf("descendant\tgen %d\t%s\t%s\n", d.Generation, d.Person.ID, d.Person.FullName())
	}
	fmt.Printf("total: %d\n", rel.Total)
}

func runCommonAncestor(snap *engine.Snapshot, a, b string) {
	ca := engine.FindCommonAncestor(snap, a, b)
	if ca == nil {
		fmt.Println("no common ancestor")
		return
	}
	fmt.Printf("%s\t%s\tdistance %d/%d\n", ca.Ancestor.ID, ca.Ancestor.FullName(), ca.Distance1, ca.Distance2)
}

func runAllCommonAncestors(snap *engine.Snapshot, a, b string) {
	ancestors := engine.FindAllCommonAncestors(snap, a, b)
	if len(ancestors) == 0 {
		fmt.Println("no common ancestors")
		return
	}
	for _, ca := range ancestors {
		fmt.Printf("%s\t%s\tdistance %d/%d\n", ca.Ancestor.ID, ca.Ancestor.FullName(), ca.Distance1, ca.Distance2)
	}
}

func runCousins(snap *engine.Snapshot, id, degreeArg string) {
	degree, err := strconv.Atoi(degreeArg)
	if err != nil {
		log.Fatalf("invalid degree %q: %v", degreeArg, err)
	}
	cousins := engine.FindCousins(snap, id, degree)
	for _, c := range cousins {
		fmt.Printf("%s\t%s\tdegree %d, removed %d\n", c.Person.ID, c.Person.FullName(), c.Degree, c.Removal)
	}
	fmt.Printf("total: %d\n", len(cousins))
}

func runDegree(snap *engine.Snapshot, a, b string) {
	cd := engine.CalculateCousinDegree(snap, a, b)
	if cd == nil {
		fmt.Println("not cousins")
		return
	}
	fmt.Printf("degree %d, removed %d\n", cd.Degree, cd.Removal)
}

func runRelationship(snap *engine.Snapshot, a, b string, opts engine.NamerOptions) {
	path := engine.FindRelationshipPath(snap, a, b, opts)
	if path == nil {
		fmt.Println("no relationship found")
		return
	}
	fmt.Printf("relationship: %s (distance %d)\n", path.Relationship, path.Distance)
	for i, p := range path.People {
		if i == 0 {
			fmt.Printf("  %s\t%s\n", p.ID, p.FullName())
			continue
		}
		fmt.Printf("  --%s--> %s\t%s\n", path.Edges[i-1], p.ID, p.FullName())
	}
}
