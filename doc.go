// Package haversack evaluates luggage rules of the form
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
//
// and answers two questions about them: which bag types can eventually
// hold a given bag, and how many bags a given bag must itself hold.
//
// The module is organized as small packages, lowest first:
//
//	core/        — rule graph: bag → (contained bag, count) list, thread-safe reads
//	parser/      — rule-line grammar, strict and lenient parsing, line reader
//	dfs/         — depth-first traversal, cycle enumeration, topological order
//	bfs/         — breadth-first traversal with parent links (shortest chains)
//	containment/ — the engine: CanContain, CountContainers, CountNested, Explain
//	cmd/haversack — command printing both answers for a rule file
//
// Quick start:
//
//	g, err := parser.ParseReader(f)
//	if err != nil {
//		return err
//	}
//	e, err := containment.New(g)
//	if err != nil {
//		return err
//	}
//	holders, err := e.CountContainers("shiny gold") // 4 on the reference input
//	inside, err := e.CountNested("shiny gold")      // 32 on the reference input
//
// Unknown bags are never errors. Rules in which a bag ends up inside
// itself fail only the queries that reach the cycle, with an error
// matching dfs.ErrCycleDetected.
package haversack
