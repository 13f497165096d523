// Package wasteland navigates a network of labeled nodes by repeating a
// left/right instruction string.
//
// The first input line holds the instructions, followed by a blank line and
// one node per line: "AAA = (BBB, CCC)".
package wasteland

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/katalvlaran/aoc2023/mathx"
)

// Sentinel errors for network parsing and walking.
var (
	// ErrMalformedNetwork indicates input that does not follow the grammar.
	ErrMalformedNetwork = errors.New("wasteland: malformed network")
	// ErrUnknownNode indicates a reference to a node that is not defined.
	ErrUnknownNode = errors.New("wasteland: unknown node")
	// ErrUnreachable indicates a walk that can never reach its goal.
	ErrUnreachable = errors.New("wasteland: goal unreachable")
)

var nodeRx = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

// Network is a parsed map.
type Network struct {
	Instructions string
	next         map[string][2]string
	order        []string
}

// Parse reads the instruction line and the node table.
func Parse(lines []string) (*Network, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedNetwork)
	}
	instr := strings.TrimSpace(lines[0])
	if instr == "" || strings.Trim(instr, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrMalformedNetwork, instr)
	}
	n := &Network{Instructions: instr, next: make(map[string][2]string)}
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := nodeRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedNetwork, i+2, line)
		}
		if _, dup := n.next[m[1]]; dup {
			return nil, fmt.Errorf("%w: line %d: node %s defined twice", ErrMalformedNetwork, i+2, m[1])
		}
		n.next[m[1]] = [2]string{m[2], m[3]}
		n.order = append(n.order, m[1])
	}
	for _, name := range n.order {
		for _, to := range n.next[name] {
			if _, ok := n.next[to]; !ok {
				return nil, fmt.Errorf("%w: %s referenced from %s", ErrUnknownNode, to, name)
			}
		}
	}
	return n, nil
}

// Nodes returns node names in input order.
func (n *Network) Nodes() []string {
	return append([]string(nil), n.order...)
}

// Step follows one instruction from node.
func (n *Network) Step(node string, instr byte) string {
	if instr == 'L' {
		return n.next[node][0]
	}
	return n.next[node][1]
}

// Walk counts the instructions needed to get from start to a node
// satisfying goal. The start node itself is not checked against goal.
// Returns ErrUnreachable once every (node, instruction) state has been tried.
func (n *Network) Walk(start string, goal func(string) bool) (int, error) {
	if _, ok := n.next[start]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNode, start)
	}
	limit := len(n.next) * len(n.Instructions)
	cur := start
	for steps := 0; steps < limit; steps++ {
		cur = n.Step(cur, n.Instructions[steps%len(n.Instructions)])
		if goal(cur) {
			return steps + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: from %s", ErrUnreachable, start)
}

// Part1 counts steps from AAA to ZZZ.
func Part1(lines []string) (int, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return n.Walk("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every node ending in A at once until all stand on nodes ending
// in Z. Each ghost loops with a fixed period, so the answer is the LCM of the
// individual step counts.
func Part2(lines []string) (int, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	var starts []string
	for _, name := range n.order {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no node ends in A", ErrUnknownNode)
	}
	sort.Strings(starts)

	cycles := make([]int, 0, len(starts))
	for _, s := range starts {
		c, err := n.Walk(s, func(name string) bool { return strings.HasSuffix(name, "Z") })
		if err != nil {
			return 0, err
		}
		cycles = append(cycles, c)
	}
	return mathx.LCMAll(cycles...), nil
}
