package haversacks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/advent2020/internal/dag"
	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

const (
	containSep = " bags contain "
	noContents = "no other bags"
)

// ErrUnknownBag is returned when a query names a bag that no rule mentions.
var ErrUnknownBag = errors.New("unknown bag")

// Content is one "<n> <bag>" clause of a rule.
type Content struct {
	Count int
	Bag   string
}

// Rule states what a container bag must hold.
type Rule struct {
	Container string
	Contents  []Content
}

// ParseRules reads one rule sentence per line. A second rule for the same
// container is rejected.
func ParseRules(text string) ([]Rule, error) {
	seen := make(map[string]int)
	var rules []Rule
	for i, line := range fsutil.SplitLines(text) {
		lineNo := i + 1
		r, err := parseRule(lineNo, line)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[r.Container]; ok {
			return nil, parse.Errorf(lineNo, "rule for %q already given on line %d", r.Container, prev)
		}
		seen[r.Container] = lineNo
		rules = append(rules, r)
	}
	return rules, nil
}

func parseRule(lineNo int, line string) (Rule, error) {
	body, ok := strings.CutSuffix(line, ".")
	if !ok {
		return Rule{}, parse.Errorf(lineNo, "rule must end with '.'")
	}
	container, rest, ok := strings.Cut(body, containSep)
	if !ok {
		return Rule{}, parse.Errorf(lineNo, "missing %q", strings.TrimSpace(containSep))
	}
	if container == "" {
		return Rule{}, parse.Errorf(lineNo, "empty container bag")
	}

	r := Rule{Container: container}
	if rest == noContents {
		return r, nil
	}
	for _, item := range strings.Split(rest, ", ") {
		c, err := parseContent(item)
		if err != nil {
			return Rule{}, parse.Wrap(lineNo, err, "bad content %q", item)
		}
		r.Contents = append(r.Contents, c)
	}
	return r, nil
}

func parseContent(item string) (Content, error) {
	countStr, bag, ok := strings.Cut(item, " ")
	if !ok {
		return Content{}, errors.New("expected \"<count> <bag> bag(s)\"")
	}
	n, err := strconv.Atoi(countStr)
	if err != nil {
		return Content{}, fmt.Errorf("invalid count: %w", err)
	}
	if n <= 0 {
		return Content{}, fmt.Errorf("count must be positive, got %d", n)
	}

	name, ok := strings.CutSuffix(bag, " bags")
	if !ok {
		name, ok = strings.CutSuffix(bag, " bag")
	}
	if !ok || name == "" {
		return Content{}, errors.New("missing bag name or \"bag\" suffix")
	}
	return Content{Count: n, Bag: name}, nil
}

// BuildGraph turns rules into a graph with an edge container -> bag weighted
// by the count.
func BuildGraph(rules []Rule) (*dag.Graph, error) {
	g := dag.New()
	for _, r := range rules {
		g.AddNode(r.Container)
		for _, c := range r.Contents {
			g.AddNode(c.Bag)
		}
	}
	for _, r := range rules {
		for _, c := range r.Contents {
			if err := g.AddEdge(r.Container, c.Bag, c.Count); err != nil {
				return nil, fmt.Errorf("rule for %q: %w", r.Container, err)
			}
		}
	}
	return g, nil
}

// Containers returns how many distinct bag types eventually contain target.
func Containers(g *dag.Graph, target string) (int, error) {
	if !g.HasNode(target) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBag, target)
	}
	ancestors, err := g.Ancestors(target)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, a := range ancestors {
		if a != target {
			n++
		}
	}
	return n, nil
}

// ContainedCount returns how many bags target must hold, not counting
// itself. A cyclic rule set has no finite answer and is an error.
func ContainedCount(g *dag.Graph, target string) (int, error) {
	if !g.HasNode(target) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBag, target)
	}
	return g.WeightedDescendants(target)
}
