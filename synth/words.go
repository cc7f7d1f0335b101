package synth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	firstNames = []string{
		"Ada", "Alan", "Barbara", "Claude", "Dennis", "Donald", "Edsger", "Frances",
		"Grace", "John", "Ken", "Leslie", "Margaret", "Niklaus", "Radia", "Rob",
	}
	lastNames = []string{
		"Allen", "Dijkstra", "Hamilton", "Hopper", "Kernighan", "Knuth", "Lamport", "Liskov",
		"Lovelace", "McCarthy", "Perlman", "Pike", "Ritchie", "Shannon", "Thompson", "Wirth",
	}
	streetNames = []string{
		"Maple", "Oak", "Cedar", "Pine", "Elm", "Willow", "Birch", "Aspen",
	}
	streetSuffixes = []string{
		"Street", "Avenue", "Road", "Lane", "Court", "Way",
	}
	domains = []string{
		"example.com", "example.net", "example.org", "mail.test",
	}
)

// Name returns a person-like name with a random tag to keep keys distinct.
func (g *Generator) Name() (string, error) {
	tag, err := g.tag()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", pick(g, firstNames), pick(g, lastNames), tag[:4]), nil
}

// Email returns an email-like string.
func (g *Generator) Email() (string, error) {
	tag, err := g.tag()
	if err != nil {
		return "", err
	}
	local := strings.ToLower(pick(g, firstNames) + "." + pick(g, lastNames))
	return fmt.Sprintf("%s.%s@%s", local, tag, pick(g, domains)), nil
}

// Street returns a street-address-like string.
func (g *Generator) Street() (string, error) {
	tag, err := g.tag()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s %s Apt. %s",
		1+g.rng.IntN(9999), pick(g, streetNames), pick(g, streetSuffixes), tag[:6]), nil
}

// tag is 12 hex digits of a UUID drawn from the generator's own stream.
func (g *Generator) tag() (string, error) {
	id, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to draw key material: %w", err)
	}
	s := id.String()
	return s[len(s)-12:], nil
}

func pick(g *Generator, words []string) string {
	return words[g.rng.IntN(len(words))]
}
