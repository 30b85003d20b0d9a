package catalog

import (
	"fmt"
	"strings"
)

// DescribeItem renders e.g. "Babylon is a Tier S civilization."
func (c *Catalog) DescribeItem(item string) (string, error) {
	tier, err := c.TierOf(item)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s is a Tier %s civilization.", item, tier), nil
}

// DescribeTier renders e.g. "Tier D: France, Japan, Polynesia"
func (c *Catalog) DescribeTier(tier string) (string, error) {
	items, err := c.ItemsOf(tier)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Tier %s: %s", tier, strings.Join(items, ", ")), nil
}

// DescribeAll renders the whole tier list
func (c *Catalog) DescribeAll() string {
	var b strings.Builder
	b.WriteString("CIVILIZATION TIERS\n------")
	for _, tier := range c.tiers {
		fmt.Fprintf(&b, "\nTier %s: %s\n------", tier.Label, strings.Join(tier.Civilizations, ", "))
	}
	return b.String()
}
