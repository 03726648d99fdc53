package keyspace

import (
	"fmt"
	"sort"
	"strings"
)

// Replication describes a keyspace replication option.
//
// Build one with SimpleStrategy or NetworkTopologyStrategy; the zero value
// is not usable.
type Replication struct {
	class   string
	factor  int
	factors map[string]int
}

// SimpleStrategy returns a SimpleStrategy replication with the given factor.
//
// Parameters:
//   - replicationFactor: Number of replicas across the whole cluster
//
// Returns:
//   - Replication: The replication option
func SimpleStrategy(replicationFactor int) Replication {
	return Replication{class: "SimpleStrategy", factor: replicationFactor}
}

// NetworkTopologyStrategy returns a NetworkTopologyStrategy replication with
// a replica count per datacenter.
//
// Parameters:
//   - dcFactors: Datacenter name to replica count
//
// Returns:
//   - Replication: The replication option
func NetworkTopologyStrategy(dcFactors map[string]int) Replication {
	factors := make(map[string]int, len(dcFactors))
	for dc, factor := range dcFactors {
		factors[dc] = factor
	}

	return Replication{class: "NetworkTopologyStrategy", factors: factors}
}

// CQL renders the replication as a CQL map literal. Datacenters render in
// lexical order so output is deterministic.
func (r Replication) CQL() string {
	var sb strings.Builder
	sb.WriteString("{'class': '")
	sb.WriteString(r.class)
	sb.WriteString("'")

	if r.class == "SimpleStrategy" {
		fmt.Fprintf(&sb, ", 'replication_factor': %d", r.factor)
	} else {
		dcs := make([]string, 0, len(r.factors))
		for dc := range r.factors {
			dcs = append(dcs, dc)
		}
		sort.Strings(dcs)
		for _, dc := range dcs {
			fmt.Fprintf(&sb, ", '%s': %d", dc, r.factors[dc])
		}
	}

	sb.WriteString("}")

	return sb.String()
}

// valid reports whether the replication was built by a constructor.
func (r Replication) valid() bool {
	return r.class != ""
}
