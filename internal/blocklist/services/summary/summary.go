// Package summary computes informational statistics over generated blocklist entries.
// Nothing here changes what is written to the blocklist.
package summary

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/rr-blocklist/internal/blocklist/common/utils"
)

// DuplicateFPRate is the target false-positive rate of the duplicate detector.
const DuplicateFPRate = 0.0001

// Summary describes a set of blocklist entries.
type Summary struct {
	Entries            int // records written
	ApexDomains        int // distinct registrable domains
	PossibleDuplicates int // entries whose canonical name was probably seen before
}

// Fields returns the summary as structured log fields.
func (s Summary) Fields() map[string]any {
	return map[string]any{
		"entries":             s.Entries,
		"apex_domains":        s.ApexDomains,
		"possible_duplicates": s.PossibleDuplicates,
	}
}

// Summarize computes a Summary for entries.
//
// Duplicates are detected with a Bloom filter sized for len(entries) at
// DuplicateFPRate, keyed by canonical name. The count is an upper bound:
// a false positive can report an entry as a duplicate, never the reverse.
func Summarize(entries []string) Summary {
	s := Summary{Entries: len(entries)}
	if len(entries) == 0 {
		return s
	}

	seen := bitsbloom.NewWithEstimates(uint(len(entries)), DuplicateFPRate)
	apexes := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		name := utils.CanonicalDNSName(e)
		if seen.TestAndAdd([]byte(name)) {
			s.PossibleDuplicates++
		}
		apexes[utils.GetApexDomain(name)] = struct{}{}
	}
	s.ApexDomains = len(apexes)
	return s
}
