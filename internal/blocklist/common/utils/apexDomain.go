package utils

import "golang.org/x/net/publicsuffix"

// GetApexDomain returns the registrable domain (eTLD+1) of a blocklist entry,
// used to group entries by the site they belong to.
func GetApexDomain(name string) string {
	name = CanonicalDNSName(name) // so "Example.COM." and "example.com" land in the same group
	apexDomain, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		apexDomain = name // bare suffixes and single labels count as their own group
	}
	return apexDomain
}
