package acctreports

// Filter returns the accounts whose FullName is listed in names.
//
// An empty names list means all accounts: accounts is returned unchanged.
// Otherwise the original relative order is kept, and names that match no
// account are ignored.
func Filter(accounts []*Account, names []string) []*Account {
	if len(names) == 0 {
		return accounts
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	filtered := make([]*Account, 0, len(names))
	for _, a := range accounts {
		if _, ok := wanted[a.FullName]; ok {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
