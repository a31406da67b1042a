package capture

// Plan returns the configured terms that need fetching this run. On a
// first run (no prior index) every configured term is fetched. On later
// runs a term is fetched when it is still active or has never been
// captured before.
func Plan(configured []Term, prior *Index) []string {
	var planned []string
	if prior == nil {
		for _, t := range configured {
			planned = append(planned, t.Name)
		}
		return planned
	}

	captured := make(map[string]bool, len(prior.Terms))
	for _, name := range prior.Terms {
		captured[name] = true
	}
	for _, t := range configured {
		if t.Active || !captured[t.Name] {
			planned = append(planned, t.Name)
		}
	}
	return planned
}
