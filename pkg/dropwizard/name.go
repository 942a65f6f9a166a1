package dropwizard

import "strings"

// ParseName splits a registry name of the form "base{k1=v1,k2=v2}" into its
// base name and labels. Names without a well-formed label block are returned
// unchanged with nil labels.
func ParseName(name string) (string, map[string]string) {
	open := strings.IndexByte(name, '{')
	if open <= 0 || !strings.HasSuffix(name, "}") {
		return name, nil
	}

	body := name[open+1 : len(name)-1]
	if body == "" || strings.ContainsAny(body, "{}") {
		return name, nil
	}

	labels := make(map[string]string)
	for _, pair := range strings.Split(body, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return name, nil
		}
		labels[k] = strings.TrimSpace(v)
	}

	return name[:open], labels
}
