package ratelimit

import "strings"

// unlimited marks an endpoint that bypasses bucket accounting.
var unlimited = EndpointConfig{}

// MatchEndpoint finds the config governing a path+method pair. Exact path
// matches win over prefix matches; configs whose path ends in "/" act as
// prefixes (so "/resumes/" covers "/resumes/{id}"). Health checks are always
// unlimited. Returns nil when only the default limit applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		ec := &configs[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return ec
		}
		if prefixMatch == nil && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			prefixMatch = ec
		}
	}
	return prefixMatch
}
