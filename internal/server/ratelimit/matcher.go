package ratelimit

import "strings"

// unlimited lists method+path pairs that are never throttled.
var unlimited = map[string]bool{
	"GET /health": true,
}

// MatchEndpoint returns the configuration for a request, or nil when the
// default limit applies. An exact path wins; otherwise the longest configured
// prefix ending in "/" is used.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			if best == nil || len(config.Path) > len(best.Path) {
				best = config
			}
		}
	}
	return best
}
