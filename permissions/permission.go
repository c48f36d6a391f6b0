// Package permissions holds the route table that decides which roles may call each /v1 endpoint.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern and method.
// Skip marks a public route that needs no token.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether userRole may call the route. An empty role list is open to any caller.
func (p Permission) Allows(userRole string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, userRole)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for a chi route pattern. Subrouter roots
// arrive as /v1/bookings/ and match the /v1/bookings entry.
func (r *PermissionData) FindPermissions(pattern, method string) Permission {
	pattern = normalize(pattern)
	method = strings.ToUpper(method)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == pattern && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func normalize(pattern string) string {
	if len(pattern) > 1 {
		return strings.TrimSuffix(pattern, "/")
	}

	return pattern
}

// Parse decodes a permission table and rejects duplicate route entries.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	seen := make(map[string]struct{}, len(permissions.Endpoints))

	for i, endpoint := range permissions.Endpoints {
		endpoint.Path = normalize(endpoint.Path)
		endpoint.Method = strings.ToUpper(endpoint.Method)
		permissions.Endpoints[i] = endpoint

		key := endpoint.Method + " " + endpoint.Path
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("duplicate permission entry %s", key)
		}

		seen[key] = struct{}{}
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
