package dataprocessing

import (
	"context"
	"log/slog"

	"oilstcli/internal/infrastructure"
	"oilstcli/pkg/contracts/domain"
)

// DedupeGeolocations collapses the raw geolocation samples to exactly one
// row per zip code prefix. The first row encountered in input order wins,
// which keeps the operation deterministic and idempotent. The result is a
// valid one-to-one lookup for the customer join.
func DedupeGeolocations(ctx context.Context, geos []domain.Geolocation) []domain.Geolocation {
	seen := make(map[string]struct{}, len(geos))
	deduped := make([]domain.Geolocation, 0, len(geos))

	for _, geo := range geos {
		if _, ok := seen[geo.ZipCodePrefix]; ok {
			continue
		}
		seen[geo.ZipCodePrefix] = struct{}{}
		deduped = append(deduped, geo)
	}

	infrastructure.LoggerFromContext(ctx).InfoContext(ctx, "deduplicated geolocations",
		slog.Int("input_rows", len(geos)),
		slog.Int("unique_prefixes", len(deduped)))

	return deduped
}

// DedupeStates collapses the state abbreviation mapping to one row per
// state name, first occurrence wins.
func DedupeStates(ctx context.Context, states []domain.StateAbbreviation) []domain.StateAbbreviation {
	seen := make(map[string]struct{}, len(states))
	deduped := make([]domain.StateAbbreviation, 0, len(states))

	for _, state := range states {
		if _, ok := seen[state.StateName]; ok {
			continue
		}
		seen[state.StateName] = struct{}{}
		deduped = append(deduped, state)
	}

	infrastructure.LoggerFromContext(ctx).InfoContext(ctx, "deduplicated states",
		slog.Int("input_rows", len(states)),
		slog.Int("unique_states", len(deduped)))

	return deduped
}
