// Package ports defines the narrow interfaces between the Pourbaix
// pipeline stages. Adapters (filesystem store, Materials Project
// client, Redis cache, plot renderer, stability engine) implement
// them, keeping each stage swappable.
package ports
