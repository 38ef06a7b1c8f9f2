// Package roster reads army rosters from object storage and turns them into
// the list of physical models a reconciliation must satisfy.
//
// Rosters live at '<roster_prefix>/<key>.json' in the storage bucket:
//
//	{
//	  "schema_version": "1.2.0",
//	  "name": "Border Patrol",
//	  "game_system": "Skirmish",
//	  "forces": [
//	    {"catalogue": "Core", "units": [
//	      {"name": "Squad A", "models": [{"name": "Warrior", "count": 5}]},
//	      {"name": "Reserve", "disabled": true, "models": [{"name": "Archer", "count": 2}]}
//	    ]}
//	  ]
//	}
//
// Only schema versions in ">= 1.0.0, < 2.0.0" are read. Disabled units
// contribute nothing; every other model contributes 'count' records.
//
// Parsed documents are kept in a per-Provider TTL cache; concurrent loads of
// the same key share one storage read.
//
// # HTTP Endpoints
//
//   - GET /rosters : Summaries of every stored roster.
//   - GET /rosters/:key : The parsed roster document.
//   - GET /rosters/:key/models : Required models (supports ?stacked=true).
package roster
