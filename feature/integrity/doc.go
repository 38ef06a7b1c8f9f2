// Package integrity checks that the collaborators of a reconciliation are usable.
//
// Three checks exist, each reported independently:
//
//   - structure: the bucket exists and every configured folder (roster and
//     report prefixes) holds at least one object. With fix the bucket is
//     created in the configured region and empty "<folder>/" markers are written.
//   - rosters: every '<roster_prefix>/*.json' document parses and carries a
//     supported schema version. The roster cache is bypassed.
//   - server: the collection tables carry the columns and types the gorm
//     models declare.
//
// GET /integrity runs all three and never fixes; checks that cannot run are
// listed under "errors" and the response is still 200.
package integrity
