// Package collection manages the collector's owned miniatures.
//
// Items are stored with gorm in two tables: 'collection_items' (one stack of
// identical miniatures, with amount and paint state) and 'collection_criteria'
// (the ordered alternative rules deciding which roster requirements an item can
// stand in for). The Repository implements reconcile.InventoryProvider.
//
// # Import format
//
// Imports accept JSON or YAML, either a list of items or {"items": [...]}:
//
//	items:
//	  - name: Warrior
//	    amount: 2
//	    painted: true
//	    criteria:
//	      - name: Warrior
//	        unit: Squad A
//
// A missing amount means 1; negative or fractional amounts are rejected.
//
// # HTTP Endpoints
//
//   - GET /collection : Lists owned items.
//   - POST /collection/import : Imports items (supports ?replace=true).
package collection
